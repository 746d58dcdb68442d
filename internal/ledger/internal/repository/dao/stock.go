// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStockNotFound             = errors.New("库存记录不存在")
	ErrDuplicatedMovement        = errors.New("库存流水重复")
	ErrRecordChangedConcurrently = errors.New("库存记录已被并发修改")
)

type StockDAO interface {
	// LockStock 在当前事务中对商品库存行加排他锁
	LockStock(ctx context.Context, productID int64) (Stock, error)
	// EnsureStock 不存在时创建数量为 0 的库存行
	EnsureStock(ctx context.Context, productID int64) error
	FindStock(ctx context.Context, productID int64) (Stock, error)
	ListStocks(ctx context.Context, offset, limit int) ([]Stock, error)
	CountStocks(ctx context.Context) (int64, error)
	// Append 写入一条流水并同步更新库存计数, 两者必须在同一事务内
	Append(ctx context.Context, s Stock, m StockMovement) (int64, error)
	FindMovementsByRef(ctx context.Context, refType uint8, refSN string, productID int64) ([]StockMovement, error)
	ListMovementsByRef(ctx context.Context, refType uint8, refSN string) ([]StockMovement, error)
	ListMovements(ctx context.Context, productID int64, offset, limit int) ([]StockMovement, error)
	CountMovements(ctx context.Context, productID int64) (int64, error)
	SumDelta(ctx context.Context, productID int64) (int64, error)
}

type stockDAO struct {
	db *egorm.Component
}

func NewStockGORMDAO(db *egorm.Component) StockDAO {
	return &stockDAO{db: db}
}

func (d *stockDAO) LockStock(ctx context.Context, productID int64) (Stock, error) {
	var res Stock
	err := gormx.DB(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Stock{}, fmt.Errorf("%w: productID=%d", ErrStockNotFound, productID)
	}
	return res, err
}

func (d *stockDAO) EnsureStock(ctx context.Context, productID int64) error {
	now := time.Now().UnixMilli()
	return gormx.DB(ctx, d.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Stock{ProductId: productID, Version: 1, Ctime: now, Utime: now}).Error
}

func (d *stockDAO) FindStock(ctx context.Context, productID int64) (Stock, error) {
	var res Stock
	err := gormx.DB(ctx, d.db).Where("product_id = ?", productID).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Stock{}, fmt.Errorf("%w: productID=%d", ErrStockNotFound, productID)
	}
	return res, err
}

func (d *stockDAO) ListStocks(ctx context.Context, offset, limit int) ([]Stock, error) {
	var res []Stock
	err := gormx.DB(ctx, d.db).Order("product_id ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *stockDAO) CountStocks(ctx context.Context) (int64, error) {
	var res int64
	err := gormx.DB(ctx, d.db).Model(&Stock{}).Count(&res).Error
	return res, err
}

func (d *stockDAO) Append(ctx context.Context, s Stock, m StockMovement) (int64, error) {
	db := gormx.DB(ctx, d.db)
	now := time.Now().UnixMilli()
	m.Ctime = now
	if err := db.Create(&m).Error; err != nil {
		if gormx.IsUniqueConflict(err) {
			return 0, fmt.Errorf("%w: ref=%d:%s productID=%d kind=%d",
				ErrDuplicatedMovement, m.RefType, m.RefSN, m.ProductId, m.Kind)
		}
		return 0, fmt.Errorf("写入库存流水失败: %w", err)
	}
	if m.Delta == 0 {
		return m.Id, nil
	}
	res := db.Model(&Stock{}).
		Where("product_id = ? AND version = ?", s.ProductId, s.Version).
		Updates(map[string]any{
			"quantity": m.NewStock,
			"version":  s.Version + 1,
			"utime":    now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("更新库存失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: productID=%d", ErrRecordChangedConcurrently, s.ProductId)
	}
	return m.Id, nil
}

func (d *stockDAO) FindMovementsByRef(ctx context.Context, refType uint8, refSN string, productID int64) ([]StockMovement, error) {
	var res []StockMovement
	err := gormx.DB(ctx, d.db).
		Where("ref_type = ? AND ref_sn = ? AND product_id = ?", refType, refSN, productID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *stockDAO) ListMovementsByRef(ctx context.Context, refType uint8, refSN string) ([]StockMovement, error) {
	var res []StockMovement
	err := gormx.DB(ctx, d.db).
		Where("ref_type = ? AND ref_sn = ?", refType, refSN).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *stockDAO) ListMovements(ctx context.Context, productID int64, offset, limit int) ([]StockMovement, error) {
	var res []StockMovement
	err := gormx.DB(ctx, d.db).Where("product_id = ?", productID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *stockDAO) CountMovements(ctx context.Context, productID int64) (int64, error) {
	var res int64
	err := gormx.DB(ctx, d.db).Model(&StockMovement{}).
		Where("product_id = ?", productID).Count(&res).Error
	return res, err
}

func (d *stockDAO) SumDelta(ctx context.Context, productID int64) (int64, error) {
	var res int64
	err := gormx.DB(ctx, d.db).Model(&StockMovement{}).
		Select("COALESCE(SUM(delta), 0)").
		Where("product_id = ?", productID).Scan(&res).Error
	return res, err
}

// Stock 库存计数, 是 stock_movements 的物化结果
type Stock struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:库存自增ID"`
	ProductId int64 `gorm:"not null;uniqueIndex:uniq_product_id;comment:商品ID"`
	Quantity  int64 `gorm:"not null;default:0;comment:当前库存,等于该商品全部流水delta之和"`
	Version   int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime     int64
	Utime     int64
}

type StockMovement struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:库存流水自增ID"`
	RefType   uint8  `gorm:"type:tinyint unsigned;not null;uniqueIndex:uniq_ref_product_kind,priority:1;comment:单据类型 1=订单 2=退货 3=人工"`
	RefSN     string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_ref_product_kind,priority:2;comment:单据序列号"`
	ProductId int64  `gorm:"not null;uniqueIndex:uniq_ref_product_kind,priority:3;index:idx_product_id;comment:商品ID"`
	Kind      uint8  `gorm:"type:tinyint unsigned;not null;uniqueIndex:uniq_ref_product_kind,priority:4;comment:流水类型 1=预占 2=释放 3=确认售出 4=退货入库 5=人工调整"`
	Delta     int64  `gorm:"not null;comment:库存变化量,正数为增加,负数为减少"`
	PrevStock int64  `gorm:"not null;comment:变动前库存"`
	NewStock  int64  `gorm:"not null;comment:变动后库存"`
	Actor     string `gorm:"type:varchar(64);not null;comment:操作人"`
	Note      string `gorm:"type:varchar(255);not null;default:'';comment:备注"`
	Ctime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Stock{}, &StockMovement{})
}
