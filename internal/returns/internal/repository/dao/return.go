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
)

var (
	ErrReturnNotFound = gorm.ErrRecordNotFound
	ErrReturnExists   = errors.New("该订单已经申请过退货")
)

type ReturnDAO interface {
	// Create 写入退货单和退货项, 同一个订单重复申请返回 ErrReturnExists
	Create(ctx context.Context, r ReturnRequest, items []ReturnItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (ReturnRequest, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (ReturnRequest, error)
	FindByOrderSN(ctx context.Context, orderSN string) (ReturnRequest, error)
	FindItemsByReturnID(ctx context.Context, returnID int64) ([]ReturnItem, error)
	FindItemsByReturnIDs(ctx context.Context, returnIDs []int64) ([]ReturnItem, error)
	List(ctx context.Context, status uint8, offset, limit int) ([]ReturnRequest, error)
	Count(ctx context.Context, status uint8) (int64, error)
	UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error)
}

// StatusUpdate 按状态和版本号做条件更新
type StatusUpdate struct {
	ID           int64
	From         uint8
	To           uint8
	Version      int64
	Utime        int64
	Approver     string
	DecidedAt    int64
	RejectReason string
	RefundStatus uint8
	CompletedAt  int64
}

type ReturnGORMDAO struct {
	db *egorm.Component
}

func NewReturnGORMDAO(db *egorm.Component) ReturnDAO {
	return &ReturnGORMDAO{db: db}
}

func (d *ReturnGORMDAO) Create(ctx context.Context, r ReturnRequest, items []ReturnItem) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	db := gormx.DB(ctx, d.db)
	if err := db.Create(&r).Error; err != nil {
		if gormx.IsUniqueConflict(err) {
			return 0, fmt.Errorf("%w: orderSN=%s", ErrReturnExists, r.OrderSn)
		}
		return 0, err
	}
	for i := range items {
		items[i].ReturnId = r.Id
		items[i].Ctime, items[i].Utime = now, now
	}
	if len(items) == 0 {
		return r.Id, nil
	}
	return r.Id, db.Create(&items).Error
}

func (d *ReturnGORMDAO) FindBySN(ctx context.Context, sn string) (ReturnRequest, error) {
	var res ReturnRequest
	err := gormx.DB(ctx, d.db).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (ReturnRequest, error) {
	var res ReturnRequest
	err := gormx.DB(ctx, d.db).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (ReturnRequest, error) {
	var res ReturnRequest
	err := gormx.DB(ctx, d.db).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) FindItemsByReturnID(ctx context.Context, returnID int64) ([]ReturnItem, error) {
	var res []ReturnItem
	err := gormx.DB(ctx, d.db).Where("return_id = ?", returnID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) FindItemsByReturnIDs(ctx context.Context, returnIDs []int64) ([]ReturnItem, error) {
	var res []ReturnItem
	if len(returnIDs) == 0 {
		return res, nil
	}
	err := gormx.DB(ctx, d.db).Where("return_id IN ?", returnIDs).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) List(ctx context.Context, status uint8, offset, limit int) ([]ReturnRequest, error) {
	var res []ReturnRequest
	err := d.byStatus(ctx, status).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var res int64
	err := d.byStatus(ctx, status).Model(&ReturnRequest{}).Count(&res).Error
	return res, err
}

func (d *ReturnGORMDAO) byStatus(ctx context.Context, status uint8) *gorm.DB {
	db := gormx.DB(ctx, d.db)
	if status != 0 {
		db = db.Where("status = ?", status)
	}
	return db
}

// UpdateStatus 返回 false 表示状态或版本号已经变了
func (d *ReturnGORMDAO) UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error) {
	if u.Utime == 0 {
		u.Utime = time.Now().UnixMilli()
	}
	updates := map[string]any{
		"status":  u.To,
		"version": gorm.Expr("version + 1"),
		"utime":   u.Utime,
	}
	if u.Approver != "" {
		updates["approver"] = u.Approver
	}
	if u.DecidedAt > 0 {
		updates["decided_at"] = u.DecidedAt
	}
	if u.RejectReason != "" {
		updates["reject_reason"] = u.RejectReason
	}
	if u.RefundStatus > 0 {
		updates["refund_status"] = u.RefundStatus
	}
	if u.CompletedAt > 0 {
		updates["completed_at"] = u.CompletedAt
	}
	res := gormx.DB(ctx, d.db).Model(&ReturnRequest{}).
		Where("id = ? AND status = ? AND version = ?", u.ID, u.From, u.Version).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type ReturnRequest struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:退货单自增ID"`
	SN           string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_return_sn;comment:退货单序列号"`
	OrderSn      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号,一个订单只能退货一次"`
	BuyerId      int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	Reason       string `gorm:"type:varchar(1024);not null;comment:退货原因"`
	Amount       int64  `gorm:"not null;comment:申请退款金额;单位为分"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:退货状态 1=待审批 2=已批准 3=已拒绝 4=已完成"`
	Approver     string `gorm:"type:varchar(64);not null;default:'';comment:审批人"`
	DecidedAt    int64  `gorm:"not null;default:0;comment:审批时间"`
	RejectReason string `gorm:"type:varchar(512);not null;default:'';comment:拒绝原因"`
	RefundStatus uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:退款状态 1=无 2=待退款"`
	CompletedAt  int64  `gorm:"not null;default:0"`
	Version      int64  `gorm:"not null;default:1"`
	Ctime        int64
	Utime        int64
}

type ReturnItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:退货项自增ID"`
	ReturnId  int64  `gorm:"not null;index:idx_return_id;comment:退货单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品ID"`
	ProductSN string `gorm:"column:product_sn;type:varchar(255);not null;comment:商品序列号"`
	Name      string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Quantity  int64  `gorm:"not null;comment:退货数量"`
	UnitPrice int64  `gorm:"not null;comment:下单时的单价;单位为分"`
	Condition string `gorm:"column:condition_code;type:varchar(32);not null;comment:商品状况"`
	Reason    string `gorm:"type:varchar(1024);not null;comment:退货原因"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ReturnRequest{}, &ReturnItem{})
}
