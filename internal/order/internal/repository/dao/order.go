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
	"time"

	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go OrderDAO
type OrderDAO interface {
	// Create 写入订单和订单项, 调用方负责开启事务
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	UpdatePaymentSession(ctx context.Context, id int64, token, redirectURL string) error
	FindBySN(ctx context.Context, sn string) (Order, error)
	// FindLatestBySN 加共享锁读, 读到的是其他事务已经提交的最新数据, 而不是本事务的快照
	FindLatestBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	Count(ctx context.Context, status uint8) (int64, error)
	ListExpired(ctx context.Context, now int64, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error)
}

// StatusUpdate 带前置条件的状态变更
type StatusUpdate struct {
	ID      int64
	From    uint8
	To      uint8
	Version int64
	Utime   int64
	// ExpireAfter 大于 0 时要求 expire_at > ExpireAfter
	ExpireAfter int64
	// ExpireNotAfter 大于 0 时要求 expire_at <= ExpireNotAfter
	ExpireNotAfter int64
	PaidAt         int64
	CancelReason   string
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	db := gormx.DB(ctx, d.db)
	if err := db.Create(&o).Error; err != nil {
		return 0, err
	}
	for i := range items {
		items[i].OrderId = o.Id
		items[i].Ctime, items[i].Utime = now, now
	}
	if len(items) == 0 {
		return o.Id, nil
	}
	return o.Id, db.Create(&items).Error
}

func (d *OrderGORMDAO) UpdatePaymentSession(ctx context.Context, id int64, token, redirectURL string) error {
	return gormx.DB(ctx, d.db).Model(&Order{}).Where("id = ?", id).
		Updates(map[string]any{
			"payment_token": token,
			"payment_url":   redirectURL,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := gormx.DB(ctx, d.db).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindLatestBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := gormx.DB(ctx, d.db).Clauses(clause.Locking{Strength: "SHARE"}).
		Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := gormx.DB(ctx, d.db).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := gormx.DB(ctx, d.db).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := gormx.DB(ctx, d.db).Where("order_id IN ?", orderIDs).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := gormx.DB(ctx, d.db).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := gormx.DB(ctx, d.db).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.byStatus(ctx, status).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var res int64
	err := d.byStatus(ctx, status).Model(&Order{}).Count(&res).Error
	return res, err
}

// byStatus status 为 0 表示不过滤
func (d *OrderGORMDAO) byStatus(ctx context.Context, status uint8) *gorm.DB {
	db := gormx.DB(ctx, d.db)
	if status != 0 {
		db = db.Where("status = ?", status)
	}
	return db
}

// ListExpired 走 (status, expire_at) 索引, 按过期先后返回
func (d *OrderGORMDAO) ListExpired(ctx context.Context, now int64, limit int) ([]Order, error) {
	var res []Order
	err := gormx.DB(ctx, d.db).
		Where("status = ? AND expire_at <= ?", StatusAwaitingPayment, now).
		Order("expire_at ASC").Limit(limit).Find(&res).Error
	return res, err
}

// UpdateStatus 返回 false 表示前置条件不满足, 没有更新任何数据
func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error) {
	if u.Utime == 0 {
		u.Utime = time.Now().UnixMilli()
	}
	updates := map[string]any{
		"status":  u.To,
		"version": gorm.Expr("version + 1"),
		"utime":   u.Utime,
	}
	if u.PaidAt > 0 {
		updates["paid_at"] = u.PaidAt
	}
	if u.CancelReason != "" {
		updates["cancel_reason"] = u.CancelReason
	}
	db := gormx.DB(ctx, d.db).Model(&Order{}).
		Where("id = ? AND status = ? AND version = ?", u.ID, u.From, u.Version)
	if u.ExpireAfter > 0 {
		db = db.Where("expire_at > ?", u.ExpireAfter)
	}
	if u.ExpireNotAfter > 0 {
		db = db.Where("expire_at <= ?", u.ExpireNotAfter)
	}
	res := db.Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

const StatusAwaitingPayment uint8 = 1

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`

	Receiver   string `gorm:"type:varchar(64);not null;comment:收货人"`
	Phone      string `gorm:"type:varchar(32);not null;comment:收货人电话"`
	AddrLine   string `gorm:"type:varchar(512);not null;comment:详细地址"`
	City       string `gorm:"type:varchar(64);not null"`
	Province   string `gorm:"type:varchar(64);not null;default:''"`
	PostalCode string `gorm:"type:varchar(16);not null;default:''"`

	ShippingOption string `gorm:"type:varchar(64);not null;comment:配送方式"`
	ShippingCost   int64  `gorm:"not null;comment:运费;单位为分"`
	Subtotal       int64  `gorm:"not null;comment:商品总价;单位为分"`
	Total          int64  `gorm:"not null;comment:应付总价;单位为分, 创建后不再修改"`

	PaymentMethod string `gorm:"type:varchar(32);not null;comment:支付网关"`
	PaymentToken  string `gorm:"type:varchar(255);not null;default:'';comment:网关会话凭证"`
	PaymentURL    string `gorm:"column:payment_url;type:varchar(1024);not null;default:'';comment:网关支付地址"`

	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_expire_at,priority:1;comment:订单状态 1=待支付 2=已支付 3=处理中 4=已发货 5=已送达 6=已完成 7=已过期 8=已取消"`
	ExpireAt     int64  `gorm:"not null;index:idx_status_expire_at,priority:2;comment:支付截止时间"`
	Version      int64  `gorm:"not null;default:1"`
	CancelReason string `gorm:"type:varchar(255);not null;default:''"`
	PaidAt       int64  `gorm:"not null;default:0"`
	Ctime        int64
	Utime        int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品ID"`
	ProductSN string `gorm:"column:product_sn;type:varchar(255);not null;comment:商品序列号"`
	Name      string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Unit      string `gorm:"type:varchar(32);not null;comment:计量单位快照"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	UnitPrice int64  `gorm:"not null;comment:商品单价快照;单位为分"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
