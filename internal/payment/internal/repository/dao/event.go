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
	ErrDuplicatedEvent = errors.New("支付通知已处理")
	ErrEventNotFound   = errors.New("支付通知记录不存在")
)

type PaymentEventDAO interface {
	// Insert (gateway, transaction_id, raw_status) 冲突时返回 ErrDuplicatedEvent
	Insert(ctx context.Context, evt PaymentEvent) (int64, error)
	FindByKey(ctx context.Context, gateway, transactionID, rawStatus string) (PaymentEvent, error)
	ListByOrderSN(ctx context.Context, orderSN string) ([]PaymentEvent, error)
	// ListLatestByOrderSN 加共享锁读, 能看到并发事务已经提交的通知记录
	ListLatestByOrderSN(ctx context.Context, orderSN string) ([]PaymentEvent, error)
	ListAnomalies(ctx context.Context, offset, limit int) ([]PaymentEvent, error)
	CountAnomalies(ctx context.Context) (int64, error)
}

type paymentEventDAO struct {
	db *egorm.Component
}

func NewPaymentEventGORMDAO(db *egorm.Component) PaymentEventDAO {
	return &paymentEventDAO{db: db}
}

func (d *paymentEventDAO) Insert(ctx context.Context, evt PaymentEvent) (int64, error) {
	now := time.Now().UnixMilli()
	evt.Ctime, evt.Utime = now, now
	if err := gormx.DB(ctx, d.db).Create(&evt).Error; err != nil {
		if gormx.IsUniqueConflict(err) {
			return 0, fmt.Errorf("%w: gateway=%s transactionID=%s rawStatus=%s",
				ErrDuplicatedEvent, evt.Gateway, evt.TransactionId, evt.RawStatus)
		}
		return 0, fmt.Errorf("写入支付通知记录失败: %w", err)
	}
	return evt.Id, nil
}

func (d *paymentEventDAO) FindByKey(ctx context.Context, gateway, transactionID, rawStatus string) (PaymentEvent, error) {
	var res PaymentEvent
	err := gormx.DB(ctx, d.db).
		Where("gateway = ? AND transaction_id = ? AND raw_status = ?", gateway, transactionID, rawStatus).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PaymentEvent{}, ErrEventNotFound
	}
	return res, err
}

func (d *paymentEventDAO) ListByOrderSN(ctx context.Context, orderSN string) ([]PaymentEvent, error) {
	var res []PaymentEvent
	err := gormx.DB(ctx, d.db).Where("order_sn = ?", orderSN).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *paymentEventDAO) ListLatestByOrderSN(ctx context.Context, orderSN string) ([]PaymentEvent, error) {
	var res []PaymentEvent
	err := gormx.DB(ctx, d.db).Clauses(clause.Locking{Strength: "SHARE"}).
		Where("order_sn = ?", orderSN).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *paymentEventDAO) ListAnomalies(ctx context.Context, offset, limit int) ([]PaymentEvent, error) {
	var res []PaymentEvent
	err := gormx.DB(ctx, d.db).Where("anomaly <> ''").
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *paymentEventDAO) CountAnomalies(ctx context.Context) (int64, error) {
	var res int64
	err := gormx.DB(ctx, d.db).Model(&PaymentEvent{}).Where("anomaly <> ''").Count(&res).Error
	return res, err
}

// PaymentEvent 已处理的网关通知
type PaymentEvent struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:支付通知自增ID"`
	Gateway       string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_gateway_txn_status,priority:1;comment:支付网关"`
	TransactionId string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_gateway_txn_status,priority:2;comment:网关流水号"`
	RawStatus     string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_gateway_txn_status,priority:3;comment:网关原始状态"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;comment:归一化状态 1=settled 2=pending 3=denied 4=cancelled 5=expired"`
	OrderSn       string `gorm:"type:varchar(64);not null;index:idx_order_sn;comment:订单序列号"`
	Amount        int64  `gorm:"not null;comment:网关上报金额,单位分"`
	Digest        string `gorm:"type:char(64);not null;comment:原始报文SHA-256"`
	Transition    string `gorm:"type:varchar(64);not null;default:'';comment:引起的订单状态变更"`
	Anomaly       string `gorm:"type:varchar(32);not null;default:'';index:idx_anomaly;comment:结算异常类型"`
	Ctime         int64
	Utime         int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&PaymentEvent{})
}
