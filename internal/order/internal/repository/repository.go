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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdatePaymentSession(ctx context.Context, orderID int64, session domain.PaymentSession) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	// FindLatestStatus CAS 失败后用它确认赢家写入的状态
	FindLatestStatus(ctx context.Context, sn string) (domain.OrderStatus, error)
	ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context, status domain.OrderStatus) (int64, error)
	ListExpiredOrders(ctx context.Context, now int64, limit int) ([]domain.Order, error)
	// Transit 按 Transition 做 CAS, 返回 false 表示状态已经被别人改了
	Transit(ctx context.Context, t domain.Transition) (bool, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{
		d: d,
	}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.Create(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) UpdatePaymentSession(ctx context.Context, orderID int64, session domain.PaymentSession) error {
	return o.d.UpdatePaymentSession(ctx, orderID, session.Token, session.RedirectURL)
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindLatestStatus(ctx context.Context, sn string) (domain.OrderStatus, error) {
	order, err := o.d.FindLatestBySN(ctx, sn)
	return domain.OrderStatus(order.Status), err
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListByBuyerID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.withItems(ctx, orders)
}

func (o *orderRepository) TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return o.withItems(ctx, orders)
}

func (o *orderRepository) TotalOrders(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return o.d.Count(ctx, status.ToUint8())
}

func (o *orderRepository) ListExpiredOrders(ctx context.Context, now int64, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListExpired(ctx, now, limit)
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), err
}

func (o *orderRepository) Transit(ctx context.Context, t domain.Transition) (bool, error) {
	u := dao.StatusUpdate{
		ID:      t.OrderID,
		From:    t.From.ToUint8(),
		To:      t.To.ToUint8(),
		Version: t.Version,
		Utime:   t.Utime,
	}
	switch t.Deadline {
	case domain.DeadlineNotReached:
		u.ExpireAfter = t.Utime
	case domain.DeadlinePassed:
		u.ExpireNotAfter = t.Utime
	}
	switch t.To {
	case domain.StatusPaid:
		u.PaidAt = t.Utime
	case domain.StatusCancelled:
		u.CancelReason = t.Reason
	}
	return o.d.UpdateStatus(ctx, u)
}

// withItems 一次查出所有订单项, 避免逐个订单查询
func (o *orderRepository) withItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := o.d.FindItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("批量查找订单项失败: %w", err)
	}
	grouped := mapx.NewMultiBuiltinMap[int64, dao.OrderItem](len(orders))
	for _, item := range items {
		_ = grouped.Put(item.OrderId, item)
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		its, _ := grouped.Get(src.Id)
		return o.toOrderDomain(src, its)
	}), nil
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:             order.ID,
		SN:             order.SN,
		BuyerId:        order.BuyerID,
		Receiver:       order.Address.Receiver,
		Phone:          order.Address.Phone,
		AddrLine:       order.Address.Line,
		City:           order.Address.City,
		Province:       order.Address.Province,
		PostalCode:     order.Address.PostalCode,
		ShippingOption: order.ShippingOption,
		ShippingCost:   order.ShippingCost,
		Subtotal:       order.Subtotal,
		Total:          order.Total,
		PaymentMethod:  order.PaymentMethod,
		PaymentToken:   order.Payment.Token,
		PaymentURL:     order.Payment.RedirectURL,
		Status:         order.Status.ToUint8(),
		ExpireAt:       order.ExpireAt,
		Version:        order.Version,
		CancelReason:   order.CancelReason,
		PaidAt:         order.PaidAt,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			ProductSN: src.ProductSN,
			Name:      src.Name,
			Unit:      src.Unit,
			Quantity:  src.Quantity,
			UnitPrice: src.UnitPrice,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:      order.Id,
		SN:      order.SN,
		BuyerID: order.BuyerId,
		Address: domain.Address{
			Receiver:   order.Receiver,
			Phone:      order.Phone,
			Line:       order.AddrLine,
			City:       order.City,
			Province:   order.Province,
			PostalCode: order.PostalCode,
		},
		ShippingOption: order.ShippingOption,
		ShippingCost:   order.ShippingCost,
		Subtotal:       order.Subtotal,
		Total:          order.Total,
		PaymentMethod:  order.PaymentMethod,
		Payment: domain.PaymentSession{
			Token:       order.PaymentToken,
			RedirectURL: order.PaymentURL,
		},
		Status:       domain.OrderStatus(order.Status),
		Version:      order.Version,
		CancelReason: order.CancelReason,
		PaidAt:       order.PaidAt,
		ExpireAt:     order.ExpireAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductId,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Unit:      src.Unit,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
