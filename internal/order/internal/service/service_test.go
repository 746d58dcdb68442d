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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/materia/internal/ledger"
	ledgermocks "github.com/ecodeclub/materia/internal/ledger/mocks"
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/materia/internal/order/internal/event/mocks"
	repomocks "github.com/ecodeclub/materia/internal/order/internal/repository/mocks"
	gormxmocks "github.com/ecodeclub/materia/internal/pkg/gormx/mocks"
	"github.com/ecodeclub/materia/internal/pkg/sequencenumber"
	"github.com/ecodeclub/materia/internal/product"
	productmocks "github.com/ecodeclub/materia/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSessions struct {
	methods map[string]bool
	session domain.PaymentSession
	err     error
}

func (f *fakeSessions) Supports(method string) bool {
	return f.methods[method]
}

func (f *fakeSessions) Open(ctx context.Context, order domain.Order) (domain.PaymentSession, error) {
	return f.session, f.err
}

type mocks struct {
	repo     *repomocks.MockOrderRepository
	ledger   *ledgermocks.MockService
	catalog  *productmocks.MockService
	producer *evtmocks.MockOrderEventProducer
}

func newTestService(ctrl *gomock.Controller, sessions PaymentSessions) (Service, mocks) {
	tx := gormxmocks.NewMockTxRunner(ctrl)
	tx.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	m := mocks{
		repo:     repomocks.NewMockOrderRepository(ctrl),
		ledger:   ledgermocks.NewMockService(ctrl),
		catalog:  productmocks.NewMockService(ctrl),
		producer: evtmocks.NewMockOrderEventProducer(ctrl),
	}
	quoter := NewRateTableQuoter(map[string]ShippingOption{
		"standard": {Cost: 1500, Desc: "普通物流"},
		"pickup":   {Cost: 0, Desc: "自提"},
	})
	svc := NewService(m.repo, tx, m.ledger, m.catalog, quoter, sessions,
		sequencenumber.NewGenerator(), m.producer, time.Hour)
	return svc, m
}

func validAddress() domain.Address {
	return domain.Address{
		Receiver: "张三",
		Phone:    "13800000000",
		Line:     "建材路 1 号",
		City:     "杭州",
		Province: "浙江",
	}
}

func onShelfProducts() []product.Product {
	return []product.Product{
		{ID: 1, SN: "cement-42.5", Name: "水泥", Unit: "袋", Price: 3500, Status: product.StatusOnShelf},
		{ID: 2, SN: "rebar-12", Name: "螺纹钢", Unit: "吨", Price: 420000, Status: product.StatusOnShelf},
	}
}

func TestService_CreateOrder(t *testing.T) {
	session := domain.PaymentSession{Token: "tok-1", RedirectURL: "https://pay.example.com/tok-1"}
	testCases := []struct {
		name     string
		order    domain.Order
		sessions *fakeSessions
		before   func(t *testing.T, m mocks)
		after    func(t *testing.T, order domain.Order)
		wantErr  error
	}{
		{
			name: "下单成功",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}, session: session},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return(onShelfProducts(), nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
						assert.Equal(t, domain.StatusAwaitingPayment, o.Status)
						assert.Equal(t, int64(3500*3+420000), o.Subtotal)
						assert.Equal(t, int64(1500), o.ShippingCost)
						assert.Equal(t, o.Subtotal+o.ShippingCost, o.Total)
						assert.Equal(t, "水泥", o.Items[0].Name)
						assert.Equal(t, int64(3500), o.Items[0].UnitPrice)
						assert.Len(t, o.SN, 32)
						o.ID = 10
						return o, nil
					})
				m.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any(),
					[]ledger.Line{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}}, "buyer:7").
					Return(nil)
				m.repo.EXPECT().UpdatePaymentSession(gomock.Any(), int64(10), session).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, "", evt.From)
						assert.Equal(t, "awaiting_payment", evt.To)
						assert.Equal(t, int64(7), evt.BuyerID)
						return nil
					})
			},
			after: func(t *testing.T, order domain.Order) {
				assert.Equal(t, int64(10), order.ID)
				assert.Equal(t, session, order.Payment)
				assert.Equal(t, time.Hour.Milliseconds(), order.ExpireAt-order.Ctime)
			},
		},
		{
			name: "同一商品合并数量",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "pickup",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}, session: session},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return(onShelfProducts()[:1], nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
						assert.Len(t, o.Items, 1)
						assert.Equal(t, o.Subtotal, o.Total)
						o.ID = 11
						return o, nil
					})
				m.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any(),
					[]ledger.Line{{ProductID: 1, Quantity: 3}}, "buyer:7").Return(nil)
				m.repo.EXPECT().UpdatePaymentSession(gomock.Any(), int64(11), session).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			after: func(t *testing.T, order domain.Order) {
				assert.Equal(t, int64(10500), order.Total)
			},
		},
		{
			name: "商品已下架",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before: func(t *testing.T, m mocks) {
				p := onShelfProducts()[0]
				p.Status = product.StatusOffShelf
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return([]product.Product{p}, nil)
			},
			wantErr: ErrProductUnavailable,
		},
		{
			name: "商品不存在",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 99, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{99}).Return(nil, nil)
			},
			wantErr: ErrProductUnavailable,
		},
		{
			name: "未知配送方式",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "rocket",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return(onShelfProducts()[:1], nil)
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "不支持的支付方式",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "cash",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before:   func(t *testing.T, m mocks) {},
			wantErr:  ErrInvalidOrder,
		},
		{
			name: "收货地址不完整",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
				Address:        domain.Address{Receiver: "张三"},
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before:   func(t *testing.T, m mocks) {},
			wantErr:  ErrInvalidOrder,
		},
		{
			name: "数量非法",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 0}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before:   func(t *testing.T, m mocks) {},
			wantErr:  ErrInvalidOrder,
		},
		{
			name: "库存不足",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 100}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return(onShelfProducts()[:1], nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
						o.ID = 12
						return o, nil
					})
				m.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(ledger.ErrInsufficientStock)
			},
			wantErr: ledger.ErrInsufficientStock,
		},
		{
			name: "支付会话创建失败取消订单",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}, err: errors.New("网关超时")},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return(onShelfProducts()[:1], nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
						o.ID = 13
						return o, nil
					})
				m.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
						assert.Equal(t, int64(13), tr.OrderID)
						assert.Equal(t, domain.StatusAwaitingPayment, tr.From)
						assert.Equal(t, domain.StatusCancelled, tr.To)
						assert.Equal(t, "支付会话创建失败", tr.Reason)
						return true, nil
					})
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(),
					[]ledger.Line{{ProductID: 1, Quantity: 1}}, ActorSystemPayment).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, "cancelled", evt.To)
						return nil
					})
			},
			wantErr: ErrPaymentSessionFailed,
		},
		{
			name: "支付会话保存失败取消订单",
			order: domain.Order{
				BuyerID:        7,
				Items:          []domain.OrderItem{{ProductID: 2, Quantity: 2}},
				Address:        validAddress(),
				ShippingOption: "standard",
				PaymentMethod:  "snap",
			},
			sessions: &fakeSessions{methods: map[string]bool{"snap": true}, session: session},
			before: func(t *testing.T, m mocks) {
				m.catalog.EXPECT().FindByIDs(gomock.Any(), []int64{2}).Return(onShelfProducts()[1:], nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
						o.ID = 14
						return o, nil
					})
				m.ledger.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().UpdatePaymentSession(gomock.Any(), int64(14), session).Return(errors.New("连接断开"))
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
						assert.Equal(t, int64(14), tr.OrderID)
						assert.Equal(t, domain.StatusCancelled, tr.To)
						return true, nil
					})
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(),
					[]ledger.Line{{ProductID: 2, Quantity: 2}}, ActorSystemPayment).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, "cancelled", evt.To)
						return nil
					})
			},
			wantErr: ErrPaymentSessionFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, tc.sessions)
			tc.before(t, m)
			order, err := svc.CreateOrder(context.Background(), tc.order)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			tc.after(t, order)
		})
	}
}

func awaitingOrder() domain.Order {
	return domain.Order{
		ID:       20,
		SN:       "order-20",
		BuyerID:  7,
		Items:    []domain.OrderItem{{ProductID: 1, Quantity: 2}},
		Total:    8500,
		Status:   domain.StatusAwaitingPayment,
		Version:  1,
		ExpireAt: 2000,
	}
}

func TestService_MarkPaid(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(t *testing.T, m mocks)
		wantFrom domain.OrderStatus
		wantErr  error
	}{
		{
			name: "支付成功确认售出",
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil)
				m.repo.EXPECT().Transit(gomock.Any(), domain.Transition{
					OrderID:  20,
					SN:       "order-20",
					BuyerID:  7,
					From:     domain.StatusAwaitingPayment,
					To:       domain.StatusPaid,
					Version:  1,
					Actor:    "gateway:snap",
					Deadline: domain.DeadlineNotReached,
					Utime:    1000,
				}).Return(true, nil)
				m.ledger.EXPECT().ConfirmSale(gomock.Any(), ledger.OrderRef("order-20"),
					[]ledger.Line{{ProductID: 1, Quantity: 2}}, "gateway:snap").Return(nil)
			},
			wantFrom: domain.StatusAwaitingPayment,
		},
		{
			name: "超过支付截止时间",
			before: func(t *testing.T, m mocks) {
				gomock.InOrder(
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(false, nil),
					m.repo.EXPECT().FindLatestStatus(gomock.Any(), "order-20").Return(domain.StatusAwaitingPayment, nil),
				)
			},
			wantFrom: domain.StatusAwaitingPayment,
			wantErr:  ErrInvalidTransition,
		},
		{
			name: "订单已过期",
			before: func(t *testing.T, m mocks) {
				o := awaitingOrder()
				o.Status = domain.StatusExpired
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(o, nil)
			},
			wantFrom: domain.StatusExpired,
			wantErr:  ErrInvalidTransition,
		},
		{
			name: "订单已支付",
			before: func(t *testing.T, m mocks) {
				o := awaitingOrder()
				o.Status = domain.StatusPaid
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(o, nil)
			},
			wantFrom: domain.StatusPaid,
			wantErr:  ErrInvalidTransition,
		},
		{
			name: "并发过期后重新读取状态",
			before: func(t *testing.T, m mocks) {
				expired := awaitingOrder()
				expired.Status = domain.StatusExpired
				gomock.InOrder(
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(false, nil),
					m.repo.EXPECT().FindLatestStatus(gomock.Any(), "order-20").Return(expired.Status, nil),
				)
			},
			wantFrom: domain.StatusExpired,
			wantErr:  ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, &fakeSessions{})
			tc.before(t, m)
			tr, err := svc.MarkPaid(context.Background(), "order-20", 1000, "gateway:snap")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantFrom, tr.From)
		})
	}
}

func TestService_MarkGatewayExpired(t *testing.T) {
	testCases := []struct {
		name     string
		before   func(t *testing.T, m mocks)
		wantTo   domain.OrderStatus
		wantFrom domain.OrderStatus
		wantErr  error
	}{
		{
			name: "过了截止时间进入过期",
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
						assert.Equal(t, domain.StatusExpired, tr.To)
						assert.Equal(t, domain.DeadlinePassed, tr.Deadline)
						return true, nil
					})
				m.ledger.EXPECT().Release(gomock.Any(), ledger.OrderRef("order-20"),
					[]ledger.Line{{ProductID: 1, Quantity: 2}}, "gateway:snap").Return(nil)
			},
			wantTo:   domain.StatusExpired,
			wantFrom: domain.StatusAwaitingPayment,
		},
		{
			name: "截止时间之前改为取消",
			before: func(t *testing.T, m mocks) {
				gomock.InOrder(
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
							assert.Equal(t, domain.StatusExpired, tr.To)
							return false, nil
						}),
					m.repo.EXPECT().FindLatestStatus(gomock.Any(), "order-20").Return(domain.StatusAwaitingPayment, nil),
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
							assert.Equal(t, domain.StatusCancelled, tr.To)
							assert.Equal(t, domain.DeadlineAny, tr.Deadline)
							assert.Equal(t, "支付渠道会话提前失效", tr.Reason)
							return true, nil
						}),
					m.ledger.EXPECT().Release(gomock.Any(), ledger.OrderRef("order-20"),
						[]ledger.Line{{ProductID: 1, Quantity: 2}}, "gateway:snap").Return(nil),
				)
			},
			wantTo:   domain.StatusCancelled,
			wantFrom: domain.StatusAwaitingPayment,
		},
		{
			name: "订单已支付",
			before: func(t *testing.T, m mocks) {
				gomock.InOrder(
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(false, nil),
					m.repo.EXPECT().FindLatestStatus(gomock.Any(), "order-20").Return(domain.StatusPaid, nil),
				)
			},
			wantTo:   domain.StatusExpired,
			wantFrom: domain.StatusPaid,
			wantErr:  ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, &fakeSessions{})
			tc.before(t, m)
			tr, err := svc.MarkGatewayExpired(context.Background(), "order-20", "gateway:snap")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantFrom, tr.From)
			assert.Equal(t, tc.wantTo, tr.To)
		})
	}
}

func TestService_ExpireOrder(t *testing.T) {
	testCases := []struct {
		name    string
		before  func(t *testing.T, m mocks)
		wantErr error
	}{
		{
			name: "过期并释放库存",
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
						assert.Equal(t, domain.StatusExpired, tr.To)
						assert.Equal(t, domain.DeadlinePassed, tr.Deadline)
						assert.Equal(t, int64(3000), tr.Utime)
						return true, nil
					})
				m.ledger.EXPECT().Release(gomock.Any(), ledger.OrderRef("order-20"),
					[]ledger.Line{{ProductID: 1, Quantity: 2}}, ActorSystemExpiry).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, "awaiting_payment", evt.From)
						assert.Equal(t, "expired", evt.To)
						assert.Equal(t, ActorSystemExpiry, evt.Actor)
						return nil
					})
			},
		},
		{
			name: "刚好被支付",
			before: func(t *testing.T, m mocks) {
				paid := awaitingOrder()
				paid.Status = domain.StatusPaid
				gomock.InOrder(
					m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(false, nil),
					m.repo.EXPECT().FindLatestStatus(gomock.Any(), "order-20").Return(paid.Status, nil),
				)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "释放库存失败",
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(true, nil)
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("数据库错误"))
			},
			wantErr: errors.New("数据库错误"),
		},
		{
			name: "发送事件失败不影响结果",
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().FindOrderBySN(gomock.Any(), "order-20").Return(awaitingOrder(), nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(true, nil)
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, &fakeSessions{})
			tc.before(t, m)
			err := svc.ExpireOrder(context.Background(), "order-20", 3000)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if errors.Is(err, tc.wantErr) {
				return
			}
			assert.EqualError(t, err, tc.wantErr.Error())
		})
	}
}

func TestService_AdvanceFulfillment(t *testing.T) {
	testCases := []struct {
		name    string
		status  domain.OrderStatus
		next    domain.OrderStatus
		before  func(t *testing.T, m mocks)
		wantErr error
	}{
		{
			name:   "已支付到处理中",
			status: domain.StatusPaid,
			next:   domain.StatusProcessing,
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "已签收到完成",
			status: domain.StatusDelivered,
			next:   domain.StatusCompleted,
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "不能跳过处理中",
			status:  domain.StatusPaid,
			next:    domain.StatusShipped,
			before:  func(t *testing.T, m mocks) {},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "待支付不能履约",
			status:  domain.StatusAwaitingPayment,
			next:    domain.StatusProcessing,
			before:  func(t *testing.T, m mocks) {},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已完成不能再推进",
			status:  domain.StatusCompleted,
			next:    domain.StatusCompleted,
			before:  func(t *testing.T, m mocks) {},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, &fakeSessions{})
			o := awaitingOrder()
			o.Status = tc.status
			m.repo.EXPECT().FindOrderBySN(gomock.Any(), o.SN).Return(o, nil)
			tc.before(t, m)
			got, err := svc.AdvanceFulfillment(context.Background(), o.SN, tc.next, "staff:1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.next, got.Status)
			assert.Equal(t, o.Version+1, got.Version)
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	testCases := []struct {
		name    string
		status  domain.OrderStatus
		before  func(t *testing.T, m mocks)
		wantErr error
	}{
		{
			name:   "取消待支付订单释放预占",
			status: domain.StatusAwaitingPayment,
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(true, nil)
				m.ledger.EXPECT().Release(gomock.Any(), ledger.OrderRef("order-20"),
					[]ledger.Line{{ProductID: 1, Quantity: 2}}, "staff:1").Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "取消已支付订单归还库存",
			status: domain.StatusPaid,
			before: func(t *testing.T, m mocks) {
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition) (bool, error) {
						assert.Equal(t, "客户要求取消", tr.Reason)
						return true, nil
					})
				m.ledger.EXPECT().RevertSale(gomock.Any(), ledger.OrderRef("order-20"),
					[]ledger.Line{{ProductID: 1, Quantity: 2}}, "staff:1").Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "已发货不能取消",
			status:  domain.StatusShipped,
			before:  func(t *testing.T, m mocks) {},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, &fakeSessions{})
			o := awaitingOrder()
			o.Status = tc.status
			m.repo.EXPECT().FindOrderBySN(gomock.Any(), o.SN).Return(o, nil)
			tc.before(t, m)
			err := svc.CancelOrder(context.Background(), o.SN, "staff:1", "客户要求取消")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_CancelBuyerOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl, &fakeSessions{})
	o := awaitingOrder()
	o.Status = domain.StatusPaid
	m.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), o.SN, o.BuyerID).Return(o, nil)
	err := svc.CancelBuyerOrder(context.Background(), o.SN, o.BuyerID, "不想要了")
	require.ErrorIs(t, err, ErrInvalidTransition)
}
