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
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/materia/internal/order"
	ordermocks "github.com/ecodeclub/materia/internal/order/mocks"
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/event"
	evtmocks "github.com/ecodeclub/materia/internal/payment/internal/event/mocks"
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	gatewaymocks "github.com/ecodeclub/materia/internal/payment/internal/gateway/mocks"
	"github.com/ecodeclub/materia/internal/payment/internal/repository"
	repomocks "github.com/ecodeclub/materia/internal/payment/internal/repository/mocks"
	gormxmocks "github.com/ecodeclub/materia/internal/pkg/gormx/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	gw       *gatewaymocks.MockGateway
	repo     *repomocks.MockPaymentEventRepository
	orderSvc *ordermocks.MockService
	producer *evtmocks.MockAnomalyEventProducer
}

func newTestService(ctrl *gomock.Controller) (Service, mocks) {
	tx := gormxmocks.NewMockTxRunner(ctrl)
	tx.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	m := mocks{
		gw:       gatewaymocks.NewMockGateway(ctrl),
		repo:     repomocks.NewMockPaymentEventRepository(ctrl),
		orderSvc: ordermocks.NewMockService(ctrl),
		producer: evtmocks.NewMockAnomalyEventProducer(ctrl),
	}
	m.gw.EXPECT().Name().Return("snap").AnyTimes()
	svc := NewService(gateway.NewGateways(m.gw), m.repo, m.orderSvc, tx, m.producer)
	return svc, m
}

func TestService_HandleNotification(t *testing.T) {
	txnID := uuid.NewString()
	awaiting := order.Order{SN: "SN1", Total: 15005, Status: order.StatusAwaitingPayment}
	notification := func(status domain.Status, raw string) domain.Notification {
		return domain.Notification{
			Gateway:       "snap",
			TransactionID: txnID,
			RawStatus:     raw,
			Status:        status,
			OrderSN:       "SN1",
			Amount:        15005,
			Digest:        "digest",
		}
	}
	paidTransition := order.Transition{SN: "SN1", From: order.StatusAwaitingPayment, To: order.StatusPaid}

	testCases := []struct {
		name      string
		gateway   string
		mock      func(m mocks)
		want      domain.Outcome
		wantErr   error
		wantNoErr bool
	}{
		{
			name:    "未知网关",
			gateway: "paypal",
			mock:    func(m mocks) {},
			want:    domain.Outcome{Result: domain.ResultRejected},
			wantErr: ErrUnknownGateway,
		},
		{
			name:    "签名校验失败",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).
					Return(domain.Notification{}, fmt.Errorf("%w: 缺少 signature_key", gateway.ErrSignatureInvalid))
			},
			want:    domain.Outcome{Result: domain.ResultRejected},
			wantErr: gateway.ErrSignatureInvalid,
		},
		{
			name:    "订单不存在",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{}, order.ErrOrderNotFound)
			},
			want:    domain.Outcome{Result: domain.ResultRejected},
			wantErr: order.ErrOrderNotFound,
		},
		{
			name:    "查询订单出错可重试",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{}, errors.New("数据库错误"))
			},
			want: domain.Outcome{Result: domain.ResultRetryable},
		},
		{
			name:    "金额不一致拒绝且不改订单",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), domain.Payable{SN: "SN1", Total: 15005}).
					Return(fmt.Errorf("%w: signature_key 不匹配", gateway.ErrSignatureInvalid))
			},
			want:    domain.Outcome{Result: domain.ResultRejected},
			wantErr: gateway.ErrSignatureInvalid,
		},
		{
			name:    "重复投递返回第一次的结果",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{SN: "SN1", Total: 15005, Status: order.StatusPaid}, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").
					Return(domain.PaymentEvent{ID: 1, Transition: "awaiting_payment->paid"}, nil)
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Duplicate: true, Transition: "awaiting_payment->paid"},
			wantNoErr: true,
		},
		{
			name:    "无法识别的状态",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusUnknown, "refund"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "refund").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
			},
			want:    domain.Outcome{Result: domain.ResultRejected},
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "支付成功",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").Return(paidTransition, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						assert.Equal(t, "awaiting_payment->paid", evt.Transition)
						assert.Equal(t, domain.AnomalyNone, evt.Anomaly)
						assert.Equal(t, int64(15005), evt.Amount)
						evt.ID = 1
						return evt, nil
					})
				m.orderSvc.EXPECT().PublishTransitions(gomock.Any(), paidTransition)
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Transition: "awaiting_payment->paid"},
			wantNoErr: true,
		},
		{
			name:    "过期后到账记为迟到支付",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{SN: "SN1", Total: 15005, Status: order.StatusExpired}, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").
					Return(order.Transition{SN: "SN1", From: order.StatusExpired, To: order.StatusPaid}, order.ErrInvalidTransition)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						assert.Empty(t, evt.Transition)
						return evt, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.AnomalyEvent) error {
						assert.Equal(t, "late_payment", evt.Kind)
						assert.Equal(t, "SN1", evt.OrderSN)
						return nil
					})
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Anomaly: domain.AnomalyLatePayment},
			wantNoErr: true,
		},
		{
			name:    "已支付订单又收到另一笔成功支付",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{SN: "SN1", Total: 15005, Status: order.StatusPaid}, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").
					Return(order.Transition{SN: "SN1", From: order.StatusPaid, To: order.StatusPaid}, order.ErrInvalidTransition)
				m.repo.EXPECT().ListLatestByOrderSN(gomock.Any(), "SN1").Return([]domain.PaymentEvent{
					{Gateway: "snap", TransactionID: "another", Status: domain.StatusSettled},
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						return evt, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Anomaly: domain.AnomalyDuplicatePayment},
			wantNoErr: true,
		},
		{
			name:    "同一笔交易先 capture 后 settlement",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{SN: "SN1", Total: 15005, Status: order.StatusPaid}, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").
					Return(order.Transition{SN: "SN1", From: order.StatusPaid, To: order.StatusPaid}, order.ErrInvalidTransition)
				m.repo.EXPECT().ListLatestByOrderSN(gomock.Any(), "SN1").Return([]domain.PaymentEvent{
					{Gateway: "snap", TransactionID: txnID, RawStatus: "capture", Status: domain.StatusSettled},
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						return evt, nil
					})
			},
			want:      domain.Outcome{Result: domain.ResultAccepted},
			wantNoErr: true,
		},
		{
			name:    "支付被拒绝",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusDenied, "deny"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "deny").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				t := order.Transition{SN: "SN1", From: order.StatusAwaitingPayment, To: order.StatusCancelled}
				m.orderSvc.EXPECT().MarkPaymentFailed(gomock.Any(), "SN1", "gateway:snap", "支付失败: deny").Return(t, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						return evt, nil
					})
				m.orderSvc.EXPECT().PublishTransitions(gomock.Any(), t)
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Transition: "awaiting_payment->cancelled"},
			wantNoErr: true,
		},
		{
			name:    "网关过期但订单已支付",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusExpired, "expire"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(order.Order{SN: "SN1", Total: 15005, Status: order.StatusPaid}, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "expire").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkGatewayExpired(gomock.Any(), "SN1", "gateway:snap").
					Return(order.Transition{SN: "SN1", From: order.StatusPaid, To: order.StatusExpired}, order.ErrInvalidTransition)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						return evt, nil
					})
			},
			want:      domain.Outcome{Result: domain.ResultAccepted},
			wantNoErr: true,
		},
		{
			name:    "待支付只记录",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusPending, "pending"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "pending").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
						return evt, nil
					})
			},
			want:      domain.Outcome{Result: domain.ResultAccepted},
			wantNoErr: true,
		},
		{
			name:    "并发投递输给另一个请求",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				gomock.InOrder(
					m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound),
					m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").
						Return(domain.PaymentEvent{ID: 2, Transition: "awaiting_payment->paid"}, nil),
				)
				// 事务回滚, 订单状态变更不会发出
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").Return(paidTransition, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.PaymentEvent{}, repository.ErrDuplicatedEvent)
			},
			want:      domain.Outcome{Result: domain.ResultAccepted, Duplicate: true, Transition: "awaiting_payment->paid"},
			wantNoErr: true,
		},
		{
			name:    "写入通知失败可重试",
			gateway: "snap",
			mock: func(m mocks) {
				m.gw.EXPECT().ParseNotification(gomock.Any(), gomock.Any()).Return(notification(domain.StatusSettled, "settlement"), nil)
				m.orderSvc.EXPECT().GetOrder(gomock.Any(), "SN1").Return(awaiting, nil)
				m.gw.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByKey(gomock.Any(), "snap", txnID, "settlement").Return(domain.PaymentEvent{}, repository.ErrEventNotFound)
				m.orderSvc.EXPECT().MarkPaid(gomock.Any(), "SN1", gomock.Any(), "gateway:snap").Return(paidTransition, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.PaymentEvent{}, errors.New("数据库错误"))
			},
			want: domain.Outcome{Result: domain.ResultRetryable},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			req := httptest.NewRequest(http.MethodPost, "/pay/notify/"+tc.gateway, nil)
			outcome, err := svc.HandleNotification(context.Background(), tc.gateway, req)
			assert.Equal(t, tc.want, outcome)
			if tc.wantNoErr {
				require.NoError(t, err)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestSessions_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := gatewaymocks.NewMockGateway(ctrl)
	gw.EXPECT().Name().Return("snap").AnyTimes()
	gw.EXPECT().OpenSession(gomock.Any(), domain.SessionRequest{
		OrderSN:     "SN1",
		Amount:      15005,
		Description: "水泥 P.O 42.5 等2件商品",
		ExpireAt:    1700000000000,
	}).Return(domain.Session{Token: "tok", RedirectURL: "https://pay/tok"}, nil)

	sessions := NewSessions(gateway.NewGateways(gw))
	assert.True(t, sessions.Supports("snap"))
	assert.False(t, sessions.Supports("wechat"))

	sess, err := sessions.Open(context.Background(), order.Order{
		SN:            "SN1",
		Total:         15005,
		PaymentMethod: "snap",
		ExpireAt:      1700000000000,
		Items:         []order.OrderItem{{Name: "水泥 P.O 42.5"}, {Name: "河沙"}},
	})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentSession{Token: "tok", RedirectURL: "https://pay/tok"}, sess)

	_, err = sessions.Open(context.Background(), order.Order{SN: "SN2", PaymentMethod: "wechat"})
	assert.ErrorIs(t, err, ErrUnknownGateway)
}
