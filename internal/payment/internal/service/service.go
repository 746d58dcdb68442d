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
	"time"

	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/event"
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	"github.com/ecodeclub/materia/internal/payment/internal/repository"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownGateway = errors.New("未知支付网关")
	ErrUnknownStatus  = errors.New("无法识别的支付状态")
)

var anomalyCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "materia",
	Name:      "settlement_anomalies_total",
	Help:      "需要人工对账的结算异常数",
}, []string{"gateway", "kind"})

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// HandleNotification 处理网关异步通知, 返回的 error 只用于记录原因, 处理结果以 Outcome 为准
	HandleNotification(ctx context.Context, gateway string, req *http.Request) (domain.Outcome, error)
	ListAnomalies(ctx context.Context, offset, limit int) ([]domain.PaymentEvent, int64, error)
	ListOrderEvents(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error)
}

type service struct {
	gateways *gateway.Gateways
	repo     repository.PaymentEventRepository
	orderSvc order.Service
	tx       gormx.TxRunner
	producer event.AnomalyEventProducer
	now      func() time.Time
	l        *elog.Component
}

func NewService(gateways *gateway.Gateways,
	repo repository.PaymentEventRepository,
	orderSvc order.Service,
	tx gormx.TxRunner,
	producer event.AnomalyEventProducer) Service {
	return &service{
		gateways: gateways,
		repo:     repo,
		orderSvc: orderSvc,
		tx:       tx,
		producer: producer,
		now:      time.Now,
		l:        elog.DefaultLogger,
	}
}

func (s *service) HandleNotification(ctx context.Context, name string, req *http.Request) (domain.Outcome, error) {
	rejected := domain.Outcome{Result: domain.ResultRejected}
	retryable := domain.Outcome{Result: domain.ResultRetryable}

	gw, ok := s.gateways.Get(name)
	if !ok {
		return rejected, fmt.Errorf("%w: %s", ErrUnknownGateway, name)
	}
	n, err := gw.ParseNotification(ctx, req)
	if err != nil {
		if errors.Is(err, gateway.ErrSignatureInvalid) {
			s.l.Error("[security] 支付通知签名校验失败",
				elog.String("gateway", name),
				elog.String("remoteAddr", req.RemoteAddr),
				elog.FieldErr(err))
		}
		return rejected, err
	}

	o, err := s.orderSvc.GetOrder(ctx, n.OrderSN)
	if errors.Is(err, order.ErrOrderNotFound) {
		s.l.Warn("支付通知对应的订单不存在",
			elog.String("gateway", name),
			elog.String("orderSN", n.OrderSN),
			elog.String("transactionID", n.TransactionID))
		return rejected, err
	}
	if err != nil {
		return retryable, err
	}
	if err = gw.Verify(n, domain.Payable{SN: o.SN, Total: o.Total}); err != nil {
		s.l.Error("[security] 支付通知与订单不一致",
			elog.String("gateway", name),
			elog.String("orderSN", o.SN),
			elog.String("transactionID", n.TransactionID),
			elog.Int64("amount", n.Amount),
			elog.Int64("total", o.Total),
			elog.FieldErr(err))
		return rejected, err
	}

	existing, err := s.repo.FindByKey(ctx, n.Gateway, n.TransactionID, n.RawStatus)
	if err == nil {
		return domain.OutcomeOf(existing, true), nil
	}
	if !errors.Is(err, repository.ErrEventNotFound) {
		return retryable, err
	}
	if n.Status == domain.StatusUnknown {
		return rejected, fmt.Errorf("%w: gateway=%s status=%s", ErrUnknownStatus, name, n.RawStatus)
	}

	evt, t, err := s.settle(ctx, n)
	if errors.Is(err, repository.ErrDuplicatedEvent) {
		// 同一条通知被并发投递, 以先提交的为准
		winner, err := s.repo.FindByKey(ctx, n.Gateway, n.TransactionID, n.RawStatus)
		if err != nil {
			return retryable, err
		}
		return domain.OutcomeOf(winner, true), nil
	}
	if err != nil {
		s.l.Error("处理支付通知失败",
			elog.String("gateway", name),
			elog.String("orderSN", n.OrderSN),
			elog.String("transactionID", n.TransactionID),
			elog.FieldErr(err))
		return retryable, err
	}

	if t.SN != "" {
		s.orderSvc.PublishTransitions(ctx, t)
	}
	if evt.Anomaly != domain.AnomalyNone {
		s.reportAnomaly(ctx, evt)
	}
	return domain.OutcomeOf(evt, false), nil
}

// settle 订单状态变更和通知记录在同一个事务里提交
func (s *service) settle(ctx context.Context, n domain.Notification) (domain.PaymentEvent, order.Transition, error) {
	now := s.now().UnixMilli()
	evt := domain.PaymentEvent{
		Gateway:       n.Gateway,
		TransactionID: n.TransactionID,
		RawStatus:     n.RawStatus,
		Status:        n.Status,
		OrderSN:       n.OrderSN,
		Amount:        n.Amount,
		Digest:        n.Digest,
		ProcessedAt:   now,
	}
	actor := "gateway:" + n.Gateway
	var t order.Transition
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		switch n.Status {
		case domain.StatusSettled:
			t, err = s.orderSvc.MarkPaid(ctx, n.OrderSN, now, actor)
			if errors.Is(err, order.ErrInvalidTransition) {
				evt.Anomaly, err = s.anomalyOf(ctx, n, t.From)
				t = order.Transition{}
			}
		case domain.StatusDenied, domain.StatusCancelled:
			t, err = s.orderSvc.MarkPaymentFailed(ctx, n.OrderSN, actor, "支付失败: "+n.RawStatus)
			if errors.Is(err, order.ErrInvalidTransition) {
				t, err = order.Transition{}, nil
			}
		case domain.StatusExpired:
			t, err = s.orderSvc.MarkGatewayExpired(ctx, n.OrderSN, actor)
			if errors.Is(err, order.ErrInvalidTransition) {
				t, err = order.Transition{}, nil
			}
		}
		if err != nil {
			return err
		}
		if t.SN != "" {
			evt.Transition = t.From.String() + "->" + t.To.String()
		}
		evt, err = s.repo.Create(ctx, evt)
		return err
	})
	return evt, t, err
}

// anomalyOf 成功支付没能让订单进入已支付
func (s *service) anomalyOf(ctx context.Context, n domain.Notification, current order.OrderStatus) (domain.Anomaly, error) {
	if !current.Settled() {
		return domain.AnomalyLatePayment, nil
	}
	// 同一笔交易先后上报 capture 和 settlement 不算重复支付
	evts, err := s.repo.ListLatestByOrderSN(ctx, n.OrderSN)
	if err != nil {
		return domain.AnomalyNone, err
	}
	for _, e := range evts {
		if e.Gateway == n.Gateway && e.TransactionID == n.TransactionID && e.Status == domain.StatusSettled {
			return domain.AnomalyNone, nil
		}
	}
	return domain.AnomalyDuplicatePayment, nil
}

func (s *service) reportAnomaly(ctx context.Context, evt domain.PaymentEvent) {
	s.l.Error("[settlement-anomaly] 支付结果需要人工对账",
		elog.String("kind", string(evt.Anomaly)),
		elog.String("gateway", evt.Gateway),
		elog.String("orderSN", evt.OrderSN),
		elog.String("transactionID", evt.TransactionID),
		elog.Int64("amount", evt.Amount))
	anomalyCounter.WithLabelValues(evt.Gateway, string(evt.Anomaly)).Inc()
	if err := s.producer.Produce(ctx, event.NewAnomalyEvent(evt)); err != nil {
		s.l.Error("发送结算异常事件失败",
			elog.String("orderSN", evt.OrderSN),
			elog.FieldErr(err))
	}
}

func (s *service) ListAnomalies(ctx context.Context, offset, limit int) ([]domain.PaymentEvent, int64, error) {
	var (
		eg    errgroup.Group
		evts  []domain.PaymentEvent
		total int64
	)
	eg.Go(func() error {
		var err error
		evts, err = s.repo.ListAnomalies(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountAnomalies(ctx)
		return err
	})
	return evts, total, eg.Wait()
}

func (s *service) ListOrderEvents(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error) {
	return s.repo.ListByOrderSN(ctx, orderSN)
}
