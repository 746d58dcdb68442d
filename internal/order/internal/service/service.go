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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/event"
	"github.com/ecodeclub/materia/internal/order/internal/repository"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ecodeclub/materia/internal/pkg/sequencenumber"
	"github.com/ecodeclub/materia/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOrder         = errors.New("订单参数非法")
	ErrProductUnavailable   = errors.New("商品不存在或已下架")
	ErrPaymentSessionFailed = errors.New("支付会话创建失败")
	ErrOrderNotFound        = repository.ErrOrderNotFound
	ErrInvalidTransition    = domain.ErrInvalidTransition
)

const (
	ActorSystemExpiry  = "system:expiry"
	ActorSystemPayment = "system:payment"
)

// PaymentSessions 由支付模块实现, 下单后为订单打开支付会话
type PaymentSessions interface {
	Supports(method string) bool
	Open(ctx context.Context, order domain.Order) (domain.PaymentSession, error)
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, sn string) (domain.Order, error)
	GetBuyerOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	// ListOrders status 为 0 时不过滤
	ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	AdvanceFulfillment(ctx context.Context, sn string, next domain.OrderStatus, actor string) (domain.Order, error)
	// CancelBuyerOrder 买家只能取消自己待支付的订单
	CancelBuyerOrder(ctx context.Context, sn string, buyerID int64, reason string) error
	// CancelOrder 员工可以取消待支付和已支付的订单
	CancelOrder(ctx context.Context, sn string, actor, reason string) error

	// MarkPaid 以下三个方法供支付模块在自己的事务里调用, 不发送事件
	// 失败时返回 ErrInvalidTransition, Transition.From 是订单当前的状态
	MarkPaid(ctx context.Context, sn string, now int64, actor string) (domain.Transition, error)
	MarkPaymentFailed(ctx context.Context, sn string, actor, reason string) (domain.Transition, error)
	MarkGatewayExpired(ctx context.Context, sn string, actor string) (domain.Transition, error)
	// PublishTransitions 事务提交之后调用
	PublishTransitions(ctx context.Context, ts ...domain.Transition)

	ListExpiredOrders(ctx context.Context, now int64, limit int) ([]domain.Order, error)
	ExpireOrder(ctx context.Context, sn string, now int64) error
}

type service struct {
	repo          repository.OrderRepository
	tx            gormx.TxRunner
	ledgerSvc     ledger.Service
	catalog       product.Service
	shipping      ShippingQuoter
	sessions      PaymentSessions
	snGenerator   *sequencenumber.Generator
	producer      event.OrderEventProducer
	paymentWindow time.Duration
	l             *elog.Component
}

func NewService(repo repository.OrderRepository,
	tx gormx.TxRunner,
	ledgerSvc ledger.Service,
	catalog product.Service,
	shipping ShippingQuoter,
	sessions PaymentSessions,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer,
	paymentWindow time.Duration) Service {
	return &service{
		repo:          repo,
		tx:            tx,
		ledgerSvc:     ledgerSvc,
		catalog:       catalog,
		shipping:      shipping,
		sessions:      sessions,
		snGenerator:   snGenerator,
		producer:      producer,
		paymentWindow: paymentWindow,
		l:             elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := s.validate(order); err != nil {
		return domain.Order{}, err
	}
	items, err := s.snapshotItems(ctx, order.Items)
	if err != nil {
		return domain.Order{}, err
	}
	shippingCost, err := s.shipping.Quote(order.ShippingOption)
	if err != nil {
		return domain.Order{}, err
	}
	sn, err := s.snGenerator.Generate(order.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	now := time.Now().UnixMilli()
	order.SN = sn
	order.Items = items
	order.ShippingCost = shippingCost
	order.Subtotal = order.SubtotalOfItems()
	order.Total = order.Subtotal + shippingCost
	order.Status = domain.StatusAwaitingPayment
	order.Version = 1
	order.ExpireAt = now + s.paymentWindow.Milliseconds()
	order.Ctime, order.Utime = now, now

	actor := fmt.Sprintf("buyer:%d", order.BuyerID)
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err1 error
		order, err1 = s.repo.CreateOrder(ctx, order)
		if err1 != nil {
			return fmt.Errorf("创建订单失败: %w", err1)
		}
		return s.ledgerSvc.Reserve(ctx, ledger.OrderRef(order.SN), s.lines(order), actor)
	})
	if err != nil {
		return domain.Order{}, err
	}

	session, err := s.sessions.Open(ctx, order)
	if err != nil {
		s.l.Error("打开支付会话失败, 取消订单",
			elog.String("sn", order.SN),
			elog.String("method", order.PaymentMethod),
			elog.FieldErr(err))
		s.abandon(ctx, order)
		return domain.Order{}, fmt.Errorf("%w: %w", ErrPaymentSessionFailed, err)
	}
	if err = s.repo.UpdatePaymentSession(ctx, order.ID, session); err != nil {
		// 买家拿不到支付链接, 订单不能继续占着库存
		s.l.Error("保存支付会话失败, 取消订单", elog.String("sn", order.SN), elog.FieldErr(err))
		s.abandon(ctx, order)
		return domain.Order{}, fmt.Errorf("%w: 保存支付会话失败: %w", ErrPaymentSessionFailed, err)
	}
	order.Payment = session
	s.PublishTransitions(ctx, domain.Transition{
		OrderID: order.ID,
		SN:      order.SN,
		BuyerID: order.BuyerID,
		To:      domain.StatusAwaitingPayment,
		Version: order.Version,
		Actor:   actor,
		Utime:   now,
	})
	return order, nil
}

// abandon 支付会话打不开或者保存失败的订单直接取消并释放库存
func (s *service) abandon(ctx context.Context, order domain.Order) {
	var t domain.Transition
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.transit(ctx, order, domain.StatusCancelled, ActorSystemPayment,
			ErrPaymentSessionFailed.Error(), domain.DeadlineAny, time.Now().UnixMilli())
		if err != nil {
			return err
		}
		return s.ledgerSvc.Release(ctx, ledger.OrderRef(order.SN), s.lines(order), ActorSystemPayment)
	})
	if err != nil {
		// 取消失败的订单留给过期任务处理
		s.l.Error("取消支付会话失败的订单失败", elog.String("sn", order.SN), elog.FieldErr(err))
		return
	}
	s.PublishTransitions(ctx, t)
}

func (s *service) validate(order domain.Order) error {
	if order.BuyerID <= 0 {
		return fmt.Errorf("%w: 买家ID非法", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: 订单没有商品", ErrInvalidOrder)
	}
	for _, item := range order.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return fmt.Errorf("%w: 商品 %d 数量 %d 非法", ErrInvalidOrder, item.ProductID, item.Quantity)
		}
	}
	if err := order.Address.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	if !s.sessions.Supports(order.PaymentMethod) {
		return fmt.Errorf("%w: 不支持的支付方式 %s", ErrInvalidOrder, order.PaymentMethod)
	}
	return nil
}

// snapshotItems 合并同一商品并从商品目录里快照名称、单位和单价
func (s *service) snapshotItems(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	merged := make([]domain.OrderItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	ids := slice.Map(merged, func(idx int, src domain.OrderItem) int64 {
		return src.ProductID
	})
	products, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查找商品失败: %w", err)
	}
	found := make(map[int64]product.Product, len(products))
	for _, p := range products {
		found[p.ID] = p
	}
	for i := range merged {
		p, ok := found[merged[i].ProductID]
		if !ok || !p.OnShelf() {
			return nil, fmt.Errorf("%w: 商品ID %d", ErrProductUnavailable, merged[i].ProductID)
		}
		merged[i].ProductSN = p.SN
		merged[i].Name = p.Name
		merged[i].Unit = p.Unit
		merged[i].UnitPrice = p.Price
	}
	return merged, nil
}

func (s *service) GetOrder(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) GetBuyerOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByBuyerID(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) AdvanceFulfillment(ctx context.Context, sn string, next domain.OrderStatus, actor string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	expected, ok := order.Status.NextFulfillment()
	if !ok || expected != next {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}
	t, err := s.transit(ctx, order, next, actor, "", domain.DeadlineAny, time.Now().UnixMilli())
	if err != nil {
		return domain.Order{}, err
	}
	s.PublishTransitions(ctx, t)
	order.Status = t.To
	order.Version = t.Version + 1
	order.Utime = t.Utime
	return order, nil
}

func (s *service) CancelBuyerOrder(ctx context.Context, sn string, buyerID int64, reason string) error {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusAwaitingPayment {
		return fmt.Errorf("%w: 买家不能取消 %s 状态的订单", ErrInvalidTransition, order.Status)
	}
	return s.cancel(ctx, order, fmt.Sprintf("buyer:%d", buyerID), reason)
}

func (s *service) CancelOrder(ctx context.Context, sn string, actor, reason string) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	return s.cancel(ctx, order, actor, reason)
}

func (s *service) cancel(ctx context.Context, order domain.Order, actor, reason string) error {
	var t domain.Transition
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.transit(ctx, order, domain.StatusCancelled, actor, reason, domain.DeadlineAny, time.Now().UnixMilli())
		if err != nil {
			return err
		}
		ref, lines := ledger.OrderRef(order.SN), s.lines(order)
		// 已支付的订单预占已经确认售出, 要把库存退回去
		if order.Status == domain.StatusPaid {
			return s.ledgerSvc.RevertSale(ctx, ref, lines, actor)
		}
		return s.ledgerSvc.Release(ctx, ref, lines, actor)
	})
	if err != nil {
		return err
	}
	s.PublishTransitions(ctx, t)
	return nil
}

func (s *service) MarkPaid(ctx context.Context, sn string, now int64, actor string) (domain.Transition, error) {
	var t domain.Transition
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindOrderBySN(ctx, sn)
		if err != nil {
			return err
		}
		t, err = s.transit(ctx, order, domain.StatusPaid, actor, "", domain.DeadlineNotReached, now)
		if err != nil {
			return err
		}
		return s.ledgerSvc.ConfirmSale(ctx, ledger.OrderRef(order.SN), s.lines(order), actor)
	})
	return t, err
}

func (s *service) MarkPaymentFailed(ctx context.Context, sn string, actor, reason string) (domain.Transition, error) {
	return s.closeUnpaid(ctx, sn, domain.StatusCancelled, actor, reason, domain.DeadlineAny, time.Now().UnixMilli())
}

// MarkGatewayExpired 只有过了截止时间才能进入 expired,
// 截止时间之前渠道会话就失效的订单按支付失败取消
func (s *service) MarkGatewayExpired(ctx context.Context, sn string, actor string) (domain.Transition, error) {
	now := time.Now().UnixMilli()
	t, err := s.closeUnpaid(ctx, sn, domain.StatusExpired, actor, "支付渠道通知已过期", domain.DeadlinePassed, now)
	if errors.Is(err, ErrInvalidTransition) && t.From == domain.StatusAwaitingPayment {
		return s.closeUnpaid(ctx, sn, domain.StatusCancelled, actor, "支付渠道会话提前失效", domain.DeadlineAny, now)
	}
	return t, err
}

func (s *service) ExpireOrder(ctx context.Context, sn string, now int64) error {
	t, err := s.closeUnpaid(ctx, sn, domain.StatusExpired, ActorSystemExpiry, "", domain.DeadlinePassed, now)
	if err != nil {
		return err
	}
	s.PublishTransitions(ctx, t)
	return nil
}

// closeUnpaid 待支付订单关闭, 同一个事务里释放预占的库存
func (s *service) closeUnpaid(ctx context.Context, sn string, to domain.OrderStatus,
	actor, reason string, cond domain.DeadlineCond, now int64) (domain.Transition, error) {
	var t domain.Transition
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindOrderBySN(ctx, sn)
		if err != nil {
			return err
		}
		if order.Status != domain.StatusAwaitingPayment {
			t = domain.Transition{OrderID: order.ID, SN: order.SN, BuyerID: order.BuyerID, From: order.Status, To: to}
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
		}
		t, err = s.transit(ctx, order, to, actor, reason, cond, now)
		if err != nil {
			return err
		}
		return s.ledgerSvc.Release(ctx, ledger.OrderRef(order.SN), s.lines(order), actor)
	})
	return t, err
}

// transit 按版本号做 CAS, 输掉竞争时返回 ErrInvalidTransition 且 From 为重新读到的状态
func (s *service) transit(ctx context.Context, order domain.Order, to domain.OrderStatus,
	actor, reason string, cond domain.DeadlineCond, now int64) (domain.Transition, error) {
	t := domain.Transition{
		OrderID:  order.ID,
		SN:       order.SN,
		BuyerID:  order.BuyerID,
		From:     order.Status,
		To:       to,
		Version:  order.Version,
		Actor:    actor,
		Reason:   reason,
		Deadline: cond,
		Utime:    now,
	}
	if !order.Status.CanTransitTo(to) {
		return t, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}
	ok, err := s.repo.Transit(ctx, t)
	if err != nil {
		return t, fmt.Errorf("更新订单状态失败: %w", err)
	}
	if ok {
		return t, nil
	}
	// 状态已被并发修改, 或者截止时间条件不满足
	// 普通 SELECT 在事务里只能读到快照, 这里必须用加锁读拿赢家提交后的状态
	latest, err := s.repo.FindLatestStatus(ctx, order.SN)
	if err == nil {
		t.From = latest
	}
	s.l.Debug("订单状态变更竞争失败",
		elog.String("sn", order.SN),
		elog.String("from", order.Status.String()),
		elog.String("to", to.String()),
		elog.String("current", t.From.String()))
	return t, fmt.Errorf("%w: 订单 %s 状态已变更", ErrInvalidTransition, order.SN)
}

func (s *service) PublishTransitions(ctx context.Context, ts ...domain.Transition) {
	for _, t := range ts {
		if t.SN == "" {
			continue
		}
		err := s.producer.Produce(ctx, event.NewOrderEvent(t))
		if err != nil {
			s.l.Error("发送订单状态变更事件失败",
				elog.String("sn", t.SN),
				elog.String("to", t.To.String()),
				elog.FieldErr(err))
		}
	}
}

func (s *service) ListExpiredOrders(ctx context.Context, now int64, limit int) ([]domain.Order, error) {
	return s.repo.ListExpiredOrders(ctx, now, limit)
}

func (s *service) lines(order domain.Order) []ledger.Line {
	return slice.Map(order.Items, func(idx int, src domain.OrderItem) ledger.Line {
		return ledger.Line{ProductID: src.ProductID, Quantity: src.Quantity}
	})
}
