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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ecodeclub/materia/internal/pkg/snowflake"
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
	"github.com/ecodeclub/materia/internal/returns/internal/event"
	"github.com/ecodeclub/materia/internal/returns/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidReturn      = errors.New("退货申请参数非法")
	ErrOrderNotReturnable = errors.New("订单未完成, 不能申请退货")
	ErrApprovalDenied     = errors.New("退货金额超出审批权限")
	ErrReturnExists       = repository.ErrReturnExists
	ErrReturnNotFound     = repository.ErrReturnNotFound
	ErrInvalidTransition  = domain.ErrInvalidTransition
)

const snPrefix = "R"

//go:generate mockgen -source=./service.go -package=returnsmocks -destination=../../mocks/returns.mock.go Service
type Service interface {
	// RequestReturn 只能整单退货, Items 必须和订单的每一行数量一致
	RequestReturn(ctx context.Context, r domain.ReturnRequest) (domain.ReturnRequest, error)
	DecideReturn(ctx context.Context, sn string, decision domain.Decision, approver domain.Approver, reason string) (domain.ReturnRequest, error)
	// CompleteReturn 商品入库并记下应退款, 退款由外部系统执行
	CompleteReturn(ctx context.Context, sn string, actor string) (domain.ReturnRequest, error)
	GetReturn(ctx context.Context, sn string) (domain.ReturnRequest, error)
	GetBuyerReturn(ctx context.Context, sn string, buyerID int64) (domain.ReturnRequest, error)
	// ListReturns status 为 0 时不过滤
	ListReturns(ctx context.Context, status domain.ReturnStatus, offset, limit int) ([]domain.ReturnRequest, int64, error)
}

type service struct {
	repo            repository.ReturnRepository
	tx              gormx.TxRunner
	orderSvc        order.Service
	ledgerSvc       ledger.Service
	policy          ApprovalPolicy
	snGenerator     snowflake.Generator
	producer        event.ReturnEventProducer
	reasonMinLength int
	l               *elog.Component
}

func NewService(repo repository.ReturnRepository,
	tx gormx.TxRunner,
	orderSvc order.Service,
	ledgerSvc ledger.Service,
	policy ApprovalPolicy,
	snGenerator snowflake.Generator,
	producer event.ReturnEventProducer,
	reasonMinLength int) Service {
	return &service{
		repo:            repo,
		tx:              tx,
		orderSvc:        orderSvc,
		ledgerSvc:       ledgerSvc,
		policy:          policy,
		snGenerator:     snGenerator,
		producer:        producer,
		reasonMinLength: reasonMinLength,
		l:               elog.DefaultLogger,
	}
}

func (s *service) RequestReturn(ctx context.Context, r domain.ReturnRequest) (domain.ReturnRequest, error) {
	if err := s.validate(&r); err != nil {
		return domain.ReturnRequest{}, err
	}
	o, err := s.orderSvc.GetBuyerOrder(ctx, r.OrderSN, r.BuyerID)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	if o.Status != order.StatusCompleted {
		return domain.ReturnRequest{}, fmt.Errorf("%w: 订单 %s 状态 %s", ErrOrderNotReturnable, o.SN, o.Status)
	}
	items, err := s.matchOrder(o, r.Items)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	id, err := s.snGenerator.Generate(snowflake.BizReturn)
	if err != nil {
		return domain.ReturnRequest{}, fmt.Errorf("生成退货单号失败: %w", err)
	}

	now := time.Now().UnixMilli()
	r.SN = id.SN(snPrefix)
	r.Items = items
	r.Amount = 0
	for _, item := range items {
		r.Amount += item.Amount()
	}
	r.Status = domain.StatusPending
	r.RefundStatus = domain.RefundStatusNone
	r.Version = 1
	r.Ctime, r.Utime = now, now
	r, err = s.repo.Create(ctx, r)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	s.publish(ctx, r.Amount, domain.Transition{
		ID:           r.ID,
		SN:           r.SN,
		OrderSN:      r.OrderSN,
		BuyerID:      r.BuyerID,
		To:           domain.StatusPending,
		Version:      r.Version,
		Actor:        fmt.Sprintf("buyer:%d", r.BuyerID),
		RefundStatus: r.RefundStatus,
		Utime:        now,
	})
	return r, nil
}

// validate 每一行都要有合法的商品状况和足够长的原因, 行上没写原因就用整单的原因
func (s *service) validate(r *domain.ReturnRequest) error {
	if r.BuyerID <= 0 || r.OrderSN == "" {
		return fmt.Errorf("%w: 买家或订单号为空", ErrInvalidReturn)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: 没有退货商品", ErrInvalidReturn)
	}
	if !domain.ReasonLongEnough(r.Reason, s.reasonMinLength) {
		return fmt.Errorf("%w: 退货原因至少 %d 个字", ErrInvalidReturn, s.reasonMinLength)
	}
	for i := range r.Items {
		item := &r.Items[i]
		if !item.Condition.Valid() {
			return fmt.Errorf("%w: 商品 %d 的状况 %q 非法", ErrInvalidReturn, item.ProductID, item.Condition)
		}
		if item.Reason == "" {
			item.Reason = r.Reason
		}
		if !domain.ReasonLongEnough(item.Reason, s.reasonMinLength) {
			return fmt.Errorf("%w: 商品 %d 的退货原因至少 %d 个字", ErrInvalidReturn, item.ProductID, s.reasonMinLength)
		}
	}
	return nil
}

// matchOrder 退货行必须和订单行一一对应且数量相同, 单价用下单时的快照
func (s *service) matchOrder(o order.Order, items []domain.ReturnItem) ([]domain.ReturnItem, error) {
	if len(items) != len(o.Items) {
		return nil, fmt.Errorf("%w: 只支持整单退货", ErrInvalidReturn)
	}
	lines := make(map[int64]order.OrderItem, len(o.Items))
	for _, item := range o.Items {
		lines[item.ProductID] = item
	}
	res := make([]domain.ReturnItem, 0, len(items))
	for _, item := range items {
		line, ok := lines[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: 商品 %d 不在订单里或重复", ErrInvalidReturn, item.ProductID)
		}
		if item.Quantity != line.Quantity {
			return nil, fmt.Errorf("%w: 只支持整单退货, 商品 %d 应退 %d 件", ErrInvalidReturn, item.ProductID, line.Quantity)
		}
		delete(lines, item.ProductID)
		item.ProductSN = line.ProductSN
		item.Name = line.Name
		item.UnitPrice = line.UnitPrice
		res = append(res, item)
	}
	return res, nil
}

func (s *service) DecideReturn(ctx context.Context, sn string, decision domain.Decision,
	approver domain.Approver, reason string) (domain.ReturnRequest, error) {
	r, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	actor := fmt.Sprintf("staff:%d", approver.ID)
	now := time.Now().UnixMilli()
	t := s.transition(r, actor, now)
	switch decision {
	case domain.DecisionApprove:
		t.To = domain.StatusApproved
		if r.Status == domain.StatusPending && !s.policy.CanApprove(approver, r.Amount) {
			return domain.ReturnRequest{}, fmt.Errorf("%w: 退货单 %s 金额 %d", ErrApprovalDenied, r.SN, r.Amount)
		}
	case domain.DecisionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return domain.ReturnRequest{}, fmt.Errorf("%w: 拒绝原因不能为空", ErrInvalidReturn)
		}
		t.To = domain.StatusRejected
		t.RejectReason = reason
	default:
		return domain.ReturnRequest{}, fmt.Errorf("%w: 未知的审批结果 %d", ErrInvalidReturn, decision)
	}
	if err = s.transit(ctx, t, actor, now); err != nil {
		return domain.ReturnRequest{}, err
	}
	s.publish(ctx, r.Amount, t)
	r.Status = t.To
	r.Approver = actor
	r.DecidedAt = now
	r.RejectReason = t.RejectReason
	r.Version++
	r.Utime = now
	return r, nil
}

func (s *service) CompleteReturn(ctx context.Context, sn string, actor string) (domain.ReturnRequest, error) {
	var (
		r   domain.ReturnRequest
		t   domain.Transition
		now = time.Now().UnixMilli()
	)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		r, err = s.repo.FindBySN(ctx, sn)
		if err != nil {
			return err
		}
		t = s.transition(r, actor, now)
		t.To = domain.StatusCompleted
		t.RefundStatus = domain.RefundStatusOwed
		if err = s.transit(ctx, t, "", 0); err != nil {
			return err
		}
		lines := slice.Map(r.Items, func(idx int, src domain.ReturnItem) ledger.Line {
			return ledger.Line{ProductID: src.ProductID, Quantity: src.Quantity}
		})
		return s.ledgerSvc.Restock(ctx, ledger.ReturnRef(r.SN), lines, actor)
	})
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	s.publish(ctx, r.Amount, t)
	r.Status = t.To
	r.RefundStatus = t.RefundStatus
	r.CompletedAt = now
	r.Version++
	r.Utime = now
	return r, nil
}

func (s *service) transition(r domain.ReturnRequest, actor string, now int64) domain.Transition {
	return domain.Transition{
		ID:           r.ID,
		SN:           r.SN,
		OrderSN:      r.OrderSN,
		BuyerID:      r.BuyerID,
		From:         r.Status,
		Version:      r.Version,
		Actor:        actor,
		RefundStatus: r.RefundStatus,
		Utime:        now,
	}
}

// transit 先按状态图检查, 再按状态和版本号做 CAS, 输掉竞争也是 ErrInvalidTransition
func (s *service) transit(ctx context.Context, t domain.Transition, approver string, decidedAt int64) error {
	if !t.From.CanTransitTo(t.To) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.From, t.To)
	}
	ok, err := s.repo.Transit(ctx, t, approver, decidedAt)
	if err != nil {
		return fmt.Errorf("更新退货单状态失败: %w", err)
	}
	if !ok {
		s.l.Debug("退货单状态变更竞争失败",
			elog.String("sn", t.SN),
			elog.String("from", t.From.String()),
			elog.String("to", t.To.String()))
		return fmt.Errorf("%w: 退货单 %s 状态已变更", ErrInvalidTransition, t.SN)
	}
	return nil
}

func (s *service) publish(ctx context.Context, amount int64, t domain.Transition) {
	err := s.producer.Produce(ctx, event.NewReturnEvent(t, amount))
	if err != nil {
		s.l.Error("发送退货单状态变更事件失败",
			elog.String("sn", t.SN),
			elog.String("to", t.To.String()),
			elog.FieldErr(err))
	}
}

func (s *service) GetReturn(ctx context.Context, sn string) (domain.ReturnRequest, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) GetBuyerReturn(ctx context.Context, sn string, buyerID int64) (domain.ReturnRequest, error) {
	return s.repo.FindBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListReturns(ctx context.Context, status domain.ReturnStatus, offset, limit int) ([]domain.ReturnRequest, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.ReturnRequest
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, status)
		return err
	})
	return rs, total, eg.Wait()
}
