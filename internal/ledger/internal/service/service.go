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

	"github.com/ecodeclub/materia/internal/ledger/internal/domain"
	"github.com/ecodeclub/materia/internal/ledger/internal/repository"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInsufficientStock   = errors.New("库存不足")
	ErrInvalidQuantity     = errors.New("库存变动数量非法")
	ErrNoReservation       = errors.New("单据没有预占库存")
	ErrReservationReleased = errors.New("单据预占的库存已释放")
	ErrSaleNotConfirmed    = errors.New("单据没有确认售出")
	ErrStockNotFound       = repository.ErrStockNotFound
)

// Service 库存台账
// 所有写操作都会加入 ctx 中已有的事务, 调用方可以把库存变动和自身状态变更放在同一个事务里
//
//go:generate mockgen -source=./service.go -package=ledgermocks -destination=../../mocks/ledger.mock.go Service
type Service interface {
	// Reserve 下单预占库存, 任意一行库存不足则整体失败
	Reserve(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error
	// Release 释放预占, 已释放或已确认售出时什么也不做
	Release(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error
	// ConfirmSale 确认售出, 预占时已经扣减, 这里只记录 delta 为 0 的流水
	ConfirmSale(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error
	// RevertSale 已支付订单被取消时归还库存
	RevertSale(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error
	// Restock 退货入库
	Restock(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error
	// Adjust 人工调整, refSN 用于幂等
	Adjust(ctx context.Context, productID, delta int64, refSN, actor, note string) (domain.Movement, error)

	CurrentStock(ctx context.Context, productID int64) (int64, error)
	Audit(ctx context.Context, productID int64) (domain.AuditResult, error)
	ListStocks(ctx context.Context, offset, limit int) ([]domain.Stock, int64, error)
	ListMovements(ctx context.Context, productID int64, offset, limit int) ([]domain.Movement, int64, error)
	ListMovementsByRef(ctx context.Context, ref domain.Ref) ([]domain.Movement, error)
}

// rule 根据单据在该商品上已有的流水决定本次的变动量
// skip 为 true 表示这次调用是重复的, 直接忽略
type rule func(existing domain.Movements, stock domain.Stock, line domain.Line) (delta int64, skip bool, err error)

type service struct {
	repo repository.StockRepository
	tx   gormx.TxRunner
	l    *elog.Component
}

func NewService(repo repository.StockRepository, tx gormx.TxRunner) Service {
	return &service{
		repo: repo,
		tx:   tx,
		l:    elog.DefaultLogger,
	}
}

func (s *service) Reserve(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error {
	return s.post(ctx, ref, domain.KindReservation, lines, actor,
		func(existing domain.Movements, stock domain.Stock, line domain.Line) (int64, bool, error) {
			if existing.Has(domain.KindReservation) {
				return 0, true, nil
			}
			if stock.Quantity < line.Quantity {
				return 0, false, fmt.Errorf("%w: productID=%d, 剩余=%d, 需要=%d",
					ErrInsufficientStock, line.ProductID, stock.Quantity, line.Quantity)
			}
			return -line.Quantity, false, nil
		})
}

func (s *service) Release(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error {
	return s.post(ctx, ref, domain.KindRelease, lines, actor,
		func(existing domain.Movements, _ domain.Stock, _ domain.Line) (int64, bool, error) {
			if existing.Has(domain.KindRelease) || existing.Has(domain.KindSaleConfirmed) {
				return 0, true, nil
			}
			r, ok := existing.Find(domain.KindReservation)
			if !ok {
				// 没有预占过, 也就没有可以释放的
				return 0, true, nil
			}
			// 以台账中预占的数量为准
			return -r.Delta, false, nil
		})
}

func (s *service) ConfirmSale(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error {
	return s.post(ctx, ref, domain.KindSaleConfirmed, lines, actor,
		func(existing domain.Movements, _ domain.Stock, line domain.Line) (int64, bool, error) {
			if existing.Has(domain.KindSaleConfirmed) {
				return 0, true, nil
			}
			if existing.Has(domain.KindRelease) {
				return 0, false, fmt.Errorf("%w: ref=%s, productID=%d", ErrReservationReleased, ref.SN, line.ProductID)
			}
			if !existing.Has(domain.KindReservation) {
				return 0, false, fmt.Errorf("%w: ref=%s, productID=%d", ErrNoReservation, ref.SN, line.ProductID)
			}
			return 0, false, nil
		})
}

func (s *service) RevertSale(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error {
	return s.post(ctx, ref, domain.KindRelease, lines, actor,
		func(existing domain.Movements, _ domain.Stock, line domain.Line) (int64, bool, error) {
			if existing.Has(domain.KindRelease) {
				return 0, true, nil
			}
			if !existing.Has(domain.KindSaleConfirmed) {
				return 0, false, fmt.Errorf("%w: ref=%s, productID=%d", ErrSaleNotConfirmed, ref.SN, line.ProductID)
			}
			r, _ := existing.Find(domain.KindReservation)
			return -r.Delta, false, nil
		})
}

func (s *service) Restock(ctx context.Context, ref domain.Ref, lines []domain.Line, actor string) error {
	return s.post(ctx, ref, domain.KindReturnRestock, lines, actor,
		func(existing domain.Movements, _ domain.Stock, line domain.Line) (int64, bool, error) {
			if existing.Has(domain.KindReturnRestock) {
				return 0, true, nil
			}
			return line.Quantity, false, nil
		})
}

func (s *service) post(ctx context.Context, ref domain.Ref, kind domain.MovementKind,
	lines []domain.Line, actor string, r rule) error {
	lines = domain.NormalizeLines(lines)
	if len(lines) == 0 {
		return fmt.Errorf("%w: 没有任何商品", ErrInvalidQuantity)
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: productID=%d, quantity=%d", ErrInvalidQuantity, l.ProductID, l.Quantity)
		}
	}
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		for _, l := range lines {
			if err := s.postLine(ctx, ref, kind, l, actor, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *service) postLine(ctx context.Context, ref domain.Ref, kind domain.MovementKind,
	line domain.Line, actor string, r rule) error {
	// 先锁库存行, 同一商品上的幂等检查和扣减因此是串行的
	stock, err := s.repo.LockStock(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, ErrStockNotFound) && kind == domain.KindReservation {
			return fmt.Errorf("%w: productID=%d 没有库存记录", ErrInsufficientStock, line.ProductID)
		}
		return err
	}
	existing, err := s.repo.FindMovementsByRef(ctx, ref, line.ProductID)
	if err != nil {
		return err
	}
	delta, skip, err := r(existing, stock, line)
	if err != nil || skip {
		return err
	}
	m := domain.Movement{
		ProductID: line.ProductID,
		Delta:     delta,
		Kind:      kind,
		Ref:       ref,
		PrevStock: stock.Quantity,
		NewStock:  stock.Quantity + delta,
		Actor:     actor,
	}
	if m.NewStock < 0 {
		return fmt.Errorf("%w: productID=%d", ErrInsufficientStock, line.ProductID)
	}
	_, err = s.repo.Append(ctx, stock, m)
	return err
}

func (s *service) Adjust(ctx context.Context, productID, delta int64, refSN, actor, note string) (domain.Movement, error) {
	if delta == 0 {
		return domain.Movement{}, fmt.Errorf("%w: 调整量不能为0", ErrInvalidQuantity)
	}
	if refSN == "" {
		return domain.Movement{}, fmt.Errorf("%w: 调整单号为空", ErrInvalidQuantity)
	}
	ref := domain.ManualRef(refSN)
	var res domain.Movement
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureStock(ctx, productID); err != nil {
			return err
		}
		stock, err := s.repo.LockStock(ctx, productID)
		if err != nil {
			return err
		}
		existing, err := s.repo.FindMovementsByRef(ctx, ref, productID)
		if err != nil {
			return err
		}
		if m, ok := existing.Find(domain.KindManualAdjust); ok {
			res = m
			return nil
		}
		m := domain.Movement{
			ProductID: productID,
			Delta:     delta,
			Kind:      domain.KindManualAdjust,
			Ref:       ref,
			PrevStock: stock.Quantity,
			NewStock:  stock.Quantity + delta,
			Actor:     actor,
			Note:      note,
		}
		if m.NewStock < 0 {
			return fmt.Errorf("%w: productID=%d, 剩余=%d, 调整=%d", ErrInsufficientStock, productID, stock.Quantity, delta)
		}
		res, err = s.repo.Append(ctx, stock, m)
		return err
	})
	if err == nil {
		s.l.Info("人工调整库存",
			elog.Int64("productID", productID),
			elog.Int64("delta", delta),
			elog.String("actor", actor),
			elog.String("refSN", refSN))
	}
	return res, err
}

func (s *service) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	stock, err := s.repo.FindStock(ctx, productID)
	if errors.Is(err, ErrStockNotFound) {
		return 0, nil
	}
	return stock.Quantity, err
}

func (s *service) Audit(ctx context.Context, productID int64) (domain.AuditResult, error) {
	res := domain.AuditResult{ProductID: productID}
	// 在同一个事务里读, 计数和流水来自同一个快照
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		stock, err := s.repo.FindStock(ctx, productID)
		if err != nil && !errors.Is(err, ErrStockNotFound) {
			return err
		}
		res.Counter = stock.Quantity
		res.LedgerSum, err = s.repo.SumDelta(ctx, productID)
		return err
	})
	return res, err
}

func (s *service) ListStocks(ctx context.Context, offset, limit int) ([]domain.Stock, int64, error) {
	var (
		eg    errgroup.Group
		ss    []domain.Stock
		total int64
	)
	eg.Go(func() error {
		var err error
		ss, err = s.repo.ListStocks(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountStocks(ctx)
		return err
	})
	return ss, total, eg.Wait()
}

func (s *service) ListMovements(ctx context.Context, productID int64, offset, limit int) ([]domain.Movement, int64, error) {
	var (
		eg    errgroup.Group
		ms    []domain.Movement
		total int64
	)
	eg.Go(func() error {
		var err error
		ms, err = s.repo.ListMovements(ctx, productID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountMovements(ctx, productID)
		return err
	})
	return ms, total, eg.Wait()
}

func (s *service) ListMovementsByRef(ctx context.Context, ref domain.Ref) ([]domain.Movement, error) {
	return s.repo.ListMovementsByRef(ctx, ref)
}
