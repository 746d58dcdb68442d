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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/ledger/internal/domain"
	"github.com/ecodeclub/materia/internal/ledger/internal/repository/dao"
)

var (
	ErrStockNotFound             = dao.ErrStockNotFound
	ErrDuplicatedMovement        = dao.ErrDuplicatedMovement
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./stock.go -package=repomocks -destination=./mocks/stock.mock.go StockRepository
type StockRepository interface {
	LockStock(ctx context.Context, productID int64) (domain.Stock, error)
	EnsureStock(ctx context.Context, productID int64) error
	FindStock(ctx context.Context, productID int64) (domain.Stock, error)
	ListStocks(ctx context.Context, offset, limit int) ([]domain.Stock, error)
	CountStocks(ctx context.Context) (int64, error)
	Append(ctx context.Context, s domain.Stock, mv domain.Movement) (domain.Movement, error)
	FindMovementsByRef(ctx context.Context, ref domain.Ref, productID int64) (domain.Movements, error)
	ListMovementsByRef(ctx context.Context, ref domain.Ref) ([]domain.Movement, error)
	ListMovements(ctx context.Context, productID int64, offset, limit int) ([]domain.Movement, error)
	CountMovements(ctx context.Context, productID int64) (int64, error)
	SumDelta(ctx context.Context, productID int64) (int64, error)
}

type stockRepository struct {
	dao dao.StockDAO
}

func NewStockRepository(d dao.StockDAO) StockRepository {
	return &stockRepository{dao: d}
}

func (r *stockRepository) LockStock(ctx context.Context, productID int64) (domain.Stock, error) {
	s, err := r.dao.LockStock(ctx, productID)
	return r.toStockDomain(s), err
}

func (r *stockRepository) EnsureStock(ctx context.Context, productID int64) error {
	return r.dao.EnsureStock(ctx, productID)
}

func (r *stockRepository) FindStock(ctx context.Context, productID int64) (domain.Stock, error) {
	s, err := r.dao.FindStock(ctx, productID)
	return r.toStockDomain(s), err
}

func (r *stockRepository) ListStocks(ctx context.Context, offset, limit int) ([]domain.Stock, error) {
	ss, err := r.dao.ListStocks(ctx, offset, limit)
	return slice.Map(ss, func(idx int, src dao.Stock) domain.Stock {
		return r.toStockDomain(src)
	}), err
}

func (r *stockRepository) CountStocks(ctx context.Context) (int64, error) {
	return r.dao.CountStocks(ctx)
}

func (r *stockRepository) Append(ctx context.Context, s domain.Stock, m domain.Movement) (domain.Movement, error) {
	id, err := r.dao.Append(ctx, dao.Stock{
		ProductId: s.ProductID,
		Quantity:  s.Quantity,
		Version:   s.Version,
	}, r.toMovementEntity(m))
	m.ID = id
	return m, err
}

func (r *stockRepository) FindMovementsByRef(ctx context.Context, ref domain.Ref, productID int64) (domain.Movements, error) {
	ms, err := r.dao.FindMovementsByRef(ctx, ref.Type.ToUint8(), ref.SN, productID)
	return slice.Map(ms, func(idx int, src dao.StockMovement) domain.Movement {
		return r.toMovementDomain(src)
	}), err
}

func (r *stockRepository) ListMovementsByRef(ctx context.Context, ref domain.Ref) ([]domain.Movement, error) {
	ms, err := r.dao.ListMovementsByRef(ctx, ref.Type.ToUint8(), ref.SN)
	return slice.Map(ms, func(idx int, src dao.StockMovement) domain.Movement {
		return r.toMovementDomain(src)
	}), err
}

func (r *stockRepository) ListMovements(ctx context.Context, productID int64, offset, limit int) ([]domain.Movement, error) {
	ms, err := r.dao.ListMovements(ctx, productID, offset, limit)
	return slice.Map(ms, func(idx int, src dao.StockMovement) domain.Movement {
		return r.toMovementDomain(src)
	}), err
}

func (r *stockRepository) CountMovements(ctx context.Context, productID int64) (int64, error) {
	return r.dao.CountMovements(ctx, productID)
}

func (r *stockRepository) SumDelta(ctx context.Context, productID int64) (int64, error) {
	return r.dao.SumDelta(ctx, productID)
}

func (r *stockRepository) toStockDomain(s dao.Stock) domain.Stock {
	return domain.Stock{
		ProductID: s.ProductId,
		Quantity:  s.Quantity,
		Version:   s.Version,
		Utime:     s.Utime,
	}
}

func (r *stockRepository) toMovementEntity(m domain.Movement) dao.StockMovement {
	return dao.StockMovement{
		RefType:   m.Ref.Type.ToUint8(),
		RefSN:     m.Ref.SN,
		ProductId: m.ProductID,
		Kind:      m.Kind.ToUint8(),
		Delta:     m.Delta,
		PrevStock: m.PrevStock,
		NewStock:  m.NewStock,
		Actor:     m.Actor,
		Note:      m.Note,
	}
}

func (r *stockRepository) toMovementDomain(m dao.StockMovement) domain.Movement {
	return domain.Movement{
		ID:        m.Id,
		ProductID: m.ProductId,
		Delta:     m.Delta,
		Kind:      domain.MovementKind(m.Kind),
		Ref:       domain.Ref{Type: domain.RefType(m.RefType), SN: m.RefSN},
		PrevStock: m.PrevStock,
		NewStock:  m.NewStock,
		Actor:     m.Actor,
		Note:      m.Note,
		Ctime:     m.Ctime,
	}
}
