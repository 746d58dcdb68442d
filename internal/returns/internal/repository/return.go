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
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
	"github.com/ecodeclub/materia/internal/returns/internal/repository/dao"
)

var (
	ErrReturnNotFound = dao.ErrReturnNotFound
	ErrReturnExists   = dao.ErrReturnExists
)

//go:generate mockgen -source=./return.go -package=repomocks -destination=./mocks/return.mock.go ReturnRepository
type ReturnRepository interface {
	Create(ctx context.Context, r domain.ReturnRequest) (domain.ReturnRequest, error)
	FindBySN(ctx context.Context, sn string) (domain.ReturnRequest, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.ReturnRequest, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.ReturnRequest, error)
	List(ctx context.Context, status domain.ReturnStatus, offset, limit int) ([]domain.ReturnRequest, error)
	Total(ctx context.Context, status domain.ReturnStatus) (int64, error)
	// Transit 返回 false 表示状态或版本号已经变了
	Transit(ctx context.Context, t domain.Transition, approver string, decidedAt int64) (bool, error)
}

type returnRepository struct {
	dao dao.ReturnDAO
}

func NewReturnRepository(d dao.ReturnDAO) ReturnRepository {
	return &returnRepository{dao: d}
}

func (r *returnRepository) Create(ctx context.Context, req domain.ReturnRequest) (domain.ReturnRequest, error) {
	id, err := r.dao.Create(ctx, r.toEntity(req), slice.Map(req.Items, func(idx int, src domain.ReturnItem) dao.ReturnItem {
		return dao.ReturnItem{
			ProductId: src.ProductID,
			ProductSN: src.ProductSN,
			Name:      src.Name,
			Quantity:  src.Quantity,
			UnitPrice: src.UnitPrice,
			Condition: string(src.Condition),
			Reason:    src.Reason,
		}
	}))
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	req.ID = id
	return req, nil
}

func (r *returnRepository) FindBySN(ctx context.Context, sn string) (domain.ReturnRequest, error) {
	res, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	return r.withItems(ctx, res)
}

func (r *returnRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.ReturnRequest, error) {
	res, err := r.dao.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	return r.withItems(ctx, res)
}

func (r *returnRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.ReturnRequest, error) {
	res, err := r.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.ReturnRequest{}, err
	}
	return r.withItems(ctx, res)
}

func (r *returnRepository) List(ctx context.Context, status domain.ReturnStatus, offset, limit int) ([]domain.ReturnRequest, error) {
	rs, err := r.dao.List(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(rs, func(idx int, src dao.ReturnRequest) int64 {
		return src.Id
	})
	items, err := r.dao.FindItemsByReturnIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("批量查找退货项失败: %w", err)
	}
	grouped := mapx.NewMultiBuiltinMap[int64, dao.ReturnItem](len(rs))
	for _, item := range items {
		_ = grouped.Put(item.ReturnId, item)
	}
	return slice.Map(rs, func(idx int, src dao.ReturnRequest) domain.ReturnRequest {
		its, _ := grouped.Get(src.Id)
		return r.toDomain(src, its)
	}), nil
}

func (r *returnRepository) Total(ctx context.Context, status domain.ReturnStatus) (int64, error) {
	return r.dao.Count(ctx, status.ToUint8())
}

func (r *returnRepository) Transit(ctx context.Context, t domain.Transition, approver string, decidedAt int64) (bool, error) {
	u := dao.StatusUpdate{
		ID:           t.ID,
		From:         t.From.ToUint8(),
		To:           t.To.ToUint8(),
		Version:      t.Version,
		Utime:        t.Utime,
		Approver:     approver,
		DecidedAt:    decidedAt,
		RejectReason: t.RejectReason,
		RefundStatus: t.RefundStatus.ToUint8(),
	}
	if t.To == domain.StatusCompleted {
		u.CompletedAt = t.Utime
	}
	return r.dao.UpdateStatus(ctx, u)
}

func (r *returnRepository) withItems(ctx context.Context, req dao.ReturnRequest) (domain.ReturnRequest, error) {
	items, err := r.dao.FindItemsByReturnID(ctx, req.Id)
	if err != nil {
		return domain.ReturnRequest{}, fmt.Errorf("通过退货单ID查找退货项失败: %w", err)
	}
	return r.toDomain(req, items), nil
}

func (r *returnRepository) toEntity(req domain.ReturnRequest) dao.ReturnRequest {
	return dao.ReturnRequest{
		Id:           req.ID,
		SN:           req.SN,
		OrderSn:      req.OrderSN,
		BuyerId:      req.BuyerID,
		Reason:       req.Reason,
		Amount:       req.Amount,
		Status:       req.Status.ToUint8(),
		Approver:     req.Approver,
		DecidedAt:    req.DecidedAt,
		RejectReason: req.RejectReason,
		RefundStatus: req.RefundStatus.ToUint8(),
		CompletedAt:  req.CompletedAt,
		Version:      req.Version,
	}
}

func (r *returnRepository) toDomain(req dao.ReturnRequest, items []dao.ReturnItem) domain.ReturnRequest {
	return domain.ReturnRequest{
		ID:           req.Id,
		SN:           req.SN,
		OrderSN:      req.OrderSn,
		BuyerID:      req.BuyerId,
		Reason:       req.Reason,
		Amount:       req.Amount,
		Status:       domain.ReturnStatus(req.Status),
		Approver:     req.Approver,
		DecidedAt:    req.DecidedAt,
		RejectReason: req.RejectReason,
		RefundStatus: domain.RefundStatus(req.RefundStatus),
		CompletedAt:  req.CompletedAt,
		Version:      req.Version,
		Items: slice.Map(items, func(idx int, src dao.ReturnItem) domain.ReturnItem {
			return domain.ReturnItem{
				ProductID: src.ProductId,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				Condition: domain.Condition(src.Condition),
				Reason:    src.Reason,
			}
		}),
		Ctime: req.Ctime,
		Utime: req.Utime,
	}
}
