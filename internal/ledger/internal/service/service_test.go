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

	"github.com/ecodeclub/materia/internal/ledger/internal/domain"
	"github.com/ecodeclub/materia/internal/ledger/internal/repository"
	repomocks "github.com/ecodeclub/materia/internal/ledger/internal/repository/mocks"
	gormxmocks "github.com/ecodeclub/materia/internal/pkg/gormx/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTxRunner(ctrl *gomock.Controller) *gormxmocks.MockTxRunner {
	tx := gormxmocks.NewMockTxRunner(ctrl)
	tx.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}

func TestService_Post(t *testing.T) {
	ref := domain.OrderRef("order-1")
	reservation := domain.Movement{ProductID: 100, Delta: -2, Kind: domain.KindReservation, Ref: ref}
	confirmed := domain.Movement{ProductID: 100, Delta: 0, Kind: domain.KindSaleConfirmed, Ref: ref}
	released := domain.Movement{ProductID: 100, Delta: 2, Kind: domain.KindRelease, Ref: ref}

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.StockRepository
		call    func(svc Service) error
		wantErr error
	}{
		{
			name: "预占成功",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				stock := domain.Stock{ProductID: 100, Quantity: 5, Version: 1}
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				repo.EXPECT().Append(gomock.Any(), stock, domain.Movement{
					ProductID: 100, Delta: -2, Kind: domain.KindReservation, Ref: ref,
					PrevStock: 5, NewStock: 3, Actor: "buyer:1",
				}).Return(domain.Movement{ID: 1}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "buyer:1")
			},
		},
		{
			name: "预占多个商品按商品ID加锁",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				s1 := domain.Stock{ProductID: 1, Quantity: 5, Version: 1}
				s2 := domain.Stock{ProductID: 2, Quantity: 5, Version: 1}
				gomock.InOrder(
					repo.EXPECT().LockStock(gomock.Any(), int64(1)).Return(s1, nil),
					repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(1)).Return(nil, nil),
					repo.EXPECT().Append(gomock.Any(), s1, gomock.Any()).Return(domain.Movement{ID: 1}, nil),
					repo.EXPECT().LockStock(gomock.Any(), int64(2)).Return(s2, nil),
					repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(2)).Return(nil, nil),
					repo.EXPECT().Append(gomock.Any(), s2, gomock.Any()).Return(domain.Movement{ID: 2}, nil),
				)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{
					{ProductID: 2, Quantity: 1},
					{ProductID: 1, Quantity: 1},
				}, "buyer:1")
			},
		},
		{
			name: "库存不足",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 1}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "buyer:1")
			},
			wantErr: ErrInsufficientStock,
		},
		{
			name: "没有库存记录视为库存不足",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{}, repository.ErrStockNotFound)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 1}}, "buyer:1")
			},
			wantErr: ErrInsufficientStock,
		},
		{
			name: "重复预占被忽略",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 3}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "buyer:1")
			},
		},
		{
			name: "数量非法",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				return repomocks.NewMockStockRepository(ctrl)
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 0}}, "buyer:1")
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "释放按预占数量归还",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				stock := domain.Stock{ProductID: 100, Quantity: 3, Version: 2}
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation}, nil)
				repo.EXPECT().Append(gomock.Any(), stock, domain.Movement{
					ProductID: 100, Delta: 2, Kind: domain.KindRelease, Ref: ref,
					PrevStock: 3, NewStock: 5, Actor: "system:expiry",
				}).Return(domain.Movement{ID: 2}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Release(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "system:expiry")
			},
		},
		{
			name: "已确认售出不再释放",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 3}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation, confirmed}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Release(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "system:expiry")
			},
		},
		{
			name: "重复释放被忽略",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation, released}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Release(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "system:expiry")
			},
		},
		{
			name: "确认售出只记录流水",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				stock := domain.Stock{ProductID: 100, Quantity: 3, Version: 2}
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation}, nil)
				repo.EXPECT().Append(gomock.Any(), stock, domain.Movement{
					ProductID: 100, Delta: 0, Kind: domain.KindSaleConfirmed, Ref: ref,
					PrevStock: 3, NewStock: 3, Actor: "gateway:snap",
				}).Return(domain.Movement{ID: 3}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.ConfirmSale(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "gateway:snap")
			},
		},
		{
			name: "预占已释放不能确认售出",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation, released}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.ConfirmSale(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "gateway:snap")
			},
			wantErr: ErrReservationReleased,
		},
		{
			name: "没有预占不能确认售出",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.ConfirmSale(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "gateway:snap")
			},
			wantErr: ErrNoReservation,
		},
		{
			name: "已售出订单取消归还库存",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				stock := domain.Stock{ProductID: 100, Quantity: 3, Version: 3}
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation, confirmed}, nil)
				repo.EXPECT().Append(gomock.Any(), stock, domain.Movement{
					ProductID: 100, Delta: 2, Kind: domain.KindRelease, Ref: ref,
					PrevStock: 3, NewStock: 5, Actor: "staff:9",
				}).Return(domain.Movement{ID: 4}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.RevertSale(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "staff:9")
			},
		},
		{
			name: "未售出不能按售出归还",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 3}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{reservation}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.RevertSale(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 2}}, "staff:9")
			},
			wantErr: ErrSaleNotConfirmed,
		},
		{
			name: "退货入库",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				rref := domain.ReturnRef("return-1")
				stock := domain.Stock{ProductID: 100, Quantity: 3, Version: 3}
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), rref, int64(100)).Return(nil, nil)
				repo.EXPECT().Append(gomock.Any(), stock, domain.Movement{
					ProductID: 100, Delta: 2, Kind: domain.KindReturnRestock, Ref: rref,
					PrevStock: 3, NewStock: 5, Actor: "staff:9",
				}).Return(domain.Movement{ID: 5}, nil)
				return repo
			},
			call: func(svc Service) error {
				return svc.Restock(context.Background(), domain.ReturnRef("return-1"),
					[]domain.Line{{ProductID: 100, Quantity: 2}}, "staff:9")
			},
		},
		{
			name: "写入失败",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Movement{}, repository.ErrRecordChangedConcurrently)
				return repo
			},
			call: func(svc Service) error {
				return svc.Reserve(context.Background(), ref, []domain.Line{{ProductID: 100, Quantity: 1}}, "buyer:1")
			},
			wantErr: repository.ErrRecordChangedConcurrently,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), newTxRunner(ctrl))
			err := tc.call(svc)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Adjust(t *testing.T) {
	ref := domain.ManualRef("adj-1")
	testCases := []struct {
		name    string
		delta   int64
		refSN   string
		mock    func(ctrl *gomock.Controller) repository.StockRepository
		want    domain.Movement
		wantErr error
	}{
		{
			name:  "首次入库",
			delta: 5,
			refSN: "adj-1",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				stock := domain.Stock{ProductID: 100, Quantity: 0, Version: 1}
				repo.EXPECT().EnsureStock(gomock.Any(), int64(100)).Return(nil)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).Return(stock, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				repo.EXPECT().Append(gomock.Any(), stock, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Stock, mv domain.Movement) (domain.Movement, error) {
						mv.ID = 1
						return mv, nil
					})
				return repo
			},
			want: domain.Movement{
				ID: 1, ProductID: 100, Delta: 5, Kind: domain.KindManualAdjust, Ref: ref,
				PrevStock: 0, NewStock: 5, Actor: "staff:9", Note: "盘点",
			},
		},
		{
			name:  "重复调整返回已有流水",
			delta: 5,
			refSN: "adj-1",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().EnsureStock(gomock.Any(), int64(100)).Return(nil)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).
					Return(domain.Movements{{ID: 1, ProductID: 100, Delta: 5, Kind: domain.KindManualAdjust, Ref: ref}}, nil)
				return repo
			},
			want: domain.Movement{ID: 1, ProductID: 100, Delta: 5, Kind: domain.KindManualAdjust, Ref: ref},
		},
		{
			name:  "调整后为负",
			delta: -6,
			refSN: "adj-1",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().EnsureStock(gomock.Any(), int64(100)).Return(nil)
				repo.EXPECT().LockStock(gomock.Any(), int64(100)).
					Return(domain.Stock{ProductID: 100, Quantity: 5}, nil)
				repo.EXPECT().FindMovementsByRef(gomock.Any(), ref, int64(100)).Return(nil, nil)
				return repo
			},
			wantErr: ErrInsufficientStock,
		},
		{
			name:  "调整量为0",
			delta: 0,
			refSN: "adj-1",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				return repomocks.NewMockStockRepository(ctrl)
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:  "缺少调整单号",
			delta: 1,
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				return repomocks.NewMockStockRepository(ctrl)
			},
			wantErr: ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), newTxRunner(ctrl))
			m, err := svc.Adjust(context.Background(), 100, tc.delta, tc.refSN, "staff:9", "盘点")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, m)
		})
	}
}

func TestService_Audit(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.StockRepository
		want    domain.AuditResult
		wantErr error
	}{
		{
			name: "一致",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().FindStock(gomock.Any(), int64(100)).Return(domain.Stock{ProductID: 100, Quantity: 4}, nil)
				repo.EXPECT().SumDelta(gomock.Any(), int64(100)).Return(int64(4), nil)
				return repo
			},
			want: domain.AuditResult{ProductID: 100, Counter: 4, LedgerSum: 4},
		},
		{
			name: "没有库存记录",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().FindStock(gomock.Any(), int64(100)).Return(domain.Stock{}, repository.ErrStockNotFound)
				repo.EXPECT().SumDelta(gomock.Any(), int64(100)).Return(int64(0), nil)
				return repo
			},
			want: domain.AuditResult{ProductID: 100},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.StockRepository {
				repo := repomocks.NewMockStockRepository(ctrl)
				repo.EXPECT().FindStock(gomock.Any(), int64(100)).Return(domain.Stock{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), newTxRunner(ctrl))
			res, err := svc.Audit(context.Background(), 100)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}
