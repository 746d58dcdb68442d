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
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/repository/dao"
)

var (
	ErrDuplicatedEvent = dao.ErrDuplicatedEvent
	ErrEventNotFound   = dao.ErrEventNotFound
)

//go:generate mockgen -source=./event.go -package=repomocks -destination=./mocks/event.mock.go PaymentEventRepository
type PaymentEventRepository interface {
	Create(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error)
	FindByKey(ctx context.Context, gateway, transactionID, rawStatus string) (domain.PaymentEvent, error)
	ListByOrderSN(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error)
	// ListLatestByOrderSN 在结算事务里使用, 读到的是已提交的最新记录
	ListLatestByOrderSN(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error)
	ListAnomalies(ctx context.Context, offset, limit int) ([]domain.PaymentEvent, error)
	CountAnomalies(ctx context.Context) (int64, error)
}

type paymentEventRepository struct {
	dao dao.PaymentEventDAO
}

func NewPaymentEventRepository(d dao.PaymentEventDAO) PaymentEventRepository {
	return &paymentEventRepository{dao: d}
}

func (r *paymentEventRepository) Create(ctx context.Context, evt domain.PaymentEvent) (domain.PaymentEvent, error) {
	entity := r.toEntity(evt)
	id, err := r.dao.Insert(ctx, entity)
	evt.ID = id
	return evt, err
}

func (r *paymentEventRepository) FindByKey(ctx context.Context, gateway, transactionID, rawStatus string) (domain.PaymentEvent, error) {
	evt, err := r.dao.FindByKey(ctx, gateway, transactionID, rawStatus)
	return r.toDomain(evt), err
}

func (r *paymentEventRepository) ListByOrderSN(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error) {
	evts, err := r.dao.ListByOrderSN(ctx, orderSN)
	return slice.Map(evts, func(idx int, src dao.PaymentEvent) domain.PaymentEvent {
		return r.toDomain(src)
	}), err
}

func (r *paymentEventRepository) ListLatestByOrderSN(ctx context.Context, orderSN string) ([]domain.PaymentEvent, error) {
	evts, err := r.dao.ListLatestByOrderSN(ctx, orderSN)
	return slice.Map(evts, func(idx int, src dao.PaymentEvent) domain.PaymentEvent {
		return r.toDomain(src)
	}), err
}

func (r *paymentEventRepository) ListAnomalies(ctx context.Context, offset, limit int) ([]domain.PaymentEvent, error) {
	evts, err := r.dao.ListAnomalies(ctx, offset, limit)
	return slice.Map(evts, func(idx int, src dao.PaymentEvent) domain.PaymentEvent {
		return r.toDomain(src)
	}), err
}

func (r *paymentEventRepository) CountAnomalies(ctx context.Context) (int64, error) {
	return r.dao.CountAnomalies(ctx)
}

func (r *paymentEventRepository) toEntity(evt domain.PaymentEvent) dao.PaymentEvent {
	return dao.PaymentEvent{
		Gateway:       evt.Gateway,
		TransactionId: evt.TransactionID,
		RawStatus:     evt.RawStatus,
		Status:        evt.Status.ToUint8(),
		OrderSn:       evt.OrderSN,
		Amount:        evt.Amount,
		Digest:        evt.Digest,
		Transition:    evt.Transition,
		Anomaly:       string(evt.Anomaly),
	}
}

func (r *paymentEventRepository) toDomain(evt dao.PaymentEvent) domain.PaymentEvent {
	return domain.PaymentEvent{
		ID:            evt.Id,
		Gateway:       evt.Gateway,
		TransactionID: evt.TransactionId,
		RawStatus:     evt.RawStatus,
		Status:        domain.Status(evt.Status),
		OrderSN:       evt.OrderSn,
		Amount:        evt.Amount,
		Digest:        evt.Digest,
		Transition:    evt.Transition,
		Anomaly:       domain.Anomaly(evt.Anomaly),
		ProcessedAt:   evt.Ctime,
	}
}
