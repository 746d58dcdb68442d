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

package ledger

import (
	"github.com/ecodeclub/materia/internal/ledger/internal/domain"
	"github.com/ecodeclub/materia/internal/ledger/internal/job"
	"github.com/ecodeclub/materia/internal/ledger/internal/service"
	"github.com/ecodeclub/materia/internal/ledger/internal/web"
)

type (
	Service       = service.Service
	AdminHandler  = web.AdminHandler
	AuditStockJob = job.AuditStockJob

	Line        = domain.Line
	Ref         = domain.Ref
	Movement    = domain.Movement
	AuditResult = domain.AuditResult
)

const (
	KindReservation   = domain.KindReservation
	KindRelease       = domain.KindRelease
	KindSaleConfirmed = domain.KindSaleConfirmed
	KindReturnRestock = domain.KindReturnRestock
	KindManualAdjust  = domain.KindManualAdjust
)

var (
	OrderRef  = domain.OrderRef
	ReturnRef = domain.ReturnRef

	ErrInsufficientStock   = service.ErrInsufficientStock
	ErrInvalidQuantity     = service.ErrInvalidQuantity
	ErrNoReservation       = service.ErrNoReservation
	ErrReservationReleased = service.ErrReservationReleased
	ErrSaleNotConfirmed    = service.ErrSaleNotConfirmed
)

type Module struct {
	Svc           Service
	AdminHdl      *AdminHandler
	AuditStockJob *AuditStockJob
}
