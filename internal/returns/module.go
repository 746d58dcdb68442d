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

package returns

import (
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
	"github.com/ecodeclub/materia/internal/returns/internal/event"
	"github.com/ecodeclub/materia/internal/returns/internal/service"
	"github.com/ecodeclub/materia/internal/returns/internal/web"
)

type (
	Service        = service.Service
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
	ApprovalPolicy = service.ApprovalPolicy

	ReturnRequest = domain.ReturnRequest
	ReturnItem    = domain.ReturnItem
	ReturnStatus  = domain.ReturnStatus
	RefundStatus  = domain.RefundStatus
	Condition     = domain.Condition
	Decision      = domain.Decision
	Approver      = domain.Approver
	ReturnEvent   = event.ReturnEvent
)

const (
	StatusPending   = domain.StatusPending
	StatusApproved  = domain.StatusApproved
	StatusRejected  = domain.StatusRejected
	StatusCompleted = domain.StatusCompleted

	RefundStatusNone = domain.RefundStatusNone
	RefundStatusOwed = domain.RefundStatusOwed

	ConditionUnopened         = domain.ConditionUnopened
	ConditionDamagedInTransit = domain.ConditionDamagedInTransit
	ConditionDefective        = domain.ConditionDefective
	ConditionWrongItem        = domain.ConditionWrongItem

	DecisionApprove = domain.DecisionApprove
	DecisionReject  = domain.DecisionReject

	ReturnEventTopic = event.ReturnEventTopic
)

var (
	ErrInvalidTransition  = service.ErrInvalidTransition
	ErrReturnExists       = service.ErrReturnExists
	ErrReturnNotFound     = service.ErrReturnNotFound
	ErrOrderNotReturnable = service.ErrOrderNotReturnable
	ErrApprovalDenied     = service.ErrApprovalDenied
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
