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

package order

import (
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/event"
	"github.com/ecodeclub/materia/internal/order/internal/job"
	"github.com/ecodeclub/materia/internal/order/internal/service"
	"github.com/ecodeclub/materia/internal/order/internal/web"
)

type (
	Service         = service.Service
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	ExpireOrdersJob = job.ExpireOrdersJob
	PaymentSessions = service.PaymentSessions

	Order          = domain.Order
	OrderItem      = domain.OrderItem
	Address        = domain.Address
	OrderStatus    = domain.OrderStatus
	PaymentSession = domain.PaymentSession
	Transition     = domain.Transition
	OrderEvent     = event.OrderEvent
)

const (
	StatusAwaitingPayment = domain.StatusAwaitingPayment
	StatusPaid            = domain.StatusPaid
	StatusProcessing      = domain.StatusProcessing
	StatusShipped         = domain.StatusShipped
	StatusDelivered       = domain.StatusDelivered
	StatusCompleted       = domain.StatusCompleted
	StatusExpired         = domain.StatusExpired
	StatusCancelled       = domain.StatusCancelled

	OrderEventTopic = event.OrderEventTopic
)

var (
	ErrInvalidTransition = service.ErrInvalidTransition
	ErrOrderNotFound     = service.ErrOrderNotFound
)

type Module struct {
	Svc             Service
	Hdl             *Handler
	AdminHdl        *AdminHandler
	ExpireOrdersJob *ExpireOrdersJob
}
