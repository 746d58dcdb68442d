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

package payment

import (
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/event"
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	"github.com/ecodeclub/materia/internal/payment/internal/service"
	"github.com/ecodeclub/materia/internal/payment/internal/web"
)

type (
	Service      = service.Service
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Gateways     = gateway.Gateways
	Sessions     = service.Sessions
	Gateway      = gateway.Gateway

	Outcome      = domain.Outcome
	Result       = domain.Result
	PaymentEvent = domain.PaymentEvent
	Anomaly      = domain.Anomaly
	AnomalyEvent = event.AnomalyEvent
)

const (
	ResultAccepted  = domain.ResultAccepted
	ResultRejected  = domain.ResultRejected
	ResultRetryable = domain.ResultRetryable

	AnomalyNone             = domain.AnomalyNone
	AnomalyLatePayment      = domain.AnomalyLatePayment
	AnomalyDuplicatePayment = domain.AnomalyDuplicatePayment

	AnomalyEventTopic = event.AnomalyEventTopic
)

var ErrSignatureInvalid = gateway.ErrSignatureInvalid

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
