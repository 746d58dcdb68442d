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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
)

// NotifyResp 网关只看 HTTP 状态码, body 沿用微信支付的应答格式
type NotifyResp struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListAnomaliesReq struct {
	Page
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type PaymentEvent struct {
	ID            int64  `json:"id"`
	Gateway       string `json:"gateway"`
	TransactionID string `json:"transactionID"`
	RawStatus     string `json:"rawStatus"`
	Status        string `json:"status"`
	OrderSN       string `json:"orderSN"`
	Amount        int64  `json:"amount"`
	Transition    string `json:"transition"`
	Anomaly       string `json:"anomaly"`
	ProcessedAt   int64  `json:"processedAt"`
}

type ListPaymentEventsResp struct {
	Total  int64          `json:"total,omitempty"`
	Events []PaymentEvent `json:"events,omitempty"`
}

func newPaymentEvent(evt domain.PaymentEvent) PaymentEvent {
	return PaymentEvent{
		ID:            evt.ID,
		Gateway:       evt.Gateway,
		TransactionID: evt.TransactionID,
		RawStatus:     evt.RawStatus,
		Status:        evt.Status.String(),
		OrderSN:       evt.OrderSN,
		Amount:        evt.Amount,
		Transition:    evt.Transition,
		Anomaly:       string(evt.Anomaly),
		ProcessedAt:   evt.ProcessedAt,
	}
}

func newListPaymentEventsResp(evts []domain.PaymentEvent, total int64) ListPaymentEventsResp {
	return ListPaymentEventsResp{
		Total: total,
		Events: slice.Map(evts, func(idx int, src domain.PaymentEvent) PaymentEvent {
			return newPaymentEvent(src)
		}),
	}
}

func limitOf(limit int) int {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
