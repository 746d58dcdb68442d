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

package event

import "github.com/ecodeclub/materia/internal/payment/internal/domain"

const AnomalyEventTopic = "payment_anomaly_events"

// AnomalyEvent 需要人工对账的结算异常
type AnomalyEvent struct {
	Kind          string `json:"kind"`
	Gateway       string `json:"gateway"`
	TransactionID string `json:"transactionID"`
	OrderSN       string `json:"orderSN"`
	Amount        int64  `json:"amount"`
	RawStatus     string `json:"rawStatus"`
	ProcessedAt   int64  `json:"processedAt"`
}

func NewAnomalyEvent(evt domain.PaymentEvent) AnomalyEvent {
	return AnomalyEvent{
		Kind:          string(evt.Anomaly),
		Gateway:       evt.Gateway,
		TransactionID: evt.TransactionID,
		OrderSN:       evt.OrderSN,
		Amount:        evt.Amount,
		RawStatus:     evt.RawStatus,
		ProcessedAt:   evt.ProcessedAt,
	}
}

func (e AnomalyEvent) MessageKey() string {
	return e.OrderSN
}
