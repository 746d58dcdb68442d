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

import "github.com/ecodeclub/materia/internal/order/internal/domain"

const OrderEventTopic = "order_events"

// OrderEvent 订单状态变更通知, From 为空表示新建订单
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	From    string `json:"from"`
	To      string `json:"to"`
	Actor   string `json:"actor"`
	Reason  string `json:"reason"`
	Utime   int64  `json:"utime"`
}

func NewOrderEvent(t domain.Transition) OrderEvent {
	evt := OrderEvent{
		OrderSN: t.SN,
		BuyerID: t.BuyerID,
		To:      t.To.String(),
		Actor:   t.Actor,
		Reason:  t.Reason,
		Utime:   t.Utime,
	}
	if t.From != 0 {
		evt.From = t.From.String()
	}
	return evt
}

func (e OrderEvent) MessageKey() string {
	return e.OrderSN
}
