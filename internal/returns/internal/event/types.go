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

import "github.com/ecodeclub/materia/internal/returns/internal/domain"

const ReturnEventTopic = "return_events"

// ReturnEvent 退货单状态变更通知, 退款系统消费 refundStatus=owed 的消息执行退款
type ReturnEvent struct {
	ReturnSN     string `json:"returnSN"`
	OrderSN      string `json:"orderSN"`
	BuyerID      int64  `json:"buyerID"`
	From         string `json:"from"`
	To           string `json:"to"`
	Actor        string `json:"actor"`
	Amount       int64  `json:"amount"`
	RefundStatus string `json:"refundStatus"`
	RejectReason string `json:"rejectReason"`
	Utime        int64  `json:"utime"`
}

func NewReturnEvent(t domain.Transition, amount int64) ReturnEvent {
	evt := ReturnEvent{
		ReturnSN:     t.SN,
		OrderSN:      t.OrderSN,
		BuyerID:      t.BuyerID,
		To:           t.To.String(),
		Actor:        t.Actor,
		Amount:       amount,
		RefundStatus: t.RefundStatus.String(),
		RejectReason: t.RejectReason,
		Utime:        t.Utime,
	}
	if t.From != domain.StatusUnknown {
		evt.From = t.From.String()
	}
	return evt
}

// MessageKey 同一个订单的退货消息有序
func (e ReturnEvent) MessageKey() string {
	return e.OrderSN
}
