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

package domain

type Anomaly string

const (
	AnomalyNone Anomaly = ""
	// AnomalyLatePayment 订单已经过期、取消, 或者超过了支付截止时间
	AnomalyLatePayment Anomaly = "late_payment"
	// AnomalyDuplicatePayment 订单已经支付过了, 又收到一笔成功的支付
	AnomalyDuplicatePayment Anomaly = "duplicate_payment"
)

// PaymentEvent 处理过的网关通知, 只增不改
type PaymentEvent struct {
	ID            int64
	Gateway       string
	TransactionID string
	RawStatus     string
	Status        Status
	OrderSN       string
	Amount        int64
	Digest        string
	// Transition 引起的订单状态变更, 形如 awaiting_payment->paid, 没有变更时为空
	Transition  string
	Anomaly     Anomaly
	ProcessedAt int64
}

type Result uint8

const (
	ResultAccepted Result = iota + 1
	ResultRejected
	ResultRetryable
)

func (r Result) String() string {
	switch r {
	case ResultAccepted:
		return "accepted"
	case ResultRejected:
		return "rejected"
	case ResultRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}

// Outcome 一次通知的处理结果
type Outcome struct {
	Result Result
	// Duplicate 同样的通知已经处理过, 返回的是第一次处理的结果
	Duplicate  bool
	Transition string
	Anomaly    Anomaly
}

func OutcomeOf(evt PaymentEvent, duplicate bool) Outcome {
	return Outcome{
		Result:     ResultAccepted,
		Duplicate:  duplicate,
		Transition: evt.Transition,
		Anomaly:    evt.Anomaly,
	}
}
