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

import (
	"errors"
	"unicode/utf8"
)

var ErrInvalidTransition = errors.New("退货单状态流转非法")

type ReturnStatus uint8

func (s ReturnStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown ReturnStatus = iota
	StatusPending
	StatusApproved
	StatusRejected
	StatusCompleted
)

var transitions = map[ReturnStatus][]ReturnStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

func (s ReturnStatus) CanTransitTo(next ReturnStatus) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// IsTerminal 已拒绝、已完成的退货单不可再修改
func (s ReturnStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s ReturnStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type RefundStatus uint8

const (
	RefundStatusNone RefundStatus = iota + 1
	// RefundStatusOwed 退货入库后应退款, 退款本身由外部系统执行
	RefundStatusOwed
)

func (s RefundStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s RefundStatus) String() string {
	if s == RefundStatusOwed {
		return "owed"
	}
	return "none"
}

// Condition 退回商品的状况
type Condition string

const (
	ConditionUnopened         Condition = "unopened"
	ConditionDamagedInTransit Condition = "damaged_in_transit"
	ConditionDefective        Condition = "defective"
	ConditionWrongItem        Condition = "wrong_item"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionUnopened, ConditionDamagedInTransit, ConditionDefective, ConditionWrongItem:
		return true
	default:
		return false
	}
}

type Decision uint8

const (
	DecisionApprove Decision = iota + 1
	DecisionReject
)

// ReturnRequest 退货单, 只能针对已完成的订单, 一个订单最多一个
type ReturnRequest struct {
	ID      int64
	SN      string
	OrderSN string
	BuyerID int64
	Items   []ReturnItem
	Reason  string
	// Amount 按下单时的价格快照计算
	Amount int64

	Status       ReturnStatus
	Approver     string
	DecidedAt    int64
	RejectReason string
	RefundStatus RefundStatus
	CompletedAt  int64
	Version      int64
	Ctime        int64
	Utime        int64
}

type ReturnItem struct {
	ProductID int64
	ProductSN string
	Name      string
	Quantity  int64
	UnitPrice int64
	Condition Condition
	Reason    string
}

func (i ReturnItem) Amount() int64 {
	return i.UnitPrice * i.Quantity
}

// ReasonLongEnough 按字符而不是字节计算长度
func ReasonLongEnough(reason string, min int) bool {
	return utf8.RuneCountInString(reason) >= min
}

// Approver 审批人和他的角色
type Approver struct {
	ID   int64
	Role string
}

// Transition 退货单的一次状态变更
type Transition struct {
	ID           int64
	SN           string
	OrderSN      string
	BuyerID      int64
	From         ReturnStatus
	To           ReturnStatus
	Version      int64
	Actor        string
	RejectReason string
	RefundStatus RefundStatus
	Utime        int64
}
