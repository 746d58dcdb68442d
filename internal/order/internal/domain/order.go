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
	"fmt"
	"strings"
)

var ErrInvalidTransition = errors.New("订单状态流转非法")

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusAwaitingPayment OrderStatus = 1
	StatusPaid            OrderStatus = 2
	StatusProcessing      OrderStatus = 3
	StatusShipped         OrderStatus = 4
	StatusDelivered       OrderStatus = 5
	StatusCompleted       OrderStatus = 6
	StatusExpired         OrderStatus = 7
	StatusCancelled       OrderStatus = 8
)

// transitions 唯一的状态流转表
var transitions = map[OrderStatus][]OrderStatus{
	StatusAwaitingPayment: {StatusPaid, StatusExpired, StatusCancelled},
	StatusPaid:            {StatusProcessing, StatusCancelled},
	StatusProcessing:      {StatusShipped},
	StatusShipped:         {StatusDelivered},
	StatusDelivered:       {StatusCompleted},
}

// fulfillment 履约链路, 只能一步一步往前走
var fulfillment = map[OrderStatus]OrderStatus{
	StatusPaid:       StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
	StatusDelivered:  StatusCompleted,
}

func (s OrderStatus) CanTransitTo(next OrderStatus) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// NextFulfillment 履约链路上的下一个状态
func (s OrderStatus) NextFulfillment() (OrderStatus, bool) {
	n, ok := fulfillment[s]
	return n, ok
}

// Settled 是否已经收到过货款
func (s OrderStatus) Settled() bool {
	switch s {
	case StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	switch s {
	case StatusAwaitingPayment:
		return "awaiting_payment"
	case StatusPaid:
		return "paid"
	case StatusProcessing:
		return "processing"
	case StatusShipped:
		return "shipped"
	case StatusDelivered:
		return "delivered"
	case StatusCompleted:
		return "completed"
	case StatusExpired:
		return "expired"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Order 订单, 金额单位为分, 时间为毫秒时间戳
type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Items   []OrderItem
	Address Address

	ShippingOption string
	ShippingCost   int64
	Subtotal       int64
	// Total 创建时算好, 之后不再重算
	Total int64

	PaymentMethod string
	Payment       PaymentSession

	Status       OrderStatus
	Version      int64
	CancelReason string
	PaidAt       int64
	ExpireAt     int64
	Ctime        int64
	Utime        int64
}

func (o Order) SubtotalOfItems() int64 {
	var res int64
	for _, item := range o.Items {
		res += item.Amount()
	}
	return res
}

type OrderItem struct {
	ProductID int64
	ProductSN string
	Name      string
	Unit      string
	Quantity  int64
	// UnitPrice 下单时的价格快照
	UnitPrice int64
}

func (i OrderItem) Amount() int64 {
	return i.UnitPrice * i.Quantity
}

// Address 收货地址快照
type Address struct {
	Receiver   string
	Phone      string
	Line       string
	City       string
	Province   string
	PostalCode string
}

func (a Address) Validate() error {
	var missing []string
	if strings.TrimSpace(a.Receiver) == "" {
		missing = append(missing, "receiver")
	}
	if strings.TrimSpace(a.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(a.Line) == "" {
		missing = append(missing, "line")
	}
	if strings.TrimSpace(a.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return fmt.Errorf("收货地址缺少字段: %s", strings.Join(missing, ","))
	}
	return nil
}

// PaymentSession 支付网关返回的会话
type PaymentSession struct {
	Token       string
	RedirectURL string
}

// DeadlineCond 状态变更时对支付截止时间的附加条件
type DeadlineCond uint8

const (
	DeadlineAny DeadlineCond = iota
	// DeadlineNotReached expire_at > Utime
	DeadlineNotReached
	// DeadlinePassed expire_at <= Utime
	DeadlinePassed
)

// Transition 一次状态变更, 既是 CAS 的条件也是对外发送的事件内容
type Transition struct {
	OrderID  int64
	SN       string
	BuyerID  int64
	From     OrderStatus
	To       OrderStatus
	Version  int64
	Actor    string
	Reason   string
	Deadline DeadlineCond
	Utime    int64
}
