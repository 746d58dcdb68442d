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
	"crypto/sha256"
	"encoding/hex"
)

// Status 网关原始状态归一化之后的结果
type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusUnknown Status = iota
	StatusSettled
	StatusPending
	StatusDenied
	StatusCancelled
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusSettled:
		return "settled"
	case StatusPending:
		return "pending"
	case StatusDenied:
		return "denied"
	case StatusCancelled:
		return "cancelled"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Notification 网关异步通知解析之后的内容
type Notification struct {
	Gateway       string
	TransactionID string
	// RawStatus 网关上报的原始状态, 和网关、流水号一起作为幂等键
	RawStatus string
	Status    Status
	OrderSN   string
	// Amount 网关上报的金额, 单位为分
	Amount int64
	// Digest 原始报文的 SHA-256
	Digest string
	// Attrs 网关校验签名需要的额外字段
	Attrs map[string]string
}

// SessionRequest 打开支付会话
type SessionRequest struct {
	OrderSN     string
	Amount      int64
	Description string
	ExpireAt    int64
}

type Session struct {
	Token       string
	RedirectURL string
}

// Payable 校验通知时用到的订单信息
type Payable struct {
	SN    string
	Total int64
}

func Digest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
