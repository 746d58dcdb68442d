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

package gateway

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/ecodeclub/materia/internal/payment/internal/domain"
)

var (
	ErrSignatureInvalid      = errors.New("支付通知签名校验失败")
	ErrMalformedNotification = errors.New("支付通知格式错误")
)

// Gateway 一个支付渠道
//
//go:generate mockgen -source=./gateway.go -package=gatewaymocks -destination=./mocks/gateway.mock.go Gateway
type Gateway interface {
	Name() string
	OpenSession(ctx context.Context, req domain.SessionRequest) (domain.Session, error)
	// ParseNotification 解析异步通知, 渠道自带验签的在这一步完成
	ParseNotification(ctx context.Context, req *http.Request) (domain.Notification, error)
	// Verify 用订单上保存的金额和单号校验通知
	Verify(n domain.Notification, p domain.Payable) error
}

type Gateways struct {
	m map[string]Gateway
}

func NewGateways(gws ...Gateway) *Gateways {
	m := make(map[string]Gateway, len(gws))
	for _, gw := range gws {
		m[gw.Name()] = gw
	}
	return &Gateways{m: m}
}

func (g *Gateways) Get(name string) (Gateway, bool) {
	gw, ok := g.m[name]
	return gw, ok
}

func (g *Gateways) Names() []string {
	names := make([]string, 0, len(g.m))
	for name := range g.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
