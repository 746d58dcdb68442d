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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
)

var _ order.PaymentSessions = (*Sessions)(nil)

// Sessions 下单时按支付方式找到网关并打开支付会话
type Sessions struct {
	gateways *gateway.Gateways
}

func NewSessions(gateways *gateway.Gateways) *Sessions {
	return &Sessions{gateways: gateways}
}

func (s *Sessions) Supports(method string) bool {
	_, ok := s.gateways.Get(method)
	return ok
}

func (s *Sessions) Open(ctx context.Context, o order.Order) (order.PaymentSession, error) {
	gw, ok := s.gateways.Get(o.PaymentMethod)
	if !ok {
		return order.PaymentSession{}, fmt.Errorf("%w: %s", ErrUnknownGateway, o.PaymentMethod)
	}
	sess, err := gw.OpenSession(ctx, domain.SessionRequest{
		OrderSN:     o.SN,
		Amount:      o.Total,
		Description: s.description(o),
		ExpireAt:    o.ExpireAt,
	})
	if err != nil {
		return order.PaymentSession{}, err
	}
	return order.PaymentSession{Token: sess.Token, RedirectURL: sess.RedirectURL}, nil
}

func (s *Sessions) description(o order.Order) string {
	switch len(o.Items) {
	case 0:
		return "订单 " + o.SN
	case 1:
		return o.Items[0].Name
	default:
		return fmt.Sprintf("%s 等%d件商品", o.Items[0].Name, len(o.Items))
	}
}
