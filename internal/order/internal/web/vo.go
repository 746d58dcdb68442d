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
	"github.com/ecodeclub/materia/internal/order/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CreateOrderReq struct {
	RequestID      string         `json:"requestID"`
	Items          []OrderItemReq `json:"items"`
	Address        Address        `json:"address"`
	ShippingOption string         `json:"shippingOption"`
	PaymentMethod  string         `json:"paymentMethod"`
}

type OrderItemReq struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
}

type Address struct {
	Receiver   string `json:"receiver"`
	Phone      string `json:"phone"`
	Line       string `json:"line"`
	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

func (a Address) toDomain() domain.Address {
	return domain.Address{
		Receiver:   a.Receiver,
		Phone:      a.Phone,
		Line:       a.Line,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
	}
}

type CreateOrderResp struct {
	SN           string `json:"sn"`
	Total        int64  `json:"total"`
	ExpireAt     int64  `json:"expireAt"`
	PaymentToken string `json:"paymentToken"`
	RedirectURL  string `json:"redirectURL"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type CancelOrderReq struct {
	SN     string `json:"sn"`
	Reason string `json:"reason"`
}

type AdvanceFulfillmentReq struct {
	SN string `json:"sn"`
	// Next 目标状态, 只能是当前状态的下一步
	Next uint8 `json:"next"`
}

type ListOrdersReq struct {
	Page
	// Status 为 0 表示全部
	Status uint8 `json:"status,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	SN             string      `json:"sn"`
	BuyerID        int64       `json:"buyerID"`
	Items          []OrderItem `json:"items"`
	Address        Address     `json:"address"`
	ShippingOption string      `json:"shippingOption"`
	ShippingCost   int64       `json:"shippingCost"`
	Subtotal       int64       `json:"subtotal"`
	Total          int64       `json:"total"`
	PaymentMethod  string      `json:"paymentMethod"`
	RedirectURL    string      `json:"redirectURL,omitempty"`
	Status         uint8       `json:"status"`
	StatusText     string      `json:"statusText"`
	Version        int64       `json:"version"`
	CancelReason   string      `json:"cancelReason,omitempty"`
	PaidAt         int64       `json:"paidAt,omitempty"`
	ExpireAt       int64       `json:"expireAt"`
	Ctime          int64       `json:"ctime"`
	Utime          int64       `json:"utime"`
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

func newOrder(o domain.Order) Order {
	return Order{
		SN:      o.SN,
		BuyerID: o.BuyerID,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Unit:      src.Unit,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
			}
		}),
		Address: Address{
			Receiver:   o.Address.Receiver,
			Phone:      o.Address.Phone,
			Line:       o.Address.Line,
			City:       o.Address.City,
			Province:   o.Address.Province,
			PostalCode: o.Address.PostalCode,
		},
		ShippingOption: o.ShippingOption,
		ShippingCost:   o.ShippingCost,
		Subtotal:       o.Subtotal,
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		RedirectURL:    o.Payment.RedirectURL,
		Status:         o.Status.ToUint8(),
		StatusText:     o.Status.String(),
		Version:        o.Version,
		CancelReason:   o.CancelReason,
		PaidAt:         o.PaidAt,
		ExpireAt:       o.ExpireAt,
		Ctime:          o.Ctime,
		Utime:          o.Utime,
	}
}

func newListOrdersResp(orders []domain.Order, total int64) ListOrdersResp {
	return ListOrdersResp{
		Total: total,
		Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
			return newOrder(src)
		}),
	}
}

func limitOf(l int) int {
	if l <= 0 || l > 100 {
		return 20
	}
	return l
}
