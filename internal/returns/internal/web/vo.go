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
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CreateReturnReq struct {
	OrderSN string          `json:"orderSN"`
	Reason  string          `json:"reason"`
	Items   []ReturnItemReq `json:"items"`
}

type ReturnItemReq struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
	// Condition unopened, damaged_in_transit, defective, wrong_item
	Condition string `json:"condition"`
	Reason    string `json:"reason,omitempty"`
}

type ReturnSNReq struct {
	SN string `json:"sn"`
}

type DecideReturnReq struct {
	SN string `json:"sn"`
	// Decision 1=批准 2=拒绝
	Decision uint8  `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

type ListReturnsReq struct {
	Status uint8 `json:"status,omitempty"`
	Page
}

type ReturnRequest struct {
	SN           string       `json:"sn"`
	OrderSN      string       `json:"orderSN"`
	BuyerID      int64        `json:"buyerID"`
	Reason       string       `json:"reason"`
	Amount       int64        `json:"amount"`
	Status       string       `json:"status"`
	Approver     string       `json:"approver,omitempty"`
	DecidedAt    int64        `json:"decidedAt,omitempty"`
	RejectReason string       `json:"rejectReason,omitempty"`
	RefundStatus string       `json:"refundStatus"`
	CompletedAt  int64        `json:"completedAt,omitempty"`
	Items        []ReturnItem `json:"items"`
	Ctime        int64        `json:"ctime"`
	Utime        int64        `json:"utime"`
}

type ReturnItem struct {
	ProductID int64  `json:"productID"`
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Condition string `json:"condition"`
	Reason    string `json:"reason"`
}

type ListReturnsResp struct {
	Total   int64           `json:"total"`
	Returns []ReturnRequest `json:"returns"`
}

func newReturnRequest(r domain.ReturnRequest) ReturnRequest {
	return ReturnRequest{
		SN:           r.SN,
		OrderSN:      r.OrderSN,
		BuyerID:      r.BuyerID,
		Reason:       r.Reason,
		Amount:       r.Amount,
		Status:       r.Status.String(),
		Approver:     r.Approver,
		DecidedAt:    r.DecidedAt,
		RejectReason: r.RejectReason,
		RefundStatus: r.RefundStatus.String(),
		CompletedAt:  r.CompletedAt,
		Items: slice.Map(r.Items, func(idx int, src domain.ReturnItem) ReturnItem {
			return ReturnItem{
				ProductID: src.ProductID,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				Condition: string(src.Condition),
				Reason:    src.Reason,
			}
		}),
		Ctime: r.Ctime,
		Utime: r.Utime,
	}
}

func limitOf(l int) int {
	if l <= 0 || l > 100 {
		return 20
	}
	return l
}
