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

import "github.com/ecodeclub/materia/internal/ledger/internal/domain"

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type AdjustReq struct {
	ProductID int64  `json:"productID"`
	Delta     int64  `json:"delta"`
	// RefSN 调整单号, 同一个单号重复提交只生效一次
	RefSN string `json:"refSN"`
	Note  string `json:"note"`
}

type StockDetailReq struct {
	ProductID int64 `json:"productID"`
	Page
}

type AuditReq struct {
	ProductID int64 `json:"productID"`
}

type Movement struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productID"`
	Delta     int64  `json:"delta"`
	Kind      string `json:"kind"`
	RefType   uint8  `json:"refType"`
	RefSN     string `json:"refSN"`
	PrevStock int64  `json:"prevStock"`
	NewStock  int64  `json:"newStock"`
	Actor     string `json:"actor"`
	Note      string `json:"note,omitempty"`
	Ctime     int64  `json:"ctime"`
}

func newMovement(m domain.Movement) Movement {
	return Movement{
		ID:        m.ID,
		ProductID: m.ProductID,
		Delta:     m.Delta,
		Kind:      m.Kind.String(),
		RefType:   m.Ref.Type.ToUint8(),
		RefSN:     m.Ref.SN,
		PrevStock: m.PrevStock,
		NewStock:  m.NewStock,
		Actor:     m.Actor,
		Note:      m.Note,
		Ctime:     m.Ctime,
	}
}

type Stock struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
	Utime     int64 `json:"utime"`
}

type StockDetailResp struct {
	ProductID int64      `json:"productID"`
	Quantity  int64      `json:"quantity"`
	Total     int64      `json:"total"`
	Movements []Movement `json:"movements"`
}

type StockListResp struct {
	Total  int64   `json:"total"`
	Stocks []Stock `json:"stocks"`
}

type AuditResp struct {
	ProductID  int64 `json:"productID"`
	Counter    int64 `json:"counter"`
	LedgerSum  int64 `json:"ledgerSum"`
	Drift      int64 `json:"drift"`
	Consistent bool  `json:"consistent"`
}
