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

import "github.com/ecodeclub/materia/internal/product/internal/domain"

type SNReq struct {
	SN string `json:"sn"`
}

type SaveReq struct {
	Product Product `json:"product"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Products []Product `json:"products,omitempty"`
	Total    int64     `json:"total,omitempty"`
}

type Product struct {
	ID       int64  `json:"id,omitempty"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category,omitempty"`
	Unit     string `json:"unit"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:       p.ID,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Desc,
		Category: p.Category,
		Unit:     p.Unit,
		Price:    p.Price,
		Status:   domain.Status(p.Status),
	}
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:       p.ID,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Desc,
		Category: p.Category,
		Unit:     p.Unit,
		Price:    p.Price,
		Status:   p.Status.ToUint8(),
	}
}
