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

package event

import "github.com/ecodeclub/materia/internal/product/internal/domain"

// ProductEventTopic 商品主数据系统同步过来的商品变更
const ProductEventTopic = "product_events"

type ProductEvent struct {
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}

func (e ProductEvent) ToDomain() domain.Product {
	return domain.Product{
		SN:       e.SN,
		Name:     e.Name,
		Desc:     e.Desc,
		Category: e.Category,
		Unit:     e.Unit,
		Price:    e.Price,
		Status:   domain.Status(e.Status),
	}
}
