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
	"fmt"
)

// ShippingOption 配送方式, Cost 单位为分
type ShippingOption struct {
	Cost int64  `yaml:"cost"`
	Desc string `yaml:"desc"`
}

// ShippingQuoter 运费报价
type ShippingQuoter interface {
	Quote(option string) (int64, error)
}

type rateTableQuoter struct {
	options map[string]ShippingOption
}

// NewRateTableQuoter 按配置里的运费表报价
func NewRateTableQuoter(options map[string]ShippingOption) ShippingQuoter {
	return &rateTableQuoter{options: options}
}

func (q *rateTableQuoter) Quote(option string) (int64, error) {
	opt, ok := q.options[option]
	if !ok {
		return 0, fmt.Errorf("%w: 未知配送方式 %s", ErrInvalidOrder, option)
	}
	return opt.Cost, nil
}
