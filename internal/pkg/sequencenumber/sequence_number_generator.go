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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Length 订单号固定长度
const Length = 32

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

// Generator 生成对外展示的订单号:
// 13 位毫秒时间戳 + 买家ID后 4 位 + shortuuid 补齐到 32 位.
// 时间戳在前, 按订单号排序基本就是按下单时间排序
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, shortuuid.New)
}

func (s *Generator) Generate(buyerID int64) (string, error) {
	if buyerID < 0 {
		return "", fmt.Errorf("买家ID非法: %d", buyerID)
	}
	sn := fmt.Sprintf("%d%04d%s", s.timestampGenFunc(time.Now()), buyerID%10000, s.shortUUIDGenFunc())
	if len(sn) < Length {
		return "", fmt.Errorf("订单号长度不足: %s", sn)
	}
	return sn[:Length], nil
}
