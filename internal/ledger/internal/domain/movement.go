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
	"sort"
)

type MovementKind uint8

func (k MovementKind) ToUint8() uint8 {
	return uint8(k)
}

const (
	KindReservation   MovementKind = 1
	KindRelease       MovementKind = 2
	KindSaleConfirmed MovementKind = 3
	KindReturnRestock MovementKind = 4
	KindManualAdjust  MovementKind = 5
)

func (k MovementKind) String() string {
	switch k {
	case KindReservation:
		return "reservation"
	case KindRelease:
		return "release"
	case KindSaleConfirmed:
		return "sale-confirmed"
	case KindReturnRestock:
		return "return-restock"
	case KindManualAdjust:
		return "manual-adjustment"
	default:
		return "unknown"
	}
}

type RefType uint8

func (r RefType) ToUint8() uint8 {
	return uint8(r)
}

const (
	RefTypeOrder  RefType = 1
	RefTypeReturn RefType = 2
	RefTypeManual RefType = 3
)

// Ref 引起库存变动的业务单据
type Ref struct {
	Type RefType
	SN   string
}

func OrderRef(sn string) Ref {
	return Ref{Type: RefTypeOrder, SN: sn}
}

func ReturnRef(sn string) Ref {
	return Ref{Type: RefTypeReturn, SN: sn}
}

func ManualRef(sn string) Ref {
	return Ref{Type: RefTypeManual, SN: sn}
}

type Line struct {
	ProductID int64
	Quantity  int64
}

// NormalizeLines 合并同一商品的行并按商品ID升序排列
// 固定的加锁顺序避免两个单据互相等待
func NormalizeLines(lines []Line) []Line {
	merged := make(map[int64]int64, len(lines))
	for _, l := range lines {
		merged[l.ProductID] += l.Quantity
	}
	res := make([]Line, 0, len(merged))
	for pid, q := range merged {
		res = append(res, Line{ProductID: pid, Quantity: q})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ProductID < res[j].ProductID
	})
	return res
}

// Movement 库存流水, 只追加不修改
type Movement struct {
	ID        int64
	ProductID int64
	Delta     int64
	Kind      MovementKind
	Ref       Ref
	PrevStock int64
	NewStock  int64
	Actor     string
	Note      string
	Ctime     int64
}

// Movements 同一单据同一商品下的全部流水
type Movements []Movement

func (ms Movements) Find(kind MovementKind) (Movement, bool) {
	for _, m := range ms {
		if m.Kind == kind {
			return m, true
		}
	}
	return Movement{}, false
}

func (ms Movements) Has(kind MovementKind) bool {
	_, ok := ms.Find(kind)
	return ok
}

type Stock struct {
	ProductID int64
	Quantity  int64
	Version   int64
	Utime     int64
}

type AuditResult struct {
	ProductID int64
	Counter   int64
	LedgerSum int64
}

func (a AuditResult) Drift() int64 {
	return a.Counter - a.LedgerSum
}

func (a AuditResult) Consistent() bool {
	return a.Drift() == 0
}
