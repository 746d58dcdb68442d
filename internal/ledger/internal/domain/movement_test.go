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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLines(t *testing.T) {
	testCases := []struct {
		name  string
		lines []Line
		want  []Line
	}{
		{
			name:  "空",
			lines: nil,
			want:  []Line{},
		},
		{
			name: "按商品ID排序",
			lines: []Line{
				{ProductID: 3, Quantity: 1},
				{ProductID: 1, Quantity: 2},
			},
			want: []Line{
				{ProductID: 1, Quantity: 2},
				{ProductID: 3, Quantity: 1},
			},
		},
		{
			name: "合并重复商品",
			lines: []Line{
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 4},
			},
			want: []Line{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 5},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeLines(tc.lines))
		})
	}
}

func TestMovements_Find(t *testing.T) {
	ms := Movements{
		{Kind: KindReservation, Delta: -2},
		{Kind: KindSaleConfirmed, Delta: 0},
	}
	m, ok := ms.Find(KindReservation)
	assert.True(t, ok)
	assert.Equal(t, int64(-2), m.Delta)
	assert.True(t, ms.Has(KindSaleConfirmed))
	assert.False(t, ms.Has(KindRelease))
}

func TestAuditResult(t *testing.T) {
	assert.True(t, AuditResult{Counter: 4, LedgerSum: 4}.Consistent())
	r := AuditResult{Counter: 3, LedgerSum: 4}
	assert.False(t, r.Consistent())
	assert.Equal(t, int64(-1), r.Drift())
}
