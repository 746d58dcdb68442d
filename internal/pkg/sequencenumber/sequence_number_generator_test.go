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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateWith(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name    string
		buyerID int64
		want    string
		wantErr bool
	}{
		{
			name:    "不足4位补零",
			buyerID: 1,
			want:    "12345543201230001nUfojcH2M5j2j3T",
		},
		{
			name:    "超过4位取后4位",
			buyerID: 123456789,
			want:    "12345543201236789nUfojcH2M5j2j3T",
		},
		{
			name:    "后4位全是0",
			buyerID: 123450000,
			want:    "12345543201230000nUfojcH2M5j2j3T",
		},
		{
			name:    "买家ID非法",
			buyerID: -1,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.buyerID)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, sn)
			assert.Len(t, sn, Length)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		sn, err := g.Generate(123456789)
		require.NoError(t, err)
		assert.Len(t, sn, Length)
		assert.Equal(t, "6789", sn[13:17])
		seen[sn] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
