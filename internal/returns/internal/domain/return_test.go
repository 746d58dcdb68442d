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

func TestReturnStatus_CanTransitTo(t *testing.T) {
	testCases := []struct {
		from ReturnStatus
		to   ReturnStatus
		want bool
	}{
		{from: StatusPending, to: StatusApproved, want: true},
		{from: StatusPending, to: StatusRejected, want: true},
		{from: StatusApproved, to: StatusCompleted, want: true},
		{from: StatusPending, to: StatusCompleted, want: false},
		{from: StatusApproved, to: StatusRejected, want: false},
		{from: StatusRejected, to: StatusApproved, want: false},
		{from: StatusCompleted, to: StatusPending, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitTo(tc.to))
		})
	}
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
}

func TestReasonLongEnough(t *testing.T) {
	assert.True(t, ReasonLongEnough("瓷砖运输途中碎了两箱", 10))
	assert.False(t, ReasonLongEnough("碎了", 10))
	assert.False(t, ReasonLongEnough("", 1))
}

func TestCondition_Valid(t *testing.T) {
	assert.True(t, ConditionDefective.Valid())
	assert.False(t, Condition("used").Valid())
}
