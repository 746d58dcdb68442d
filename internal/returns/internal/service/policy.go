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

import "github.com/ecodeclub/materia/internal/returns/internal/domain"

// ApprovalPolicy 审批权限校验, 只回答能不能批
type ApprovalPolicy interface {
	CanApprove(approver domain.Approver, amount int64) bool
}

// ThresholdPolicy 金额不超过 Threshold 的退货任何员工都能批,
// 超过的只有 SupervisorRole 能批. Threshold 不大于 0 表示不限制
type ThresholdPolicy struct {
	Threshold      int64  `yaml:"threshold"`
	SupervisorRole string `yaml:"supervisorRole"`
}

func (p ThresholdPolicy) CanApprove(approver domain.Approver, amount int64) bool {
	if p.Threshold <= 0 || amount <= p.Threshold {
		return true
	}
	return p.SupervisorRole != "" && approver.Role == p.SupervisorRole
}
