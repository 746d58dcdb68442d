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

package errs

var (
	SystemError        = ErrorCode{Code: 523001, Msg: "系统错误"}
	InvalidTransition  = ErrorCode{Code: 523002, Msg: "退货单当前状态不允许该操作"}
	InvalidReturn      = ErrorCode{Code: 523003, Msg: "退货申请参数非法"}
	OrderNotReturnable = ErrorCode{Code: 523004, Msg: "订单未完成, 不能申请退货"}
	ReturnExists       = ErrorCode{Code: 523005, Msg: "该订单已经申请过退货"}
	ReturnNotFound     = ErrorCode{Code: 523006, Msg: "退货单不存在"}
	ApprovalDenied     = ErrorCode{Code: 523007, Msg: "退货金额超出审批权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
