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
	SystemError          = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidTransition    = ErrorCode{Code: 521002, Msg: "订单当前状态不允许该操作"}
	InsufficientStock    = ErrorCode{Code: 521003, Msg: "库存不足"}
	ProductUnavailable   = ErrorCode{Code: 521004, Msg: "商品不存在或已下架"}
	InvalidRequest       = ErrorCode{Code: 521005, Msg: "订单参数非法"}
	DuplicateRequest     = ErrorCode{Code: 521006, Msg: "重复请求"}
	PaymentSessionFailed = ErrorCode{Code: 521007, Msg: "支付会话创建失败, 请稍后重试"}
	OrderNotFound        = ErrorCode{Code: 521008, Msg: "订单不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
