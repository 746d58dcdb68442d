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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order/internal/errs"
	"github.com/ecodeclub/materia/internal/order/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	insufficientStockResult = ginx.Result{
		Code: errs.InsufficientStock.Code,
		Msg:  errs.InsufficientStock.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	invalidRequestResult = ginx.Result{
		Code: errs.InvalidRequest.Code,
		Msg:  errs.InvalidRequest.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	paymentSessionFailedResult = ginx.Result{
		Code: errs.PaymentSessionFailed.Code,
		Msg:  errs.PaymentSessionFailed.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
)

// errorResult 业务错误返回对应的错误码, 其余的作为系统错误往上抛
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	case errors.Is(err, ledger.ErrInsufficientStock):
		return insufficientStockResult, nil
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, nil
	case errors.Is(err, service.ErrInvalidOrder):
		return ginx.Result{Code: invalidRequestResult.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrPaymentSessionFailed):
		return paymentSessionFailedResult, err
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
