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
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/returns/internal/errs"
	"github.com/ecodeclub/materia/internal/returns/internal/service"
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
	orderNotReturnableResult = ginx.Result{
		Code: errs.OrderNotReturnable.Code,
		Msg:  errs.OrderNotReturnable.Msg,
	}
	returnExistsResult = ginx.Result{
		Code: errs.ReturnExists.Code,
		Msg:  errs.ReturnExists.Msg,
	}
	returnNotFoundResult = ginx.Result{
		Code: errs.ReturnNotFound.Code,
		Msg:  errs.ReturnNotFound.Msg,
	}
	approvalDeniedResult = ginx.Result{
		Code: errs.ApprovalDenied.Code,
		Msg:  errs.ApprovalDenied.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidReturn):
		return ginx.Result{Code: errs.InvalidReturn.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	case errors.Is(err, service.ErrOrderNotReturnable):
		return orderNotReturnableResult, nil
	case errors.Is(err, service.ErrReturnExists):
		return returnExistsResult, nil
	case errors.Is(err, service.ErrApprovalDenied):
		return approvalDeniedResult, nil
	// 订单和退货单都用 gorm.ErrRecordNotFound
	case errors.Is(err, service.ErrReturnNotFound), errors.Is(err, order.ErrOrderNotFound):
		return returnNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
