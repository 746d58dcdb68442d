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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/materia/internal/payment/internal/errs"
	"github.com/ecodeclub/materia/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/anomaly/list", ginx.B[ListAnomaliesReq](h.ListAnomalies))
	g.POST("/event/list", ginx.B[OrderSNReq](h.ListOrderEvents))
}

// ListAnomalies 待人工对账的结算异常
func (h *AdminHandler) ListAnomalies(ctx *ginx.Context, req ListAnomaliesReq) (ginx.Result, error) {
	evts, total, err := h.svc.ListAnomalies(ctx.Request.Context(), req.Offset, limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListPaymentEventsResp(evts, total)}, nil
}

func (h *AdminHandler) ListOrderEvents(ctx *ginx.Context, req OrderSNReq) (ginx.Result, error) {
	evts, err := h.svc.ListOrderEvents(ctx.Request.Context(), req.SN)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListPaymentEventsResp(evts, int64(len(evts)))}, nil
}
