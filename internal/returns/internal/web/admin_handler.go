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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
	"github.com/ecodeclub/materia/internal/returns/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/return")
	g.POST("/list", ginx.B[ListReturnsReq](h.List))
	g.POST("/detail", ginx.B[ReturnSNReq](h.Detail))
	g.POST("/decide", ginx.BS[DecideReturnReq](h.Decide))
	g.POST("/complete", ginx.BS[ReturnSNReq](h.Complete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReturnsReq) (ginx.Result, error) {
	rs, total, err := h.svc.ListReturns(ctx.Request.Context(), domain.ReturnStatus(req.Status), req.Offset, limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListReturnsResp{
		Total:   total,
		Returns: slice.Map(rs, func(idx int, src domain.ReturnRequest) ReturnRequest { return newReturnRequest(src) }),
	}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req ReturnSNReq) (ginx.Result, error) {
	r, err := h.svc.GetReturn(ctx.Request.Context(), req.SN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}

// Decide 审批退货, 角色来自登录态里的 role
func (h *AdminHandler) Decide(ctx *ginx.Context, req DecideReturnReq, sess session.Session) (ginx.Result, error) {
	approver := domain.Approver{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	r, err := h.svc.DecideReturn(ctx.Request.Context(), req.SN, domain.Decision(req.Decision), approver, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}

// Complete 退货商品已入库, 记下应退款
func (h *AdminHandler) Complete(ctx *ginx.Context, req ReturnSNReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.CompleteReturn(ctx.Request.Context(), req.SN, fmt.Sprintf("staff:%d", sess.Claims().Uid))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}
