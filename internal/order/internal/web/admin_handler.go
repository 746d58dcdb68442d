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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[OrderSNReq](h.Detail))
	g.POST("/fulfillment/advance", ginx.BS[AdvanceFulfillmentReq](h.AdvanceFulfillment))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.Cancel))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), domain.OrderStatus(req.Status), req.Offset, limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListOrdersResp(orders, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderSNReq) (ginx.Result, error) {
	order, err := h.svc.GetOrder(ctx.Request.Context(), req.SN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

// AdvanceFulfillment 推进履约: 处理中、已发货、已签收、已完成
func (h *AdminHandler) AdvanceFulfillment(ctx *ginx.Context, req AdvanceFulfillmentReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.AdvanceFulfillment(ctx.Request.Context(), req.SN,
		domain.OrderStatus(req.Next), fmt.Sprintf("staff:%d", sess.Claims().Uid))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

// Cancel 员工取消订单, 已支付的订单会归还库存
func (h *AdminHandler) Cancel(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	if req.Reason == "" {
		return ginx.Result{Code: invalidRequestResult.Code, Msg: "取消原因不能为空"}, nil
	}
	err := h.svc.CancelOrder(ctx.Request.Context(), req.SN, fmt.Sprintf("staff:%d", sess.Claims().Uid), req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
