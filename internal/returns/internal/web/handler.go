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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/returns/internal/domain"
	"github.com/ecodeclub/materia/internal/returns/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/return")
	g.POST("/create", ginx.BS[CreateReturnReq](h.Create))
	g.POST("/detail", ginx.BS[ReturnSNReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Create 买家对已完成的订单申请整单退货
func (h *Handler) Create(ctx *ginx.Context, req CreateReturnReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.RequestReturn(ctx.Request.Context(), domain.ReturnRequest{
		OrderSN: req.OrderSN,
		BuyerID: sess.Claims().Uid,
		Reason:  req.Reason,
		Items: slice.Map(req.Items, func(idx int, src ReturnItemReq) domain.ReturnItem {
			return domain.ReturnItem{
				ProductID: src.ProductID,
				Quantity:  src.Quantity,
				Condition: domain.Condition(src.Condition),
				Reason:    src.Reason,
			}
		}),
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ReturnSNReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.GetBuyerReturn(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newReturnRequest(r)}, nil
}
