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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/order/internal/domain"
	"github.com/ecodeclub/materia/internal/order/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// requestIDExpiration 同一个 requestID 在这段时间内只能下一次单
const requestIDExpiration = 30 * time.Minute

type Handler struct {
	svc   service.Service
	cache ecache.Cache
	l     *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache, l: elog.DefaultLogger}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.Cancel))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 创建订单, 预占库存并打开支付会话
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if strings.TrimSpace(req.RequestID) == "" {
		return ginx.Result{Code: invalidRequestResult.Code, Msg: "请求ID不能为空"}, nil
	}
	uid := sess.Claims().Uid
	ok, err := h.checkRequestID(ctx.Request.Context(), uid, req.RequestID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return duplicateRequestResult, nil
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		BuyerID: uid,
		Items: slice.Map(req.Items, func(idx int, src OrderItemReq) domain.OrderItem {
			return domain.OrderItem{ProductID: src.ProductID, Quantity: src.Quantity}
		}),
		Address:        req.Address.toDomain(),
		ShippingOption: req.ShippingOption,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		// 下单失败的请求允许用同一个 requestID 重试
		h.releaseRequestID(ctx.Request.Context(), uid, req.RequestID)
		return errorResult(err)
	}
	return ginx.Result{
		Data: CreateOrderResp{
			SN:           order.SN,
			Total:        order.Total,
			ExpireAt:     order.ExpireAt,
			PaymentToken: order.Payment.Token,
			RedirectURL:  order.Payment.RedirectURL,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, uid int64, requestID string) (bool, error) {
	ok, err := h.cache.SetNX(ctx, h.requestKey(uid, requestID), requestID, requestIDExpiration)
	if err != nil {
		return false, fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return ok, nil
}

func (h *Handler) releaseRequestID(ctx context.Context, uid int64, requestID string) {
	if _, err := h.cache.Delete(ctx, h.requestKey(uid, requestID)); err != nil {
		h.l.Warn("删除请求ID失败", elog.String("requestID", requestID), elog.FieldErr(err))
	}
}

// requestKey 请求ID由客户端生成, 按买家隔离
func (h *Handler) requestKey(uid int64, requestID string) string {
	return fmt.Sprintf("order:create:%d:%s", uid, requestID)
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.GetBuyerOrder(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListBuyerOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListOrdersResp(orders, total)}, nil
}

// Cancel 买家取消待支付的订单
func (h *Handler) Cancel(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelBuyerOrder(ctx.Request.Context(), req.SN, sess.Claims().Uid, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
