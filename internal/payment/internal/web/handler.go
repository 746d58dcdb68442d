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
	"net/http"

	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/ecodeclub/materia/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// PublicRoutes 网关回调不带登录态
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.Any("/pay/notify/:gateway", h.Notify)
}

// Notify 200 表示处理完成, 400 表示通知本身不可信或无法处理, 500 让网关稍后重试
func (h *Handler) Notify(ctx *gin.Context) {
	gw := ctx.Param("gateway")
	outcome, err := h.svc.HandleNotification(ctx.Request.Context(), gw, ctx.Request)
	switch outcome.Result {
	case domain.ResultAccepted:
		h.l.Info("支付通知处理完成",
			elog.String("gateway", gw),
			elog.Any("duplicate", outcome.Duplicate),
			elog.String("transition", outcome.Transition),
			elog.String("anomaly", string(outcome.Anomaly)))
		ctx.JSON(http.StatusOK, NotifyResp{Code: "SUCCESS"})
	case domain.ResultRejected:
		h.l.Warn("拒绝支付通知", elog.String("gateway", gw), elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, NotifyResp{Code: "FAIL", Message: "rejected"})
	default:
		h.l.Error("支付通知处理失败, 等待网关重试", elog.String("gateway", gw), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, NotifyResp{Code: "FAIL", Message: "retry later"})
	}
}
