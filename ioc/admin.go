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
package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/payment"
	"github.com/ecodeclub/materia/internal/pkg/middleware"
	"github.com/ecodeclub/materia/internal/product"
	"github.com/ecodeclub/materia/internal/returns"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

// 后台只对员工开放, 退货审批的金额上限在 returns 模块里按角色再判断一次
var adminRoles = []string{"staff", "supervisor"}

func InitAdminServer(
	orderHdl *order.AdminHandler,
	ledgerHdl *ledger.AdminHandler,
	paymentHdl *payment.AdminHandler,
	returnHdl *returns.AdminHandler,
	productHdl *product.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "admin").Build())
	res.Use(initCORS())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(adminRoles...).Build())
	productHdl.PrivateRoutes(res.Engine)
	ledgerHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	returnHdl.PrivateRoutes(res.Engine)
	return res
}
