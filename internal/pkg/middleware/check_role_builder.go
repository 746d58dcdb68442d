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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleClaimKey 登录态里保存员工角色的字段
const RoleClaimKey = "role"

// CheckRoleMiddlewareBuilder 只放行登录态里 role 在 roles 中的请求
type CheckRoleMiddlewareBuilder struct {
	roles  []string
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (b *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		role := sess.Claims().Get(RoleClaimKey).StringOrDefault("")
		if !slice.Contains(b.roles, role) {
			gctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Error("非法访问 admin 接口",
				elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			return
		}
	}
}
