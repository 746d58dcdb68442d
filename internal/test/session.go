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
package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// SessionKey 测试服务器把会话直接放在 gin.Context 里, 不经过 redis
const SessionKey = "_session"

var errNoSession = errors.New("测试请求没有设置会话")

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// WithSession 给测试服务器的每个请求带上固定的登录态
func WithSession(claims session.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(SessionKey, session.NewMemorySession(claims))
	}
}

// StaffClaims 后台员工的登录态, role 对应 session 里的 role 字段
func StaffClaims(uid int64, role string) session.Claims {
	return session.Claims{
		Uid:  uid,
		Data: map[string]string{"role": role},
	}
}
