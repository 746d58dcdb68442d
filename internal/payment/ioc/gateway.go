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
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	"github.com/gotomicro/ego/core/elog"
)

// InitGateways 只注册配置里启用的网关
func InitGateways() *gateway.Gateways {
	var gws []gateway.Gateway
	if cfg := InitSnapConfig(); cfg.Enabled {
		gws = append(gws, InitSnapGateway(cfg))
	}
	if cfg := InitWechatConfig(); cfg.Enabled {
		gws = append(gws, InitWechatGateway(cfg))
	}
	res := gateway.NewGateways(gws...)
	elog.DefaultLogger.Info("支付网关初始化完成", elog.Any("gateways", res.Names()))
	return res
}
