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
	"time"

	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
)

type SnapConfig struct {
	Enabled   bool          `yaml:"enabled"`
	ServerKey string        `yaml:"serverKey"`
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
}

func InitSnapConfig() SnapConfig {
	cfg := SnapConfig{
		Timeout: 10 * time.Second,
	}
	err := econf.UnmarshalKey("payment.snap", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitSnapGateway(cfg SnapConfig) *gateway.SnapGateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return gateway.NewSnapGateway(client, cfg.ServerKey)
}
