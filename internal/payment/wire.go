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

//go:build wireinject

package payment

import (
	"sync"

	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/payment/internal/event"
	"github.com/ecodeclub/materia/internal/payment/internal/gateway"
	"github.com/ecodeclub/materia/internal/payment/internal/repository"
	"github.com/ecodeclub/materia/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/materia/internal/payment/internal/service"
	"github.com/ecodeclub/materia/internal/payment/internal/web"
	"github.com/ecodeclub/materia/internal/payment/ioc"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	orderSvc order.Service,
	gateways *Gateways) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewPaymentEventRepository,
		gormx.NewTxRunner,
		event.NewAnomalyEventProducer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentEventDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentEventGORMDAO(db)
}

// InitGateways 按配置创建支付网关, 下单和回调共用同一组网关
func InitGateways() *Gateways {
	return ioc.InitGateways()
}

func InitSessions(gateways *Gateways) *Sessions {
	return service.NewSessions(gateways)
}

// NewGateways 测试用
func NewGateways(gws ...gateway.Gateway) *Gateways {
	return gateway.NewGateways(gws...)
}
