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

package ioc

import (
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/payment"
	"github.com/ecodeclub/materia/internal/product"
	"github.com/ecodeclub/materia/internal/returns"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,

		payment.InitGateways,
		payment.InitSessions,
		wire.Bind(new(order.PaymentSessions), new(*payment.Sessions)),

		ledger.InitModule,
		wire.FieldsOf(new(*ledger.Module), "Svc", "AdminHdl", "AuditStockJob"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Svc", "Hdl", "AdminHdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Svc", "Hdl", "AdminHdl", "ExpireOrdersJob"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl"),
		returns.InitModule,
		wire.FieldsOf(new(*returns.Module), "Hdl", "AdminHdl"),

		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
