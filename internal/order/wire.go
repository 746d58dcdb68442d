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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order/internal/event"
	"github.com/ecodeclub/materia/internal/order/internal/job"
	"github.com/ecodeclub/materia/internal/order/internal/repository"
	"github.com/ecodeclub/materia/internal/order/internal/repository/dao"
	"github.com/ecodeclub/materia/internal/order/internal/service"
	"github.com/ecodeclub/materia/internal/order/internal/web"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ecodeclub/materia/internal/pkg/sequencenumber"
	"github.com/ecodeclub/materia/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	ec ecache.Cache,
	ledgerSvc ledger.Service,
	productSvc product.Service,
	sessions PaymentSessions) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		gormx.NewTxRunner,
		sequencenumber.NewGenerator,
		event.NewOrderEventProducer,
		initShippingQuoter,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		initExpireOrdersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initService(repo repository.OrderRepository,
	tx gormx.TxRunner,
	ledgerSvc ledger.Service,
	productSvc product.Service,
	quoter service.ShippingQuoter,
	sessions PaymentSessions,
	gen *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	// 支付窗口, 超过这个时间没有付款的订单会被过期任务关闭
	window := econf.GetDuration("order.paymentWindow")
	if window <= 0 {
		window = time.Hour
	}
	return service.NewService(repo, tx, ledgerSvc, productSvc, quoter, sessions, gen, producer, window)
}

func initShippingQuoter() service.ShippingQuoter {
	var options map[string]service.ShippingOption
	err := econf.UnmarshalKey("shipping.options", &options)
	if err != nil {
		panic(err)
	}
	return service.NewRateTableQuoter(options)
}

func initExpireOrdersJob(svc Service) *ExpireOrdersJob {
	type Config struct {
		BatchSize int           `yaml:"batchSize"`
		Timeout   time.Duration `yaml:"timeout"`
	}
	cfg := Config{BatchSize: 100, Timeout: 30 * time.Second}
	_ = econf.UnmarshalKey("order.sweep", &cfg)
	return job.NewExpireOrdersJob(svc, cfg.BatchSize, cfg.Timeout)
}
