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

package returns

import (
	"sync"

	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ecodeclub/materia/internal/pkg/snowflake"
	"github.com/ecodeclub/materia/internal/returns/internal/event"
	"github.com/ecodeclub/materia/internal/returns/internal/repository"
	"github.com/ecodeclub/materia/internal/returns/internal/repository/dao"
	"github.com/ecodeclub/materia/internal/returns/internal/service"
	"github.com/ecodeclub/materia/internal/returns/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	orderSvc order.Service,
	ledgerSvc ledger.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewReturnRepository,
		gormx.NewTxRunner,
		event.NewReturnEventProducer,
		initSNGenerator,
		initApprovalPolicy,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ReturnDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewReturnGORMDAO(db)
}

func initSNGenerator() (snowflake.Generator, error) {
	// 多实例部署时每个实例的 nodeID 必须不同
	nodeID := econf.GetInt("snowflake.nodeID")
	return snowflake.NewNodeGenerator(uint(nodeID), snowflake.BizReturn)
}

func initApprovalPolicy() ApprovalPolicy {
	var p service.ThresholdPolicy
	_ = econf.UnmarshalKey("returns.approval", &p)
	return p
}

func initService(repo repository.ReturnRepository,
	tx gormx.TxRunner,
	orderSvc order.Service,
	ledgerSvc ledger.Service,
	policy ApprovalPolicy,
	gen snowflake.Generator,
	producer event.ReturnEventProducer) Service {
	minLength := econf.GetInt("returns.reasonMinLength")
	if minLength <= 0 {
		minLength = 10
	}
	return service.NewService(repo, tx, orderSvc, ledgerSvc, policy, gen, producer, minLength)
}
