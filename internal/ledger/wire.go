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

package ledger

import (
	"sync"

	"github.com/ecodeclub/materia/internal/ledger/internal/job"
	"github.com/ecodeclub/materia/internal/ledger/internal/repository"
	"github.com/ecodeclub/materia/internal/ledger/internal/repository/dao"
	"github.com/ecodeclub/materia/internal/ledger/internal/service"
	"github.com/ecodeclub/materia/internal/ledger/internal/web"
	"github.com/ecodeclub/materia/internal/pkg/gormx"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitService,
		web.NewAdminHandler,
		initAuditStockJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewStockGORMDAO(db)
		svc = service.NewService(repository.NewStockRepository(d), gormx.NewTxRunner(db))
	})
	return svc
}

func initAuditStockJob(svc Service) *AuditStockJob {
	return job.NewAuditStockJob(svc, 100)
}
