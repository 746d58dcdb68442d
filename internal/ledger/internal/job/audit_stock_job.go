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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/materia/internal/ledger/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ecron.NamedJob = (*AuditStockJob)(nil)

var driftGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "materia",
	Name:      "stock_audit_drift",
	Help:      "库存计数与流水累加不一致的商品数",
})

// AuditStockJob 逐个商品核对库存计数和流水之和
type AuditStockJob struct {
	svc   service.Service
	limit int
	l     *elog.Component
}

func NewAuditStockJob(svc service.Service, limit int) *AuditStockJob {
	return &AuditStockJob{
		svc:   svc,
		limit: limit,
		l:     elog.DefaultLogger,
	}
}

func (j *AuditStockJob) Name() string {
	return "audit_stock_job"
}

func (j *AuditStockJob) Run(ctx context.Context) error {
	drifted, err := j.audit(ctx)
	if err != nil {
		return err
	}
	driftGauge.Set(float64(drifted))
	return nil
}

func (j *AuditStockJob) audit(ctx context.Context) (int, error) {
	drifted := 0
	for offset := 0; ; offset += j.limit {
		stocks, _, err := j.svc.ListStocks(ctx, offset, j.limit)
		if err != nil {
			return drifted, fmt.Errorf("分页查询库存失败: %w", err)
		}
		for _, s := range stocks {
			res, err := j.svc.Audit(ctx, s.ProductID)
			if err != nil {
				j.l.Error("核对库存失败",
					elog.Int64("productID", s.ProductID),
					elog.FieldErr(err))
				continue
			}
			if !res.Consistent() {
				drifted++
				j.l.Error("库存计数与流水不一致",
					elog.Int64("productID", res.ProductID),
					elog.Int64("counter", res.Counter),
					elog.Int64("ledgerSum", res.LedgerSum))
			}
		}
		if len(stocks) < j.limit {
			return drifted, nil
		}
	}
}
