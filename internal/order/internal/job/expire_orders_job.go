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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/materia/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireOrdersJob)(nil)

// ExpireOrdersJob 关闭超过支付截止时间的待支付订单并释放库存
type ExpireOrdersJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
	now     func() time.Time
	l       *elog.Component
}

func NewExpireOrdersJob(svc service.Service, limit int, timeout time.Duration) *ExpireOrdersJob {
	return &ExpireOrdersJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		now:     time.Now,
		l:       elog.DefaultLogger,
	}
}

func (j *ExpireOrdersJob) Name() string {
	return "expire_orders_job"
}

func (j *ExpireOrdersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	now := j.now().UnixMilli()
	for {
		orders, err := j.svc.ListExpiredOrders(ctx, now, j.limit)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}
		expired := 0
		for _, o := range orders {
			err = j.svc.ExpireOrder(ctx, o.SN, now)
			switch {
			case err == nil:
				expired++
			case errors.Is(err, service.ErrInvalidTransition):
				// 在截止时间前付款成功, 或者已经被别人关闭了
				j.l.Debug("订单已不是待支付状态, 跳过", elog.String("sn", o.SN), elog.FieldErr(err))
			default:
				j.l.Error("关闭过期订单失败", elog.String("sn", o.SN), elog.FieldErr(err))
			}
		}
		// 失败的订单下次还会被查出来, 一批都没有关闭成功就留给下一轮
		if len(orders) < j.limit || expired == 0 {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
