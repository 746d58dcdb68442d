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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/ecodeclub/materia/internal/product/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// syncGroup 主数据同步只需要一个消费组
const syncGroup = "materia_product_sync"

// ProductConsumer 把主数据系统推过来的商品写入本地目录, 按 SN 幂等
type ProductConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	l        *elog.Component
	closed   atomic.Bool
}

func NewProductConsumer(svc service.Service, q mq.MQ) (*ProductConsumer, error) {
	consumer, err := q.Consumer(ProductEventTopic, syncGroup)
	if err != nil {
		return nil, fmt.Errorf("订阅 %s 失败: %w", ProductEventTopic, err)
	}
	return &ProductConsumer{
		svc:      svc,
		consumer: consumer,
		l:        elog.DefaultLogger.With(elog.FieldComponentName("product.sync")),
	}, nil
}

// Consume 处理一条消息, 返回同步后的商品ID
func (c *ProductConsumer) Consume(ctx context.Context) (int64, error) {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return 0, fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ProductEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return 0, fmt.Errorf("解析商品消息失败 offset=%d: %w", msg.Offset, err)
	}
	id, err := c.svc.Save(ctx, evt.ToDomain())
	if err != nil {
		return 0, fmt.Errorf("保存商品 %s 失败: %w", evt.SN, err)
	}
	return id, nil
}

func (c *ProductConsumer) Start(ctx context.Context) {
	go func() {
		for {
			id, err := c.Consume(ctx)
			switch {
			case ctx.Err() != nil || c.closed.Load():
				return
			case err != nil:
				// 坏消息跳过, 不阻塞后面的同步
				c.l.Error("同步商品失败", elog.FieldErr(err))
			default:
				c.l.Debug("同步商品成功", elog.Int64("id", id))
			}
		}
	}()
}

func (c *ProductConsumer) Stop(_ context.Context) error {
	c.closed.Store(true)
	return c.consumer.Close()
}
