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
package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 用内存实现代替 kafka, topic 和 config/local.yaml 中 kafka.topics 保持一致
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		mustLoadConfig()
		type Topic struct {
			Name       string `yaml:"name"`
			Partitions int    `yaml:"partitions"`
		}
		var topics []Topic
		if err := econf.UnmarshalKey("kafka.topics", &topics); err != nil {
			panic(err)
		}
		qq := memory.NewMQ()
		for _, t := range topics {
			if err := qq.CreateTopic(context.Background(), t.Name, t.Partitions); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
