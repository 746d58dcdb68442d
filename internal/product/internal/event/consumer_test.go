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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/materia/internal/product/internal/domain"
	productmocks "github.com/ecodeclub/materia/internal/product/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductConsumer_Consume(t *testing.T) {
	cement := ProductEvent{
		SN:       "cement-42.5",
		Name:     "水泥",
		Category: "胶凝材料",
		Unit:     "袋",
		Price:    3500,
		Status:   uint8(domain.StatusOnShelf),
	}
	valid, err := json.Marshal(cement)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		value   []byte
		before  func(svc *productmocks.MockService)
		wantID  int64
	}{
		{
			name:  "同步成功",
			value: valid,
			before: func(svc *productmocks.MockService) {
				svc.EXPECT().Save(gomock.Any(), domain.Product{
					SN:       "cement-42.5",
					Name:     "水泥",
					Category: "胶凝材料",
					Unit:     "袋",
					Price:    3500,
					Status:   domain.StatusOnShelf,
				}).Return(int64(11), nil)
			},
			wantID: 11,
		},
		{
			name:   "消息格式错误",
			value:  []byte("not-json"),
			before: func(svc *productmocks.MockService) {},
		},
		{
			name:  "保存失败",
			value: valid,
			before: func(svc *productmocks.MockService) {
				svc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("数据库错误"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := productmocks.NewMockService(ctrl)
			tc.before(svc)

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), ProductEventTopic, 1))
			c, err := NewProductConsumer(svc, q)
			require.NoError(t, err)
			defer func() {
				_ = c.Stop(context.Background())
			}()
			p, err := q.Producer(ProductEventTopic)
			require.NoError(t, err)
			_, err = p.Produce(context.Background(), &mq.Message{Topic: ProductEventTopic, Value: tc.value})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			id, err := c.Consume(ctx)
			if tc.wantID == 0 {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
