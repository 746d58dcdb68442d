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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 按 server, method, 路由模板, 状态码统计请求耗时和次数
type MetricsBuilder struct {
	server     string
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder web 和 admin 两个 server 共用同一组指标, 用 server 标签区分
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	labels := []string{"server", "method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "materia",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "materia",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	return &MetricsBuilder{
		server:     server,
		summaryVec: register(reg, summaryVec),
		counterVec: register(reg, counterVec),
	}
}

// register 重复注册时复用已经注册的指标
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(C)
		}
		panic(err)
	}
	return c
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有匹配到路由的请求不按原始路径打点, 避免标签爆炸
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.summaryVec.WithLabelValues(b.server, ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(b.server, ctx.Request.Method, path, status).Inc()
	}
}
