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

package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stock struct {
	Id        int64
	ProductId int64
	Quantity  int64
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewGormTracingPluginWithTracer(provider.Tracer("test"))))

	mock.ExpectQuery("SELECT \\* FROM `stocks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "quantity"}).AddRow(1, 100, 5))
	mock.ExpectQuery("SELECT \\* FROM `stocks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "quantity"}))

	ctx := context.Background()
	var s stock
	require.NoError(t, db.WithContext(ctx).Where("product_id = ?", 100).First(&s).Error)
	err = db.WithContext(ctx).Where("product_id = ?", 200).First(&s).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.Equal(t, "stocks SELECT", span.Name())
		assert.Equal(t, codes.Ok, span.Status().Code)
		assert.Contains(t, span.Attributes(), attribute.String("db.table", "stocks"))
	}
}
