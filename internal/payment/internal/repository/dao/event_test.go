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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGormDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestPaymentEventDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "写入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `payment_events` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				return mockDB
			},
			wantID: 7,
		},
		{
			name: "重复通知",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `payment_events` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrDuplicatedEvent,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `payment_events` .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("写入支付通知记录失败: 数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewPaymentEventGORMDAO(newMockGormDB(t, tc.mock(t)))
			id, err := d.Insert(context.Background(), PaymentEvent{
				Gateway: "snap", TransactionId: "tx-1", RawStatus: "settlement",
				Status: 1, OrderSn: "SN1", Amount: 100,
			})
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
				return
			}
			if errors.Is(err, tc.wantErr) {
				return
			}
			assert.EqualError(t, err, tc.wantErr.Error())
		})
	}
}

func TestPaymentEventDAO_FindByKey(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		want    PaymentEvent
		wantErr error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "gateway", "transaction_id", "raw_status", "transition"}).
					AddRow(7, "snap", "tx-1", "settlement", "awaiting_payment->paid")
				mock.ExpectQuery("^SELECT \\* FROM `payment_events` WHERE gateway = \\? AND transaction_id = \\? AND raw_status = \\?").
					WillReturnRows(rows)
				return mockDB
			},
			want: PaymentEvent{Id: 7, Gateway: "snap", TransactionId: "tx-1", RawStatus: "settlement", Transition: "awaiting_payment->paid"},
		},
		{
			name: "不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("^SELECT \\* FROM `payment_events`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				return mockDB
			},
			wantErr: ErrEventNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewPaymentEventGORMDAO(newMockGormDB(t, tc.mock(t)))
			evt, err := d.FindByKey(context.Background(), "snap", "tx-1", "settlement")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, evt)
		})
	}
}

func TestPaymentEventDAO_ListLatestByOrderSN(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "order_sn", "gateway", "transaction_id", "raw_status"}).
		AddRow(3, "SN1", "snap", "tx-a", "settlement").
		AddRow(4, "SN1", "snap", "tx-b", "settlement")
	mock.ExpectQuery("SELECT \\* FROM `payment_events` WHERE order_sn = \\? ORDER BY id ASC FOR SHARE").
		WithArgs("SN1").
		WillReturnRows(rows)
	d := NewPaymentEventGORMDAO(newMockGormDB(t, mockDB))
	evts, err := d.ListLatestByOrderSN(context.Background(), "SN1")
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, "tx-a", evts[0].TransactionId)
	assert.Equal(t, "tx-b", evts[1].TransactionId)
	assert.NoError(t, mock.ExpectationsWereMet())
}
