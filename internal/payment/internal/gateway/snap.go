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

package gateway

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

const SnapName = "snap"

type snapTransactionReq struct {
	TransactionDetails snapTransactionDetails `json:"transaction_details"`
}

type snapTransactionDetails struct {
	OrderID     string      `json:"order_id"`
	GrossAmount json.Number `json:"gross_amount"`
}

type snapTransactionResp struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type snapErrorResp struct {
	ErrorMessages []string `json:"error_messages"`
}

type snapNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// SnapGateway Snap 托管收银台
type SnapGateway struct {
	client    *resty.Client
	serverKey string
	l         *elog.Component
}

// NewSnapGateway client 需要设置好 BaseURL
func NewSnapGateway(client *resty.Client, serverKey string) *SnapGateway {
	return &SnapGateway{
		client:    client.SetBasicAuth(serverKey, ""),
		serverKey: serverKey,
		l:         elog.DefaultLogger,
	}
}

func (g *SnapGateway) Name() string {
	return SnapName
}

func (g *SnapGateway) OpenSession(ctx context.Context, req domain.SessionRequest) (domain.Session, error) {
	var (
		res    snapTransactionResp
		errRes snapErrorResp
	)
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(snapTransactionReq{
			TransactionDetails: snapTransactionDetails{
				OrderID:     req.OrderSN,
				GrossAmount: json.Number(formatAmount(req.Amount)),
			},
		}).
		SetResult(&res).
		SetError(&errRes).
		Post("/snap/v1/transactions")
	if err != nil {
		return domain.Session{}, fmt.Errorf("请求 snap 创建交易失败: %w", err)
	}
	if resp.IsError() {
		return domain.Session{}, fmt.Errorf("snap 创建交易失败, status=%d, msg=%s",
			resp.StatusCode(), strings.Join(errRes.ErrorMessages, ";"))
	}
	if res.Token == "" {
		return domain.Session{}, fmt.Errorf("snap 没有返回 token")
	}
	return domain.Session{Token: res.Token, RedirectURL: res.RedirectURL}, nil
}

func (g *SnapGateway) ParseNotification(ctx context.Context, req *http.Request) (domain.Notification, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %w", ErrMalformedNotification, err)
	}
	var n snapNotification
	if err = json.Unmarshal(body, &n); err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %w", ErrMalformedNotification, err)
	}
	if n.OrderID == "" || n.TransactionID == "" || n.TransactionStatus == "" {
		return domain.Notification{}, fmt.Errorf("%w: 缺少必要字段", ErrMalformedNotification)
	}
	// 没有签名的通知不可能是网关发出来的
	if n.SignatureKey == "" {
		return domain.Notification{}, fmt.Errorf("%w: 缺少 signature_key", ErrSignatureInvalid)
	}
	amount, err := decimal.NewFromString(n.GrossAmount)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w: gross_amount=%s", ErrMalformedNotification, n.GrossAmount)
	}
	return domain.Notification{
		Gateway:       SnapName,
		TransactionID: n.TransactionID,
		RawStatus:     n.TransactionStatus,
		Status:        snapStatus(n.TransactionStatus, n.FraudStatus),
		OrderSN:       n.OrderID,
		Amount:        amount.Shift(2).IntPart(),
		Digest:        domain.Digest(body),
		Attrs: map[string]string{
			"status_code":   n.StatusCode,
			"signature_key": n.SignatureKey,
		},
	}, nil
}

// Verify signature_key = SHA512(order_id + status_code + gross_amount + serverKey)
// gross_amount 用订单上保存的金额计算, 金额被篡改时签名对不上
func (g *SnapGateway) Verify(n domain.Notification, p domain.Payable) error {
	if n.OrderSN != p.SN {
		return fmt.Errorf("%w: order_id 与订单不一致", ErrSignatureInvalid)
	}
	expected := g.signature(n.OrderSN, n.Attrs["status_code"], formatAmount(p.Total))
	actual := strings.ToLower(n.Attrs["signature_key"])
	if subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) != 1 {
		return fmt.Errorf("%w: signature_key 不匹配", ErrSignatureInvalid)
	}
	return nil
}

func (g *SnapGateway) signature(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + g.serverKey))
	return hex.EncodeToString(sum[:])
}

func snapStatus(transactionStatus, fraudStatus string) domain.Status {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return domain.StatusPending
		case "deny":
			return domain.StatusDenied
		default:
			return domain.StatusSettled
		}
	case "settlement":
		return domain.StatusSettled
	case "pending":
		return domain.StatusPending
	case "deny":
		return domain.StatusDenied
	case "cancel":
		return domain.StatusCancelled
	case "expire":
		return domain.StatusExpired
	default:
		return domain.StatusUnknown
	}
}

// formatAmount 分转成保留两位小数的元
func formatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
