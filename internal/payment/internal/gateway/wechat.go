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
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/materia/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
)

const WechatName = "wechat"

var wechatTradeStates = map[string]domain.Status{
	"SUCCESS":    domain.StatusSettled,   // 支付成功
	"NOTPAY":     domain.StatusPending,   // 未支付
	"USERPAYING": domain.StatusPending,   // 用户支付中（付款码支付）
	"PAYERROR":   domain.StatusDenied,    // 支付失败(其他原因，如银行返回失败)
	"CLOSED":     domain.StatusCancelled, // 已关闭
	"REVOKED":    domain.StatusCancelled, // 已撤销（付款码支付）
}

//go:generate mockgen -source=./wechat.go -package=gatewaymocks -destination=./mocks/wechat.mock.go NativeAPIService NotifyParser
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
}

// NotifyParser 对应 *notify.Handler, 负责验签和解密
type NotifyParser interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

// WechatGateway 微信 Native 支付
type WechatGateway struct {
	svc       NativeAPIService
	parser    NotifyParser
	appID     string
	mchID     string
	notifyURL string
	l         *elog.Component
}

func NewWechatGateway(svc NativeAPIService, parser NotifyParser, appID, mchID, notifyURL string) *WechatGateway {
	return &WechatGateway{
		svc:       svc,
		parser:    parser,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
		l:         elog.DefaultLogger,
	}
}

func (g *WechatGateway) Name() string {
	return WechatName
}

func (g *WechatGateway) OpenSession(ctx context.Context, req domain.SessionRequest) (domain.Session, error) {
	resp, _, err := g.svc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(g.appID),
		Mchid:       core.String(g.mchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(req.OrderSN),
		TimeExpire:  core.Time(time.UnixMilli(req.ExpireAt)),
		NotifyUrl:   core.String(g.notifyURL),
		Amount: &native.Amount{
			Currency: core.String("CNY"),
			Total:    core.Int64(req.Amount),
		},
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("微信预支付失败: %w", err)
	}
	if resp == nil || resp.CodeUrl == nil {
		return domain.Session{}, fmt.Errorf("微信预支付没有返回二维码链接")
	}
	// Native 支付以商户订单号作为关联凭证
	return domain.Session{Token: req.OrderSN, RedirectURL: *resp.CodeUrl}, nil
}

func (g *WechatGateway) ParseNotification(ctx context.Context, req *http.Request) (domain.Notification, error) {
	txn := &payments.Transaction{}
	nr, err := g.parser.ParseNotifyRequest(ctx, req, txn)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}
	if txn.OutTradeNo == nil || txn.TransactionId == nil || txn.TradeState == nil ||
		txn.Amount == nil || txn.Amount.Total == nil {
		return domain.Notification{}, fmt.Errorf("%w: 缺少必要字段", ErrMalformedNotification)
	}
	var plaintext string
	if nr != nil && nr.Resource != nil {
		plaintext = nr.Resource.Plaintext
	}
	return domain.Notification{
		Gateway:       WechatName,
		TransactionID: *txn.TransactionId,
		RawStatus:     *txn.TradeState,
		Status:        wechatTradeStates[*txn.TradeState],
		OrderSN:       *txn.OutTradeNo,
		Amount:        *txn.Amount.Total,
		Digest:        domain.Digest([]byte(plaintext)),
	}, nil
}

// Verify 微信的签名在解析时已经校验过, 这里只核对单号和金额
func (g *WechatGateway) Verify(n domain.Notification, p domain.Payable) error {
	if n.OrderSN != p.SN {
		return fmt.Errorf("%w: out_trade_no 与订单不一致", ErrSignatureInvalid)
	}
	if n.Amount != p.Total {
		return fmt.Errorf("%w: 金额不一致, 通知 %d, 订单 %d", ErrSignatureInvalid, n.Amount, p.Total)
	}
	return nil
}
