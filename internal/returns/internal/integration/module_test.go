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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/ledger"
	"github.com/ecodeclub/materia/internal/order"
	"github.com/ecodeclub/materia/internal/product"
	"github.com/ecodeclub/materia/internal/returns"
	"github.com/ecodeclub/materia/internal/returns/internal/errs"
	"github.com/ecodeclub/materia/internal/returns/internal/repository/dao"
	"github.com/ecodeclub/materia/internal/returns/internal/web"
	"github.com/ecodeclub/materia/internal/test"
	testioc "github.com/ecodeclub/materia/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testBuyerID      = int64(456)
	testStaffID      = int64(9)
	testSupervisorID = int64(1)
	testReason       = "到货后发现包装破损, 申请整单退货"
)

type stubSessions struct{}

func (stubSessions) Supports(method string) bool {
	return method == "snap"
}

func (stubSessions) Open(ctx context.Context, o order.Order) (order.PaymentSession, error) {
	return order.PaymentSession{Token: "tok-" + o.SN}, nil
}

func TestReturnsModule(t *testing.T) {
	suite.Run(t, new(ReturnsModuleTestSuite))
}

type ReturnsModuleTestSuite struct {
	suite.Suite
	db          *egorm.Component
	server      *egin.Component
	staff       *egin.Component
	supervisor  *egin.Component
	ledgerSvc   ledger.Service
	productSvc  product.Service
	orderSvc    order.Service
	svc         returns.Service
	productSeq  int
	productSeqM sync.Mutex
}

func (s *ReturnsModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	econf.Set("order.paymentWindow", "30m")
	econf.Set("shipping.options", map[string]any{
		"pickup": map[string]any{"cost": 0, "desc": "门店自提"},
	})
	econf.Set("returns.approval", map[string]any{"threshold": 100000, "supervisorRole": "supervisor"})
	econf.Set("returns.reasonMinLength", 10)
	econf.Set("snowflake.nodeID", 3)

	q := testioc.InitMQ()
	s.ledgerSvc = ledger.InitService(s.db)
	s.productSvc = product.InitService(s.db)
	om, err := order.InitModule(s.db, q, testioc.InitCache(), s.ledgerSvc, s.productSvc, stubSessions{})
	require.NoError(s.T(), err)
	s.orderSvc = om.Svc
	m, err := returns.InitModule(s.db, q, om.Svc, s.ledgerSvc)
	require.NoError(s.T(), err)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	s.server = s.newServer(session.Claims{Uid: testBuyerID}, m.Hdl.PrivateRoutes)
	s.staff = s.newServer(test.StaffClaims(testStaffID, "staff"), m.AdminHdl.PrivateRoutes)
	s.supervisor = s.newServer(test.StaffClaims(testSupervisorID, "supervisor"), m.AdminHdl.PrivateRoutes)
}

func (s *ReturnsModuleTestSuite) newServer(claims session.Claims, routes func(*gin.Engine)) *egin.Component {
	server := egin.Load("server").Build()
	server.Use(test.WithSession(claims))
	routes(server.Engine)
	return server
}

func (s *ReturnsModuleTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "stocks", "stock_movements", "products",
		"return_requests", "return_items"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *ReturnsModuleTestSuite) seedProduct(price, stock int64) int64 {
	s.productSeqM.Lock()
	s.productSeq++
	sn := fmt.Sprintf("p-%d", s.productSeq)
	s.productSeqM.Unlock()
	ctx := context.Background()
	id, err := s.productSvc.Save(ctx, product.Product{
		SN:     sn,
		Name:   "商品-" + sn,
		Unit:   "件",
		Price:  price,
		Status: product.StatusOnShelf,
	})
	require.NoError(s.T(), err)
	_, err = s.ledgerSvc.Adjust(ctx, id, stock, "seed-"+sn, "staff:1", "初始库存")
	require.NoError(s.T(), err)
	return id
}

func (s *ReturnsModuleTestSuite) stockOf(productID int64) int64 {
	res, err := s.ledgerSvc.Audit(context.Background(), productID)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Consistent())
	return res.Counter
}

// completedOrder 下单, 付款, 然后一路履约到已完成
func (s *ReturnsModuleTestSuite) completedOrder(items ...order.OrderItem) order.Order {
	t := s.T()
	ctx := context.Background()
	o, err := s.orderSvc.CreateOrder(ctx, order.Order{
		BuyerID: testBuyerID,
		Items:   items,
		Address: order.Address{
			Receiver: "赵六",
			Phone:    "13600000000",
			Line:     "装修材料市场 2 号",
			City:     "南京",
		},
		ShippingOption: "pickup",
		PaymentMethod:  "snap",
	})
	require.NoError(t, err)
	_, err = s.orderSvc.MarkPaid(ctx, o.SN, time.Now().UnixMilli(), "gateway:snap")
	require.NoError(t, err)
	for _, next := range []order.OrderStatus{order.StatusProcessing, order.StatusShipped,
		order.StatusDelivered, order.StatusCompleted} {
		o, err = s.orderSvc.AdvanceFulfillment(ctx, o.SN, next, "staff:9")
		require.NoError(t, err)
	}
	return o
}

func (s *ReturnsModuleTestSuite) fullReturnReq(o order.Order) web.CreateReturnReq {
	items := make([]web.ReturnItemReq, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, web.ReturnItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Condition: string(returns.ConditionDamagedInTransit),
		})
	}
	return web.CreateReturnReq{OrderSN: o.SN, Reason: testReason, Items: items}
}

func do[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *ReturnsModuleTestSuite) restocks(returnSN string) map[int64]int64 {
	ms, err := s.ledgerSvc.ListMovementsByRef(context.Background(), ledger.ReturnRef(returnSN))
	require.NoError(s.T(), err)
	res := make(map[int64]int64, len(ms))
	for _, m := range ms {
		require.Equal(s.T(), ledger.KindReturnRestock, m.Kind)
		res[m.ProductID] += m.Delta
	}
	return res
}

// TestEndToEnd 库存 5 的商品下单 1 件, 付款, 履约完成, 退货入库后库存回到 5
func (s *ReturnsModuleTestSuite) TestEndToEnd() {
	t := s.T()
	x := s.seedProduct(2500, 5)
	o := s.completedOrder(order.OrderItem{ProductID: x, Quantity: 1})
	assert.Equal(t, int64(4), s.stockOf(x))
	ms, err := s.ledgerSvc.ListMovementsByRef(context.Background(), ledger.OrderRef(o.SN))
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, ledger.KindReservation, ms[0].Kind)
	assert.Equal(t, int64(-1), ms[0].Delta)
	assert.Equal(t, ledger.KindSaleConfirmed, ms[1].Kind)

	created := do[web.ReturnRequest](t, s.server, "/return/create", s.fullReturnReq(o))
	require.Equal(t, 0, created.Code, created.Msg)
	assert.Equal(t, "pending", created.Data.Status)
	assert.Equal(t, int64(2500), created.Data.Amount)
	assert.Equal(t, "none", created.Data.RefundStatus)
	sn := created.Data.SN

	decided := do[web.ReturnRequest](t, s.staff, "/return/decide",
		web.DecideReturnReq{SN: sn, Decision: uint8(returns.DecisionApprove)})
	require.Equal(t, 0, decided.Code, decided.Msg)
	assert.Equal(t, "approved", decided.Data.Status)
	assert.Equal(t, "staff:9", decided.Data.Approver)
	assert.Equal(t, int64(4), s.stockOf(x))

	completed := do[web.ReturnRequest](t, s.staff, "/return/complete", web.ReturnSNReq{SN: sn})
	require.Equal(t, 0, completed.Code, completed.Msg)
	assert.Equal(t, "completed", completed.Data.Status)
	assert.Equal(t, "owed", completed.Data.RefundStatus)
	assert.Equal(t, int64(5), s.stockOf(x))
	assert.Equal(t, map[int64]int64{x: 1}, s.restocks(sn))

	detail := do[web.ReturnRequest](t, s.server, "/return/detail", web.ReturnSNReq{SN: sn})
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, "completed", detail.Data.Status)
	assert.True(t, detail.Data.CompletedAt > 0)
}

// TestReversibility 只有退货的商品入库, 其他商品库存不变
func (s *ReturnsModuleTestSuite) TestReversibility() {
	t := s.T()
	p1 := s.seedProduct(3500, 10)
	p2 := s.seedProduct(8000, 10)
	other := s.seedProduct(100, 7)
	o := s.completedOrder(
		order.OrderItem{ProductID: p1, Quantity: 2},
		order.OrderItem{ProductID: p2, Quantity: 1})
	require.Equal(t, int64(8), s.stockOf(p1))
	require.Equal(t, int64(9), s.stockOf(p2))

	r, err := s.svc.RequestReturn(context.Background(), returns.ReturnRequest{
		OrderSN: o.SN,
		BuyerID: testBuyerID,
		Reason:  testReason,
		Items: []returns.ReturnItem{
			{ProductID: p1, Quantity: 2, Condition: returns.ConditionUnopened},
			{ProductID: p2, Quantity: 1, Condition: returns.ConditionDefective},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2*3500+8000), r.Amount)
	_, err = s.svc.DecideReturn(context.Background(), r.SN, returns.DecisionApprove,
		returns.Approver{ID: testStaffID, Role: "staff"}, "")
	require.NoError(t, err)
	_, err = s.svc.CompleteReturn(context.Background(), r.SN, "staff:9")
	require.NoError(t, err)

	assert.Equal(t, map[int64]int64{p1: 2, p2: 1}, s.restocks(r.SN))
	assert.Equal(t, int64(10), s.stockOf(p1))
	assert.Equal(t, int64(10), s.stockOf(p2))
	assert.Equal(t, int64(7), s.stockOf(other))
}

func (s *ReturnsModuleTestSuite) TestCreate_Rejected() {
	t := s.T()
	p := s.seedProduct(3500, 10)
	done := s.completedOrder(order.OrderItem{ProductID: p, Quantity: 3})
	unpaid, err := s.orderSvc.CreateOrder(context.Background(), order.Order{
		BuyerID:        testBuyerID,
		Items:          []order.OrderItem{{ProductID: p, Quantity: 1}},
		Address:        order.Address{Receiver: "赵六", Phone: "13600000000", Line: "2 号", City: "南京"},
		ShippingOption: "pickup",
		PaymentMethod:  "snap",
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		req      web.CreateReturnReq
		before   func(t *testing.T)
		wantCode int
	}{
		{
			name:     "订单未完成",
			req:      s.fullReturnReq(unpaid),
			before:   func(t *testing.T) {},
			wantCode: errs.OrderNotReturnable.Code,
		},
		{
			name: "部分退货",
			req: web.CreateReturnReq{OrderSN: done.SN, Reason: testReason, Items: []web.ReturnItemReq{
				{ProductID: p, Quantity: 1, Condition: "unopened"},
			}},
			before:   func(t *testing.T) {},
			wantCode: errs.InvalidReturn.Code,
		},
		{
			name: "商品状况非法",
			req: web.CreateReturnReq{OrderSN: done.SN, Reason: testReason, Items: []web.ReturnItemReq{
				{ProductID: p, Quantity: 3, Condition: "used"},
			}},
			before:   func(t *testing.T) {},
			wantCode: errs.InvalidReturn.Code,
		},
		{
			name:     "重复申请",
			req:      s.fullReturnReq(done),
			before: func(t *testing.T) {
				res := do[web.ReturnRequest](t, s.server, "/return/create", s.fullReturnReq(done))
				require.Equal(t, 0, res.Code, res.Msg)
			},
			wantCode: errs.ReturnExists.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.before(t)
			res := do[web.ReturnRequest](t, s.server, "/return/create", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
	var cnt int64
	require.NoError(t, s.db.Model(&dao.ReturnRequest{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func (s *ReturnsModuleTestSuite) TestDecide() {
	t := s.T()
	// 4 * 30000 超过 100000 的审批阈值
	p := s.seedProduct(30000, 10)
	o := s.completedOrder(order.OrderItem{ProductID: p, Quantity: 4})
	created := do[web.ReturnRequest](t, s.server, "/return/create", s.fullReturnReq(o))
	require.Equal(t, 0, created.Code, created.Msg)
	sn := created.Data.SN

	res := do[web.ReturnRequest](t, s.staff, "/return/decide",
		web.DecideReturnReq{SN: sn, Decision: uint8(returns.DecisionReject)})
	assert.Equal(t, errs.InvalidReturn.Code, res.Code)

	res = do[web.ReturnRequest](t, s.staff, "/return/decide",
		web.DecideReturnReq{SN: sn, Decision: uint8(returns.DecisionApprove)})
	assert.Equal(t, errs.ApprovalDenied.Code, res.Code)

	res = do[web.ReturnRequest](t, s.staff, "/return/complete", web.ReturnSNReq{SN: sn})
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)

	res = do[web.ReturnRequest](t, s.supervisor, "/return/decide",
		web.DecideReturnReq{SN: sn, Decision: uint8(returns.DecisionReject), Reason: "瓷砖已经铺贴, 不符合退货条件"})
	require.Equal(t, 0, res.Code, res.Msg)
	assert.Equal(t, "rejected", res.Data.Status)
	assert.Equal(t, "staff:1", res.Data.Approver)

	// 已拒绝的退货单不可再修改
	res = do[web.ReturnRequest](t, s.supervisor, "/return/decide",
		web.DecideReturnReq{SN: sn, Decision: uint8(returns.DecisionApprove)})
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)
	res = do[web.ReturnRequest](t, s.staff, "/return/complete", web.ReturnSNReq{SN: sn})
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)
	assert.Equal(t, int64(6), s.stockOf(p))

	list := do[web.ListReturnsResp](t, s.staff, "/return/list",
		web.ListReturnsReq{Status: uint8(returns.StatusRejected)})
	require.Equal(t, int64(1), list.Data.Total)
	assert.Equal(t, sn, list.Data.Returns[0].SN)
	assert.Len(t, list.Data.Returns[0].Items, 1)

	res = do[web.ReturnRequest](t, s.staff, "/return/detail", web.ReturnSNReq{SN: "R-not-exist"})
	assert.Equal(t, errs.ReturnNotFound.Code, res.Code)
}

// TestCompleteConcurrently 并发完成同一个退货单, 只入库一次
func (s *ReturnsModuleTestSuite) TestCompleteConcurrently() {
	t := s.T()
	p := s.seedProduct(1000, 5)
	o := s.completedOrder(order.OrderItem{ProductID: p, Quantity: 2})
	r, err := s.svc.RequestReturn(context.Background(), returns.ReturnRequest{
		OrderSN: o.SN,
		BuyerID: testBuyerID,
		Reason:  testReason,
		Items:   []returns.ReturnItem{{ProductID: p, Quantity: 2, Condition: returns.ConditionWrongItem}},
	})
	require.NoError(t, err)
	_, err = s.svc.DecideReturn(context.Background(), r.SN, returns.DecisionApprove,
		returns.Approver{ID: testStaffID}, "")
	require.NoError(t, err)

	const n = 5
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.CompleteReturn(context.Background(), r.SN, "staff:9")
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
	assert.Equal(t, map[int64]int64{p: 2}, s.restocks(r.SN))
	assert.Equal(t, int64(5), s.stockOf(p))
}
