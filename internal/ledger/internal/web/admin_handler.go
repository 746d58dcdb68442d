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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/materia/internal/ledger/internal/domain"
	"github.com/ecodeclub/materia/internal/ledger/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const defaultPageLimit = 20

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/stock")
	g.POST("/adjust", ginx.BS[AdjustReq](h.Adjust))
	g.POST("/detail", ginx.B[StockDetailReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/audit", ginx.B[AuditReq](h.Audit))
}

// Adjust 人工调整库存, 盘点入库和报损都走这里
func (h *AdminHandler) Adjust(ctx *ginx.Context, req AdjustReq, sess session.Session) (ginx.Result, error) {
	actor := fmt.Sprintf("staff:%d", sess.Claims().Uid)
	m, err := h.svc.Adjust(ctx.Request.Context(), req.ProductID, req.Delta, req.RefSN, actor, req.Note)
	switch {
	case err == nil:
		return ginx.Result{Data: newMovement(m)}, nil
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, nil
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req StockDetailReq) (ginx.Result, error) {
	var (
		eg        errgroup.Group
		quantity  int64
		movements []domain.Movement
		total     int64
	)
	eg.Go(func() error {
		var err error
		quantity, err = h.svc.CurrentStock(ctx.Request.Context(), req.ProductID)
		return err
	})
	eg.Go(func() error {
		var err error
		movements, total, err = h.svc.ListMovements(ctx.Request.Context(), req.ProductID, req.Offset, h.limit(req.Limit))
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StockDetailResp{
			ProductID: req.ProductID,
			Quantity:  quantity,
			Total:     total,
			Movements: slice.Map(movements, func(idx int, src domain.Movement) Movement {
				return newMovement(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	stocks, total, err := h.svc.ListStocks(ctx.Request.Context(), req.Offset, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StockListResp{
			Total: total,
			Stocks: slice.Map(stocks, func(idx int, src domain.Stock) Stock {
				return Stock{ProductID: src.ProductID, Quantity: src.Quantity, Utime: src.Utime}
			}),
		},
	}, nil
}

func (h *AdminHandler) Audit(ctx *ginx.Context, req AuditReq) (ginx.Result, error) {
	res, err := h.svc.Audit(ctx.Request.Context(), req.ProductID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AuditResp{
			ProductID:  res.ProductID,
			Counter:    res.Counter,
			LedgerSum:  res.LedgerSum,
			Drift:      res.Drift(),
			Consistent: res.Consistent(),
		},
	}, nil
}

func (h *AdminHandler) limit(l int) int {
	if l <= 0 || l > 100 {
		return defaultPageLimit
	}
	return l
}
