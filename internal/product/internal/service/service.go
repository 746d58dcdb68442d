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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/materia/internal/product/internal/domain"
	"github.com/ecodeclub/materia/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("商品不存在")

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	// FindByIDs 找不到的商品不会出现在结果里, 由调用方判断
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	if p.SN == "" || p.Name == "" || p.Unit == "" {
		return 0, fmt.Errorf("商品信息不完整: sn=%s", p.SN)
	}
	if p.Price <= 0 {
		return 0, fmt.Errorf("商品价格非法: sn=%s, price=%d", p.SN, p.Price)
	}
	if p.Status == 0 {
		p.Status = domain.StatusOffShelf
	}
	return s.repo.Save(ctx, p)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: sn=%s", ErrProductNotFound, sn)
	}
	return p, err
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return ps, total, eg.Wait()
}
