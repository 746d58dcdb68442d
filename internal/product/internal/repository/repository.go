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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/materia/internal/product/internal/domain"
	"github.com/ecodeclub/materia/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(p))
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	return r.toDomain(p), err
}

func (r *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	return r.toDomain(p), err
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	ps, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), err
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		SN:          p.SN,
		Name:        p.Name,
		Description: p.Desc,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Status:      p.Status.ToUint8(),
	}
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:       p.Id,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Description,
		Category: p.Category,
		Unit:     p.Unit,
		Price:    p.Price,
		Status:   domain.Status(p.Status),
		Ctime:    p.Ctime,
		Utime:    p.Utime,
	}
}
