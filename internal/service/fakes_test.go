package service

import (
	"context"
	"sort"
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/contract"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/apperrors"

	"github.com/google/uuid"
)

// In-memory repository fakes standing in for the GORM implementations.

type fakeCategoryRepo struct {
	items map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	for _, existing := range r.items {
		if existing.CategoryName == category.CategoryName {
			return apperrors.NewConflict("Category name already exists")
		}
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	cp := *category
	r.items[category.Id] = &cp
	return nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	cp := *category
	r.items[category.Id] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		result = append(result, &cp)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeNewsRepo struct {
	items      map[uuid.UUID]*entity.News
	categories *fakeCategoryRepo
}

func newFakeNewsRepo(categories *fakeCategoryRepo) *fakeNewsRepo {
	return &fakeNewsRepo{
		items:      make(map[uuid.UUID]*entity.News),
		categories: categories,
	}
}

func (r *fakeNewsRepo) withCategory(n *entity.News) *entity.News {
	cp := *n
	if cp.CategoryId != nil {
		if c, ok := r.categories.items[*cp.CategoryId]; ok {
			cc := *c
			cp.Category = &cc
		}
	}
	return &cp
}

func (r *fakeNewsRepo) Create(_ context.Context, news *entity.News) error {
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now()
	}
	news.UpdatedAt = news.CreatedAt
	cp := *news
	r.items[news.Id] = &cp
	return nil
}

func (r *fakeNewsRepo) Save(_ context.Context, news *entity.News) error {
	news.UpdatedAt = time.Now()
	cp := *news
	r.items[news.Id] = &cp
	return nil
}

func (r *fakeNewsRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if n, ok := r.items[id]; ok {
		now := time.Now()
		n.DeletedAt = &now
		n.IsDeleted = true
	}
	return nil
}

func (r *fakeNewsRepo) Restore(_ context.Context, id uuid.UUID) error {
	if n, ok := r.items[id]; ok {
		n.DeletedAt = nil
		n.IsDeleted = false
	}
	return nil
}

func (r *fakeNewsRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.News, error) {
	n, ok := r.items[id]
	if !ok || n.IsDeleted {
		return nil, nil
	}
	return r.withCategory(n), nil
}

func (r *fakeNewsRepo) FindByIDWithDeleted(_ context.Context, id uuid.UUID) (*entity.News, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(n), nil
}

func (r *fakeNewsRepo) FindPage(_ context.Context, limit, offset int) ([]*entity.News, error) {
	active := make([]*entity.News, 0, len(r.items))
	for _, n := range r.items {
		if !n.IsDeleted {
			active = append(active, n)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	if offset >= len(active) {
		return []*entity.News{}, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}

	result := make([]*entity.News, 0, end-offset)
	for _, n := range active[offset:end] {
		result = append(result, r.withCategory(n))
	}
	return result, nil
}

func (r *fakeNewsRepo) FindDeleted(_ context.Context) ([]*entity.News, error) {
	result := make([]*entity.News, 0)
	for _, n := range r.items {
		if n.IsDeleted {
			result = append(result, r.withCategory(n))
		}
	}
	return result, nil
}

func (r *fakeNewsRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, n := range r.items {
		if !n.IsDeleted {
			count++
		}
	}
	return count, nil
}

type fakeUnitOfWork struct {
	categories *fakeCategoryRepo
	news       *fakeNewsRepo
}

func (u *fakeUnitOfWork) CategoryRepository() contract.CategoryRepository { return u.categories }
func (u *fakeUnitOfWork) NewsRepository() contract.NewsRepository         { return u.news }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	categories := newFakeCategoryRepo()
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			categories: categories,
			news:       newFakeNewsRepo(categories),
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}
