package service

import (
	"context"
	"fmt"
	"math"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type INewsService interface {
	Create(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]*dto.NewsResponse, *dto.PaginationMeta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	Update(ctx context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	// Delete soft-deletes: the row stays in storage with deleted_at set.
	Delete(ctx context.Context, id uuid.UUID) error
	GetDeleted(ctx context.Context) ([]*dto.NewsResponse, error)
	Restore(ctx context.Context, id uuid.UUID) error
}

type newsService struct {
	uowFactory      unitofwork.RepositoryFactory
	categoryService ICategoryService
}

func NewNewsService(uowFactory unitofwork.RepositoryFactory, categoryService ICategoryService) INewsService {
	return &newsService{
		uowFactory:      uowFactory,
		categoryService: categoryService,
	}
}

func (s *newsService) Create(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	categoryId, err := uuid.Parse(req.CategoryId)
	if err != nil {
		return nil, apperrors.NewBadRequest("Invalid category ID")
	}

	// The category must exist before any news row is written.
	if _, err := s.categoryService.GetByID(ctx, categoryId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	news := entity.News{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CategoryId:  &categoryId,
	}
	if err := uow.NewsRepository().Create(ctx, &news); err != nil {
		return nil, err
	}

	stored, err := uow.NewsRepository().FindByID(ctx, news.Id)
	if err != nil {
		return nil, err
	}
	return dto.NewNewsResponse(stored), nil
}

func (s *newsService) GetAll(ctx context.Context, page, limit int) ([]*dto.NewsResponse, *dto.PaginationMeta, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.NewsRepository().CountActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	news, err := uow.NewsRepository().FindPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	meta := &dto.PaginationMeta{
		Total:      total,
		Page:       page,
		PerPage:    limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return dto.NewNewsResponses(news), meta, nil
}

func (s *newsService) GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	news, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewNewsResponse(news), nil
}

func (s *newsService) Update(ctx context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	news, err := s.findActive(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Description != nil {
		news.Description = *req.Description
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NewsRepository().Save(ctx, news); err != nil {
		return nil, err
	}
	return dto.NewNewsResponse(news), nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findActive(ctx, id); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NewsRepository().SoftDelete(ctx, id)
}

func (s *newsService) GetDeleted(ctx context.Context) ([]*dto.NewsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	news, err := uow.NewsRepository().FindDeleted(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewNewsResponses(news), nil
}

// Restore succeeds only when the target is currently soft-deleted.
func (s *newsService) Restore(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	news, err := uow.NewsRepository().FindByIDWithDeleted(ctx, id)
	if err != nil {
		return err
	}
	if news == nil {
		return apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", id))
	}
	if !news.IsDeleted {
		return apperrors.NewBadRequest(fmt.Sprintf("News with ID %q is not deleted", id))
	}

	return uow.NewsRepository().Restore(ctx, id)
}

func (s *newsService) findActive(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	news, err := uow.NewsRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", id))
	}
	return news, nil
}
