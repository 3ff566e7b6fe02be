package service

import (
	"context"
	"fmt"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/apperrors"

	"github.com/google/uuid"
)

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	// Delete removes the category physically; referencing news cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{uowFactory: uowFactory}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.Category{
		Id:           uuid.New(),
		CategoryName: req.CategoryName,
	}
	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return dto.NewCategoryResponse(&category), nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryResponses(categories), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", id))
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", req.Id))
	}

	category.CategoryName = req.CategoryName
	if err := uow.CategoryRepository().Save(ctx, category); err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.CategoryRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", id))
	}
	return nil
}
