package dto

import (
	"time"

	"newsroom-be/internal/entity"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,max=100"`
	Description  string `json:"description" validate:"required"`
}

type UpdateCategoryRequest struct {
	Id           uuid.UUID `json:"-"`
	CategoryName string    `json:"categoryName" validate:"required,max=100"`
}

type CategoryResponse struct {
	Id           uuid.UUID `json:"id"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		Id:           c.Id,
		CategoryName: c.CategoryName,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = NewCategoryResponse(c)
	}
	return result
}
