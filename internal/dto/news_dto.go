package dto

import (
	"time"

	"newsroom-be/internal/entity"

	"github.com/google/uuid"
)

type CreateNewsRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=2000,nocode"`
	CategoryId  string `json:"categoryId" validate:"required,uuid4"`
}

// UpdateNewsRequest carries a partial update: nil fields are left untouched.
type UpdateNewsRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" validate:"omitempty,min=1,max=2000,nocode"`
}

type NewsResponse struct {
	Id          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    *CategoryResponse `json:"category"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	DeletedAt   *time.Time        `json:"deletedAt,omitempty"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalPages int   `json:"totalPages"`
}

func NewNewsResponse(n *entity.News) *NewsResponse {
	if n == nil {
		return nil
	}
	return &NewsResponse{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Category:    NewCategoryResponse(n.Category),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   n.DeletedAt,
	}
}

func NewNewsResponses(news []*entity.News) []*NewsResponse {
	result := make([]*NewsResponse, len(news))
	for i, n := range news {
		result[i] = NewNewsResponse(n)
	}
	return result
}
