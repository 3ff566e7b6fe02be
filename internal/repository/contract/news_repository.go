package contract

import (
	"context"

	"newsroom-be/internal/entity"

	"github.com/google/uuid"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	Save(ctx context.Context, news *entity.News) error
	// SoftDelete stamps deleted_at; the row stays in storage.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Restore clears deleted_at on a soft-deleted row.
	Restore(ctx context.Context, id uuid.UUID) error
	// FindByID returns an active row with its category joined, or nil, nil.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error)
	// FindByIDWithDeleted looks the row up regardless of soft-delete state.
	FindByIDWithDeleted(ctx context.Context, id uuid.UUID) (*entity.News, error)
	// FindPage returns active rows ordered by created_at descending.
	FindPage(ctx context.Context, limit, offset int) ([]*entity.News, error)
	FindDeleted(ctx context.Context) ([]*entity.News, error)
	CountActive(ctx context.Context) (int64, error)
}
