package contract

import (
	"context"

	"newsroom-be/internal/entity"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Save(ctx context.Context, category *entity.Category) error
	// Delete removes the row physically. Returns the number of rows affected
	// so callers can distinguish a missing id.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// FindByID returns nil, nil when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Count(ctx context.Context) (int64, error)
}
