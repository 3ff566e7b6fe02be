package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy applies ordering.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination applies limit/offset.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// Preload eager-loads a relation.
type Preload struct {
	Relation string
}

func (s Preload) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload(s.Relation)
}

// WithDeleted lifts GORM's implicit active-rows-only scope.
type WithDeleted struct{}

func (s WithDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// OnlyDeleted selects soft-deleted rows, bypassing the default scope.
type OnlyDeleted struct{}

func (s OnlyDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}
