package entity

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	Id          uuid.UUID
	Title       string
	Description string
	CategoryId  *uuid.UUID
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
