package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id           uuid.UUID
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
