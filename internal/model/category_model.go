package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryName string    `gorm:"column:category_name;type:varchar(100);not null;uniqueIndex"`
	News         []News    `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "category"
}
