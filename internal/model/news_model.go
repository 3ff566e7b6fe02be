package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text;not null"`
	CategoryId  *uuid.UUID     `gorm:"column:category_id;type:uuid;index"`
	Category    *Category      `gorm:"foreignKey:CategoryId"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (News) TableName() string {
	return "news"
}
