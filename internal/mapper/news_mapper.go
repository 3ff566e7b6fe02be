package mapper

import (
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/model"

	"gorm.io/gorm"
)

type NewsMapper struct {
	categoryMapper *CategoryMapper
}

func NewNewsMapper() *NewsMapper {
	return &NewsMapper{categoryMapper: NewCategoryMapper()}
}

func (m *NewsMapper) ToEntity(n *model.News) *entity.News {
	if n == nil {
		return nil
	}

	// gorm.DeletedAt is struct { Time time.Time; Valid bool }
	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.News{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		CategoryId:  n.CategoryId,
		Category:    m.categoryMapper.ToEntity(n.Category),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   n.DeletedAt.Valid,
	}
}

func (m *NewsMapper) ToModel(n *entity.News) *model.News {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.News{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		CategoryId:  n.CategoryId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *NewsMapper) ToEntities(news []*model.News) []*entity.News {
	entities := make([]*entity.News, len(news))
	for i, n := range news {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
