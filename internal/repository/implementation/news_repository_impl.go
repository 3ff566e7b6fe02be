package implementation

import (
	"context"
	"errors"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/mapper"
	"newsroom-be/internal/model"
	"newsroom-be/internal/repository/contract"
	"newsroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NewsMapper
}

func NewNewsRepository(db *gorm.DB) contract.NewsRepository {
	return &NewsRepositoryImpl{
		db:     db,
		mapper: mapper.NewNewsMapper(),
	}
}

func (r *NewsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NewsRepositoryImpl) Create(ctx context.Context, news *entity.News) error {
	m := r.mapper.ToModel(news)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category := news.Category
	*news = *r.mapper.ToEntity(m)
	news.Category = category
	return nil
}

func (r *NewsRepositoryImpl) Save(ctx context.Context, news *entity.News) error {
	m := r.mapper.ToModel(news)
	if err := r.db.WithContext(ctx).Omit("Category").Save(m).Error; err != nil {
		return err
	}
	category := news.Category
	*news = *r.mapper.ToEntity(m)
	news.Category = category
	return nil
}

func (r *NewsRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.News{}, id).Error
}

func (r *NewsRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&model.News{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *NewsRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.News, error) {
	var m model.News
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NewsRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	return r.findOne(ctx,
		specification.ByID{ID: id},
		specification.Preload{Relation: "Category"},
	)
}

func (r *NewsRepositoryImpl) FindByIDWithDeleted(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	return r.findOne(ctx,
		specification.WithDeleted{},
		specification.ByID{ID: id},
		specification.Preload{Relation: "Category"},
	)
}

func (r *NewsRepositoryImpl) FindPage(ctx context.Context, limit, offset int) ([]*entity.News, error) {
	var models []*model.News
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.Preload{Relation: "Category"},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NewsRepositoryImpl) FindDeleted(ctx context.Context) ([]*entity.News, error) {
	var models []*model.News
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OnlyDeleted{},
		specification.Preload{Relation: "Category"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NewsRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.News{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
