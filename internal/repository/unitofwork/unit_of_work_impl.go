package unitofwork

import (
	"context"

	"newsroom-be/internal/repository/contract"
	"newsroom-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{db: db}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &UnitOfWorkImpl{db: f.db}
}

type UnitOfWorkImpl struct {
	db *gorm.DB
}

func (u *UnitOfWorkImpl) CategoryRepository() contract.CategoryRepository {
	return implementation.NewCategoryRepository(u.db)
}

func (u *UnitOfWorkImpl) NewsRepository() contract.NewsRepository {
	return implementation.NewNewsRepository(u.db)
}
