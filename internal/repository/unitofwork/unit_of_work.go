package unitofwork

import "newsroom-be/internal/repository/contract"

// UnitOfWork scopes repository access to a single request. Each service
// method is a single persistence call, so no transaction control is exposed.
type UnitOfWork interface {
	CategoryRepository() contract.CategoryRepository
	NewsRepository() contract.NewsRepository
}
