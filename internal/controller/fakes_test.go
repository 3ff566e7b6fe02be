package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/pkg/apperrors"
	"newsroom-be/pkg/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Service stubs backed by maps. Call counters let tests verify when a
// response was served from cache instead of the service.

type stubCategoryService struct {
	items        map[uuid.UUID]*dto.CategoryResponse
	getAllCalls  int
	getByIDCalls int
}

func newStubCategoryService() *stubCategoryService {
	return &stubCategoryService{items: make(map[uuid.UUID]*dto.CategoryResponse)}
}

func (s *stubCategoryService) seed(name string) *dto.CategoryResponse {
	c := &dto.CategoryResponse{
		Id:           uuid.New(),
		CategoryName: name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.items[c.Id] = c
	return c
}

func (s *stubCategoryService) Create(_ context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	for _, c := range s.items {
		if c.CategoryName == req.CategoryName {
			return nil, apperrors.NewConflict("Category name already exists")
		}
	}
	return s.seed(req.CategoryName), nil
}

func (s *stubCategoryService) GetAll(_ context.Context) ([]*dto.CategoryResponse, error) {
	s.getAllCalls++
	result := make([]*dto.CategoryResponse, 0, len(s.items))
	for _, c := range s.items {
		result = append(result, c)
	}
	return result, nil
}

func (s *stubCategoryService) GetByID(_ context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	s.getByIDCalls++
	c, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", id))
	}
	return c, nil
}

func (s *stubCategoryService) Update(_ context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, ok := s.items[req.Id]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", req.Id))
	}
	c.CategoryName = req.CategoryName
	c.UpdatedAt = time.Now()
	return c, nil
}

func (s *stubCategoryService) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound(fmt.Sprintf("Category with ID %q not found", id))
	}
	delete(s.items, id)
	return nil
}

type stubNewsService struct {
	items        map[uuid.UUID]*dto.NewsResponse
	deleted      map[uuid.UUID]*dto.NewsResponse
	getAllCalls  int
	getByIDCalls int
	lastPage     int
	lastLimit    int
}

func newStubNewsService() *stubNewsService {
	return &stubNewsService{
		items:   make(map[uuid.UUID]*dto.NewsResponse),
		deleted: make(map[uuid.UUID]*dto.NewsResponse),
	}
}

func (s *stubNewsService) seed(title string) *dto.NewsResponse {
	n := &dto.NewsResponse{
		Id:          uuid.New(),
		Title:       title,
		Description: "Seeded description.",
		Category: &dto.CategoryResponse{
			Id:           uuid.New(),
			CategoryName: "Seeded",
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.items[n.Id] = n
	return n
}

func (s *stubNewsService) Create(_ context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	categoryId, err := uuid.Parse(req.CategoryId)
	if err != nil {
		return nil, apperrors.NewBadRequest("Invalid category ID")
	}
	n := s.seed(req.Title)
	n.Description = req.Description
	n.Category.Id = categoryId
	return n, nil
}

func (s *stubNewsService) GetAll(_ context.Context, page, limit int) ([]*dto.NewsResponse, *dto.PaginationMeta, error) {
	s.getAllCalls++
	s.lastPage = page
	s.lastLimit = limit
	result := make([]*dto.NewsResponse, 0, len(s.items))
	for _, n := range s.items {
		result = append(result, n)
	}
	meta := &dto.PaginationMeta{
		Total:      int64(len(result)),
		Page:       page,
		PerPage:    limit,
		TotalPages: 1,
	}
	return result, meta, nil
}

func (s *stubNewsService) GetByID(_ context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	s.getByIDCalls++
	n, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", id))
	}
	return n, nil
}

func (s *stubNewsService) Update(_ context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	n, ok := s.items[req.Id]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", req.Id))
	}
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Description != nil {
		n.Description = *req.Description
	}
	n.UpdatedAt = time.Now()
	return n, nil
}

func (s *stubNewsService) Delete(_ context.Context, id uuid.UUID) error {
	n, ok := s.items[id]
	if !ok {
		return apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", id))
	}
	now := time.Now()
	n.DeletedAt = &now
	s.deleted[id] = n
	delete(s.items, id)
	return nil
}

func (s *stubNewsService) GetDeleted(_ context.Context) ([]*dto.NewsResponse, error) {
	result := make([]*dto.NewsResponse, 0, len(s.deleted))
	for _, n := range s.deleted {
		result = append(result, n)
	}
	return result, nil
}

func (s *stubNewsService) Restore(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; ok {
		return apperrors.NewBadRequest(fmt.Sprintf("News with ID %q is not deleted", id))
	}
	n, ok := s.deleted[id]
	if !ok {
		return apperrors.NewNotFound(fmt.Sprintf("News with ID %q not found", id))
	}
	n.DeletedAt = nil
	s.items[id] = n
	delete(s.deleted, id)
	return nil
}

func newCategoryApp(svc *stubCategoryService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.Noop{}))
	NewCategoryController(svc, cache.NewMemoryStore(time.Minute), logger.Noop{}, time.Minute).
		RegisterRoutes(app)
	return app
}

func newNewsApp(svc *stubNewsService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.Noop{}))
	NewNewsController(svc, cache.NewMemoryStore(time.Minute), logger.Noop{}, time.Minute).
		RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
