package controller

import (
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/pkg/serverutils"
	"newsroom-be/internal/service"
	"newsroom-be/pkg/apperrors"
	"newsroom-be/pkg/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const categoryListKey = "all_categories"

func categoryItemKey(id string) string {
	return "category:" + id
}

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
	cache   *responseCache
}

func NewCategoryController(svc service.ICategoryService, store cache.Store, log logger.ILogger, ttl time.Duration) ICategoryController {
	return &categoryController{
		service: svc,
		cache:   newResponseCache(store, log, ttl),
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/category")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.cache.invalidate(ctx.Context(), categoryListKey)

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse(fiber.StatusCreated, fiber.Map{"category": res}))
}

func (c *categoryController) GetAll(ctx *fiber.Ctx) error {
	var cached []*dto.CategoryResponse
	if c.cache.get(ctx.Context(), categoryListKey, &cached) {
		return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, fiber.Map{"categories": cached}))
	}

	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	c.cache.set(ctx.Context(), categoryListKey, res)

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, fiber.Map{"categories": res}))
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid category ID")
	}

	key := categoryItemKey(idParam)

	var cached dto.CategoryResponse
	if c.cache.get(ctx.Context(), key, &cached) {
		return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
			fiber.Map{"category": &cached, "fromCache": true}))
	}

	res, err := c.service.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}

	c.cache.set(ctx.Context(), key, res)

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"category": res, "fromCache": false}))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.cache.invalidate(ctx.Context(), categoryListKey, categoryItemKey(idParam))

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, fiber.Map{"updated": res}))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid category ID")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	c.cache.invalidate(ctx.Context(), categoryListKey, categoryItemKey(idParam))

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"message": "Category deleted successfully"}))
}
