package controller

import (
	"strconv"
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

const newsListKey = "all_news"

func newsItemKey(id string) string {
	return "news:" + id
}

// newsListPayload is the cached shape of the list endpoint response.
type newsListPayload struct {
	News       []*dto.NewsResponse `json:"news"`
	Pagination *dto.PaginationMeta `json:"pagination"`
}

type INewsController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetDeleted(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type newsController struct {
	service service.INewsService
	cache   *responseCache
}

func NewNewsController(svc service.INewsService, store cache.Store, log logger.ILogger, ttl time.Duration) INewsController {
	return &newsController{
		service: svc,
		cache:   newResponseCache(store, log, ttl),
	}
}

func (c *newsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/news")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	// Registered before ":id" so the literal segment wins.
	h.Get("/deleted", c.GetDeleted)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post("/restore/:id", c.Restore)
}

func (c *newsController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNewsRequest
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

	c.cache.invalidate(ctx.Context(), newsListKey)

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse(fiber.StatusCreated, fiber.Map{"news": res}))
}

func (c *newsController) GetAll(ctx *fiber.Ctx) error {
	page := queryInt(ctx, "page", 1)
	limit := queryInt(ctx, "limit", 10)

	var cached newsListPayload
	if c.cache.get(ctx.Context(), newsListKey, &cached) {
		return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
			fiber.Map{"news": cached.News, "pagination": cached.Pagination}))
	}

	news, meta, err := c.service.GetAll(ctx.Context(), page, limit)
	if err != nil {
		return err
	}

	c.cache.set(ctx.Context(), newsListKey, newsListPayload{News: news, Pagination: meta})

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"news": news, "pagination": meta}))
}

func (c *newsController) GetDeleted(ctx *fiber.Ctx) error {
	res, err := c.service.GetDeleted(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, fiber.Map{"news": res}))
}

func (c *newsController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid news ID")
	}

	key := newsItemKey(idParam)

	var cached dto.NewsResponse
	if c.cache.get(ctx.Context(), key, &cached) {
		return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
			fiber.Map{"news": &cached, "fromCache": true}))
	}

	res, err := c.service.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}

	c.cache.set(ctx.Context(), key, res)

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"news": res, "fromCache": false}))
}

func (c *newsController) Update(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid news ID")
	}

	var req dto.UpdateNewsRequest
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

	c.cache.invalidate(ctx.Context(), newsListKey, newsItemKey(idParam))

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, fiber.Map{"updated": res}))
}

func (c *newsController) Delete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid news ID")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	c.cache.invalidate(ctx.Context(), newsListKey, newsItemKey(idParam))

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"message": "News deleted successfully"}))
}

func (c *newsController) Restore(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.NewBadRequest("Invalid news ID")
	}

	if err := c.service.Restore(ctx.Context(), id); err != nil {
		return err
	}

	c.cache.invalidate(ctx.Context(), newsListKey, newsItemKey(idParam))

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK,
		fiber.Map{"message": "News restored successfully"}))
}

// queryInt coerces a query parameter to a positive integer, falling back to
// the default on anything non-numeric or below 1.
func queryInt(ctx *fiber.Ctx, name string, fallback int) int {
	v, err := strconv.Atoi(ctx.Query(name, strconv.Itoa(fallback)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
