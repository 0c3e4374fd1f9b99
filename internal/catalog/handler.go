package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/models", h.getModels)
	// register before the :slug route so "featured" is not taken for a slug
	app.Get("/api/v1/models/featured", h.getFeaturedModels)
	app.Get("/api/v1/models/:slug", h.getModel)
}

// getModels returns the catalogue, optionally narrowed by the same
// category/search predicates the catalogue page applies locally.
func (h *Handler) getModels(c *fiber.Ctx) error {
	categoryID := AllCategories
	if v := c.Query("category"); v != "" && v != "all" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category"})
		}
		categoryID = id
	}

	models := Filter(h.service.List(), categoryID, c.Query("q"))
	return c.JSON(models)
}

func (h *Handler) getFeaturedModels(c *fiber.Ctx) error {
	return c.JSON(h.service.Featured())
}

func (h *Handler) getModel(c *fiber.Ctx) error {
	detail, err := h.service.Detail(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Model not found"})
	}
	return c.JSON(detail)
}
