package order

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Medardo-Design/sitestoliworteck/internal/catalog"
)

// ModelFinder is the slice of the catalog service used to pre-fill the
// order form from a ?model=<slug> deep link.
type ModelFinder interface {
	GetBySlug(slug string) (catalog.Model, error)
}

type Handler struct {
	service *Service
	models  ModelFinder
}

func NewHandler(s *Service, models ModelFinder) *Handler {
	return &Handler{service: s, models: models}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/orders/prefill", h.prefill)
	app.Get("/api/v1/orders/website-types", h.websiteTypes)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(Order)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	payload.ID = 0
	payload.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	created, fieldErrors, err := h.service.Create(*payload)
	if err != nil {
		if err == ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
		}
		// generic failure: the client keeps the typed values and may retry
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Une erreur est survenue. Veuillez réessayer."})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// prefill returns the model summary the order page shows when it is
// reached through a "Commander ce modèle" link.
func (h *Handler) prefill(c *fiber.Ctx) error {
	slug := c.Query("model")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "model query parameter is required"})
	}

	m, err := h.models.GetBySlug(slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Model not found"})
	}

	websiteType := ""
	if m.CategoryName != nil {
		websiteType = *m.CategoryName
	}
	return c.JSON(fiber.Map{
		"model_id":        m.ID,
		"model_reference": m.Title,
		"website_type":    websiteType,
		"slug":            m.Slug,
		"main_image":      m.MainImage,
	})
}

func (h *Handler) websiteTypes(c *fiber.Ctx) error {
	return c.JSON(WebsiteTypes)
}
