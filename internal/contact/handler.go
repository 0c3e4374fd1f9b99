package contact

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/contact", h.submitMessage)
}

func (h *Handler) submitMessage(c *fiber.Ctx) error {
	payload := new(Message)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	fieldErrors, err := h.service.Submit(c.Context(), *payload)
	if err != nil {
		if err == ErrValidation {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Une erreur est survenue. Veuillez réessayer."})
	}
	return c.JSON(fiber.Map{"message": "Message envoyé"})
}
