package category

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/Medardo-Design/sitestoliworteck/internal/catalog"
)

// ModelLister is the slice of the catalog service the category API needs
// for its global model counts.
type ModelLister interface {
	List() []catalog.Model
}

type Handler struct {
	service *Service
	models  ModelLister
}

func NewHandler(s *Service, models ModelLister) *Handler {
	return &Handler{service: s, models: models}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
}

// getCategories returns the filter bar data: every category plus its
// global model count and the catalogue total for the "all" button.
func (h *Handler) getCategories(c *fiber.Ctx) error {
	// categories and models have no data dependency, so load both at once
	// and join before building the response.
	var (
		wg     sync.WaitGroup
		cats   []Category
		models []catalog.Model
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cats = h.service.List()
	}()
	go func() {
		defer wg.Done()
		models = h.models.List()
	}()
	wg.Wait()

	counts := catalog.CountByCategory(models)
	out := make([]CategoryWithCount, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryWithCount{Category: cat, ModelCount: counts[cat.ID]})
	}

	return c.JSON(fiber.Map{
		"total":      len(models),
		"categories": out,
	})
}
