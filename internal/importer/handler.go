package importer

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Medardo-Design/sitestoliworteck/internal/admin"
)

// Handler exposes the administrator import surface: a small upload page
// and the upload action itself.
type Handler struct {
	importer *Importer
	tokens   *admin.TokenStore
}

func NewHandler(importer *Importer, tokens *admin.TokenStore) *Handler {
	return &Handler{importer: importer, tokens: tokens}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/admin/import", h.importPage)
	app.Post("/admin/import", h.handleImport)
}

const importPageTemplate = `<!doctype html>
<html lang="fr">
<head><meta charset="utf-8"><title>Toliwork Importer</title></head>
<body>
<h1>Import de produits Toliwork</h1>
%s
<form method="post" action="/admin/import" enctype="multipart/form-data">
  <input type="hidden" name="import_token" value="%s">
  <label for="json_file">Fichier d'export JSON</label>
  <input type="file" name="json_file" id="json_file" accept=".json" required>
  <button type="submit">Importer les produits</button>
</form>
</body>
</html>`

func (h *Handler) importPage(c *fiber.Ctx) error {
	if !admin.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "administrator access required"})
	}

	notice := ""
	if v := c.Query("imported"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			notice = fmt.Sprintf("<p><strong>Succès !</strong> %d produits importés.</p>", n)
		}
	}

	c.Set("Content-Type", fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(importPageTemplate, notice, h.tokens.Issue()))
}

func (h *Handler) handleImport(c *fiber.Ctx) error {
	if !admin.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "administrator access required"})
	}
	if !h.tokens.Consume(c.FormValue("import_token")) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "invalid or expired import token"})
	}

	file, err := c.FormFile("json_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "json_file is required"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	defer f.Close()

	res, err := h.importer.Import(c.Context(), f)
	if err != nil {
		// ErrInvalidFormat is the only failure mode: nothing was written
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format"})
	}

	return c.Redirect("/admin/import?imported="+strconv.Itoa(res.Imported), fiber.StatusSeeOther)
}
