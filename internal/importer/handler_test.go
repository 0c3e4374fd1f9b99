package importer

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Medardo-Design/sitestoliworteck/internal/admin"
)

func makeImportApp(store *MemoryStore, asAdmin bool) (*fiber.App, *admin.TokenStore) {
	tokens := admin.NewTokenStore(time.Minute)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"admin": asAdmin})
		c.Locals("user", tok)
		return c.Next()
	})
	NewHandler(newTestImporter(store, nil), tokens).RegisterProtectedRoutes(app)
	return app, tokens
}

func importRequestBody(t *testing.T, token, doc string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("import_token", token); err != nil {
		t.Fatal(err)
	}
	fw, err := w.CreateFormFile("json_file", "export.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestImportPage_IssuesToken(t *testing.T) {
	app, _ := makeImportApp(NewMemoryStore(), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/import?imported=4", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, `name="import_token"`) {
		t.Fatalf("page lacks a form token: %s", page)
	}
	if !strings.Contains(page, "4 produits importés") {
		t.Fatalf("page lacks the import notice: %s", page)
	}
}

func TestImportPage_ForbiddenForNonAdmin(t *testing.T) {
	app, _ := makeImportApp(NewMemoryStore(), false)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/import", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestHandleImport_RedirectsWithCount(t *testing.T) {
	store := NewMemoryStore()
	app, tokens := makeImportApp(store, true)

	body, contentType := importRequestBody(t, tokens.Issue(),
		`{"products": [{"name": "A"}, {"name": "B"}]}`)
	req := httptest.NewRequest("POST", "/admin/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/import?imported=2" {
		t.Fatalf("unexpected redirect location %q", loc)
	}
	if len(store.Products()) != 2 {
		t.Fatalf("expected 2 products stored, got %d", len(store.Products()))
	}
}

func TestHandleImport_RejectsReusedToken(t *testing.T) {
	app, tokens := makeImportApp(NewMemoryStore(), true)
	token := tokens.Issue()

	for i, want := range []int{fiber.StatusSeeOther, fiber.StatusForbidden} {
		body, contentType := importRequestBody(t, token, `{"products": []}`)
		req := httptest.NewRequest("POST", "/admin/import", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != want {
			t.Fatalf("attempt %d: expected %d, got %d", i+1, want, resp.StatusCode)
		}
	}
}

func TestHandleImport_InvalidDocument(t *testing.T) {
	store := NewMemoryStore()
	app, tokens := makeImportApp(store, true)

	body, contentType := importRequestBody(t, tokens.Issue(), `{"items": []}`)
	req := httptest.NewRequest("POST", "/admin/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(store.Products()) != 0 {
		t.Fatal("nothing may be written for an invalid document")
	}
}

func TestHandleImport_MissingFile(t *testing.T) {
	app, tokens := makeImportApp(NewMemoryStore(), true)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("import_token", tokens.Issue()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/admin/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
