package admin

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func testCredentials(t *testing.T, password string) Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return Credentials{Email: "admin@toliworteck.fr", PasswordHash: string(hash)}
}

func TestAuthenticate(t *testing.T) {
	service := NewService(testCredentials(t, "s3cret"), []byte("test-secret"))

	if err := service.Authenticate("admin@toliworteck.fr", "s3cret"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := service.Authenticate("admin@toliworteck.fr", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := service.Authenticate("intruder@example.com", "s3cret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong email, got %v", err)
	}
}

func TestAuthenticate_NoHashConfigured(t *testing.T) {
	service := NewService(Credentials{Email: "admin@toliworteck.fr"}, []byte("test-secret"))
	if err := service.Authenticate("admin@toliworteck.fr", ""); err != ErrInvalidCredentials {
		t.Fatalf("blank hash must never authenticate, got %v", err)
	}
}

func TestIssueToken_CarriesAdminClaim(t *testing.T) {
	secret := []byte("test-secret")
	service := NewService(testCredentials(t, "s3cret"), secret)

	signed, err := service.IssueToken("admin@toliworteck.fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return secret, nil })
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if isAdmin, _ := claims["admin"].(bool); !isAdmin {
		t.Fatalf("missing admin claim: %v", claims)
	}
}

func TestLoginRoute(t *testing.T) {
	service := NewService(testCredentials(t, "s3cret"), []byte("test-secret"))
	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"email":"admin@toliworteck.fr","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var payload map[string]string
	body, _ := io.ReadAll(res.Body)
	_ = json.Unmarshal(body, &payload)
	if payload["token"] == "" {
		t.Fatalf("expected a token in the response: %v", payload)
	}

	req2 := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"email":"admin@toliworteck.fr","password":"wrong"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res2.StatusCode)
	}
}

func TestTokenStore_OneTimeUse(t *testing.T) {
	store := NewTokenStore(time.Minute)

	tok := store.Issue()
	if !store.Consume(tok) {
		t.Fatalf("fresh token must be consumable")
	}
	if store.Consume(tok) {
		t.Fatalf("token must be single-use")
	}
	if store.Consume("made-up") {
		t.Fatalf("unknown token must be rejected")
	}
}

func TestTokenStore_Expiry(t *testing.T) {
	store := NewTokenStore(-time.Second)
	tok := store.Issue()
	if store.Consume(tok) {
		t.Fatalf("expired token must be rejected")
	}
}
