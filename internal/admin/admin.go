// Package admin holds the administrator capability: a single configured
// account, JWT issuing for the /admin surface, and one-time tokens that
// protect the import form against replays.
package admin

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Credentials is the single administrator account, loaded from the
// environment rather than a user table.
type Credentials struct {
	Email        string
	PasswordHash string
}

type Service struct {
	creds  Credentials
	secret []byte
}

func NewService(creds Credentials, secret []byte) *Service {
	return &Service{creds: creds, secret: secret}
}

// Authenticate checks the configured administrator credentials.
func (s *Service) Authenticate(email, password string) error {
	if email != s.creds.Email || s.creds.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken signs a 24h administrator JWT.
func (s *Service) IssueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"admin": true,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// IsAdmin reports whether the JWT stored by the auth middleware carries
// the administrator claim.
func IsAdmin(c *fiber.Ctx) bool {
	u := c.Locals("user")
	if u == nil {
		return false
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	isAdmin, _ := claims["admin"].(bool)
	return isAdmin
}

// TokenStore hands out one-time form tokens. Each token is valid for a
// single use within its TTL; consuming it removes it.
type TokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{ttl: ttl, tokens: make(map[string]time.Time)}
}

func (t *TokenStore) Issue() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for tok, exp := range t.tokens {
		if now.After(exp) {
			delete(t.tokens, tok)
		}
	}

	tok := uuid.NewString()
	t.tokens[tok] = now.Add(t.ttl)
	return tok
}

// Consume reports whether tok is live, and invalidates it either way.
func (t *TokenStore) Consume(tok string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	exp, ok := t.tokens[tok]
	if !ok {
		return false
	}
	delete(t.tokens, tok)
	return time.Now().Before(exp)
}
