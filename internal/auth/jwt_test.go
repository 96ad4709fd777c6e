package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/byildiz78/td-invoice/internal/config"
	"github.com/byildiz78/td-invoice/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret-en-az-otuz-iki-karakter!!"}
	user := &models.User{Email: "ali@example.com", Name: "Ali", Role: models.RoleAdmin}
	user.ID = 7

	token, err := GenerateToken(cfg.JWTSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	app := fiber.New()
	app.Use(JWTMiddleware(cfg))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(CtxUserIDKey),
			"name":    c.Locals(CtxUserNameKey),
			"role":    c.Locals(CtxUserRoleKey),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejections(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret-en-az-otuz-iki-karakter!!"}

	app := fiber.New()
	app.Use(JWTMiddleware(cfg))
	app.Get("/whoami", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	tests := []struct {
		name   string
		header string
	}{
		{"header eksik", ""},
		{"bearer değil", "Basic abc"},
		{"bozuk token", "Bearer bozuk.token.degeri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals(CtxUserRoleKey, models.RoleViewer)
		return c.Next()
	}, RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
