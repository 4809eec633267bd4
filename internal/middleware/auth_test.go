package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/connorholly11/friend-meetup/internal/database"
	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	logger.SetOutput(io.Discard)
	utils.ConfigureJWT("middleware-test-secret", 1)

	db, err := database.OpenInMemory()
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	auth := NewAuthMiddleware(db)
	app := fiber.New()
	app.Get("/me", auth.RequireAuth, func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		userID, ok := requestUserID(c)
		if user == nil || !ok || userID != user.ID {
			return utils.Error(c, fiber.StatusInternalServerError, "locals not set")
		}
		return utils.Success(c, fiber.StatusOK, fiber.Map{"username": user.Username})
	})
	return app, db
}

func requestWithAuth(t *testing.T, app *fiber.App, header string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	return resp.StatusCode, body
}

func TestRequireAuth(t *testing.T) {
	app, db := setupAuthTestApp(t)

	user := &models.User{Username: "mia", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating user: %v", err)
	}
	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}

	t.Run("valid token sets current user", func(t *testing.T) {
		status, body := requestWithAuth(t, app, "Bearer "+token)
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d (%v)", status, body)
		}
		data := body["data"].(map[string]any)
		if data["username"] != "mia" {
			t.Fatalf("expected username mia, got %v", data["username"])
		}
	})

	rejections := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "missing authorization header"},
		{"no bearer prefix", token, "invalid authorization format"},
		{"empty bearer", "Bearer ", "invalid authorization format"},
		{"garbage token", "Bearer not-a-jwt", "invalid or expired token"},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			status, body := requestWithAuth(t, app, tc.header)
			if status != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", status)
			}
			if body["error"] != tc.message {
				t.Fatalf("expected error %q, got %v", tc.message, body["error"])
			}
		})
	}

	t.Run("deleted user", func(t *testing.T) {
		if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
			t.Fatalf("failed deleting user: %v", err)
		}
		status, body := requestWithAuth(t, app, "Bearer "+token)
		if status != http.StatusUnauthorized || body["error"] != "user not found" {
			t.Fatalf("expected 401 user not found, got %d %v", status, body)
		}
	})
}

func TestCORSAllowsFrontend(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("http://meetup.example.com"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://meetup.example.com")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://meetup.example.com" {
		t.Fatalf("expected frontend origin to be allowed, got %q", got)
	}
}
