package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/utils"
)

func TestAuthEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	var userID float64
	var token string

	t.Run("POST /api/auth/signup creates user", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/signup", map[string]any{
			"username": "newuser",
			"password": "password123",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusCreated)

		data := dataMap(t, body)
		if data["message"] != "User created successfully" {
			t.Fatalf("unexpected message %v", data["message"])
		}
		userID, _ = data["userId"].(float64)
		if userID == 0 {
			t.Fatalf("expected userId, got %+v", data)
		}
	})

	t.Run("POST /api/auth/signup duplicate conflicts", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/signup", map[string]any{
			"username": "newuser",
			"password": "anotherpassword",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusConflict)
		assertEnvelopeError(t, body, "Username already exists")
	})

	t.Run("POST /api/auth/signup overlong password is a bad request", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/signup", map[string]any{
			"username": "verbose",
			"password": strings.Repeat("x", 80),
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, "Password cannot be longer than 72 bytes")
	})

	t.Run("POST /api/auth/login wrong password", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "newuser",
			"password": "wrongpassword",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusUnauthorized)
		assertEnvelopeError(t, body, "Incorrect password")
	})

	t.Run("POST /api/auth/login unknown user", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "nonexistentuser",
			"password": "password123",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertEnvelopeError(t, body, "User not found")
	})

	t.Run("POST /api/auth/login returns token and same id", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "newuser",
			"password": "password123",
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		data := dataMap(t, body)
		if data["userId"] != userID {
			t.Fatalf("expected userId %v, got %v", userID, data["userId"])
		}
		token, _ = data["token"].(string)
		if token == "" {
			t.Fatal("expected a token")
		}
		user := data["user"].(map[string]any)
		if _, leaked := user["passwordHash"]; leaked {
			t.Fatal("expected password hash to stay out of the response")
		}
	})

	t.Run("GET /api/auth/me", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/auth/me", nil, authHeaders(token))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if dataMap(t, body)["username"] != "newuser" {
			t.Fatalf("unexpected me payload %+v", body)
		}
	})

	t.Run("PUT /api/auth/password requires the old password", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/auth/password", map[string]any{
			"oldPassword": "nope",
			"newPassword": "brandnew",
		}, authHeaders(token))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusUnauthorized)
		assertEnvelopeError(t, body, "Incorrect password")
	})

	t.Run("PUT /api/auth/password updates hash", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/auth/password", map[string]any{
			"oldPassword": "password123",
			"newPassword": "brandnew",
		}, authHeaders(token))
		assertStatus(t, resp, http.StatusOK)

		var user models.User
		if err := env.db.First(&user, "username = ?", "newuser").Error; err != nil {
			t.Fatalf("failed loading user: %v", err)
		}
		if !utils.CheckPassword("brandnew", user.PasswordHash) {
			t.Fatal("expected new password to verify")
		}
	})

	t.Run("DELETE /api/auth/me removes account", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodDelete, "/api/auth/me", nil, authHeaders(token))
		assertStatus(t, resp, http.StatusOK)

		resp = performRequest(t, env.app, http.MethodGet, "/api/auth/me", nil, authHeaders(token))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusUnauthorized)
		assertEnvelopeError(t, body, "user not found")
	})
}

func TestUserSearchEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUser(t, env.db, "alice", "password123")
	createTestUser(t, env.db, "alicia", "password123")
	createTestUser(t, env.db, "bob", "password123")

	resp := performRequest(t, env.app, http.MethodGet, "/api/users/search?q=ali", nil, authHeaders(token))
	body := decodeJSONMap(t, resp)
	assertStatus(t, resp, http.StatusOK)
	if got := len(dataList(t, body)); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
}
