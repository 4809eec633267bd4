package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestGroupsEndpoints(t *testing.T) {
	env := setupTestEnv(t)
	_, ownerToken := createTestUser(t, env.db, "owner", "password123")
	invitee, inviteeToken := createTestUser(t, env.db, "invitee", "password123")

	var groupID, invitationID string

	t.Run("POST /api/groups creates group", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/groups", map[string]any{
			"name": "Trail Runners",
		}, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusCreated)

		data := dataMap(t, body)
		if data["name"] != "Trail Runners" {
			t.Fatalf("unexpected group %+v", data)
		}
		groupID = idOf(t, data)
	})

	t.Run("POST /api/groups blank name", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/groups", map[string]any{
			"name": " ",
		}, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, "Group name cannot be empty")
	})

	t.Run("POST /api/groups duplicate name", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/groups", map[string]any{
			"name": "Trail Runners",
		}, authHeaders(inviteeToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusConflict)
		assertEnvelopeError(t, body, "A group with this name already exists")
	})

	t.Run("GET /api/groups paginates", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/groups?limit=10", nil, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if len(dataList(t, body)) != 1 {
			t.Fatalf("expected one group, got %+v", body["data"])
		}
		pagination := body["pagination"].(map[string]any)
		if pagination["total"] != float64(1) {
			t.Fatalf("expected total 1, got %v", pagination["total"])
		}
	})

	t.Run("GET /api/groups/:id", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/groups/"+groupID, nil, authHeaders(ownerToken))
		assertStatus(t, resp, http.StatusOK)

		resp = performRequest(t, env.app, http.MethodGet, "/api/groups/9999", nil, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertEnvelopeError(t, body, "Group not found")

		resp = performRequest(t, env.app, http.MethodGet, "/api/groups/abc", nil, authHeaders(ownerToken))
		body = decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, "invalid group id")
	})

	t.Run("POST /api/groups/:id/invitations unknown user", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/groups/"+groupID+"/invitations", map[string]any{
			"userId": 9999,
		}, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertEnvelopeError(t, body, "User not found")
	})

	t.Run("POST /api/groups/:id/invitations sends pending invitation", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/groups/"+groupID+"/invitations", map[string]any{
			"userId": invitee.ID,
		}, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusCreated)

		data := dataMap(t, body)
		if data["status"] != "pending" {
			t.Fatalf("expected pending invitation, got %+v", data)
		}
		invitationID = idOf(t, data)
	})

	t.Run("GET /api/invitations lists the invitee's pending invitations", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/invitations?status=pending", nil, authHeaders(inviteeToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if len(dataList(t, body)) != 1 {
			t.Fatalf("expected one pending invitation, got %+v", body["data"])
		}

		resp = performRequest(t, env.app, http.MethodGet, "/api/invitations?status=bogus", nil, authHeaders(inviteeToken))
		assertStatus(t, resp, http.StatusBadRequest)
	})

	t.Run("PUT /api/invitations/:id invalid status", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/invitations/"+invitationID, map[string]any{
			"status": "maybe",
		}, authHeaders(inviteeToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertEnvelopeError(t, body, `Invalid status. Must be "accepted" or "denied".`)
	})

	t.Run("PUT /api/invitations/:id accept then deny", func(t *testing.T) {
		for _, status := range []string{"accepted", "denied"} {
			resp := performJSONRequest(t, env.app, http.MethodPut, "/api/invitations/"+invitationID, map[string]any{
				"status": status,
			}, authHeaders(inviteeToken))
			body := decodeJSONMap(t, resp)
			assertStatus(t, resp, http.StatusOK)

			data := dataMap(t, body)
			if data["status"] != status {
				t.Fatalf("expected status %s, got %v", status, data["status"])
			}
			if data["respondedAt"] == nil {
				t.Fatal("expected respondedAt to be set")
			}
		}
	})

	t.Run("PUT /api/invitations/:id unknown invitation", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/invitations/424242", map[string]any{
			"status": "accepted",
		}, authHeaders(inviteeToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusNotFound)
		assertEnvelopeError(t, body, "Invitation not found")
	})

	t.Run("GET /api/groups/:id/invitations", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/api/groups/"+groupID+"/invitations", nil, authHeaders(ownerToken))
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if len(dataList(t, body)) != 1 {
			t.Fatalf("expected one invitation, got %+v", body["data"])
		}
	})

	t.Run("GET /api/groups/:id/activity", func(t *testing.T) {
		deadline := time.Now().Add(2 * time.Second)
		for {
			resp := performRequest(t, env.app, http.MethodGet, fmt.Sprintf("/api/groups/%s/activity", groupID), nil, authHeaders(ownerToken))
			body := decodeJSONMap(t, resp)
			assertStatus(t, resp, http.StatusOK)
			if len(dataList(t, body)) >= 2 {
				return
			}
			if time.Now().After(deadline) {
				t.Fatalf("expected group.create and invitation.send entries, got %+v", body["data"])
			}
			time.Sleep(20 * time.Millisecond)
		}
	})
}
