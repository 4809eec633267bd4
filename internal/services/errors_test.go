package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/connorholly11/friend-meetup/pkg/utils"
)

func TestErrorMatching(t *testing.T) {
	t.Run("sentinels match through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("responding: %w", ErrInvitationNotFound)
		if !errors.Is(wrapped, ErrInvitationNotFound) {
			t.Fatal("expected wrapped sentinel to match")
		}
		if errors.Is(wrapped, ErrUserNotFound) {
			t.Fatal("expected different not-found sentinel not to match")
		}
	})

	t.Run("copies with the same kind and message match", func(t *testing.T) {
		copyErr := &Error{Kind: KindConflict, Message: ErrDuplicateUsername.Message}
		if !errors.Is(copyErr, ErrDuplicateUsername) {
			t.Fatal("expected equal kind+message to match")
		}
	})

	t.Run("storage errors keep the cause", func(t *testing.T) {
		cause := errors.New("database is locked")
		err := storageError("test_failed", "generic failure", cause, nil)

		if !errors.Is(err, cause) {
			t.Fatal("expected storage error to unwrap to the cause")
		}
		if KindOf(err) != KindStorage {
			t.Fatalf("expected storage kind, got %s", KindOf(err))
		}
		if MessageOf(err) != "generic failure" {
			t.Fatalf("expected generic message, got %q", MessageOf(err))
		}
	})

	t.Run("foreign errors are storage kind with a generic message", func(t *testing.T) {
		err := errors.New("boom")
		if KindOf(err) != KindStorage {
			t.Fatalf("expected storage kind, got %s", KindOf(err))
		}
		if MessageOf(err) == "boom" {
			t.Fatal("expected foreign error text to stay hidden")
		}
	})
}

func TestIsDuplicate(t *testing.T) {
	if !isDuplicate(errors.New("constraint failed: UNIQUE constraint failed: groups.name (2067)")) {
		t.Error("expected sqlite unique violation to be detected")
	}
	if !isDuplicate(errors.New(`ERROR: duplicate key value violates unique constraint "idx_groups_name"`)) {
		t.Error("expected postgres unique violation to be detected")
	}
	if isDuplicate(errors.New("no such table: groups")) {
		t.Error("expected unrelated error not to be treated as duplicate")
	}
}

func TestErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ErrEmptyUsername, http.StatusBadRequest},
		{ErrPasswordTooLong, http.StatusBadRequest},
		{ErrDuplicateGroupName, http.StatusConflict},
		{ErrInvitationNotFound, http.StatusNotFound},
		{ErrWrongPassword, http.StatusUnauthorized},
		{&Error{Kind: KindStorage, Message: "failed listing groups"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
			if tt.err.PublicMessage() != tt.err.Message {
				t.Errorf("PublicMessage() = %q, want %q", tt.err.PublicMessage(), tt.err.Message)
			}
		})
	}

	var failure utils.Failure = ErrGroupNotFound
	if failure.HTTPStatus() != http.StatusNotFound {
		t.Fatalf("expected group not found to be a 404, got %d", failure.HTTPStatus())
	}
}
