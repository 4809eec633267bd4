package services

import (
	"context"
	"io"
	"testing"

	"github.com/connorholly11/friend-meetup/internal/database"
	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.SetOutput(io.Discard)

	db, err := database.OpenInMemory()
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	return db
}

func createServiceTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "not-a-real-hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating user %q: %v", username, err)
	}
	return user
}

func createServiceTestGroup(t *testing.T, db *gorm.DB, name string, ownerID uint) uint {
	t.Helper()

	id, err := NewGroupService(db, nil).CreateGroup(context.Background(), name, ownerID)
	if err != nil {
		t.Fatalf("failed creating group %q: %v", name, err)
	}
	return id
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}
