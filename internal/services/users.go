package services

import (
	"context"
	"strings"

	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"gorm.io/gorm"
)

// UserService is the credential store: lookups, password updates and deletes
// keyed by username. Deleting a user leaves every other ledger untouched.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	found, err := findOne(s.DB.WithContext(ctx), &user, "username = ?", strings.TrimSpace(username))
	if err != nil {
		return nil, storageError("user_lookup_failed", "failed loading user", err, map[string]interface{}{
			"username": username,
		})
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	found, err := findOne(s.DB.WithContext(ctx), &user, "id = ?", id)
	if err != nil {
		return nil, storageError("user_lookup_failed", "failed loading user", err, map[string]interface{}{
			"user_id": id,
		})
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdatePassword rehashes and stores newPassword, returning the number of rows changed.
func (s *UserService) UpdatePassword(ctx context.Context, username, newPassword string) (int64, error) {
	if strings.TrimSpace(newPassword) == "" {
		return 0, ErrEmptyPassword
	}
	if utils.PasswordTooLong(newPassword) {
		return 0, ErrPasswordTooLong
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return 0, storageError("password_hash_failed", "failed updating password", err, nil)
	}

	result := s.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", strings.TrimSpace(username)).
		Update("password_hash", hash)
	if result.Error != nil {
		return 0, storageError("password_update_failed", "failed updating password", result.Error, map[string]interface{}{
			"username": username,
		})
	}

	return result.RowsAffected, nil
}

// DeleteUser removes the credential record and returns the rows deleted.
func (s *UserService) DeleteUser(ctx context.Context, username string) (int64, error) {
	result := s.DB.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).Delete(&models.User{})
	if result.Error != nil {
		return 0, storageError("user_delete_failed", "failed deleting user", result.Error, map[string]interface{}{
			"username": username,
		})
	}

	if result.RowsAffected > 0 {
		logger.Info("user_deleted", map[string]interface{}{"username": username})
	}
	return result.RowsAffected, nil
}

// Search finds users whose username contains query, case-insensitively.
func (s *UserService) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.User{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, storageError("user_search_failed", "failed searching users", err, map[string]interface{}{
			"query": query,
		})
	}
	return users, nil
}
