package services

import (
	"context"
	"strings"

	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"gorm.io/gorm"
)

const (
	msgSignupSuccess = "User created successfully"
	msgSignupFailed  = "An error occurred during signup"
	msgLoginSuccess  = "Login successful"
	msgLoginFailed   = "An error occurred during login"
)

// AuthResult mirrors the {success, message, userId} shape handed back to callers.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId,omitempty"`
}

// AuthService implements signup and login on top of the users ledger.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func failed(err error) (AuthResult, error) {
	return AuthResult{Success: false, Message: MessageOf(err)}, err
}

// Signup creates a credential record. The username is stored trimmed;
// the password is hashed exactly as given.
func (s *AuthService) Signup(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return failed(ErrEmptyUsername)
	}
	if strings.TrimSpace(password) == "" {
		return failed(ErrEmptyPassword)
	}
	if utils.PasswordTooLong(password) {
		return failed(ErrPasswordTooLong)
	}

	db := s.DB.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		return failed(storageError("signup_lookup_failed", msgSignupFailed, err, map[string]interface{}{
			"username": username,
		}))
	}
	if existing > 0 {
		return failed(ErrDuplicateUsername)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return failed(storageError("signup_hash_failed", msgSignupFailed, err, nil))
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		// a concurrent signup can win the unique index after our lookup
		if isDuplicate(err) {
			return failed(ErrDuplicateUsername)
		}
		return failed(storageError("signup_insert_failed", msgSignupFailed, err, map[string]interface{}{
			"username": username,
		}))
	}

	logger.InfoWithUser(user.ID, "user_signed_up", map[string]interface{}{
		"username": user.Username,
	})

	return AuthResult{Success: true, Message: msgSignupSuccess, UserID: user.ID}, nil
}

// Login verifies password against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return failed(err)
	}
	return AuthResult{Success: true, Message: msgLoginSuccess, UserID: user.ID}, nil
}

// Authenticate is Login returning the full user row, for callers that issue tokens.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	found, err := findOne(s.DB.WithContext(ctx), &user, "username = ?", username)
	if err != nil {
		return nil, storageError("login_lookup_failed", msgLoginFailed, err, map[string]interface{}{
			"username": username,
		})
	}
	if !found {
		logger.Warn("login_failed_user_not_found", map[string]interface{}{
			"username": username,
		})
		return nil, ErrUserNotFound
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		logger.WarnWithUser(user.ID, "login_failed_invalid_password", map[string]interface{}{
			"username": username,
		})
		return nil, ErrWrongPassword
	}

	logger.InfoWithUser(user.ID, "user_login", map[string]interface{}{
		"username": user.Username,
	})
	return &user, nil
}
