package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthHandler(auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.Auth.Signup(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.Auth.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return utils.Fail(c, err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		logger.ErrorWithUser(user.ID, "token_generation_failed", err, nil)
		return utils.Error(c, fiber.StatusInternalServerError, "An error occurred during login")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"userId":  user.ID,
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return utils.Success(c, fiber.StatusOK, currentUser)
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if !utils.CheckPassword(req.OldPassword, currentUser.PasswordHash) {
		logger.WarnWithUser(currentUser.ID, "password_change_rejected", nil)
		return utils.Fail(c, services.ErrWrongPassword)
	}

	if _, err := h.Users.UpdatePassword(c.UserContext(), currentUser.Username, req.NewPassword); err != nil {
		return utils.Fail(c, err)
	}

	logger.InfoWithUser(currentUser.ID, "password_changed", nil)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

func (h *AuthHandler) DeleteMe(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	removed, err := h.Users.DeleteUser(c.UserContext(), currentUser.Username)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": removed})
}
