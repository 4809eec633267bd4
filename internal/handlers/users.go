package handlers

import (
	"strings"

	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type UsersHandler struct {
	Users *services.UserService
}

func NewUsersHandler(users *services.UserService) *UsersHandler {
	return &UsersHandler{Users: users}
}

func (h *UsersHandler) Search(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("q"))
	limit := c.QueryInt("limit", 5)

	if currentUser := middleware.GetCurrentUser(c); currentUser != nil && search != "" {
		logger.InfoWithUser(currentUser.ID, "user_search", map[string]interface{}{
			"query": search,
			"limit": limit,
		})
	}

	users, err := h.Users.Search(c.UserContext(), search, limit)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, users)
}
