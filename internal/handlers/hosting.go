package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type HostingHandler struct {
	Hosting *services.HostingService
}

func NewHostingHandler(hosting *services.HostingService) *HostingHandler {
	return &HostingHandler{Hosting: hosting}
}

type hostingRequest struct {
	DayOfWeek string `json:"dayOfWeek"`
	Activity  string `json:"activity"`
}

func (h *HostingHandler) Set(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req hostingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	id, err := h.Hosting.MarkHostingAvailability(c.UserContext(), currentUser.ID, groupID, req.DayOfWeek, req.Activity)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}

// List returns every hosting offer in the group, or one user's offers
// when userId is given.
func (h *HostingHandler) List(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	if raw := c.Query("userId"); raw != "" {
		userID, err := parseID(raw)
		if err != nil {
			return utils.Error(c, fiber.StatusBadRequest, "invalid user id")
		}
		rows, err := h.Hosting.GetHostingAvailability(c.UserContext(), userID, groupID)
		if err != nil {
			return utils.Fail(c, err)
		}
		return utils.Success(c, fiber.StatusOK, rows)
	}

	rows, err := h.Hosting.GetGroupHostingAvailabilities(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, rows)
}

func (h *HostingHandler) Hosts(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	userIDs, err := h.Hosting.GetAvailableHosts(c.UserContext(), groupID, c.Query("day"), c.Query("activity"))
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, userIDs)
}

func (h *HostingHandler) Remove(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	removed, err := h.Hosting.RemoveHostingAvailability(c.UserContext(), currentUser.ID, groupID, c.Params("day"))
	if err != nil {
		return utils.Fail(c, err)
	}
	if removed == 0 {
		return utils.Error(c, fiber.StatusNotFound, "hosting availability not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"removed": removed})
}
