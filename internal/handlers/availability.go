package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AvailabilityHandler struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityHandler(availability *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: availability}
}

type slotRequest struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (h *AvailabilityHandler) AddSlot(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req slotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	id, err := h.Availability.AddAvailabilitySlot(c.UserContext(), groupID, req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return utils.Fail(c, err)
	}

	slot, err := h.Availability.GetSlot(c.UserContext(), id)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, slot)
}

func (h *AvailabilityHandler) ListSlots(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	slots, err := h.Availability.GetGroupAvailabilitySlots(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, slots)
}

func (h *AvailabilityHandler) Mark(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	slotID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid slot id")
	}

	id, err := h.Availability.MarkUserAvailability(c.UserContext(), currentUser.ID, slotID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"id":     id,
		"slotId": slotID,
		"userId": currentUser.ID,
	})
}

func (h *AvailabilityHandler) Who(c *fiber.Ctx) error {
	slotID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid slot id")
	}

	userIDs, err := h.Availability.GetAvailableUsersForSlot(c.UserContext(), slotID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, userIDs)
}
