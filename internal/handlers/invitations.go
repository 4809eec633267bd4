package handlers

import (
	"strings"

	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type InvitationsHandler struct {
	Groups *services.GroupService
}

func NewInvitationsHandler(groups *services.GroupService) *InvitationsHandler {
	return &InvitationsHandler{Groups: groups}
}

type inviteRequest struct {
	UserID uint `json:"userId"`
}

func (h *InvitationsHandler) Invite(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req inviteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID == 0 {
		return utils.Error(c, fiber.StatusBadRequest, "userId is required")
	}

	id, err := h.Groups.InviteUser(c.UserContext(), groupID, req.UserID, currentUser.ID)
	if err != nil {
		return utils.Fail(c, err)
	}

	invitation, err := h.Groups.GetInvitation(c.UserContext(), id)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, invitation)
}

func (h *InvitationsHandler) ListForGroup(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	invitations, err := h.Groups.ListGroupInvitations(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, invitations)
}

func (h *InvitationsHandler) ListMine(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status := models.InvitationStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	invitations, err := h.Groups.ListInvitationsForUser(c.UserContext(), currentUser.ID, status)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, invitations)
}

type respondRequest struct {
	Status string `json:"status"`
}

func (h *InvitationsHandler) Respond(c *fiber.Ctx) error {
	invitationID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid invitation id")
	}

	var req respondRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.Groups.RespondToInvitation(c.UserContext(), invitationID, models.InvitationStatus(req.Status)); err != nil {
		return utils.Fail(c, err)
	}

	invitation, err := h.Groups.GetInvitation(c.UserContext(), invitationID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, invitation)
}
