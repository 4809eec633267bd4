package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type GroupsHandler struct {
	Groups *services.GroupService
	Audit  *services.AuditService
}

func NewGroupsHandler(groups *services.GroupService, audit *services.AuditService) *GroupsHandler {
	return &GroupsHandler{Groups: groups, Audit: audit}
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func (h *GroupsHandler) Create(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	id, err := h.Groups.CreateGroup(c.UserContext(), req.Name, currentUser.ID)
	if err != nil {
		return utils.Fail(c, err)
	}

	group, err := h.Groups.GetGroup(c.UserContext(), id)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, group)
}

func (h *GroupsHandler) List(c *fiber.Ctx) error {
	p := utils.ParsePagination(c)

	groups, total, err := h.Groups.ListGroups(c.UserContext(), p)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Paginated(c, groups, p, total)
}

func (h *GroupsHandler) Get(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	group, err := h.Groups.GetGroup(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, group)
}

// Activity returns the group's recent audit feed.
func (h *GroupsHandler) Activity(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	rows, err := h.Audit.ListGroupActivity(c.UserContext(), groupID, c.QueryInt("limit", 50))
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, rows)
}
