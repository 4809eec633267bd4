package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventsHandler struct {
	Voting *services.VotingService
}

func NewEventsHandler(voting *services.VotingService) *EventsHandler {
	return &EventsHandler{Voting: voting}
}

type suggestionRequest struct {
	Activity string `json:"activity"`
}

func (h *EventsHandler) Suggest(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req suggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	id, err := h.Voting.AddEventSuggestion(c.UserContext(), groupID, req.Activity)
	if err != nil {
		return utils.Fail(c, err)
	}

	suggestion, err := h.Voting.GetSuggestion(c.UserContext(), id)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, suggestion)
}

func (h *EventsHandler) ListSuggestions(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	suggestions, err := h.Voting.GetEventSuggestions(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, suggestions)
}

func (h *EventsHandler) Top(c *fiber.Ctx) error {
	groupID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid group id")
	}

	tallies, err := h.Voting.GetTopVotedActivities(c.UserContext(), groupID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, tallies)
}

type voteRequest struct {
	Vote *bool `json:"vote"`
}

// Vote records the current user's vote; voting again replaces it.
func (h *EventsHandler) Vote(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	suggestionID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid suggestion id")
	}

	var req voteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Vote == nil {
		return utils.Error(c, fiber.StatusBadRequest, "vote is required")
	}

	id, err := h.Voting.VoteOnEventSuggestion(c.UserContext(), suggestionID, currentUser.ID, *req.Vote)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":           id,
		"suggestionId": suggestionID,
		"vote":         *req.Vote,
	})
}

func (h *EventsHandler) Count(c *fiber.Ctx) error {
	suggestionID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid suggestion id")
	}

	count, err := h.Voting.CountVotesForSuggestion(c.UserContext(), suggestionID)
	if err != nil {
		return utils.Fail(c, err)
	}

	return utils.Success(c, fiber.StatusOK, count)
}
