package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every API response. Exactly one of Data or
// Error is meaningful, depending on Success.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *PageInfo   `json:"pagination,omitempty"`
}

type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Failure is an error that carries its own HTTP status and a message that
// is safe to send to clients.
type Failure interface {
	error
	HTTPStatus() int
	PublicMessage() string
}

const unexpectedErrorMessage = "An unexpected error occurred"

func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Error: message})
}

// Fail writes the envelope for err. Anything that is not a Failure becomes
// a bare 500 so driver detail never reaches the client.
func Fail(c *fiber.Ctx, err error) error {
	var failure Failure
	if errors.As(err, &failure) {
		return Error(c, failure.HTTPStatus(), failure.PublicMessage())
	}
	return Error(c, fiber.StatusInternalServerError, unexpectedErrorMessage)
}

// Paginated writes one page of a listing along with its position in the whole.
func Paginated(c *fiber.Ctx, data interface{}, p PaginationParams, total int64) error {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
		Pagination: &PageInfo{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
