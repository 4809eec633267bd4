package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	maxSummaryBody  = 1024
	maxSummaryText  = 200
)

// Request fields never written to the log.
var redactedFields = []string{"password", "oldPassword", "newPassword", "token"}

// RequestLogger tags every request with an id and logs one line when it
// completes. Bodies are summarized with credentials redacted.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDHeader, requestID)

		err := c.Next()

		details := map[string]interface{}{
			"request_id":  requestID,
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.IP(),
			"request":     summarizeRequestBody(c.Body()),
			"response":    summarizeSize(c.Response().Body()),
		}
		if err != nil {
			details["handler_error"] = err.Error()
		}

		if userID, ok := requestUserID(c); ok {
			logger.InfoWithUser(userID, "http_request", details)
		} else {
			logger.Info("http_request", details)
		}
		return err
	}
}

// SecurityLogger records failed authentication attempts and unexpected
// server errors after the handler has run.
func SecurityLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		switch {
		case status == fiber.StatusUnauthorized:
			logger.Warn("security_unauthorized", map[string]interface{}{
				"method": c.Method(),
				"path":   c.Path(),
				"ip":     c.IP(),
			})
		case status >= fiber.StatusInternalServerError:
			details := map[string]interface{}{
				"method": c.Method(),
				"path":   c.Path(),
				"status": status,
			}
			if userID, ok := requestUserID(c); ok {
				logger.ErrorWithUser(userID, "server_error_response", err, details)
			} else {
				logger.Error("server_error_response", err, details)
			}
		}
		return err
	}
}

// requestUserID reports the member RequireAuth resolved, if any.
func requestUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(userIDKey).(uint)
	return id, ok
}

func summarizeRequestBody(body []byte) string {
	if len(body) == 0 || len(body) > maxSummaryBody {
		return summarizeSize(body)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return fmt.Sprintf("non-json (%d bytes)", len(body))
	}
	for _, name := range redactedFields {
		if _, ok := fields[name]; ok {
			fields[name] = "[REDACTED]"
		}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprintf("non-json (%d bytes)", len(body))
	}
	if len(encoded) > maxSummaryText {
		return string(encoded[:maxSummaryText]) + "..."
	}
	return string(encoded)
}

func summarizeSize(body []byte) string {
	switch {
	case len(body) == 0:
		return "empty"
	case len(body) > maxSummaryBody:
		return fmt.Sprintf("large (%d bytes)", len(body))
	default:
		return fmt.Sprintf("small (%d bytes)", len(body))
	}
}
