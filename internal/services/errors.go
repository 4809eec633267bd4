package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/connorholly11/friend-meetup/pkg/logger"
	"gorm.io/gorm"
)

type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindConflict       ErrorKind = "conflict"
	KindNotFound       ErrorKind = "not_found"
	KindAuthentication ErrorKind = "authentication"
	KindStorage        ErrorKind = "storage"
)

// Error is the single failure type every ledger returns. Message is safe
// to show to callers; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the kind onto the status the API answers with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) PublicMessage() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind and message so wrapped copies of a sentinel still match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrEmptyUsername      = &Error{Kind: KindValidation, Message: "Username cannot be empty"}
	ErrEmptyPassword      = &Error{Kind: KindValidation, Message: "Password cannot be empty"}
	ErrPasswordTooLong    = &Error{Kind: KindValidation, Message: "Password cannot be longer than 72 bytes"}
	ErrEmptyGroupName     = &Error{Kind: KindValidation, Message: "Group name cannot be empty"}
	ErrEmptyActivity      = &Error{Kind: KindValidation, Message: "Activity cannot be empty"}
	ErrInvalidStatus      = &Error{Kind: KindValidation, Message: `Invalid status. Must be "accepted" or "denied".`}
	ErrInvalidDayOfWeek   = &Error{Kind: KindValidation, Message: "Day of week must be Monday through Sunday"}
	ErrInvalidTimeRange   = &Error{Kind: KindValidation, Message: "Times must be HH:MM with start before end"}
	ErrDuplicateUsername  = &Error{Kind: KindConflict, Message: "Username already exists"}
	ErrDuplicateGroupName = &Error{Kind: KindConflict, Message: "A group with this name already exists"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrGroupNotFound      = &Error{Kind: KindNotFound, Message: "Group not found"}
	ErrInvitationNotFound = &Error{Kind: KindNotFound, Message: "Invitation not found"}
	ErrSuggestionNotFound = &Error{Kind: KindNotFound, Message: "Suggestion not found"}
	ErrSlotNotFound       = &Error{Kind: KindNotFound, Message: "Availability slot not found"}
	ErrWrongPassword      = &Error{Kind: KindAuthentication, Message: "Incorrect password"}
)

// KindOf reports the kind of err, treating anything foreign as storage.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStorage
}

// MessageOf returns the caller-facing message for err.
func MessageOf(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "An unexpected error occurred"
}

// storageError logs cause under action and hides it behind message.
func storageError(action, message string, cause error, details map[string]interface{}) error {
	logger.Error(action, cause, details)
	return &Error{Kind: KindStorage, Message: message, Err: cause}
}

// findOne loads at most one matching row into dest and reports whether
// there was one. A miss is not an error.
func findOne(db *gorm.DB, dest interface{}, query interface{}, args ...interface{}) (bool, error) {
	result := db.Where(query, args...).Limit(1).Find(dest)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
