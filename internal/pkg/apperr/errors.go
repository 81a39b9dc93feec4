package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeActivityNotFound  = "ACTIVITY_NOT_FOUND"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeActivityFull      = "ACTIVITY_FULL"
	CodeNotRegistered     = "NOT_REGISTERED"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrActivityNotFound is returned when no activity carries the requested name.
	ErrActivityNotFound = New(fiber.StatusNotFound, CodeActivityNotFound, "Activity not found")

	// ErrAlreadyRegistered is returned when the participant is already linked to the activity.
	ErrAlreadyRegistered = New(fiber.StatusBadRequest, CodeAlreadyRegistered, "Student is already signed up")

	// ErrActivityFull is returned when the activity has reached its max_participants.
	ErrActivityFull = New(fiber.StatusBadRequest, CodeActivityFull, "Activity is full")

	// ErrNotRegistered is returned when there is no link to remove.
	ErrNotRegistered = New(fiber.StatusBadRequest, CodeNotRegistered, "Student is not signed up for this activity")
)

type Extras map[string]interface{}

type AppError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e AppError) Msg(format string, parts ...interface{}) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *AppError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target is an *AppError with the same error code, so that
// copies produced by Msg or WithExtras still match their originating sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}
