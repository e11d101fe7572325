package models

import "errors"

// Shared sentinel errors. Services wrap them with context via fmt.Errorf("%w").
var (
	ErrNotFound      = errors.New("not found")
	ErrNothingToPlan = errors.New("no scenes to plan for project")
	ErrUnknownScene  = errors.New("plan references a scene not in the project")
	ErrEmptyPlan     = errors.New("plan contains no days")
	ErrInvalidPlan   = errors.New("invalid plan payload")
	ErrInternal      = errors.New("internal error")
)

// Error codes returned to clients in ErrorResponse.Code.
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeNothingToPlan = "NOTHING_TO_PLAN"
	ErrCodeUnknownScene  = "UNKNOWN_SCENE"
	ErrCodeEmptyPlan     = "EMPTY_PLAN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
