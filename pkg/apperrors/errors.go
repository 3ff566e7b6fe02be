package apperrors

import (
	"errors"
	"net/http"
)

// FieldIssue describes a single invalid field in a request body.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries per-field issues for a malformed request.
type ValidationError struct {
	Message string
	Issues  []FieldIssue
}

func (e *ValidationError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// BadRequestError signals a well-formed request against an invalid state,
// e.g. restoring a record that is not deleted.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Constructors

func NewValidation(issues ...FieldIssue) error {
	return &ValidationError{Message: "Validation failed", Issues: issues}
}

func NewNotFound(msg string) error {
	return &NotFoundError{Message: msg}
}

func NewBadRequest(msg string) error {
	return &BadRequestError{Message: msg}
}

func NewConflict(msg string) error {
	return &ConflictError{Message: msg}
}

// Type checks

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsBadRequestError(err error) bool {
	var e *BadRequestError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// MapToHTTP classifies an error into an HTTP status, a client-safe message
// and the field issues to include in the error envelope. Anything not part
// of the domain taxonomy maps to a generic 500 so internals never leak.
func MapToHTTP(err error) (int, string, []FieldIssue) {
	if err == nil {
		return http.StatusOK, "", nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message, ve.Issues
	}

	switch {
	case IsNotFoundError(err):
		return http.StatusNotFound, err.Error(), nil
	case IsBadRequestError(err):
		return http.StatusBadRequest, err.Error(), nil
	case IsConflictError(err):
		return http.StatusConflict, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
