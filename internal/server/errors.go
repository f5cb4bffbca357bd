// Package server provides the HTTP REST API for resume optimization.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrResumeNotFound indicates the resume does not exist or has no parsed data.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrTailoredNotFound indicates the tailored resume does not exist.
type ErrTailoredNotFound struct {
	TailoredID uuid.UUID
}

func (e *ErrTailoredNotFound) Error() string {
	return fmt.Sprintf("tailored resume not found: %s", e.TailoredID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedUpload indicates an upload with a file type outside the
// supported set.
type ErrUnsupportedUpload struct {
	FileType string
}

func (e *ErrUnsupportedUpload) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.FileType)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrResumeNotFound, *ErrTailoredNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrUnsupportedUpload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
