// Package server provides the HTTP REST API for the risk scoring engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidAccessKey indicates the presented access key did not match.
type ErrInvalidAccessKey struct{}

func (e *ErrInvalidAccessKey) Error() string {
	return "invalid access key"
}

// ErrAssessmentNotFound indicates no stored assessment has the given ID.
type ErrAssessmentNotFound struct {
	ID uuid.UUID
}

func (e *ErrAssessmentNotFound) Error() string {
	return fmt.Sprintf("assessment not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageUnavailable indicates the server runs without a database and
// cannot serve stored-assessment routes.
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "assessment storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidAccessKey:
		return http.StatusUnauthorized
	case *ErrAssessmentNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
