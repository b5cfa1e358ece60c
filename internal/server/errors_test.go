package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid access key", &ErrInvalidAccessKey{}, http.StatusUnauthorized},
		{"assessment not found", &ErrAssessmentNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "url", Message: "required"}, http.StatusBadRequest},
		{"storage unavailable", &ErrStorageUnavailable{}, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "invalid access key", (&ErrInvalidAccessKey{}).Error())
	assert.Contains(t, (&ErrAssessmentNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrValidation{Field: "url", Message: "required"}).Error(), "url")
	assert.Contains(t, (&ErrStorageUnavailable{}).Error(), "not configured")
}
