package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mkale/jobshield/internal/types"
)

// handleListAssessments returns the most recent stored assessments.
func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 500 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = parsed
	}

	stored, err := s.db.ListAssessments(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}

	reports := make([]types.Report, 0, len(stored))
	for _, a := range stored {
		reports = append(reports, a.Report)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"assessments": reports,
		"count":       len(reports),
	})
}

// handleGetAssessment returns one stored assessment by ID.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid assessment ID")
		return
	}

	stored, err := s.db.GetAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get assessment")
		return
	}
	if stored == nil {
		notFound := &ErrAssessmentNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored.Report)
}

// handleDeleteAssessment removes a stored assessment.
func (s *Server) handleDeleteAssessment(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid assessment ID")
		return
	}

	deleted, err := s.db.DeleteAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete assessment")
		return
	}
	if !deleted {
		notFound := &ErrAssessmentNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logSaveError logs a failed assessment save.
func logSaveError(a *types.RiskAssessment, err error) {
	log.Printf("[store] failed to save assessment %s: %v", a.ID, err)
}
