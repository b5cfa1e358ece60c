package server

import (
	"encoding/json"
	"net/http"

	"github.com/mkale/jobshield/internal/fetch"
	"github.com/mkale/jobshield/internal/ingestion"
	"github.com/mkale/jobshield/internal/scoring"
	"github.com/mkale/jobshield/internal/types"
)

// handleAnalyze scores a posting supplied in the request body, either as a
// raw text blob or as pre-extracted structured fields.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var job *types.JobPosting
	if req.Description != "" {
		job = &types.JobPosting{
			Title:         req.Title,
			Company:       req.Company,
			CompanyDomain: req.CompanyDomain,
			Location:      req.Location,
			Description:   req.Description,
			Requirements:  req.Requirements,
			Salary:        req.Salary,
			JobPortal:     types.PortalManual,
		}
	} else {
		job = ingestion.ParsePosting(req.Text)
		// Structured overrides win over extraction.
		if req.CompanyDomain != "" {
			job.CompanyDomain = req.CompanyDomain
		}
		if req.Company != "" {
			job.Company = req.Company
		}
		if req.Title != "" {
			job.Title = req.Title
		}
	}

	assessment, err := s.engine.Score(r.Context(), job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := scoring.BuildReport(job, assessment)
	s.storeAssessment(r, assessment, report)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeURL fetches a posting from a URL, parses it, and scores it.
func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	allowBrowser := s.useBrowser || req.UseBrowser
	text, platform, err := fetch.Posting(r.Context(), req.URL, allowBrowser, s.verbose)
	if err != nil {
		s.jsonResponse(w, http.StatusBadGateway, types.Report{
			Success: false,
			Error:   err.Error(),
			URL:     req.URL,
		})
		return
	}

	job := ingestion.ParsePosting(text)
	job.URL = req.URL
	if platform != fetch.PlatformUnknown {
		job.JobPortal = string(platform)
	}

	assessment, err := s.engine.Score(r.Context(), job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := scoring.BuildReport(job, assessment)
	s.storeAssessment(r, assessment, report)
	s.jsonResponse(w, http.StatusOK, report)
}

// storeAssessment persists the assessment when storage is configured.
// Persistence failures are logged, not surfaced: the scoring result is
// already computed and belongs to the client.
func (s *Server) storeAssessment(r *http.Request, a *types.RiskAssessment, report types.Report) {
	if s.db == nil {
		return
	}
	if err := s.db.SaveAssessment(r.Context(), a, report); err != nil {
		logSaveError(a, err)
	}
}
