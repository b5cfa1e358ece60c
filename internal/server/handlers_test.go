package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkale/jobshield/internal/config"
	"github.com/mkale/jobshield/internal/domains"
	"github.com/mkale/jobshield/internal/features"
	"github.com/mkale/jobshield/internal/lexicon"
	"github.com/mkale/jobshield/internal/redflags"
	"github.com/mkale/jobshield/internal/scoring"
	"github.com/mkale/jobshield/internal/types"
)

// newTestServer builds a stateless server with the embedded lexicon and no
// network lookups, suitable for calling handlers directly.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := lexicon.Default()
	require.NoError(t, err)

	engine := scoring.NewEngine(redflags.NewMatcher(table), features.NewExtractor(), domains.NewAnalyzer(nil))
	return &Server{engine: engine}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleAnalyzeStructured(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"title": "Backend Engineer",
		"company": "Acme Corp",
		"company_domain": "acmecorp.com",
		"description": "We are hiring a backend engineer to join our platform team and build payment services with code review and a structured interview process."
	}`
	rec := postJSON(t, s.handleAnalyze, "/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.True(t, report.Success)
	assert.Equal(t, "Backend Engineer", report.JobTitle)
	assert.Equal(t, "Acme Corp", report.Company)
	assert.Equal(t, "acmecorp.com", report.CompanyDomain)
	assert.Contains(t, []string{string(types.VerdictFake), string(types.VerdictGenuine)}, report.FinalPrediction)
	assert.NotNil(t, report.DomainAnalysis)
}

func TestHandleAnalyzeRawText(t *testing.T) {
	s := newTestServer(t)

	text := "Data Entry Executive\nURGENT HIRING! Earn $5000 weekly from home. No experience needed. " +
		"Pay the registration fee to confirm your seat. Contact us on WhatsApp immediately."
	payload, err := json.Marshal(map[string]string{"text": text, "company": "Quick Cash"})
	require.NoError(t, err)

	rec := postJSON(t, s.handleAnalyze, "/analyze", string(payload))
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "Quick Cash", report.Company, "structured override wins over extraction")
	assert.Equal(t, string(types.VerdictFake), report.FinalPrediction)
	assert.NotEmpty(t, report.RedFlagsList)
}

func TestHandleAnalyzeBadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", "{not json"},
		{"missing text and description", `{"title": "Engineer"}`},
		{"bad domain", `{"description": "A long enough description.", "company_domain": "not a domain"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s.handleAnalyze, "/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleAnalyzeURLBadRequest(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.handleAnalyzeURL, "/analyze/url", `{"url": "not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthStateless(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "disabled", status["storage"], "no database means storage is reported disabled")
}

func TestHandleToken(t *testing.T) {
	s := newTestServer(t)
	s.jwtService = newTestJWTService("test-secret")

	keys := &config.AccessKeyConfig{BcryptCost: 10}
	hash, err := keys.HashKey("correct-access-key")
	require.NoError(t, err)
	keys.KeyHash = hash
	s.accessKeys = keys

	rec := postJSON(t, s.handleToken, "/auth/token", `{"access_key": "correct-access-key"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp["token_type"])
	assert.NotEmpty(t, resp["client_id"])

	claims, err := s.jwtService.ValidateToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, resp["client_id"], claims.ClientID.String())
}

func TestHandleTokenRejections(t *testing.T) {
	s := newTestServer(t)
	s.jwtService = newTestJWTService("test-secret")

	keys := &config.AccessKeyConfig{BcryptCost: 10}
	hash, err := keys.HashKey("correct-access-key")
	require.NoError(t, err)
	keys.KeyHash = hash
	s.accessKeys = keys

	rec := postJSON(t, s.handleToken, "/auth/token", `{"access_key": "wrong-access-key"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid access key")

	// Keys shorter than the minimum fail validation before hashing.
	rec = postJSON(t, s.handleToken, "/auth/token", `{"access_key": "short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractClientID(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	assert.Equal(t, "203.0.113.7", s.extractClientID(req))

	req.RemoteAddr = "no-port-here"
	assert.Equal(t, "no-port-here", s.extractClientID(req))
}

func TestWithCORS(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "preflight short-circuits")

	req = httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{}"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
