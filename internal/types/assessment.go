package types

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the binary outcome of a scoring call.
type Verdict string

const (
	// VerdictFake means confidence exceeded the 0.5 threshold.
	VerdictFake Verdict = "FAKE JOB"
	// VerdictGenuine means confidence stayed at or below the threshold.
	VerdictGenuine Verdict = "GENUINE JOB"
)

// Severity describes how serious the detected red flags are.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Finding is a single matched red-flag indicator with its weight.
// Within one assessment no two findings share a label; when the same label
// matches more than once, the maximum weight is retained.
type Finding struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// RiskAssessment is the engine's output for one posting. It is created once
// per scoring call and never persisted by the engine itself.
type RiskAssessment struct {
	ID                 uuid.UUID   `json:"id"`
	Verdict            Verdict     `json:"verdict"`
	IsFake             bool        `json:"is_fake"`
	Confidence         float64     `json:"confidence"` // fake-probability in [0,1]
	Severity           Severity    `json:"severity"`
	QualityScore       int         `json:"quality_score"` // [0,100]
	QualityGrade       string      `json:"quality_grade"` // EXCELLENT .. SUSPICIOUS
	Findings           []Finding   `json:"findings"`
	RedFlagScore       int         `json:"red_flag_score"`
	Features           FeatureSet  `json:"features"`
	Domain             *DomainInfo `json:"domain,omitempty"`
	DescriptionPreview string      `json:"description_preview"`
	CreatedAt          time.Time   `json:"created_at"`
}

// FindingLabels returns the labels of all findings, in order.
func (a *RiskAssessment) FindingLabels() []string {
	labels := make([]string, len(a.Findings))
	for i, f := range a.Findings {
		labels[i] = f.Label
	}
	return labels
}

// DomainInfo summarizes the domain reputation analysis attached to an
// assessment when the posting carried a company domain.
type DomainInfo struct {
	Domain          string   `json:"domain"`
	IsSuspicious    bool     `json:"is_suspicious"`
	SuspicionReason string   `json:"suspicion_reason"`
	SuspicionHits   []string `json:"suspicion_hits,omitempty"`
	ReputationScore int      `json:"reputation_score"` // 0-100, 50 when unknown
	TrustTier       string   `json:"trust_level"`
	LegitimacyScore int      `json:"legitimacy_score"` // 0-100
	LegitimacyTier  string   `json:"legitimacy_level"`
}

// Report is the JSON shape served to API clients, flattened the way the
// frontend consumes it.
type Report struct {
	ID                 string      `json:"id,omitempty"`
	FinalPrediction    string      `json:"final_prediction"` // "FAKE JOB" / "GENUINE JOB"
	IsFake             bool        `json:"is_fake"`
	AIConfidence       float64     `json:"ai_confidence"`       // 0-100
	CombinedConfidence float64     `json:"combined_confidence"` // 0-100
	RedFlagsCount      int         `json:"red_flags_count"`
	RedFlagsList       []string    `json:"red_flags_list"`
	RedFlagsSeverity   string      `json:"red_flags_severity"`
	JobQuality         string      `json:"job_quality"`
	JobPortal          string      `json:"job_portal"`
	Company            string      `json:"company"`
	CompanyDomain      string      `json:"company_domain,omitempty"`
	JobTitle           string      `json:"job_title"`
	Location           string      `json:"location,omitempty"`
	DescriptionPreview string      `json:"description_preview"`
	DomainAnalysis     *DomainInfo `json:"domain_analysis,omitempty"`
	URL                string      `json:"url,omitempty"`
	Success            bool        `json:"success"`
	Error              string      `json:"error,omitempty"`
}
