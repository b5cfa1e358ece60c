// Package types provides type definitions for structured data used throughout the jobshield system.
package types

import "strings"

// PortalManual is the source identifier for postings pasted in by hand
// rather than fetched from a job portal.
const PortalManual = "manual_input"

// JobPosting is the input to the risk scoring engine. It is owned by the
// caller and never mutated during a scoring call.
type JobPosting struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	CompanyDomain  string `json:"company_domain,omitempty"`
	CompanyProfile string `json:"company_profile,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements,omitempty"`
	Salary         string `json:"salary,omitempty"`
	JobPortal      string `json:"job_portal,omitempty"` // portal hostname or PortalManual
	URL            string `json:"url,omitempty"`
}

// CombinedText returns the text used for linguistic analysis: the
// description, requirements and company profile joined with spaces.
// Missing fields contribute nothing.
func (p *JobPosting) CombinedText() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Description, p.Requirements, p.CompanyProfile} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
