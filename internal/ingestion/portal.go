package ingestion

import (
	"strings"

	"github.com/mkale/jobshield/internal/types"
)

// Portal URL markers, checked before content heuristics.
var portalHosts = []string{"naukri.com", "linkedin.com", "indeed.com", "internshala.com"}

// DetectPortal identifies the job portal from URL fragments or
// platform-specific boilerplate. Unrecognized text counts as manual input.
func DetectPortal(text string) string {
	lower := strings.ToLower(text)

	for _, host := range portalHosts {
		if strings.Contains(lower, host) {
			return host
		}
	}

	switch {
	case strings.Contains(lower, "send me roles like this"):
		return "naukri.com"
	case strings.Contains(lower, "apply on company site") && strings.Contains(lower, "linkedin"):
		return "linkedin.com"
	case strings.Contains(lower, "report this job"):
		return "naukri.com"
	}

	return types.PortalManual
}
