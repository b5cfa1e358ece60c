package scoring

import (
	"github.com/mkale/jobshield/internal/features"
	"github.com/mkale/jobshield/internal/types"
)

// criticalQuickFlags are the quick-scan labels that escalate severity to
// High on their own.
var criticalQuickFlags = map[string]bool{
	features.FlagSuspiciousEmail:   true,
	features.FlagSpamPhrase:        true,
	features.FlagUnrealisticSalary: true,
}

// assessSeverity grades the red-flag picture. A critical quick-scan flag or
// a very high risk score means High; many findings or an elevated score
// means Medium; everything else is Low.
func assessSeverity(quickFlags []string, findings []types.Finding, risk float64) types.Severity {
	for _, f := range quickFlags {
		if criticalQuickFlags[f] {
			return types.SeverityHigh
		}
	}
	if risk > 0.8 {
		return types.SeverityHigh
	}
	if len(findings) > 3 || risk > 0.6 {
		return types.SeverityMedium
	}
	return types.SeverityLow
}

// RedFlagSeverity maps a raw red-flag score to a coarse label with a short
// description, used for report rendering.
func RedFlagSeverity(score int) (string, string) {
	switch {
	case score >= 10:
		return "CRITICAL", "Multiple strong scam indicators present"
	case score >= 6:
		return "HIGH", "Several scam indicators present"
	case score >= 3:
		return "MEDIUM", "Some suspicious indicators present"
	case score >= 1:
		return "LOW", "Minor suspicious indicators present"
	default:
		return "NONE", "No scam indicators detected"
	}
}
