package features

import (
	"strings"

	"github.com/mkale/jobshield/internal/types"
)

// Quick-scan flag labels. These feed the severity assessment, so their
// spelling is part of the feature contract.
const (
	FlagVagueDescription    = "vague_description"
	FlagUnrealisticSalary   = "unrealistic_salary"
	FlagSpamPhrase          = "spam_phrase"
	FlagSuspiciousEmail     = "suspicious_email"
	FlagMissingRequirements = "missing_requirements"
)

var spamIndicators = []string{
	"work from home with no experience", "easy money", "get rich quick",
	"no experience needed", "guaranteed income", "bitcoin", "crypto",
}

var suspiciousEmailPatterns = []string{"@temp", "@fake", "@test", "@gmail.com", "@yahoo.com"}

// quickScan is a cheap structural pass over the posting fields. A very
// short description short-circuits: the remaining checks assume there is
// enough text to judge.
func quickScan(job *types.JobPosting) []string {
	var flags []string

	if len(job.Description) < 50 {
		return append(flags, FlagVagueDescription)
	}

	combined := strings.ToLower(job.Description + " " + job.Requirements)

	if s := strings.ToLower(job.Salary); s != "" {
		if strings.Contains(s, "unlimited") || strings.Contains(s, "negotiable") || strings.Contains(s, "fake") {
			flags = append(flags, FlagUnrealisticSalary)
		}
	}

	for _, indicator := range spamIndicators {
		if strings.Contains(combined, indicator) {
			flags = append(flags, FlagSpamPhrase)
			break
		}
	}

	if strings.Contains(combined, "@") {
		for _, p := range suspiciousEmailPatterns {
			if strings.Contains(combined, p) {
				flags = append(flags, FlagSuspiciousEmail)
				break
			}
		}
	}

	if len(strings.TrimSpace(job.Requirements)) < 20 {
		flags = append(flags, FlagMissingRequirements)
	}

	return flags
}
