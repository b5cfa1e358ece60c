package domains

import "strings"

// Legitimacy tiers for the combined company/domain score.
const (
	LegitimacyVerified   = "VERIFIED"
	LegitimacyLikely     = "LIKELY_LEGITIMATE"
	LegitimacyUncertain  = "UNCERTAIN"
	LegitimacySuspicious = "SUSPICIOUS"
	LegitimacyFake       = "LIKELY_FAKE"
)

// businessWords are generic tokens in registered company names. A name
// carrying one earns partial credit when it does not match the domain.
var businessWords = []string{
	"inc", "corp", "llc", "ltd", "co", "company",
	"group", "solutions", "tech", "systems",
}

// LegitimacyResult scores how plausibly a company name and its domain
// belong together, folded with the domain's age reputation.
type LegitimacyResult struct {
	Score      int
	Tier       string
	Indicators []string
}

// VerifyLegitimacy combines name/domain correspondence with the domain's
// reputation into a 0-100 legitimacy score. Both inputs are optional;
// absent signals leave the neutral base score untouched.
func VerifyLegitimacy(companyName, domain string, reputation Reputation) LegitimacyResult {
	score := 50
	var indicators []string

	if companyName != "" && domain != "" {
		nameLower := strings.ReplaceAll(strings.ToLower(companyName), " ", "")
		label := strings.Split(strings.TrimPrefix(strings.ToLower(domain), "www."), ".")[0]

		if strings.Contains(label, nameLower) || strings.Contains(nameLower, label) {
			score += 20
			indicators = append(indicators, "company name matches domain")
		} else if containsAnyWord(nameLower, businessWords) {
			score += 10
			indicators = append(indicators, "company name contains common business words")
		}
	}

	if domain != "" {
		score += reputation.Score - 50
		switch reputation.TrustTier {
		case TrustHigh, TrustGood:
			indicators = append(indicators, "domain trust level: "+reputation.TrustTier)
		case TrustVeryLow, TrustLow:
			indicators = append(indicators, "warning: "+reputation.Reason)
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return LegitimacyResult{Score: score, Tier: legitimacyTier(score), Indicators: indicators}
}

func legitimacyTier(score int) string {
	switch {
	case score >= 80:
		return LegitimacyVerified
	case score >= 60:
		return LegitimacyLikely
	case score >= 40:
		return LegitimacyUncertain
	case score >= 20:
		return LegitimacySuspicious
	default:
		return LegitimacyFake
	}
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
