package domains

import (
	"context"

	"github.com/mkale/jobshield/internal/types"
)

// Analyzer runs the full domain assessment: pattern checks, age-based
// reputation, and company legitimacy.
type Analyzer struct {
	lookup AgeLookup
}

// NewAnalyzer creates an analyzer. A nil lookup is allowed; age-dependent
// scores then fall back to their neutral values.
func NewAnalyzer(lookup AgeLookup) *Analyzer {
	return &Analyzer{lookup: lookup}
}

// Analyze assesses a company domain end to end. It never fails: signals
// that cannot be resolved degrade to neutral rather than erroring out.
func (a *Analyzer) Analyze(ctx context.Context, domain, companyName string) *types.DomainInfo {
	check := CheckDomain(domain)
	rep := CheckReputation(ctx, a.lookup, domain)
	legit := VerifyLegitimacy(companyName, domain, rep)

	return &types.DomainInfo{
		Domain:          domain,
		IsSuspicious:    check.Suspicious,
		SuspicionReason: check.Reason,
		SuspicionHits:   check.Hits,
		ReputationScore: rep.Score,
		TrustTier:       rep.TrustTier,
		LegitimacyScore: legit.Score,
		LegitimacyTier:  legit.Tier,
	}
}
