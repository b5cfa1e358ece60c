// Package domains classifies company domains: suspicious-pattern detection,
// registration-age reputation, and company legitimacy scoring.
package domains

import (
	"fmt"
	"regexp"
	"strings"
)

// suspiciousTLDs are top-level domains disproportionately used by scam
// postings (cheap or free registrations).
var suspiciousTLDs = []string{
	".xyz", ".top", ".work", ".click", ".link", ".club",
	".date", ".racing", ".science", ".gq", ".ml", ".tk",
	".cf", ".ga", ".buzz", ".info",
}

// lookalikeBrands maps common typo-squatted spellings to the brand they
// impersonate.
var lookalikeBrands = map[string]string{
	"gooogle":   "google",
	"googel":    "google",
	"amaz0n":    "amazon",
	"microsft":  "microsoft",
	"micros0ft": "microsoft",
	"appple":    "apple",
	"faceb00k":  "facebook",
	"linkdin":   "linkedin",
	"linkedln":  "linkedin",
}

// simpleDomainRe matches plain second-level + TLD shapes like "abc.co" so
// legitimate numeric domains (e.g. "123movies.co.in" style country domains)
// are not flagged by the digit check.
var simpleDomainRe = regexp.MustCompile(`^[a-zA-Z0-9]+\.[a-zA-Z]{2,}$`)

// CheckResult is the outcome of the pattern-based suspicion checks.
// Reason holds the first matching rule; Hits records every rule that
// matched, since multiple independent signals can coexist.
type CheckResult struct {
	Suspicious bool
	Reason     string
	Hits       []string
}

// CheckDomain runs all suspicion checks over the domain string. The checks
// run in priority order; the first hit supplies the reason but later hits
// are still recorded.
func CheckDomain(domain string) CheckResult {
	domain = strings.TrimSpace(strings.ToLower(domain))
	if domain == "" {
		return CheckResult{Suspicious: true, Reason: "no valid domain found"}
	}

	var hits []string

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			hits = append(hits, fmt.Sprintf("suspicious TLD: %s", tld))
			break
		}
	}

	parts := strings.Split(domain, ".")
	if len(parts) > 4 {
		hits = append(hits, "excessive subdomains")
	}

	if label := secondLevelLabel(parts); label != "" && strings.ContainsAny(label, "0123456789") {
		// Allow legitimate shapes like "abc123.co.in" where the label plus
		// its suffix still parse as a plain domain.
		tail := label + "." + parts[len(parts)-1]
		if !simpleDomainRe.MatchString(tail) {
			hits = append(hits, "suspicious number pattern in domain")
		}
	}

	if strings.Count(domain, "-") > 2 {
		hits = append(hits, "multiple hyphens in domain")
	}

	for fake, real := range lookalikeBrands {
		if strings.Contains(domain, fake) {
			hits = append(hits, fmt.Sprintf("possible lookalike domain (fake %s, real %s)", fake, real))
		}
	}

	if len(hits) == 0 {
		return CheckResult{Reason: "domain appears legitimate"}
	}
	return CheckResult{Suspicious: true, Reason: hits[0], Hits: hits}
}

// secondLevelLabel returns the label left of the TLD, or "" when the domain
// has a single label.
func secondLevelLabel(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// Feature-score constants for FeatureScore, highest priority first.
var (
	highRiskDomainKeywords = []string{"temp", "fake", "test", "demo", "example", "mail.com", "gmail", "yahoo", "hotmail"}
	featureScoreTLDs       = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".win", ".bid"}
	disposableMailPatterns = []string{"temp-mail", "10minutemail", "guerrillamail", "mailinator"}
	numericLeadRe          = regexp.MustCompile(`^\d+\.`)
)

// FeatureScore maps a domain to the suspicious-domain feature value in
// {0, 0.5, 0.6, 0.7, 0.8, 1.0}. The highest-priority matching rule wins;
// a missing domain is maximally suspicious.
func FeatureScore(domain string) float64 {
	domain = strings.TrimSpace(strings.ToLower(domain))
	if domain == "" {
		return 1.0
	}
	for _, kw := range highRiskDomainKeywords {
		if strings.Contains(domain, kw) {
			return 1.0
		}
	}
	for _, tld := range featureScoreTLDs {
		if strings.HasSuffix(domain, tld) {
			return 0.8
		}
	}
	for _, p := range disposableMailPatterns {
		if strings.Contains(domain, p) {
			return 0.5
		}
	}
	if numericLeadRe.MatchString(domain) {
		return 0.7
	}
	if len(strings.Split(domain, ".")[0]) < 3 {
		return 0.6
	}
	return 0.0
}
