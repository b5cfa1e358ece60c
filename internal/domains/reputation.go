package domains

import (
	"context"
	"fmt"
	"time"
)

// Trust tiers assigned from domain registration age.
const (
	TrustVeryLow = "VERY_LOW"
	TrustLow     = "LOW"
	TrustMedium  = "MEDIUM"
	TrustGood    = "GOOD"
	TrustHigh    = "HIGH"
	TrustUnknown = "UNKNOWN"
)

// AgeLookup resolves a domain's registration age. Implementations may hit
// the network; they must honor the context and return an error rather than
// block past its deadline.
type AgeLookup interface {
	DomainAge(ctx context.Context, domain string) (*AgeInfo, error)
}

// AgeInfo describes a domain's registration age.
type AgeInfo struct {
	AgeDays      int
	AgeYears     float64
	CreationDate time.Time
}

// Reputation is the age-based trust assessment of a domain.
type Reputation struct {
	Score     int
	TrustTier string
	Reason    string
	Age       *AgeInfo
}

// CheckReputation scores a domain by registration age. Lookup failures and
// unknown ages fall back to a neutral score so a missing WHOIS record never
// condemns or vouches for a domain on its own.
func CheckReputation(ctx context.Context, lookup AgeLookup, domain string) Reputation {
	unknown := Reputation{Score: 50, TrustTier: TrustUnknown, Reason: "could not verify domain age"}
	if lookup == nil || domain == "" {
		return unknown
	}

	age, err := lookup.DomainAge(ctx, domain)
	if err != nil || age == nil {
		return unknown
	}

	r := Reputation{Age: age}
	switch {
	case age.AgeDays < 30:
		r.Score, r.TrustTier, r.Reason = 20, TrustVeryLow, "domain created less than 30 days ago"
	case age.AgeDays < 90:
		r.Score, r.TrustTier, r.Reason = 40, TrustLow, "domain less than 3 months old"
	case age.AgeDays < 180:
		r.Score, r.TrustTier, r.Reason = 60, TrustMedium, "domain less than 6 months old"
	case age.AgeDays < 365:
		r.Score, r.TrustTier, r.Reason = 75, TrustGood, "domain less than 1 year old"
	default:
		r.Score, r.TrustTier = 90, TrustHigh
		r.Reason = fmt.Sprintf("domain is %d years old", age.AgeDays/365)
	}
	return r
}
