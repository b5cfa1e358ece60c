// Package lexicon provides the versioned, weighted red-flag vocabulary used
// by the matcher. Tables are loaded once at process start from a JSON file
// (a built-in default is embedded), validated against a JSON Schema, and are
// immutable afterwards, so they are safe for unlimited concurrent reads.
package lexicon

import "regexp"

// Tier is a severity bucket assigning base weight to a lexicon entry.
type Tier string

const (
	// TierCritical entries are the strongest scam indicators (weight 4).
	TierCritical Tier = "critical"
	// TierHigh entries are strong indicators needing context (weight 3).
	TierHigh Tier = "high"
	// TierMedium entries are moderate indicators (weight 1).
	TierMedium Tier = "medium"
)

// Literal is a weighted phrase matched as a substring of the normalized text.
type Literal struct {
	Phrase string
	Tier   Tier
	Weight int
}

// Pattern is a weighted regular expression with a human-readable description
// recorded as the finding label when it matches.
type Pattern struct {
	Expr        *regexp.Regexp
	Weight      int
	Description string
}

// Table is an immutable, compiled lexicon shared read-only across all
// scoring calls.
type Table struct {
	Version  string
	Literals []Literal
	Patterns []Pattern
}

// Len returns the total number of entries in the table.
func (t *Table) Len() int {
	return len(t.Literals) + len(t.Patterns)
}
