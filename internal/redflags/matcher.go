// Package redflags implements the weighted lexicon and pattern matcher that
// detects scam indicators in job posting text.
package redflags

import (
	"regexp"
	"strings"

	"github.com/mkale/jobshield/internal/lexicon"
	"github.com/mkale/jobshield/internal/types"
)

// Context multipliers applied to pattern matches. Repeated matches and
// co-occurring urgency language both amplify a pattern's weight; the
// multipliers compose and the adjusted weight is truncated to an integer.
const (
	repetitionMultiplier = 1.5
	urgencyMultiplier    = 1.3
)

// urgencyAmplifiers are the words whose presence amplifies pattern weights.
var urgencyAmplifiers = []string{"urgent", "immediate", "now", "today"}

var (
	// Currency symbols and % survive normalization so phrases like
	// "earn $" and "100% job guarantee" stay matchable.
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N}\s$₹€%]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Matcher scans normalized text against an immutable lexicon table.
// It holds no per-call state and is safe for concurrent use.
type Matcher struct {
	table *lexicon.Table
}

// NewMatcher creates a matcher over the given lexicon table.
func NewMatcher(table *lexicon.Table) *Matcher {
	return &Matcher{table: table}
}

// Table returns the lexicon table the matcher scans against.
func (m *Matcher) Table() *lexicon.Table {
	return m.table
}

// Score scans the text and returns the total red-flag score together with
// the deduplicated findings. The total sums every contribution as it fires;
// deduplication (max weight per label) applies only to the finding list.
// Score is a pure function of the input text and the static lexicon.
func (m *Matcher) Score(text string) (int, []types.Finding) {
	lower := strings.ToLower(text)
	clean := normalize(lower)

	total := 0
	var found []types.Finding

	// Literal phrases match as substrings of the punctuation-stripped text.
	for _, lit := range m.table.Literals {
		if strings.Contains(clean, lit.Phrase) {
			total += lit.Weight
			found = append(found, types.Finding{Label: lit.Phrase, Weight: lit.Weight})
		}
	}

	// Patterns match against the original lowercase text, with context
	// multipliers for repetition and urgency co-occurrence.
	urgent := containsAny(clean, urgencyAmplifiers)
	for _, p := range m.table.Patterns {
		matches := p.Expr.FindAllStringIndex(lower, -1)
		if len(matches) == 0 {
			continue
		}
		multiplier := 1.0
		if len(matches) > 1 {
			multiplier = repetitionMultiplier
		}
		if urgent {
			multiplier *= urgencyMultiplier
		}
		adjusted := int(float64(p.Weight) * multiplier)
		// Zero-weight patterns mark expected professional content; they
		// contribute nothing and are never reported as findings.
		if adjusted == 0 {
			continue
		}
		total += adjusted
		found = append(found, types.Finding{Label: p.Description, Weight: adjusted})
	}

	// Structural heuristics layered after lexicon scanning.
	for _, f := range heuristicFindings(text, lower, clean) {
		total += f.Weight
		found = append(found, f)
	}

	return total, dedupe(found)
}

// normalize strips punctuation from lowercase text for literal matching:
// apostrophes are removed, other punctuation becomes a space, and runs of
// whitespace collapse to one space.
func normalize(lower string) string {
	s := strings.NewReplacer("'", "", "’", "").Replace(lower)
	s = punctRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// containsAny reports whether any needle occurs as a substring of s.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// countContained counts how many needles occur as substrings of s.
// Each needle counts at most once.
func countContained(s string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(s, n) {
			count++
		}
	}
	return count
}

// dedupe removes duplicate labels keeping the maximum weight per label,
// preserving first-seen order.
func dedupe(findings []types.Finding) []types.Finding {
	index := make(map[string]int, len(findings))
	out := make([]types.Finding, 0, len(findings))
	for _, f := range findings {
		if i, seen := index[f.Label]; seen {
			if f.Weight > out[i].Weight {
				out[i].Weight = f.Weight
			}
			continue
		}
		index[f.Label] = len(out)
		out = append(out, f)
	}
	return out
}
