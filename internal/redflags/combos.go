package redflags

import (
	"fmt"
	"strings"

	"github.com/mkale/jobshield/internal/types"
)

// combo is a set of indicators that together raise suspicion beyond the sum
// of their individual weights.
type combo struct {
	members     []string
	score       float64
	description string
}

var highRiskCombos = []combo{
	{[]string{"payment required", "urgent hiring"}, 0.8, "Payment + Urgency: Classic scam pattern"},
	{[]string{"bitcoin", "guaranteed income"}, 0.8, "Crypto + Guarantee: Investment scam"},
	{[]string{"no experience needed", "high salary"}, 0.7, "No experience + High pay: Unrealistic"},
	{[]string{"whatsapp only", "no interview"}, 0.7, "WhatsApp only + No interview: Suspicious contact"},
	{[]string{"work from home", "no experience needed", "guaranteed"}, 0.6, "WFH + No exp + Guaranteed: Common scam"},
}

var mediumRiskCombos = []combo{
	{[]string{"urgent", "apply now"}, 0.4, "Urgency + Apply pressure"},
	{[]string{"investment", "commission"}, 0.4, "Investment + Commission: MLM indicators"},
	{[]string{"crypto", "remote work"}, 0.3, "Crypto + Remote: Modern scam pattern"},
	{[]string{"ai training", "guaranteed job"}, 0.3, "AI training + Job guarantee: Training scam"},
}

// comboScamPhrases is the (shorter) phrase set used for the combination
// pass's density bonus; the matcher's own density heuristic uses a wider
// list with a higher threshold.
var comboScamPhrases = []string{
	"guaranteed", "easy money", "work from home", "no experience", "urgent",
	"apply now", "bitcoin", "crypto", "passive income",
}

// AnalyzeCombinations is a second pass over the matcher's findings: it
// scores co-occurring high-risk indicators and overall scam-phrase density.
// An indicator counts as present when it appears among the finding labels
// or anywhere in the posting text.
func AnalyzeCombinations(findings []types.Finding, text string) (float64, []string) {
	lower := strings.ToLower(text)

	labels := make(map[string]bool, len(findings))
	for _, f := range findings {
		labels[strings.ToLower(f.Label)] = true
	}
	present := func(indicator string) bool {
		return labels[indicator] || strings.Contains(lower, indicator)
	}

	score := 0.0
	var hits []string

	for _, c := range append(append([]combo(nil), highRiskCombos...), mediumRiskCombos...) {
		all := true
		for _, m := range c.members {
			if !present(m) {
				all = false
				break
			}
		}
		if all {
			score += c.score
			hits = append(hits, c.description)
		}
	}

	if len(findings) >= 3 {
		score += 0.2
		hits = append(hits, "Multiple red flags detected")
	}

	if wordCount := len(strings.Fields(lower)); wordCount > 0 {
		density := float64(countContained(lower, comboScamPhrases)) / float64(wordCount)
		if density > 0.03 {
			score += minFloat(0.3, density*5)
			hits = append(hits, fmt.Sprintf("High scam phrase density (%.1f%%)", density*100))
		}
	}

	return score, hits
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
