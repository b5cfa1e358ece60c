package redflags

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mkale/jobshield/internal/types"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// commonMisspellings are frequent typos seen in low-effort scam postings.
var commonMisspellings = []string{
	"heelo", "helo", "wel come", "succesful", "occassion", "recieve",
	"excelent", "seperete", "occured", "wiht", "adn", "teh", "reccommend",
	"experiance", "qualifed", "benifits", "salery", "comapny", "organiation",
}

// scamContextWords gate the lenient heuristics: several checks only fire
// when scam language is present, so legitimate terse postings are spared.
var scamContextWords = []string{"guaranteed", "easy money", "urgent", "apply now", "no experience"}

// professionalIndicators are section keywords a real posting tends to carry.
var professionalIndicators = []string{
	"responsibilities", "qualifications", "requirements", "skills",
	"experience", "education", "benefits", "salary", "company",
	"about us", "contact", "apply",
}

var scamDensityWords = []string{
	"guaranteed", "easy money", "work from home", "no experience", "urgent",
	"apply now", "limited time", "investment", "deposit", "fee", "bitcoin",
	"crypto", "passive income", "side hustle", "extra income", "commission",
}

var contactMethods = []string{"whatsapp", "telegram", "phone", "email", "call", "text", "dm"}

var moneyIndicators = []string{"$", "₹", "dollar", "rupee", "salary", "pay", "earn", "income"}

var urgencyWords = []string{"urgent", "immediate", "asap", "now", "today", "deadline", "limited time", "hurry"}

// heuristicFindings runs the structural checks layered after lexicon
// scanning. Each check is independent and produces at most one finding
// (capitalization produces up to two, one per threshold).
func heuristicFindings(text, lower, clean string) []types.Finding {
	var found []types.Finding

	// 1. Capitalization. Two independent thresholds: both can fire.
	capsRatio := uppercaseRatio(text)
	if capsRatio > 0.3 {
		found = append(found, types.Finding{Label: "Excessive capitalization (SCAM indicator)", Weight: 2})
	}
	if capsRatio > 0.5 {
		found = append(found, types.Finding{Label: "ALL CAPS TEXT (Strong SCAM indicator)", Weight: 3})
	}

	// 2. Spelling errors, lenient for legitimate jobs: several errors flag
	// on their own, a single error only together with scam keywords.
	spellingErrors := countContained(clean, commonMisspellings)
	if spellingErrors > 2 {
		weight := min(2, spellingErrors-1)
		found = append(found, types.Finding{
			Label:  fmt.Sprintf("Multiple spelling errors (%d found)", spellingErrors),
			Weight: weight,
		})
	} else if spellingErrors == 1 && containsAny(clean, []string{"urgent", "guaranteed", "easy money"}) {
		found = append(found, types.Finding{Label: "Minor spelling error with suspicious content", Weight: 1})
	}

	// 3. Sentence structure: many very short sentences.
	sentences := sentenceSplitRe.Split(text, -1)
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	avgSentenceLength := float64(totalWords) / float64(max(len(sentences), 1))
	if avgSentenceLength < 5 && len(sentences) > 10 {
		found = append(found, types.Finding{Label: "Poor sentence structure", Weight: 1})
	}

	// 4. Professional-content gap, only under scam context. First
	// qualifying rule wins.
	professionalScore := countContained(lower, professionalIndicators)
	scamContext := containsAny(clean, scamContextWords)
	if professionalScore < 2 && scamContext {
		found = append(found, types.Finding{Label: "Missing professional job details", Weight: 2})
	} else if professionalScore < 3 && scamContext {
		found = append(found, types.Finding{Label: "Limited professional content", Weight: 1})
	}

	// 5. Scam phrase density.
	wordCount := len(strings.Fields(clean))
	if wordCount > 0 {
		density := float64(countContained(lower, scamDensityWords)) / float64(wordCount)
		if density > 0.05 {
			weight := min(3, int(density*50))
			found = append(found, types.Finding{
				Label:  fmt.Sprintf("High scam phrase density (%.1f%%)", density*100),
				Weight: weight,
			})
		}
	}

	// 6. Contact method spread.
	if countContained(lower, contactMethods) > 2 {
		found = append(found, types.Finding{Label: "Multiple contact methods specified", Weight: 1})
	}

	// 7. Money references.
	if countContained(lower, moneyIndicators) > 3 {
		found = append(found, types.Finding{Label: "Excessive money references", Weight: 1})
	}

	// 8. Urgency pressure.
	if n := countContained(lower, urgencyWords); n > 2 {
		found = append(found, types.Finding{Label: "High urgency pressure", Weight: min(2, n-1)})
	}

	return found
}

// uppercaseRatio returns the share of uppercase characters in the text.
func uppercaseRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	upper := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len([]rune(text)))
}
