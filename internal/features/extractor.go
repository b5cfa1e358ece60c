// Package features computes the linguistic feature vector of a job posting:
// readability, lexical diversity, sentiment, professional vocabulary, and
// the quick structural red-flag scan.
package features

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/mkale/jobshield/internal/domains"
	"github.com/mkale/jobshield/internal/types"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Extractor computes feature sets. It is stateless and safe for
// concurrent use.
type Extractor struct{}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract computes every feature derivable from the posting alone. The
// matcher-dependent fields (red-flag and combination scores, suspicion)
// are filled in later by the scoring engine.
func (e *Extractor) Extract(job *types.JobPosting) types.FeatureSet {
	combined := job.CombinedText()
	words := strings.Fields(combined)
	sentences := sentenceSplitRe.Split(combined, -1)

	polarity, subjectivity := sentiment(combined)
	readability := readabilityScore(words, sentences)
	diversity := lexicalDiversity(words)
	professional := professionalTermRatio(combined)

	fs := types.FeatureSet{
		TextLength:            len(combined),
		WordCount:             len(words),
		SentenceCount:         countSentenceMarks(combined) + 1,
		UppercaseRatio:        charRatio(combined, unicode.IsUpper),
		DigitRatio:            charRatio(combined, unicode.IsDigit),
		SentimentPolarity:     polarity,
		SentimentSubjectivity: subjectivity,
		ReadabilityScore:      readability,
		LexicalDiversity:      diversity,
		SentenceComplexity:    sentenceComplexity(sentences),
		ProfessionalTermRatio: professional,
		DomainExists:          job.CompanyDomain != "",
		DomainLength:          len(job.CompanyDomain),
		SuspiciousDomainScore: domains.FeatureScore(job.CompanyDomain),
		QuickFlags:            quickScan(job),
		TextQualityScore:      readability*0.3 + diversity*0.3 + professional*0.4,
	}
	return fs
}

// SuspicionScore folds the red-flag count and combination score into a
// single [0,1] suspicion value.
func SuspicionScore(redFlagCount int, comboScore float64) float64 {
	return math.Min(1.0, float64(redFlagCount)*0.1+comboScore*0.05)
}

// charRatio returns the share of characters satisfying pred.
func charRatio(text string, pred func(rune) bool) float64 {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	n := 0
	for _, r := range runes {
		if pred(r) {
			n++
		}
	}
	return float64(n) / float64(len(runes))
}

func countSentenceMarks(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

// lexicalDiversity is the unique-to-total word ratio.
func lexicalDiversity(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return float64(len(unique)) / float64(len(words))
}

// sentenceComplexity is the coefficient of variation of sentence lengths.
// Uniform texts score near zero; highly uneven texts score above one.
func sentenceComplexity(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0
	}
	var lengths []float64
	for _, s := range sentences {
		if strings.TrimSpace(s) == "" {
			continue
		}
		lengths = append(lengths, float64(len(strings.Fields(s))))
	}
	if len(lengths) == 0 {
		return 0
	}
	mean := 0.0
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return math.Sqrt(variance) / mean
}

// professionalTerms is the business vocabulary a genuine posting draws on.
var professionalTerms = map[string]struct{}{
	"responsibilities": {}, "requirements": {}, "qualifications": {},
	"skills": {}, "experience": {}, "education": {}, "benefits": {},
	"salary": {}, "compensation": {}, "company": {}, "organization": {},
	"team": {}, "project": {}, "client": {}, "customer": {},
	"deadline": {}, "milestone": {}, "objective": {}, "strategy": {},
	"analysis": {}, "development": {}, "implementation": {}, "collaboration": {},
}

// professionalTermRatio counts distinct professional terms over the
// posting's distinct words.
func professionalTermRatio(text string) float64 {
	unique := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		unique[w] = struct{}{}
	}
	if len(unique) == 0 {
		return 0
	}
	n := 0
	for w := range unique {
		if _, ok := professionalTerms[w]; ok {
			n++
		}
	}
	return float64(n) / float64(len(unique))
}
