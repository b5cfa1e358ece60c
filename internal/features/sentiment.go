package features

import "strings"

// Bag-of-words sentiment. Deliberately tiny: the scorer only cares about
// strong skews and near-neutrality, not fine-grained sentiment.
var (
	positiveWords = []string{"excellent", "great", "amazing", "wonderful", "fantastic", "best", "good"}
	negativeWords = []string{"bad", "terrible", "awful", "poor", "worst", "horrible", "scam"}
)

// sentiment returns polarity in [-1,1] and a fixed mid-scale subjectivity.
// Polarity is the signed share of matched sentiment words; a text with no
// matches is neutral.
func sentiment(text string) (polarity, subjectivity float64) {
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	total := pos + neg
	if total < 1 {
		total = 1
	}
	return float64(pos-neg) / float64(total), 0.5
}
