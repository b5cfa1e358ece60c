package features

import "strings"

// readabilityScore is a simplified Flesch Reading Ease, normalized to
// [0,1]. Dense, long-sentence text scores low; simple text scores high.
func readabilityScore(words, sentences []string) float64 {
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	avgSentenceLength := float64(len(words)) / float64(len(sentences))

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += countSyllables(w)
	}
	avgSyllables := float64(totalSyllables) / float64(len(words))

	readability := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllables
	return clamp01(readability / 100)
}

// countSyllables approximates syllables by counting vowel-group onsets,
// discounting a trailing silent e, with a floor of one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 1
	}
	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
