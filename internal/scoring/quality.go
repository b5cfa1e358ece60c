package scoring

import (
	"math"

	"github.com/mkale/jobshield/internal/types"
)

// assessQuality scores posting quality on a 0-100 scale and grades it.
// It rewards clean, well-written, professionally worded postings and
// damps the score hard when the verdict is fake.
func assessQuality(confidence float64, redFlagCount int, isFake bool, fs types.FeatureSet) (int, string) {
	score := 50.0

	switch {
	case redFlagCount == 0:
		score += 35
	case redFlagCount == 1:
		score += 20
	case redFlagCount == 2:
		score += 10
	case redFlagCount == 3:
		// neutral
	case redFlagCount <= 5:
		score -= 10
	default:
		score -= float64(redFlagCount) * 8
	}

	switch {
	case confidence >= 90:
		score += 25
	case confidence >= 80:
		score += 20
	case confidence >= 70:
		score += 15
	case confidence >= 60:
		score += 10
	case confidence >= 50:
		score += 5
	case confidence >= 40:
		// neutral
	case confidence >= 30:
		score -= 5
	case confidence >= 20:
		score -= 10
	default:
		score -= 20
	}

	score += (fs.TextQualityScore - 0.5) * 50

	switch {
	case fs.ProfessionalTermRatio > 0.2:
		score += 25
	case fs.ProfessionalTermRatio > 0.15:
		score += 20
	case fs.ProfessionalTermRatio > 0.1:
		score += 15
	case fs.ProfessionalTermRatio > 0.05:
		score += 10
	default:
		score -= 15
	}

	switch {
	case fs.ReadabilityScore >= 0.4 && fs.ReadabilityScore <= 0.7:
		score += 15
	case fs.ReadabilityScore >= 0.3 && fs.ReadabilityScore <= 0.8:
		score += 10
	case fs.ReadabilityScore < 0.2 || fs.ReadabilityScore > 0.9:
		score -= 10
	}

	switch {
	case fs.LexicalDiversity > 0.7:
		score += 10
	case fs.LexicalDiversity > 0.6:
		score += 8
	case fs.LexicalDiversity > 0.5:
		score += 5
	case fs.LexicalDiversity < 0.3:
		score -= 15
	case fs.LexicalDiversity < 0.4:
		score -= 10
	}

	switch {
	case fs.DomainExists:
		score += 20
		if fs.SuspiciousDomainScore < 0.3 {
			score += 10
		}
	case fs.SuspiciousDomainScore > 0.7:
		score -= 30
	case fs.SuspiciousDomainScore > 0.5:
		score -= 20
	default:
		score -= 10
	}

	abs := math.Abs(fs.SentimentPolarity)
	switch {
	case abs < 0.2:
		score += 8
	case abs < 0.4:
		score += 5
	case fs.SentimentPolarity > 0.7:
		score -= 10
	case fs.SentimentPolarity < -0.3:
		score -= 5
	}

	switch {
	case fs.TextLength > 800:
		score += 10
	case fs.TextLength > 500:
		score += 5
	case fs.TextLength < 200:
		score -= 15
	case fs.TextLength < 300:
		score -= 10
	}

	if fs.SentenceComplexity >= 0.5 && fs.SentenceComplexity <= 1.5 {
		score += 5
	} else if fs.SentenceComplexity > 2.0 {
		score -= 5
	}

	// A fake verdict caps quality: the more confident the verdict, the
	// harder the damping.
	if isFake {
		switch {
		case confidence > 80:
			score = math.Max(5, score*0.3)
		case confidence > 60:
			score = math.Max(10, score*0.4)
		default:
			score = math.Max(15, score*0.5)
		}
	}

	score = math.Max(0, math.Min(100, score))
	return int(score), qualityGrade(score)
}

func qualityGrade(score float64) string {
	switch {
	case score >= 90:
		return "EXCELLENT"
	case score >= 80:
		return "VERY HIGH"
	case score >= 70:
		return "HIGH"
	case score >= 60:
		return "GOOD"
	case score >= 50:
		return "MODERATE"
	case score >= 40:
		return "FAIR"
	case score >= 30:
		return "LOW"
	case score >= 20:
		return "VERY LOW"
	case score >= 10:
		return "POOR"
	default:
		return "SUSPICIOUS"
	}
}
