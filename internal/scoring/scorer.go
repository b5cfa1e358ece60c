// Package scoring blends the red-flag matcher, linguistic features, and
// domain analysis into a single fraud-risk assessment.
package scoring

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mkale/jobshield/internal/domains"
	"github.com/mkale/jobshield/internal/features"
	"github.com/mkale/jobshield/internal/redflags"
	"github.com/mkale/jobshield/internal/types"
)

// Indicator families for the risk blend. Matching is by substring of the
// finding label, so pattern descriptions count alongside literal phrases.
var (
	criticalPatterns = []string{
		"registration fee", "pay fee", "payment required", "upfront payment",
		"bitcoin", "cryptocurrency", "blockchain investment", "crypto investment",
		"guaranteed income", "guaranteed job", "no interview", "no background check",
		"fake degree accepted", "illegal work",
	}
	highRiskPatterns = []string{
		"urgent hiring", "whatsapp", "telegram", "viber", "skype",
		"work from home guaranteed", "no experience needed", "easy money",
		"get rich quick", "passive income", "micro task", "captcha entry",
	}
)

// Engine orchestrates a full posting assessment. All components are
// stateless, so the engine is safe for concurrent use.
type Engine struct {
	matcher   *redflags.Matcher
	extractor *features.Extractor
	domains   *domains.Analyzer
}

// NewEngine wires an engine from its components.
func NewEngine(matcher *redflags.Matcher, extractor *features.Extractor, domainAnalyzer *domains.Analyzer) *Engine {
	return &Engine{matcher: matcher, extractor: extractor, domains: domainAnalyzer}
}

// Score assesses one posting. Feature extraction, red-flag matching, and
// domain analysis run concurrently; the blend itself is deterministic, so
// scoring the same posting twice yields the same assessment.
func (e *Engine) Score(ctx context.Context, job *types.JobPosting) (*types.RiskAssessment, error) {
	combined := job.CombinedText()

	var (
		fs         types.FeatureSet
		flagScore  int
		findings   []types.Finding
		domainInfo *types.DomainInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fs = e.extractor.Extract(job)
		return nil
	})
	g.Go(func() error {
		// Red flags are counted over the description alone; the combination
		// pass below still sees the full posting text.
		flagScore, findings = e.matcher.Score(job.Description)
		return nil
	})
	g.Go(func() error {
		if job.CompanyDomain != "" {
			domainInfo = e.domains.Analyze(gctx, job.CompanyDomain, job.Company)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comboScore, comboFlags := redflags.AnalyzeCombinations(findings, combined)

	fs.RedFlagCount = len(findings)
	fs.RedFlagScore = flagScore
	fs.ComboScore = comboScore
	fs.ComboFlags = comboFlags
	fs.SuspicionScore = features.SuspicionScore(len(findings), comboScore)

	risk := riskScore(fs, findings)
	isFake := risk > 0.5

	verdict := types.VerdictGenuine
	if isFake {
		verdict = types.VerdictFake
	}

	qualityScore, qualityGrade := assessQuality(risk*100, len(findings), isFake, fs)

	return &types.RiskAssessment{
		ID:                 uuid.New(),
		Verdict:            verdict,
		IsFake:             isFake,
		Confidence:         risk,
		Severity:           assessSeverity(fs.QuickFlags, findings, risk),
		QualityScore:       qualityScore,
		QualityGrade:       qualityGrade,
		Findings:           findings,
		RedFlagScore:       flagScore,
		Features:           fs,
		Domain:             domainInfo,
		DescriptionPreview: descriptionPreview(job.Description),
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// riskScore is the rule-based blend producing a probability-like score in
// [0,1]. Each step adjusts the running score; the order is fixed.
func riskScore(fs types.FeatureSet, findings []types.Finding) float64 {
	score := 0.05

	// 1. Normalized red-flag score, or a small deduction when clean.
	if fs.RedFlagScore > 0 {
		normalized := minF(float64(fs.RedFlagScore)/20.0, 1.0)
		score += normalized * 0.6
	} else {
		score -= 0.1
	}

	// 2. Per-family finding counts.
	if len(findings) > 0 {
		critical := countMatching(findings, criticalPatterns)
		highRisk := countMatching(findings, highRiskPatterns)
		other := len(findings) - critical - highRisk
		score += float64(critical)*0.15 + float64(highRisk)*0.08 + float64(other)*0.03
	}

	// 3. Suspicious domain.
	if fs.SuspiciousDomainScore > 0 {
		score += fs.SuspiciousDomainScore * 0.2
	}

	// 4. Text quality.
	switch {
	case fs.TextQualityScore > 0.6 && fs.TextLength > 500:
		score -= 0.15
	case fs.TextQualityScore < 0.3:
		score += 0.1
	case fs.TextQualityScore > 0.7:
		score -= 0.05
	}

	// 5. Overly positive sentiment.
	if fs.SentimentPolarity > 0.7 {
		score += 0.08
	} else if fs.SentimentPolarity > 0.5 {
		score += 0.03
	}

	// 6. Readability extremes.
	if fs.ReadabilityScore < 0.2 || fs.ReadabilityScore > 0.9 {
		score += 0.03
	}

	// 7. Professional vocabulary.
	if fs.ProfessionalTermRatio < 0.05 {
		score += 0.08
	} else if fs.ProfessionalTermRatio > 0.2 {
		score -= 0.1
	}

	// 8. Low lexical diversity suggests copied content.
	if fs.LexicalDiversity < 0.3 {
		score += 0.06
	}

	// 9. Suspicion and combination scores.
	score += fs.SuspicionScore * 0.3
	score += fs.ComboScore * 0.2

	// 10-15. Positive indicators deducted as a block.
	positive := 0.0
	if fs.DomainExists && fs.SuspiciousDomainScore == 0 {
		positive += 0.15
	}
	if fs.TextLength > 1000 {
		positive += 0.12
	} else if fs.TextLength > 600 {
		positive += 0.08
	}
	if fs.ProfessionalTermRatio > 0.15 {
		positive += 0.1
	}
	if fs.ReadabilityScore >= 0.4 && fs.ReadabilityScore <= 0.7 {
		positive += 0.05
	}
	if fs.LexicalDiversity > 0.5 {
		positive += 0.05
	}
	if fs.RedFlagScore == 0 && len(findings) == 0 {
		positive += 0.15
	}
	score -= positive

	return clamp01(score)
}

// countMatching counts findings whose label contains any of the patterns.
func countMatching(findings []types.Finding, patterns []string) int {
	n := 0
	for _, f := range findings {
		label := strings.ToLower(f.Label)
		for _, p := range patterns {
			if strings.Contains(label, p) {
				n++
				break
			}
		}
	}
	return n
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
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
