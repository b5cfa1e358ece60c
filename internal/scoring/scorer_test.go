package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkale/jobshield/internal/domains"
	"github.com/mkale/jobshield/internal/features"
	"github.com/mkale/jobshield/internal/lexicon"
	"github.com/mkale/jobshield/internal/redflags"
	"github.com/mkale/jobshield/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := lexicon.Default()
	require.NoError(t, err)
	// Nil age lookup keeps tests off the network; reputation degrades to
	// its neutral value.
	return NewEngine(redflags.NewMatcher(table), features.NewExtractor(), domains.NewAnalyzer(nil))
}

func genuinePosting() *types.JobPosting {
	return &types.JobPosting{
		Title:         "Senior Backend Engineer",
		Company:       "Acme Corp",
		CompanyDomain: "acmecorp.com",
		Location:      "Bangalore",
		Description: "About the role. We are hiring a senior backend engineer to join our payments " +
			"platform team. You will own the design and implementation of core settlement services, " +
			"working closely with product managers and other engineers across the organization. " +
			"The team follows a standard development process with code review, continuous integration, " +
			"and quarterly planning. Our company operates in twelve countries and serves enterprise " +
			"clients in the logistics industry. Responsibilities include designing APIs, improving " +
			"reliability of existing services, mentoring junior engineers, and participating in the " +
			"on-call rotation. We value collaboration, thoughtful analysis, and steady delivery. " +
			"Benefits include health insurance, an education budget for conferences and " +
			"courses, and a structured career framework. The compensation range for this position " +
			"depends on experience and location. Our interview process has four stages: an initial " +
			"conversation, a technical screen, a system design discussion, and a final round with " +
			"the team. Qualifications and requirements are listed below.",
		Requirements: "Five or more years of professional software development experience. Strong " +
			"knowledge of Go or a similar language, relational databases, and distributed systems. " +
			"Education in computer science or equivalent practical experience.",
		Salary:    "$140,000 per year",
		JobPortal: types.PortalManual,
	}
}

func scamPosting() *types.JobPosting {
	return &types.JobPosting{
		Title:   "Work From Home - Earn Daily",
		Company: "Quick Cash",
		Description: "URGENT HIRING! Earn $5000 weekly from home. No experience needed, no interview. " +
			"Guaranteed income for everyone. Pay the registration fee of ₹500 to confirm your seat. " +
			"Contact us on WhatsApp immediately. Limited positions, apply asap!",
		Requirements: "",
		Salary:       "Unlimited",
	}
}

func TestScoreGenuinePosting(t *testing.T) {
	engine := newTestEngine(t)
	a, err := engine.Score(context.Background(), genuinePosting())
	require.NoError(t, err)

	assert.Equal(t, types.VerdictGenuine, a.Verdict)
	assert.False(t, a.IsFake)
	assert.Less(t, a.Confidence, 0.5)
	assert.Equal(t, types.SeverityLow, a.Severity)
	assert.GreaterOrEqual(t, a.QualityScore, 50)
	assert.NotNil(t, a.Domain)
	assert.False(t, a.Domain.IsSuspicious)
}

func TestScoreScamPosting(t *testing.T) {
	engine := newTestEngine(t)
	a, err := engine.Score(context.Background(), scamPosting())
	require.NoError(t, err)

	assert.Equal(t, types.VerdictFake, a.Verdict)
	assert.True(t, a.IsFake)
	assert.Greater(t, a.Confidence, 0.8)
	assert.Equal(t, types.SeverityHigh, a.Severity)
	assert.LessOrEqual(t, a.QualityScore, 40)
	assert.NotEmpty(t, a.Findings)
	assert.Greater(t, a.RedFlagScore, 10)
	assert.Nil(t, a.Domain, "no company domain, no domain analysis")
}

func TestScoreIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	job := scamPosting()

	first, err := engine.Score(context.Background(), job)
	require.NoError(t, err)
	second, err := engine.Score(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Verdict, second.Verdict)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.QualityScore, second.QualityScore)
	assert.NotEqual(t, first.ID, second.ID, "each assessment gets its own ID")
}

func TestScoreAddingIndicatorsRaisesRisk(t *testing.T) {
	engine := newTestEngine(t)

	clean := genuinePosting()
	base, err := engine.Score(context.Background(), clean)
	require.NoError(t, err)

	tainted := genuinePosting()
	tainted.Description += " Pay the registration fee via western union. Guaranteed income, no interview needed."
	worse, err := engine.Score(context.Background(), tainted)
	require.NoError(t, err)

	assert.Greater(t, worse.Confidence, base.Confidence)
	assert.Greater(t, worse.RedFlagScore, base.RedFlagScore)
}

func TestScoreCountsFlagsInDescriptionOnly(t *testing.T) {
	engine := newTestEngine(t)

	// Scam language confined to the requirements field: red-flag counting
	// covers the description alone, so nothing fires.
	job := genuinePosting()
	job.Requirements = "No experience needed, guaranteed income, pay the registration fee via bitcoin."
	a, err := engine.Score(context.Background(), job)
	require.NoError(t, err)

	assert.Zero(t, a.RedFlagScore)
	assert.Empty(t, a.Findings)

	// The same language inside the description counts.
	moved := genuinePosting()
	moved.Description += " No experience needed, guaranteed income, pay the registration fee via bitcoin."
	b, err := engine.Score(context.Background(), moved)
	require.NoError(t, err)

	assert.Positive(t, b.RedFlagScore)
	assert.NotEmpty(t, b.Findings)
}

func TestScoreVagueDescriptionStaysQuickFlag(t *testing.T) {
	engine := newTestEngine(t)

	// A near-empty posting is flagged by the quick scan, but the quick
	// flags never join the red-flag findings.
	a, err := engine.Score(context.Background(), &types.JobPosting{})
	require.NoError(t, err)

	assert.Contains(t, a.Features.QuickFlags, features.FlagVagueDescription)
	assert.Empty(t, a.Findings)
	assert.NotContains(t, a.FindingLabels(), features.FlagVagueDescription)
}

func TestScoreRangeInvariants(t *testing.T) {
	engine := newTestEngine(t)

	jobs := []*types.JobPosting{
		genuinePosting(),
		scamPosting(),
		{Description: ""},
		{Description: "short text", CompanyDomain: "x.tk"},
	}

	for _, job := range jobs {
		a, err := engine.Score(context.Background(), job)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, a.Confidence, 0.0)
		assert.LessOrEqual(t, a.Confidence, 1.0)
		assert.GreaterOrEqual(t, a.QualityScore, 0)
		assert.LessOrEqual(t, a.QualityScore, 100)
		assert.Equal(t, a.IsFake, a.Confidence > 0.5, "verdict must agree with the threshold")
		if a.IsFake {
			assert.Equal(t, types.VerdictFake, a.Verdict)
		} else {
			assert.Equal(t, types.VerdictGenuine, a.Verdict)
		}
	}
}

func TestScoreFillsFeatureSet(t *testing.T) {
	engine := newTestEngine(t)
	a, err := engine.Score(context.Background(), scamPosting())
	require.NoError(t, err)

	fs := a.Features
	assert.Equal(t, len(a.Findings), fs.RedFlagCount)
	assert.Equal(t, a.RedFlagScore, fs.RedFlagScore)
	assert.GreaterOrEqual(t, fs.SuspicionScore, 0.0)
	assert.LessOrEqual(t, fs.SuspicionScore, 1.0)
	assert.Positive(t, fs.ComboScore)
	assert.NotEmpty(t, fs.ComboFlags)
}

func TestRiskScoreCleanBaseline(t *testing.T) {
	// A clean, substantial posting: every deduction fires and the score
	// clamps to the floor.
	fs := types.FeatureSet{
		TextLength:            1200,
		TextQualityScore:      0.65,
		ReadabilityScore:      0.5,
		LexicalDiversity:      0.6,
		ProfessionalTermRatio: 0.25,
		DomainExists:          true,
	}
	assert.Zero(t, riskScore(fs, nil))
}

func TestRiskScoreSaturatesForHeavyFlags(t *testing.T) {
	findings := []types.Finding{
		{Label: "registration fee", Weight: 4},
		{Label: "bitcoin", Weight: 4},
		{Label: "guaranteed income", Weight: 4},
		{Label: "whatsapp", Weight: 3},
		{Label: "no experience needed", Weight: 4},
	}
	fs := types.FeatureSet{
		RedFlagScore:   19,
		RedFlagCount:   len(findings),
		SuspicionScore: 1.0,
		ComboScore:     1.0,
	}

	assert.Equal(t, 1.0, riskScore(fs, findings))
}

func TestCountMatching(t *testing.T) {
	findings := []types.Finding{
		{Label: "registration fee", Weight: 4},
		{Label: "Crypto investment scheme", Weight: 4},
		{Label: "whatsapp", Weight: 3},
		{Label: "Poor sentence structure", Weight: 1},
	}

	assert.Equal(t, 2, countMatching(findings, criticalPatterns))
	assert.Equal(t, 1, countMatching(findings, highRiskPatterns))
}

func TestDescriptionPreview(t *testing.T) {
	assert.Equal(t, "No description available", descriptionPreview("   "))
	assert.Equal(t, "short text", descriptionPreview("short text"))

	long := strings.Repeat("a", 600)
	preview := descriptionPreview(long)
	assert.Len(t, preview, 503)
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestBuildReport(t *testing.T) {
	engine := newTestEngine(t)
	job := scamPosting()
	a, err := engine.Score(context.Background(), job)
	require.NoError(t, err)

	report := BuildReport(job, a)

	assert.Equal(t, a.ID.String(), report.ID)
	assert.Equal(t, string(a.Verdict), report.FinalPrediction)
	assert.True(t, report.IsFake)
	assert.InDelta(t, a.Confidence*100, report.AIConfidence, 1e-9)
	assert.Equal(t, len(a.Findings), report.RedFlagsCount)
	assert.Equal(t, a.FindingLabels(), report.RedFlagsList)
	assert.Equal(t, "Quick Cash", report.Company)
	assert.Equal(t, "Work From Home - Earn Daily", report.JobTitle)
	assert.Equal(t, "Not Specified", report.Location)
	assert.Equal(t, "Unknown", report.JobPortal)
	assert.True(t, report.Success)
}

func TestBuildReportDefaults(t *testing.T) {
	a := &types.RiskAssessment{Verdict: types.VerdictGenuine}
	report := BuildReport(&types.JobPosting{}, a)

	assert.Equal(t, "Unknown", report.Company)
	assert.Equal(t, "Unknown", report.JobTitle)
	assert.Equal(t, "Unknown", report.JobPortal)
	assert.Equal(t, "Not Specified", report.Location)
}

func TestScoreBatchPreservesOrder(t *testing.T) {
	engine := newTestEngine(t)

	jobs := []*types.JobPosting{genuinePosting(), scamPosting(), genuinePosting()}
	out, err := engine.ScoreBatch(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.False(t, out[0].IsFake)
	assert.True(t, out[1].IsFake)
	assert.False(t, out[2].IsFake)
}
