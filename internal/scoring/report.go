package scoring

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mkale/jobshield/internal/types"
)

const previewMaxLength = 500

// batchConcurrency bounds parallel batch scoring.
const batchConcurrency = 8

// descriptionPreview truncates the description for reports.
func descriptionPreview(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return "No description available"
	}
	if len(description) > previewMaxLength {
		return description[:previewMaxLength] + "..."
	}
	return description
}

// BuildReport flattens an assessment into the wire-level report shape.
func BuildReport(job *types.JobPosting, a *types.RiskAssessment) types.Report {
	portal := job.JobPortal
	if portal == "" {
		portal = "Unknown"
	}
	company := job.Company
	if company == "" {
		company = "Unknown"
	}
	title := job.Title
	if title == "" {
		title = "Unknown"
	}
	location := job.Location
	if location == "" {
		location = "Not Specified"
	}

	return types.Report{
		ID:                 a.ID.String(),
		FinalPrediction:    string(a.Verdict),
		IsFake:             a.IsFake,
		AIConfidence:       a.Confidence * 100,
		CombinedConfidence: a.Confidence * 100,
		RedFlagsCount:      len(a.Findings),
		RedFlagsList:       a.FindingLabels(),
		RedFlagsSeverity:   string(a.Severity),
		JobQuality:         a.QualityGrade,
		JobPortal:          portal,
		Company:            company,
		CompanyDomain:      job.CompanyDomain,
		JobTitle:           title,
		Location:           location,
		DescriptionPreview: a.DescriptionPreview,
		DomainAnalysis:     a.Domain,
		URL:                job.URL,
		Success:            true,
	}
}

// ScoreBatch assesses postings concurrently, preserving input order.
// The first error cancels the remaining work.
func (e *Engine) ScoreBatch(ctx context.Context, jobs []*types.JobPosting) ([]*types.RiskAssessment, error) {
	out := make([]*types.RiskAssessment, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, job := range jobs {
		g.Go(func() error {
			a, err := e.Score(gctx, job)
			if err != nil {
				return err
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
