// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkale/jobshield/internal/scoring"
	"github.com/mkale/jobshield/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFindingsToShow is the number of findings displayed in the summary
	maxFindingsToShow = 8
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAssessment outputs a human-readable summary of a risk assessment.
func (p *Printer) PrintAssessment(job *types.JobPosting, a *types.RiskAssessment) {
	if a == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Verdict:     %s\n", a.Verdict))
	sb.WriteString(fmt.Sprintf("Confidence:  %.1f%%\n", a.Confidence*100))
	sb.WriteString(fmt.Sprintf("Severity:    %s\n", a.Severity))
	sb.WriteString(fmt.Sprintf("Quality:     %s (%d/100)\n", a.QualityGrade, a.QualityScore))

	if job != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
		if job.JobPortal != "" {
			sb.WriteString(fmt.Sprintf("Portal:   %s\n", job.JobPortal))
		}
	}

	if len(a.Findings) > 0 {
		tier, desc := scoring.RedFlagSeverity(a.RedFlagScore)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Red flags (%s - %s):\n", tier, desc))
		count := min(len(a.Findings), maxFindingsToShow)
		for i := 0; i < count; i++ {
			f := a.Findings[i]
			sb.WriteString(fmt.Sprintf("  • %s (+%d)\n", f.Label, f.Weight))
		}
		if len(a.Findings) > maxFindingsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.Findings)-maxFindingsToShow))
		}
	}

	if a.Domain != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Domain:      %s\n", a.Domain.Domain))
		sb.WriteString(fmt.Sprintf("Trust:       %s (%d/100)\n", a.Domain.TrustTier, a.Domain.ReputationScore))
		sb.WriteString(fmt.Sprintf("Legitimacy:  %s (%d/100)\n", a.Domain.LegitimacyTier, a.Domain.LegitimacyScore))
		if a.Domain.IsSuspicious {
			sb.WriteString(fmt.Sprintf("Warning:     %s\n", a.Domain.SuspicionReason))
		}
	}

	p.printBox("RISK ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeatures outputs the linguistic feature breakdown in verbose mode.
func (p *Printer) PrintFeatures(fs types.FeatureSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Text length:       %d chars, %d words\n", fs.TextLength, fs.WordCount))
	sb.WriteString(fmt.Sprintf("Readability:       %.2f\n", fs.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Lexical diversity: %.2f\n", fs.LexicalDiversity))
	sb.WriteString(fmt.Sprintf("Professional:      %.3f\n", fs.ProfessionalTermRatio))
	sb.WriteString(fmt.Sprintf("Text quality:      %.2f\n", fs.TextQualityScore))
	sb.WriteString(fmt.Sprintf("Sentiment:         %.2f\n", fs.SentimentPolarity))
	sb.WriteString(fmt.Sprintf("Suspicion:         %.2f\n", fs.SuspicionScore))
	sb.WriteString(fmt.Sprintf("Combo score:       %.2f\n", fs.ComboScore))
	if len(fs.QuickFlags) > 0 {
		sb.WriteString(fmt.Sprintf("Quick flags:       %s\n", strings.Join(fs.QuickFlags, ", ")))
	}

	p.printBox("FEATURE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}
