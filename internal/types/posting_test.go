package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCombinedText(t *testing.T) {
	tests := []struct {
		name     string
		posting  JobPosting
		expected string
	}{
		{
			"all fields",
			JobPosting{Description: "desc", Requirements: "reqs", CompanyProfile: "profile"},
			"desc reqs profile",
		},
		{
			"description only",
			JobPosting{Description: "desc"},
			"desc",
		},
		{
			"blank fields are skipped",
			JobPosting{Description: "desc", Requirements: "   ", CompanyProfile: "profile"},
			"desc profile",
		},
		{
			"empty posting",
			JobPosting{Title: "Engineer", Salary: "$100k"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.posting.CombinedText())
		})
	}
}

func TestFindingLabels(t *testing.T) {
	a := &RiskAssessment{
		ID: uuid.New(),
		Findings: []Finding{
			{Label: "Upfront payment request", Weight: 4},
			{Label: "Urgency pressure", Weight: 2},
		},
	}

	assert.Equal(t, []string{"Upfront payment request", "Urgency pressure"}, a.FindingLabels())
	assert.Empty(t, (&RiskAssessment{}).FindingLabels())
}
