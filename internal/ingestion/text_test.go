package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"crlf normalized", "line one\r\nline two", "line one\nline two"},
		{"bare cr normalized", "line one\rline two", "line one\nline two"},
		{"internal whitespace collapsed", "too   many    spaces", "too many spaces"},
		{"lines trimmed", "   padded line   ", "padded line"},
		{"blank runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"bullet marker kept", "- first   item\n* second   item\n• third   item", "- first item\n* second item\n• third item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestReadPostingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Job Title:  Engineer  \r\n\r\nApply now"), 0o644))

	text, err := ReadPostingFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Job Title: Engineer\n\nApply now", text)
}

func TestReadPostingFileMissing(t *testing.T) {
	_, err := ReadPostingFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDetectPortal(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"naukri url", "see https://www.naukri.com/job-listings-12345", "naukri.com"},
		{"linkedin url", "posted on linkedin.com/jobs/view/999", "linkedin.com"},
		{"indeed url", "apply via indeed.com/viewjob?jk=abc", "indeed.com"},
		{"internshala url", "from internshala.com/internship/detail", "internshala.com"},
		{"naukri boilerplate", "Interested? Send me roles like this in future.", "naukri.com"},
		{"report link boilerplate", "Report this job if it looks wrong.", "naukri.com"},
		{"linkedin boilerplate", "Apply on company site. Seen on LinkedIn feed.", "linkedin.com"},
		{"plain text", "A plain pasted description with no portal markers.", "manual_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPortal(tt.text))
		})
	}
}
