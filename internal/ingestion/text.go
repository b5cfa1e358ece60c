// Package ingestion turns raw posting text into a structured JobPosting:
// cleanup, field extraction, and portal detection.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes pasted posting text while preserving its line
// structure, which the field extractors rely on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses internal runs of whitespace,
// keeping bullet markers intact.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "• ") {
		marker, rest, _ := strings.Cut(trimmed, " ")
		return marker + " " + spaceRe.ReplaceAllString(strings.TrimSpace(rest), " ")
	}
	return spaceRe.ReplaceAllString(trimmed, " ")
}

// ReadPostingFile reads and cleans a posting from a text file.
func ReadPostingFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("posting file not found: %w", err)
		}
		return "", fmt.Errorf("read posting file: %w", err)
	}
	return CleanText(string(content)), nil
}
