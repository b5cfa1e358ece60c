package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "posting")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
	require.NotNil(t, result, "body is returned alongside the status error")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURLInvalidURL(t *testing.T) {
	tests := []string{"", "not a url", "/relative/path"}
	for _, u := range tests {
		_, err := URL(context.Background(), u, nil)
		assert.Error(t, err, "URL(%q) should fail", u)
	}
}

func TestExtractMainText(t *testing.T) {
	html := `<html><body>
		<nav>site nav</nav>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>Build services.</p>
		</div>
		<footer>footer text</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Build services.")
	assert.NotContains(t, text, "site nav")
	assert.NotContains(t, text, "footer text")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>plain posting text</p></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Contains(t, text, "plain posting text")
}

func TestExtractMainTextRemovesNoise(t *testing.T) {
	html := `<html><body>
		<div class="job-description">
			<p>real content</p>
			<div class="similar-jobs">similar jobs noise</div>
		</div>
	</body></html>`

	text, err := ExtractMainText(html, []string{".job-description"}, ".similar-jobs")
	require.NoError(t, err)

	assert.Contains(t, text, "real content")
	assert.NotContains(t, text, "similar jobs noise")
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.naukri.com/job-listings-123", PlatformNaukri},
		{"https://in.linkedin.com/jobs/view/999", PlatformLinkedIn},
		{"https://indeed.com/viewjob?jk=abc", PlatformIndeed},
		{"https://internshala.com/internship/detail/xyz", PlatformInternshala},
		{"https://example.com/careers/42", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectPlatform(tt.url), "DetectPlatform(%q)", tt.url)
	}
}

func TestPlatformSelectors(t *testing.T) {
	for _, platform := range []Platform{PlatformNaukri, PlatformLinkedIn, PlatformIndeed, PlatformInternshala} {
		assert.NotEmpty(t, PlatformContentSelectors(platform), "content selectors for %s", platform)
		assert.NotEmpty(t, PlatformNoiseSelectors(platform), "noise selectors for %s", platform)
	}

	// Unknown platforms fall back to the generic selector list.
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("too short"))
	assert.True(t, ShouldUseBrowser(strings.Repeat(" ", MinContentLength+10)), "whitespace does not count")
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength+1)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  first line  \n\n   \n  second line  "
	assert.Equal(t, "first line\nsecond line", cleanWhitespace(in))
}
