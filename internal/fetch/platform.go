// Package fetch - platform.go provides portal detection and portal-specific
// selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job portal.
type Platform string

const (
	PlatformNaukri      Platform = "naukri.com"
	PlatformLinkedIn    Platform = "linkedin.com"
	PlatformIndeed      Platform = "indeed.com"
	PlatformInternshala Platform = "internshala.com"
	PlatformUnknown     Platform = "unknown"
)

// DetectPlatform identifies the job portal from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "naukri.com"):
		return PlatformNaukri
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(host, "internshala.com"):
		return PlatformInternshala
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a specific portal.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformNaukri:
		return []string{
			".styles_JDC__dang-inner-html__h0K4t",
			".job-desc",
			".jd-container",
			"#job-description",
			".content",
		}
	case PlatformLinkedIn:
		return []string{
			".show-more-less-html__markup",
			".description__text",
			".jobs-description",
			"#job-details",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
		}
	case PlatformInternshala:
		return []string{
			".internship_details",
			".detail_view",
			".individual_internship_details",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a portal.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
		".similar-jobs",
		".recommended-jobs",
	}

	switch platform {
	case PlatformNaukri:
		return append(common,
			".styles_other-details__oEN4O",
			".similar-jobs-container",
			".csb",
		)
	case PlatformLinkedIn:
		return append(common,
			".similar-jobs",
			".people-also-viewed",
			".sign-in-modal",
		)
	case PlatformIndeed:
		return append(common,
			".jobsearch-OtherJobsSection",
			"#mosaic-belowFullJobDescription",
		)
	case PlatformInternshala:
		return append(common,
			".similar_internships",
			".internship_meta_experimental",
		)
	default:
		return common
	}
}
