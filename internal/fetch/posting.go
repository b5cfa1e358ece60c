package fetch

import (
	"context"
)

// Posting fetches a job posting URL and returns the extracted posting text.
// Plain HTTP is tried first; when the extracted text is too short and
// allowBrowser is set, the page is re-rendered in a headless browser.
func Posting(ctx context.Context, urlStr string, allowBrowser, verbose bool) (string, Platform, error) {
	platform := DetectPlatform(urlStr)
	selectors := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	result, err := URL(ctx, urlStr, nil)
	if err != nil && result == nil {
		return "", platform, err
	}

	var text string
	if result != nil && result.HTML != "" {
		text, _ = ExtractMainText(result.HTML, selectors, noise...)
	}

	if ShouldUseBrowser(text) && allowBrowser {
		html, berr := WithBrowser(ctx, urlStr, DefaultTimeout, verbose)
		if berr != nil {
			if text != "" {
				return text, platform, nil
			}
			return "", platform, berr
		}
		text, err = ExtractMainText(html, selectors, noise...)
		if err != nil {
			return "", platform, err
		}
	} else if err != nil && text == "" {
		return "", platform, err
	}

	return text, platform, nil
}
