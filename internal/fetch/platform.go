package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known applicant tracking system so the extractor can
// use selectors tuned for its markup.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

var platformHosts = []struct {
	substr   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
}

// DetectPlatform identifies the job board platform from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, h := range platformHosts {
		if strings.Contains(host, h.substr) {
			return h.platform
		}
	}
	return PlatformUnknown
}

// ContentSelectors returns posting content selectors for a platform, falling
// back to the generic job board list for unknown hosts.
func ContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		}
	case PlatformAshby:
		return []string{
			"#job-overview",
			".ashby-job-posting-content",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// NoiseSelectors returns elements to strip before text extraction. Apply
// forms, EEO boilerplate and consent banners skew the posting embedding if
// they survive into the text.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	default:
		return common
	}
}

// ExtractPostingText runs platform detection and text extraction in one step.
func ExtractPostingText(urlStr, html string) (string, error) {
	platform := DetectPlatform(urlStr)
	return ExtractMainText(html, ContentSelectors(platform), NoiseSelectors(platform)...)
}
