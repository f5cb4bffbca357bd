package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known job board so extraction can use selectors
// tuned for its markup.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform.
	PlatformWorkday Platform = "workday"
	// PlatformLinkedIn is the LinkedIn jobs site.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized platform.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	}
	return PlatformUnknown
}

// platformContentSelectors returns content selectors for a platform,
// tried before the generic jobContentSelectors.
func platformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".posting-description",
			".section-wrapper.page-full-width",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
		}
	default:
		return nil
	}
}

// platformNoiseSelectors returns elements stripped before extraction.
// Application forms, EEO disclosures, and share widgets pad every job
// page without describing the role.
func platformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
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
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	default:
		return common
	}
}
