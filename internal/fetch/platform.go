package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the system hosting a job posting.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS.
	PlatformWorkday Platform = "workday"
	// PlatformIndeed is the Indeed job board.
	PlatformIndeed Platform = "indeed"
	// PlatformLinkedIn is the LinkedIn jobs surface.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized host.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the hosting platform from a posting URL.
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
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
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
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description__content",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		".legal-disclosure",
		".self-identification",

		".social-share",
		".share-buttons",
		".social-links",

		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
			".post-apply",
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
	case PlatformIndeed:
		return append(common,
			".jobsearch-CompanyReview",
			".icl-Callout",
			"#applyButtonLinkContainer",
		)
	case PlatformLinkedIn:
		return append(common,
			".top-card-layout",
			".similar-jobs",
			".sign-in-modal",
		)
	default:
		return common
	}
}
