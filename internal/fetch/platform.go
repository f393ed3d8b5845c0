// Package fetch - platform.go identifies known ATS platforms so the browser
// fallback can wait for the right application-form element.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known applicant-tracking platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the ATS platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "greenhouse.io") ||
		strings.Contains(host, "boards.greenhouse.io") {
		return PlatformGreenhouse
	}

	if strings.Contains(host, "lever.co") ||
		strings.Contains(host, "jobs.lever.co") {
		return PlatformLever
	}

	if strings.Contains(host, "workday.com") ||
		strings.Contains(host, "myworkdayjobs.com") {
		return PlatformWorkday
	}

	return PlatformUnknown
}

// PlatformFormSelector returns the CSS selector the browser fallback waits
// on before snapshotting the page, so the application form has rendered.
func PlatformFormSelector(platform Platform) string {
	switch platform {
	case PlatformGreenhouse:
		return "#application-form, #application_form, .application--form, form"
	case PlatformLever:
		return ".application-form, .lever-application-form, form"
	case PlatformWorkday:
		return "[data-automation-id='jobApplication'], [data-automation-id='applyFlowPage'], form"
	default:
		return "form"
	}
}
