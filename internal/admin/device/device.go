// Package device derives human-readable device descriptions from User-Agent
// strings for login logging.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent extracts a display name from a User-Agent string.
// Returns format: "Browser on OS" (e.g., "Chrome on macOS", "Safari on iOS").
func ParseUserAgent(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)

	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Mobile() {
		platform := ua.Platform()
		if platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}
