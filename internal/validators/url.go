package validators

import (
	"net/url"
	"strings"
)

// IsValidURL accepts absolute http(s) URLs with a host, the only shape a
// meeting link may take.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
