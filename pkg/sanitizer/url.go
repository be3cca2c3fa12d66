package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeURL lower-cases the scheme and host of absolute http(s) URLs.
// Relative asset paths and anything unparsable are only trimmed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return raw
	}

	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

func NormalizeURLPtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := NormalizeURL(*raw)
	if v == "" {
		return nil
	}
	return &v
}
