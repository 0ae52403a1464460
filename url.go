package webmark

import (
	"regexp"
	"strings"
)

// urlPattern is the advisory format check for candidate URLs: optional
// scheme, optional www prefix, host, optional TLD, port, and path.
// Deliberately permissive: plain words pass, anything containing
// whitespace does not.
var urlPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?([a-zA-Z0-9.-]+)(\.[a-zA-Z]{2,})?(:\d+)?(/[^\s]*)?$`)

// ValidURL reports whether raw passes the permissive URL format check.
// The check is advisory for normalization purposes, but the analyzer
// treats a failure as a hard error before any network activity.
func ValidURL(raw string) bool {
	return urlPattern.MatchString(raw)
}

// NormalizeURL returns a scheme-qualified URL. Input without an http://
// or https:// prefix gets https:// prepended; schemed input is returned
// unchanged.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
