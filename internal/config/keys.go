package config

import "regexp"

var siteKeyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidSiteKey reports whether key can name a site. The key doubles as the
// site's output directory, so it must be a single plain path segment.
func ValidSiteKey(key string) bool { return siteKeyPattern.MatchString(key) }
