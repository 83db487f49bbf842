package config

import "git.home.luguber.info/inful/stdsites/internal/foundation/normalization"

// Theme is a typed enumeration of supported Hugo theme integrations.
type Theme string

const (
	ThemeHextra  Theme = "hextra"
	ThemeRelearn Theme = "relearn"
	ThemeDocsy   Theme = "docsy"
)

var themeNormalizer = normalization.NewNormalizer(map[string]Theme{
	"hextra":  ThemeHextra,
	"relearn": ThemeRelearn,
	"docsy":   ThemeDocsy,
}, ThemeHextra)

// NormalizeTheme returns the theme for raw, defaulting to hextra.
func NormalizeTheme(raw string) Theme { return themeNormalizer.Normalize(raw) }

// IsKnownTheme reports whether raw names a supported theme.
func IsKnownTheme(raw string) bool {
	_, ok := themeNormalizer.Lookup(raw)
	return ok
}

// SupportedThemes lists the accepted theme names.
func SupportedThemes() []string { return themeNormalizer.ValidKeys() }
