package config

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// NormalizationResult captures coercions made by NormalizeConfig.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerated and free-form fields before
// defaults are applied. It mutates c in place.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, ferrors.InternalError("config nil").Build()
	}
	res := &NormalizationResult{}

	if raw := c.Preset.Theme; strings.TrimSpace(raw) != "" {
		if IsKnownTheme(raw) {
			if th := string(NormalizeTheme(raw)); th != raw {
				res.Warnings = append(res.Warnings, warnChanged("preset.theme", raw, th))
				c.Preset.Theme = th
			}
		}
		// unknown themes are left untouched so validation can reject them
	}

	for i := range c.Registry {
		c.Registry[i].Key = strings.TrimSpace(c.Registry[i].Key)
		c.Registry[i].URL = strings.TrimSpace(c.Registry[i].URL)
		c.Registry[i].BaseURL = strings.TrimSpace(c.Registry[i].BaseURL)
	}

	normalizeFooterStyle("preset.footer.style", &c.Preset.Footer, res)
	normalizeNavItems("preset.navbar", c.Preset.Navbar.Items, res)
	for i := range c.Sites {
		s := &c.Sites[i]
		s.Key = strings.TrimSpace(s.Key)
		normalizeFooterStyle(fmt.Sprintf("sites[%s].footer.style", s.Key), &s.Footer, res)
		normalizeNavItems(fmt.Sprintf("sites[%s].navbar", s.Key), s.Navbar.Items, res)
		if v := s.Vocabulary; v != nil {
			for j, f := range v.Formats {
				v.Formats[j] = strings.ToLower(strings.TrimSpace(f))
			}
		}
	}

	normalizeLogging(&c.Monitoring.Logging, res)
	return res, nil
}

func normalizeFooterStyle(field string, f *FooterOptions, res *NormalizationResult) {
	raw := f.Style
	if raw == "" {
		return
	}
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "light", "dark":
		if s != raw {
			res.Warnings = append(res.Warnings, warnChanged(field, raw, s))
		}
		f.Style = s
	default:
		res.Warnings = append(res.Warnings, warnUnknown(field, raw, "dark"))
		f.Style = "dark"
	}
}

func normalizeNavItems(field string, items []NavItem, res *NormalizationResult) {
	for i := range items {
		it := &items[i]
		if it.Position != "" {
			switch p := strings.ToLower(strings.TrimSpace(it.Position)); p {
			case "left", "right":
				it.Position = p
			default:
				res.Warnings = append(res.Warnings, warnUnknown(field+".position", it.Position, "left"))
				it.Position = "left"
			}
		}
		normalizeNavItems(field, it.Items, res)
	}
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if raw := string(l.Level); raw != "" {
		lvl := NormalizeLogLevel(raw)
		if _, ok := logLevelNormalizer.Lookup(raw); !ok {
			res.Warnings = append(res.Warnings, warnUnknown("monitoring.logging.level", raw, string(LogLevelInfo)))
		} else if lvl != l.Level {
			res.Warnings = append(res.Warnings, warnChanged("monitoring.logging.level", raw, lvl))
		}
		l.Level = lvl
	}
	if raw := string(l.Format); raw != "" {
		f := NormalizeLogFormat(raw)
		if _, ok := logFormatNormalizer.Lookup(raw); !ok {
			res.Warnings = append(res.Warnings, warnUnknown("monitoring.logging.format", raw, string(LogFormatText)))
		} else if f != l.Format {
			res.Warnings = append(res.Warnings, warnChanged("monitoring.logging.format", raw, f))
		}
		l.Format = f
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
