package config

import (
	"fmt"
	"net/url"
	"strings"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	v := newConfigurationValidator(cfg)
	return v.validate()
}

// configurationValidator coordinates validation across configuration domains.
type configurationValidator struct {
	config   *Config
	registry map[string]bool
}

func newConfigurationValidator(cfg *Config) *configurationValidator {
	return &configurationValidator{config: cfg, registry: make(map[string]bool)}
}

func (cv *configurationValidator) validate() error {
	// registry first: everything else references it
	if err := cv.validateRegistry(); err != nil {
		return err
	}
	if err := cv.validatePreset(); err != nil {
		return err
	}
	if err := cv.validateSites(); err != nil {
		return err
	}
	return cv.validateMonitoring()
}

func (cv *configurationValidator) validateRegistry() error {
	if len(cv.config.Registry) == 0 {
		return ferrors.ValidationError("registry must contain at least one site").
			WithHint("add entries of the form {key, url, base_url} under 'registry'").
			Build()
	}
	folded := make(map[string]string, len(cv.config.Registry))
	for _, e := range cv.config.Registry {
		if e.Key == "" {
			return ferrors.ValidationError("registry entry key cannot be empty").
				WithContext("url", e.URL).
				Build()
		}
		if !ValidSiteKey(e.Key) {
			return ferrors.ValidationError(fmt.Sprintf("invalid registry key: %q", e.Key)).
				WithContext("site_key", e.Key).
				WithHint("keys name output directories: use letters, digits, '-' and '_', starting with a letter or digit").
				Build()
		}
		if cv.registry[e.Key] {
			return ferrors.ValidationError(fmt.Sprintf("duplicate registry key: %s", e.Key)).
				WithContext("site_key", e.Key).
				Build()
		}
		cv.registry[e.Key] = true

		// Hugo lowercases param keys, so params.sites cannot hold keys that
		// differ only in case.
		lower := strings.ToLower(e.Key)
		if other, ok := folded[lower]; ok {
			return ferrors.ValidationError(fmt.Sprintf("registry keys %s and %s differ only in case", other, e.Key)).
				WithContext("site_key", e.Key).
				Build()
		}
		folded[lower] = e.Key

		u, err := url.Parse(e.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ferrors.ValidationError(fmt.Sprintf("registry entry %s must have an absolute http(s) url", e.Key)).
				WithContext("site_key", e.Key).
				WithContext("url", e.URL).
				Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validatePreset() error {
	p := cv.config.Preset
	if !IsKnownTheme(p.Theme) {
		return ferrors.ValidationError(fmt.Sprintf("unsupported theme: %s", p.Theme)).
			WithHint(fmt.Sprintf("supported themes: %v", SupportedThemes())).
			Build()
	}
	if err := cv.validateNavItems("preset.navbar", p.Navbar.Items); err != nil {
		return err
	}
	for _, col := range p.Footer.Columns {
		if err := cv.validateNavItems("preset.footer."+col.Title, col.Items); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateSites() error {
	if len(cv.config.Sites) == 0 {
		return ferrors.ValidationError("at least one site must be configured").Build()
	}
	seen := make(map[string]bool)
	for _, s := range cv.config.Sites {
		if s.Key == "" {
			return ferrors.ValidationError("site key cannot be empty").
				WithContext("title", s.Title).
				Build()
		}
		if seen[s.Key] {
			return ferrors.ValidationError(fmt.Sprintf("duplicate site key: %s", s.Key)).
				WithContext("site_key", s.Key).
				Build()
		}
		seen[s.Key] = true
		if !cv.registry[s.Key] {
			return ferrors.ValidationError(fmt.Sprintf("site %s is not declared in the registry", s.Key)).
				WithContext("site_key", s.Key).
				WithHint("every site needs a registry entry that says where it is deployed").
				Build()
		}
		if s.Title == "" {
			return ferrors.ValidationError(fmt.Sprintf("site %s must have a title", s.Key)).
				WithContext("site_key", s.Key).
				Build()
		}
		if s.Repository != "" {
			if u, err := url.Parse(s.Repository); err != nil || !u.IsAbs() {
				return ferrors.ValidationError(fmt.Sprintf("site %s repository must be an absolute URL", s.Key)).
					WithContext("site_key", s.Key).
					WithContext("url", s.Repository).
					Build()
			}
		}
		if err := cv.validateNavItems("sites."+s.Key+".navbar", s.Navbar.Items); err != nil {
			return err
		}
		for _, col := range s.Footer.Columns {
			if err := cv.validateNavItems("sites."+s.Key+".footer."+col.Title, col.Items); err != nil {
				return err
			}
		}
		if s.Vocabulary != nil {
			if err := validateVocabulary(s.Key, s.Vocabulary); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cv *configurationValidator) validateNavItems(field string, items []NavItem) error {
	for _, it := range items {
		if it.Label == "" {
			return ferrors.ValidationError(fmt.Sprintf("%s: link label cannot be empty", field)).Build()
		}
		if it.To != "" && it.Href != "" {
			return ferrors.ValidationError(fmt.Sprintf("%s: link %q sets both 'to' and 'href'", field, it.Label)).Build()
		}
		if it.Site != "" {
			if it.Href != "" {
				return ferrors.ValidationError(fmt.Sprintf("%s: link %q combines 'site' with 'href'", field, it.Label)).Build()
			}
			if !cv.registry[it.Site] {
				return ferrors.ValidationError(fmt.Sprintf("%s: link %q references unknown site %s", field, it.Label, it.Site)).
					WithContext("site_key", it.Site).
					Build()
			}
		}
		if err := cv.validateNavItems(field+"."+it.Label, it.Items); err != nil {
			return err
		}
	}
	return nil
}

func validateVocabulary(siteKey string, v *VocabularyOptions) error {
	if !ValidNamespace(v.Namespace) {
		return ferrors.ValidationError(fmt.Sprintf("site %s vocabulary namespace must be an absolute URI ending in '/' or '#'", siteKey)).
			WithContext("site_key", siteKey).
			WithContext("namespace", v.Namespace).
			Build()
	}
	if !ValidPrefix(v.Prefix) {
		return ferrors.ValidationError(fmt.Sprintf("site %s vocabulary prefix %q is invalid", siteKey, v.Prefix)).
			WithContext("site_key", siteKey).
			Build()
	}
	seen := make(map[string]bool, len(v.Formats))
	for _, f := range v.Formats {
		if seen[f] {
			return ferrors.ValidationError(fmt.Sprintf("site %s vocabulary format %q is listed twice", siteKey, f)).
				WithContext("site_key", siteKey).
				Build()
		}
		seen[f] = true
		if _, ok := VocabularyMediaTypes[f]; !ok {
			return ferrors.ValidationError(fmt.Sprintf("site %s vocabulary format %q is not supported", siteKey, f)).
				WithContext("site_key", siteKey).
				WithHint("supported formats: ttl, jsonld, rdf, nt").
				Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateMonitoring() error {
	l := cv.config.Monitoring.Logging
	if _, ok := logLevelNormalizer.Lookup(string(l.Level)); !ok {
		return ferrors.ValidationError(fmt.Sprintf("invalid log level: %s", l.Level)).Build()
	}
	if _, ok := logFormatNormalizer.Lookup(string(l.Format)); !ok {
		return ferrors.ValidationError(fmt.Sprintf("invalid log format: %s", l.Format)).Build()
	}
	return nil
}
