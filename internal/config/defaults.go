package config

import (
	"fmt"

	"dario.cat/mergo"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

const (
	DefaultOutputDir      = "./build"
	DefaultLanguageCode   = "en"
	DefaultEditBranch     = "main"
	DefaultContentPath    = "content"
	DefaultFooterStyle    = "dark"
	DefaultVocabularyPath = "/vocabulary"
)

// DefaultVocabularyFormats are published when a vocabulary lists none.
var DefaultVocabularyFormats = []string{"ttl", "jsonld"}

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// defaultAppliers run in order; sites must follow preset so preset
// defaults are complete before they are copied into each site.
var defaultAppliers = []DefaultApplier{
	&PresetDefaultApplier{},
	&SiteDefaultApplier{},
	&OutputDefaultApplier{},
	&MonitoringDefaultApplier{},
}

// ApplyDefaults runs every registered DefaultApplier against cfg.
func ApplyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("apply %s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}

// PresetDefaultApplier handles preset defaults.
type PresetDefaultApplier struct{}

func (p *PresetDefaultApplier) Domain() string { return "preset" }

func (p *PresetDefaultApplier) ApplyDefaults(cfg *Config) error {
	pr := &cfg.Preset
	if pr.Theme == "" {
		pr.Theme = string(ThemeHextra)
	}
	if pr.LanguageCode == "" {
		pr.LanguageCode = DefaultLanguageCode
	}
	if pr.Search == nil {
		pr.Search = boolPtr(true)
	}
	if pr.Math == nil {
		pr.Math = boolPtr(true)
	}
	if pr.Mermaid == nil {
		pr.Mermaid = boolPtr(true)
	}
	if pr.Footer.Style == "" {
		pr.Footer.Style = DefaultFooterStyle
	}
	if pr.Defaults.EditBranch == "" {
		pr.Defaults.EditBranch = DefaultEditBranch
	}
	return nil
}

// SiteDefaultApplier fills empty site fields from the preset defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "sites" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	for i := range cfg.Sites {
		site := &cfg.Sites[i]
		// mergo only fills zero-valued destination fields, so explicit site
		// values always win over the preset.
		if err := mergo.Merge(&site.SiteDefaults, cfg.Preset.Defaults); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to merge preset defaults").
				WithContext("site_key", site.Key).
				Build()
		}
		if site.ContentPath == "" {
			site.ContentPath = DefaultContentPath
		}
		if site.Description == "" {
			site.Description = site.Tagline
		}
		if site.Footer.Style == "" {
			site.Footer.Style = cfg.Preset.Footer.Style
		}
		if v := site.Vocabulary; v != nil {
			if v.Path == "" {
				v.Path = DefaultVocabularyPath
			}
			if len(v.Formats) == 0 {
				v.Formats = append([]string(nil), DefaultVocabularyFormats...)
			}
			if v.Title == "" {
				v.Title = site.Title
			}
		}
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	return nil
}

// MonitoringDefaultApplier handles logging defaults.
type MonitoringDefaultApplier struct{}

func (m *MonitoringDefaultApplier) Domain() string { return "monitoring" }

func (m *MonitoringDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Monitoring.Logging.Level == "" {
		cfg.Monitoring.Logging.Level = LogLevelInfo
	}
	if cfg.Monitoring.Logging.Format == "" {
		cfg.Monitoring.Logging.Format = LogFormatText
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
