package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// ExampleConfig returns the configuration written by Init.
func ExampleConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Registry: []RegistryEntry{
			{Key: "portal", URL: "https://standards.example.org", BaseURL: "/"},
			{Key: "LRM", URL: "https://standards.example.org", BaseURL: "/LRM/"},
			{Key: "EAD", URL: "https://ead.example.org", BaseURL: "/"},
		},
		Preset: Preset{
			Theme:        string(ThemeHextra),
			LanguageCode: DefaultLanguageCode,
			Params: map[string]any{
				"theme": map[string]any{"default": "system", "displayToggle": true},
			},
			Footer: FooterOptions{
				Columns: []FooterColumn{{
					Title: "Community",
					Items: []NavItem{
						{Label: "Portal", Site: "portal", To: "/"},
						{Label: "Contact", Href: "mailto:standards@example.org"},
					},
				}},
			},
			Defaults: SiteDefaults{
				Favicon:    "/img/favicon.ico",
				Logo:       Logo{Src: "/img/logo.svg", Alt: "Standards logo"},
				EditBranch: DefaultEditBranch,
				Copyright:  "Copyright © {year} Example Standards Organisation",
			},
		},
		Sites: []SiteOptions{
			{
				Key:          "portal",
				Title:        "Standards Portal",
				SiteDefaults: SiteDefaults{Tagline: "Entry point to the standards family"},
				Repository:   "https://github.com/example/standards-portal",
				Navbar: NavbarOptions{Items: []NavItem{
					{Label: "About", To: "/about"},
				}},
			},
			{
				Key:          "LRM",
				Title:        "Library Reference Model",
				SiteDefaults: SiteDefaults{Tagline: "Conceptual model for bibliographic data"},
				Repository:   "https://github.com/example/lrm",
				Navbar: NavbarOptions{Items: []NavItem{
					{Label: "Specification", To: "/docs"},
					{Label: "Vocabulary", To: "/vocabulary"},
				}},
				Vocabulary: &VocabularyOptions{
					Namespace: "https://standards.example.org/LRM/ns/",
					Prefix:    "lrm",
					Version:   "1.0",
				},
			},
			{
				Key:          "EAD",
				Title:        "Encoded Archival Description",
				SiteDefaults: SiteDefaults{Tagline: "Archival finding aids in XML"},
				Navbar: NavbarOptions{Items: []NavItem{
					{Label: "Tag Library", To: "/tag-library"},
					{Label: "Model", Site: "LRM", To: "/docs"},
				}},
			},
		},
		Output: OutputConfig{Directory: DefaultOutputDir},
	}
}

// Init writes an example family configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryConfig, "configuration file already exists").
			WithContext("path", configPath).
			WithHint("use --force to overwrite").
			Build()
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to stat config file").Build()
	}

	data, err := yaml.Marshal(ExampleConfig())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
