package hugo

import (
	"git.home.luguber.info/inful/stdsites/internal/config"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
)

// PresetParams returns the computed params every site inherits from the
// preset toggles. Theme params and the preset's own params map override it.
func PresetParams(preset *config.Preset) map[string]any {
	return map[string]any{
		"search":  map[string]any{"enable": config.BoolValue(preset.Search, true)},
		"math":    config.BoolValue(preset.Math, true),
		"mermaid": config.BoolValue(preset.Mermaid, true),
	}
}

// applyPreset writes the root-level settings every site of the family shares.
func applyPreset(root map[string]any, preset *config.Preset, feats th.Features) {
	root["languageCode"] = preset.LanguageCode
	if len(preset.Taxonomies) > 0 {
		tax := make(map[string]any, len(preset.Taxonomies))
		for k, v := range preset.Taxonomies {
			tax[k] = v
		}
		root["taxonomies"] = tax
	}

	if feats.UsesModules && feats.ModulePath != "" {
		imp := map[string]any{"path": feats.ModulePath}
		if feats.ModuleVersion != "" {
			imp["version"] = feats.ModuleVersion
		}
		root["module"] = map[string]any{"imports": []map[string]any{imp}}
	} else {
		root["theme"] = string(feats.Name)
	}

	if feats.EnableMathPassthrough && config.BoolValue(preset.Math, true) {
		enableMathPassthrough(root)
	}
	if feats.EnableOfflineSearchJSON && config.BoolValue(preset.Search, true) {
		root["outputs"] = map[string]any{"home": []string{"HTML", "RSS", "JSON"}}
	}
}

func enableMathPassthrough(root map[string]any) {
	m, _ := root["markup"].(map[string]any)
	if m == nil {
		m = map[string]any{}
		root["markup"] = m
	}
	gm, _ := m["goldmark"].(map[string]any)
	if gm == nil {
		gm = map[string]any{}
		m["goldmark"] = gm
	}
	ext, _ := gm["extensions"].(map[string]any)
	if ext == nil {
		ext = map[string]any{}
		gm["extensions"] = ext
	}
	ext["passthrough"] = map[string]any{
		"delimiters": map[string]any{
			"block":  [][]string{{"\\[", "\\]"}, {"$$", "$$"}},
			"inline": [][]string{{"\\(", "\\)"}},
		},
		"enable": true,
	}
}
