package hugo

import (
	"fmt"
	"path"

	"git.home.luguber.info/inful/stdsites/internal/config"
	"git.home.luguber.info/inful/stdsites/internal/registry"
)

// Vocabulary is the composed RDF metadata of a site.
type Vocabulary struct {
	Params     map[string]any   // params.vocabulary
	Alternates []map[string]any // params.alternates, one per serialization
}

// BuildVocabulary resolves download URLs for each published serialization
// of the site's vocabulary, once per format in canonical order. It returns
// nil when the site publishes none.
func BuildVocabulary(site *config.SiteOptions, reg *registry.Registry) (*Vocabulary, error) {
	v := site.Vocabulary
	if v == nil {
		return nil, nil
	}

	wanted := make(map[string]bool, len(v.Formats))
	for _, f := range v.Formats {
		if _, ok := config.VocabularyMediaTypes[f]; !ok {
			return nil, fmt.Errorf("vocabulary format %q is not supported", f)
		}
		wanted[f] = true
	}

	formats := make([]map[string]any, 0, len(wanted))
	alternates := make([]map[string]any, 0, len(wanted))
	for _, f := range config.VocabularyFormatOrder {
		if !wanted[f] {
			continue
		}
		mt := config.VocabularyMediaTypes[f]
		u, err := reg.BuildURL(site.Key, path.Join(v.Path, v.Prefix+"."+f))
		if err != nil {
			return nil, fmt.Errorf("vocabulary: %w", err)
		}
		formats = append(formats, map[string]any{"format": f, "mediaType": mt, "url": u})
		alternates = append(alternates, map[string]any{"rel": "alternate", "type": mt, "href": u})
	}

	params := map[string]any{
		"namespace": v.Namespace,
		"prefix":    v.Prefix,
		"title":     v.Title,
		"formats":   formats,
	}
	if v.Version != "" {
		params["version"] = v.Version
	}
	return &Vocabulary{Params: params, Alternates: alternates}, nil
}
