package hugo

import (
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// sitelinkShortcode renders a link to another site of the family from the
// registry published in params.sites. Hugo lowercases param keys, hence
// the lower call on the site key.
//
//	{{< sitelink site="LRM" path="/docs/intro" >}}the model{{< /sitelink >}}
const sitelinkShortcode = `{{- $key := .Get "site" -}}
{{- $path := .Get "path" | default "" -}}
{{- $entry := index site.Params.sites (lower $key) -}}
{{- if not $entry -}}
  {{- errorf "sitelink: unknown site %q at %s" $key .Position -}}
{{- end -}}
{{- $href := printf "%s%s%s" $entry.url $entry.baseurl (strings.TrimLeft "/" $path) -}}
<a href="{{ $href }}">{{ with .Inner }}{{ . }}{{ else }}{{ $entry.title }}{{ end }}</a>
{{- /* generated by stdsites */ -}}
`

// writeShortcodes installs the generated shortcodes into siteDir.
func writeShortcodes(siteDir string) error {
	dir := filepath.Join(siteDir, "layouts", "shortcodes")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create shortcode directory").
			WithContext("path", dir).
			Build()
	}
	path := filepath.Join(dir, "sitelink.html")
	if err := os.WriteFile(path, []byte(sitelinkShortcode), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write shortcode").
			WithContext("path", path).
			Build()
	}
	return nil
}
