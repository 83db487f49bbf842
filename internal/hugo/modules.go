package hugo

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	th "git.home.luguber.info/inful/stdsites/internal/hugo/theme"
	"git.home.luguber.info/inful/stdsites/internal/logfields"
)

// moduleName derives a Hugo module name from the site's home URL, for
// example "https://docs.example.org/lrm/" becomes "docs-example-org/lrm".
func moduleName(key, home string) string {
	name := "stdsites-site"
	if u, err := url.Parse(home); err == nil && u.Hostname() != "" {
		name = strings.ReplaceAll(u.Hostname(), ".", "-")
	}
	return name + "/" + strings.ToLower(key)
}

// ensureGoMod makes siteDir a Go module so Hugo Modules can resolve the theme
// import. An existing go.mod is kept; only a missing theme require is added.
func ensureGoMod(siteDir, key, home string, features th.Features) error {
	if !features.UsesModules || features.ModulePath == "" {
		return nil
	}
	path := filepath.Join(siteDir, "go.mod")
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		content = []byte(fmt.Sprintf("module %s\n\ngo 1.21\n", moduleName(key, home)))
		slog.Debug("Creating go.mod for Hugo Modules", logfields.Path(path))
	default:
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read go.mod").
			WithContext("path", path).
			Build()
	}

	s := string(content)
	if features.ModuleVersion != "" && !strings.Contains(s, features.ModulePath) {
		s += fmt.Sprintf("\nrequire %s %s\n", features.ModulePath, features.ModuleVersion)
	}
	if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write go.mod").
			WithContext("path", path).
			Build()
	}
	return nil
}
