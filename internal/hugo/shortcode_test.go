package hugo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteShortcodes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeShortcodes(dir))

	data, err := os.ReadFile(filepath.Join(dir, "layouts", "shortcodes", "sitelink.html"))
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "site.Params.sites (lower $key)")
	assert.Contains(t, body, `strings.TrimLeft "/" $path`)
}

func TestSitesParamFallsBackToKey(t *testing.T) {
	_, reg := loadFamily(t, familyYAML)
	sites := sitesParam(reg, map[string]string{"LRM": "Library Reference Model"})
	assert.Equal(t, "portal", sites["portal"].(map[string]any)["title"])
	assert.Equal(t, "Library Reference Model", sites["LRM"].(map[string]any)["title"])
	assert.Equal(t, "/LRM/", sites["LRM"].(map[string]any)["baseUrl"])
}
