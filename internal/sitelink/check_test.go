package sitelink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/registry"
	"git.home.luguber.info/inful/stdsites/internal/testutil"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "_index.md", "---\ntitle: Home\nlink: site:NOPE/x\n---\n\n# Home\n\nGo to [LRM](site:LRM/docs).\n")
	testutil.WriteFile(t, dir, "docs/intro.md", "# Intro\n\nFine [link](site:EAD).\n\nBroken [one](site:ead/tag-library)\nand ![img](site:GHOST/a.png).\n")
	testutil.WriteFile(t, dir, "docs/notes.txt", "[ignored](site:GHOST/x)\n")
	testutil.WriteFile(t, dir, "docs/empty.markdown", "+++\ntitle = \"x\"\n+++\n[no key](site:/docs)\n")

	findings, err := Check(dir, NewResolver(testRegistry(t)))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "docs/empty.markdown", findings[0].File)
	assert.Equal(t, 4, findings[0].Line)
	assert.ErrorIs(t, findings[0].Err, ErrMissingKey)

	assert.Equal(t, "docs/intro.md", findings[1].File)
	assert.Equal(t, 5, findings[1].Line)
	assert.Equal(t, "site:ead/tag-library", findings[1].Destination)
	assert.ErrorIs(t, findings[1].Err, registry.ErrUnknownSite)

	assert.Equal(t, 6, findings[2].Line)
	assert.Equal(t, "site:GHOST/a.png", findings[2].Destination)
	assert.Contains(t, findings[2].String(), "docs/intro.md:6: site:GHOST/a.png:")
}

func TestCheck_LinePositions(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.md", "Intro line\nsecond line\nthird [**bold**](site:GHOST/x)\n\nauto <site:GHOST2/y>\n\nfine <site:LRM/docs> and [`code`](site:nope/z)\n")

	findings, err := Check(dir, NewResolver(testRegistry(t)))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, 3, findings[0].Line)
	assert.Contains(t, findings[0].String(), "a.md:3: site:GHOST/x:")
	assert.Equal(t, 5, findings[1].Line)
	assert.Equal(t, "site:GHOST2/y", findings[1].Destination)
	assert.Equal(t, 7, findings[2].Line)
	assert.Equal(t, "site:nope/z", findings[2].Destination)
}

func TestCheck_MissingDirectory(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "missing"), NewResolver(testRegistry(t)))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestBlankFrontmatter(t *testing.T) {
	src := []byte("---\na: 1\n---\nbody\n")
	out := blankFrontmatter(src)
	assert.Len(t, out, len(src))
	assert.Equal(t, "   \n    \n   \nbody\n", string(out))

	assert.Equal(t, "   \n   \nx\n", string(blankFrontmatter([]byte("---\n---\nx\n"))))
	unclosed := []byte("---\na: 1\n")
	assert.Equal(t, unclosed, blankFrontmatter(unclosed))
}
