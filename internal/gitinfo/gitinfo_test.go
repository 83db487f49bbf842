package gitinfo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/stdsites/internal/testutil"
)

func TestHead(t *testing.T) {
	_, w, dir := testutil.SetupTestGitRepo(t)
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hash := testutil.CommitFile(t, w, dir, "content/_index.md", "# Home\n", when)

	// a nested directory resolves to the enclosing repository
	info, err := Head(filepath.Join(dir, "content"))
	require.NoError(t, err)
	assert.Equal(t, hash.String(), info.Commit)
	assert.Equal(t, hash.String()[:7], info.Short)
	assert.NotEmpty(t, info.Branch)
	assert.True(t, info.Date.Equal(when))
}

func TestHead_NotRepository(t *testing.T) {
	_, err := Head(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}
