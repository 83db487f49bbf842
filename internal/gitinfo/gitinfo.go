// Package gitinfo reads the revision a site's content was generated from.
package gitinfo

import (
	"errors"
	"time"

	"github.com/go-git/go-git/v5"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// ErrNotRepository is returned when the directory is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Info describes the HEAD commit of a content checkout.
type Info struct {
	Commit string
	Short  string
	Branch string // empty on detached HEAD
	Date   time.Time
}

// Reader returns revision info for a directory. Head is the production implementation.
type Reader func(dir string) (*Info, error)

// Head opens the repository containing dir (searching parent directories)
// and describes its HEAD commit.
func Head(dir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open repository").
			WithContext("path", dir).
			Build()
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to resolve HEAD").
			WithContext("path", dir).
			Build()
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to read HEAD commit").
			WithContext("path", dir).
			WithContext("commit", ref.Hash().String()).
			Build()
	}

	info := &Info{
		Commit: ref.Hash().String(),
		Short:  ref.Hash().String()[:7],
		Date:   commit.Committer.When,
	}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	}
	return info, nil
}
