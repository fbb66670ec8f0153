package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepo is returned by OpenRepo outside a repository.
var ErrNotRepo = errors.New("not a git repository")

// RepoInfo describes the repository enclosing a directory.
type RepoInfo struct {
	Root string `json:"root"`
	// Branch is empty when HEAD is detached.
	Branch   string `json:"branch,omitempty"`
	Detached bool   `json:"detached,omitempty"`
	Bare     bool   `json:"bare,omitempty"`
}

// OpenRepo finds the repository containing dir, walking up like git does.
// It reads the repository directly and does not need the git executable.
func OpenRepo(dir string) (RepoInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("resolving %s: %w", dir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return RepoInfo{}, fmt.Errorf("%s: %w", abs, ErrNotRepo)
	}
	if err != nil {
		return RepoInfo{}, fmt.Errorf("opening repository: %w", err)
	}

	info := RepoInfo{Root: abs}
	worktree, err := repo.Worktree()
	switch {
	case errors.Is(err, gogit.ErrIsBareRepository):
		info.Bare = true
	case err != nil:
		return RepoInfo{}, fmt.Errorf("opening worktree: %w", err)
	default:
		info.Root = worktree.Filesystem.Root()
	}

	// Resolve HEAD without following it, so an unborn branch still has a name.
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("reading HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		info.Branch = head.Target().Short()
	} else {
		info.Detached = true
	}
	return info, nil
}
