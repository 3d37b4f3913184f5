// Package revision reads files as they were at a git revision.
package revision

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ReadFile returns the contents of path at rev in the repository that
// contains repoPath. path may be absolute or relative to the working
// directory; rev accepts anything git rev-parse does for commits
// (HEAD~1, branch names, tags, hashes).
func ReadFile(repoPath, rev, path string) ([]byte, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	rel, err := repoRelative(wt.Filesystem.Root(), path)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	file, err := commit.File(rel)
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}
	return []byte(contents), nil
}

// repoRelative converts path to a slash-separated path inside root.
func repoRelative(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	root = evalSymlinks(root)
	abs = filepath.Join(evalSymlinks(filepath.Dir(abs)), filepath.Base(abs))

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside repository %s", path, root)
	}
	return filepath.ToSlash(rel), nil
}

func evalSymlinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
