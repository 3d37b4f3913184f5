package revision

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, repo *git.Repository, dir, name, contents, message string) {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	_, err = wt.Add(name)
	require.NoError(t, err)

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Swatch",
			Email: "swatch@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func initGitRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repo, dir, "themes/palette.yaml", "name: first\n", "initial")
	commitFile(t, repo, dir, "themes/palette.yaml", "name: second\n", "update")
	return dir, repo
}

func TestReadFileAtRevisions(t *testing.T) {
	dir, _ := initGitRepo(t)
	path := filepath.Join(dir, "themes", "palette.yaml")

	head, err := ReadFile(dir, "HEAD", path)
	require.NoError(t, err)
	assert.Equal(t, "name: second\n", string(head))

	previous, err := ReadFile(dir, "HEAD~1", path)
	require.NoError(t, err)
	assert.Equal(t, "name: first\n", string(previous))
}

func TestReadFileDetectsRepositoryFromSubdirectory(t *testing.T) {
	dir, _ := initGitRepo(t)
	sub := filepath.Join(dir, "themes")

	contents, err := ReadFile(sub, "HEAD~1", filepath.Join(sub, "palette.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "name: first\n", string(contents))
}

func TestReadFileErrors(t *testing.T) {
	dir, _ := initGitRepo(t)

	_, err := ReadFile(dir, "HEAD", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, object.ErrFileNotFound))

	_, err = ReadFile(dir, "no-such-branch", filepath.Join(dir, "themes", "palette.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `resolve revision "no-such-branch"`)

	_, err = ReadFile(dir, "HEAD", filepath.Join(t.TempDir(), "elsewhere.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside repository")

	_, err = ReadFile(t.TempDir(), "HEAD", "palette.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, git.ErrRepositoryNotExists))
}
