package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o644))

	require.NoError(t, Init(t.Context(), dir, nil))
	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.True(t, IsRepository(t.Context(), dir))

	out, err := execGit(t.Context(), dir, "log", "--format=%s")
	require.NoError(t, err)
	assert.Equal(t, "Initial commit from create-precast-app", out)

	// A second run leaves the repository alone.
	require.NoError(t, Init(t.Context(), dir, nil))
}

func TestIsRepositoryNested(t *testing.T) {
	requireGit(t)
	parent := t.TempDir()
	_, err := execGit(t.Context(), parent, "init")
	require.NoError(t, err)

	child := filepath.Join(parent, "my-app")
	require.NoError(t, os.Mkdir(child, 0o755))
	assert.False(t, IsRepository(t.Context(), child))
}

func TestExecGitError(t *testing.T) {
	requireGit(t)
	_, err := execGit(t.Context(), t.TempDir(), "not-a-command")
	assert.ErrorContains(t, err, "git not-a-command")
}
