// Package git initializes the repository of a generated project using
// the system git binary.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds every git invocation.
const DefaultTimeout = 30 * time.Second

// ErrSystemGitNotFound is returned when no git binary is on PATH.
var ErrSystemGitNotFound = errors.New("git: system git not found")

// Init creates a repository in dir, stages every file and records an
// initial commit. A missing commit identity only skips the commit.
func Init(ctx context.Context, dir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if IsRepository(ctx, dir) {
		logger.Debug("already a git repository", "dir", dir)
		return nil
	}
	if _, err := execGit(ctx, dir, "init"); err != nil {
		return err
	}
	if _, err := execGit(ctx, dir, "add", "-A"); err != nil {
		return err
	}
	if _, err := execGit(ctx, dir, "commit", "-m", "Initial commit from create-precast-app"); err != nil {
		logger.Warn("initial commit skipped", "error", err)
		return nil
	}
	logger.Debug("git repository initialized", "dir", dir)
	return nil
}

// IsRepository reports whether dir has its own .git directory. Being
// nested inside another work tree does not count.
func IsRepository(ctx context.Context, dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	out, err := execGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		abs = resolved
	}
	return filepath.Clean(out) == abs
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(stderr.String()), err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
