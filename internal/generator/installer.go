package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// Installer adds packages to a project and installs them.
type Installer interface {
	// Add records pkgs as dependencies (or devDependencies) of the package
	// in dir. Entries may carry a version: "zod@3".
	Add(ctx context.Context, dir string, pkgs []string, dev bool) error

	// Install installs every declared dependency in dir.
	Install(ctx context.Context, dir string) error
}

// ManifestInstaller only edits package.json. It is used when autoInstall
// is off so that the user's first install picks everything up.
type ManifestInstaller struct{}

// Add writes pkgs into package.json, pinning unversioned entries to "latest".
func (ManifestInstaller) Add(_ context.Context, dir string, pkgs []string, dev bool) error {
	if len(pkgs) == 0 {
		return nil
	}
	return AddDependencies(dir, pkgs, dev)
}

// Install is a no-op.
func (ManifestInstaller) Install(context.Context, string) error {
	return nil
}

// Wrapper runs fn while showing title, for example behind a spinner.
type Wrapper func(title string, fn func() error) error

// ExecInstaller shells out to the selected package manager.
type ExecInstaller struct {
	PackageManager string
	// Output receives command output; nil discards it.
	Output io.Writer
	// Wrap decorates each command; nil runs it directly.
	Wrap Wrapper
	// Retries is the number of extra attempts after a failed command.
	// Registry hiccups are the common cause of install failures.
	Retries int
	// RetryDelay is the wait before the first retry; it doubles per
	// attempt up to maxRetryDelay.
	RetryDelay time.Duration
}

const maxRetryDelay = 30 * time.Second

// Add runs "<pm> add" (or "npm install") for pkgs in dir.
func (i *ExecInstaller) Add(ctx context.Context, dir string, pkgs []string, dev bool) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := AddCommand(i.PackageManager, pkgs, dev)
	return i.run(ctx, dir, fmt.Sprintf("Adding %s", strings.Join(pkgs, ", ")), args)
}

// Install runs "<pm> install" in dir.
func (i *ExecInstaller) Install(ctx context.Context, dir string) error {
	return i.run(ctx, dir, "Installing dependencies", InstallCommand(i.PackageManager))
}

func (i *ExecInstaller) run(ctx context.Context, dir, title string, args []string) error {
	runCmd := func() error {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Dir = dir
		var stderr bytes.Buffer
		out := i.Output
		if out == nil {
			out = io.Discard
		}
		cmd.Stdout = out
		cmd.Stderr = io.MultiWriter(out, &stderr)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
		}
		return nil
	}
	withRetry := func() error {
		return retry(ctx, i.Retries, i.RetryDelay, runCmd)
	}
	if i.Wrap == nil {
		return withRetry()
	}
	return i.Wrap(title, withRetry)
}

// retry runs fn up to retries+1 times. Context errors end the loop.
func retry(ctx context.Context, retries int, base time.Duration, fn func() error) error {
	var lastErr error
	for attempt := range retries + 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
		if attempt == retries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(attempt, base)):
		}
	}
	return lastErr
}

// backoff returns base * 2^attempt, capped at maxRetryDelay.
func backoff(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	delay := base
	for range attempt {
		delay *= 2
		if delay > maxRetryDelay {
			return maxRetryDelay
		}
	}
	return min(delay, maxRetryDelay)
}

// AddCommand returns the argv adding pkgs with pm.
func AddCommand(pm string, pkgs []string, dev bool) []string {
	var args []string
	switch pm {
	case models.PackageManagerYarn, models.PackageManagerPNPM:
		args = []string{pm, "add"}
		if dev {
			args = append(args, "-D")
		}
	case models.PackageManagerBun:
		args = []string{pm, "add"}
		if dev {
			args = append(args, "-d")
		}
	default:
		args = []string{models.PackageManagerNPM, "install"}
		if dev {
			args = append(args, "--save-dev")
		}
	}
	return append(args, pkgs...)
}

// InstallCommand returns the argv installing all dependencies with pm.
func InstallCommand(pm string) []string {
	if !models.IsValidPackageManager(pm) {
		pm = models.PackageManagerNPM
	}
	return []string{pm, "install"}
}
