package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	boom := errors.New("registry timeout")

	t.Run("eventual success", func(t *testing.T) {
		calls := 0
		err := retry(t.Context(), 2, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return boom
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausted", func(t *testing.T) {
		calls := 0
		err := retry(t.Context(), 1, time.Millisecond, func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, calls)
	})

	t.Run("no retries", func(t *testing.T) {
		calls := 0
		_ = retry(t.Context(), 0, time.Millisecond, func() error {
			calls++
			return boom
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0
		err := retry(ctx, 5, time.Hour, func() error {
			calls++
			cancel()
			return boom
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, backoff(0, 0))
	assert.Equal(t, 2*time.Second, backoff(0, 2*time.Second))
	assert.Equal(t, 8*time.Second, backoff(2, 2*time.Second))
	assert.Equal(t, maxRetryDelay, backoff(10, 2*time.Second))
}

func TestExecInstallerWrap(t *testing.T) {
	var titles []string
	inst := &ExecInstaller{
		PackageManager: "pnpm",
		Wrap: func(title string, fn func() error) error {
			titles = append(titles, title)
			return nil
		},
	}
	require.NoError(t, inst.Add(t.Context(), t.TempDir(), []string{"zod", "clsx"}, false))
	require.NoError(t, inst.Add(t.Context(), t.TempDir(), nil, true))
	require.NoError(t, inst.Install(t.Context(), t.TempDir()))
	assert.Equal(t, []string{"Adding zod, clsx", "Installing dependencies"}, titles)
}

func TestExecInstallerMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	inst := &ExecInstaller{PackageManager: "pnpm"}
	err := inst.Install(t.Context(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pnpm install")
}
