package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return errors.New("always failing")
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error stops immediately", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"connection refused"}

		calls := 0
		err := Do(ctx, cfg, func() error {
			calls++
			return errors.New("syntax error")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := Do(cancelled, fastConfig(), func() error {
			return errors.New("transient")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid config", func(t *testing.T) {
		err := Do(ctx, Config{MaxAttempts: 0}, func() error { return nil })
		assert.Error(t, err)
	})
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("returns result", func(t *testing.T) {
		result, err := DoWithResult(ctx, fastConfig(), func() (string, error) {
			return "value", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "value", result)
	})

	t.Run("returns zero value on failure", func(t *testing.T) {
		result, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			return 42, errors.New("failing")
		})

		assert.Error(t, err)
		assert.Zero(t, result)
	})
}

func TestIsRetryableError(t *testing.T) {
	t.Run("nil error is not retryable", func(t *testing.T) {
		assert.False(t, IsRetryableError(nil, DefaultConfig()))
	})

	t.Run("empty pattern list retries everything", func(t *testing.T) {
		assert.True(t, IsRetryableError(errors.New("anything"), DefaultConfig()))
	})

	t.Run("pattern match is case insensitive", func(t *testing.T) {
		cfg := PostgresConfig()
		assert.True(t, IsRetryableError(errors.New("dial tcp 127.0.0.1:5432: Connection Refused"), cfg))
		assert.False(t, IsRetryableError(errors.New("relation does not exist"), cfg))
	})
}
