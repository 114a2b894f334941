package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New(0)
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run error takes precedence over hook errors", func(t *testing.T) {
		app := New(0)
		want := errors.New("run failed")
		app.AddShutdownHook("failing", func(ctx context.Context) error {
			return errors.New("hook failed")
		})
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := New(0)
		var mu sync.Mutex
		var order []string

		for _, name := range []string{"first", "second", "third"} {
			app.AddShutdownHook(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, order)
	})

	t.Run("hooks run when run returns on its own", func(t *testing.T) {
		app := New(0)
		hookCalled := false
		err := app.Run(context.Background(), func(ctx context.Context) error {
			app.AddShutdownHook("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("hook errors are joined", func(t *testing.T) {
		app := New(0)
		errA := errors.New("a")
		errB := errors.New("b")
		app.AddShutdownHook("a", func(ctx context.Context) error { return errA })
		app.AddShutdownHook("b", func(ctx context.Context) error { return errB })

		err := app.Run(context.Background(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})

	t.Run("hooks receive a deadline from the shutdown timeout", func(t *testing.T) {
		app := New(time.Minute)
		var hasDeadline bool
		app.AddShutdownHook("deadline", func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return ctx.Err()
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hasDeadline)
	})
}
