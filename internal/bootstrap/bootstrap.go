// Package bootstrap runs a long-lived process and unwinds its resources on shutdown.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	shutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []hook
}

// New creates a new App. A zero shutdownTimeout lets hooks run without a deadline.
func New(shutdownTimeout time.Duration) *App {
	return &App{shutdownTimeout: shutdownTimeout}
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run in both cases; an error from run takes precedence over hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Default().Info("shutting down", "cause", context.Cause(ctx))
	case runErr = <-errCh:
	}

	shutdownErr := a.shutdown(context.WithoutCancel(ctx))
	if runErr != nil {
		return runErr
	}
	return shutdownErr
}

func (a *App) shutdown(ctx context.Context) error {
	if a.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.shutdownTimeout)
		defer cancel()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		h := a.hooks[i]
		if err := h.fn(ctx); err != nil {
			slog.Default().Error("shutdown hook failed", "hook", h.name, "error", err)
			errs = append(errs, err)
		}
	}
	a.hooks = nil
	return errors.Join(errs...)
}
