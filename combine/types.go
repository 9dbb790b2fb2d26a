// SPDX-License-Identifier: MIT

package combine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/paramgrid/param"
)

// ErrHookAborted wraps an error returned by an OnResolve hook.
var ErrHookAborted = errors.New("combine: resolve hook aborted walk")

// Option configures a walk. Use with Walk(set, opts...).
type Option func(*Options)

// Options holds the knobs of a single walk.
type Options struct {
	// Ctx is checked before every resolution; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug-level trace records; defaults to slog.Default().
	Logger *slog.Logger

	// OnResolve, if non-nil, runs before a parameter is resolved against the
	// partial result of the current branch. Returning an error ends the walk.
	OnResolve func(name string, partial param.Result) error

	// OnEmpty, if non-nil, runs when a parameter resolved to no values and is
	// being skipped on the current branch.
	OnEmpty func(name string, partial param.Result)
}

// DefaultOptions returns Options with a background context, the default
// slog logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the trace logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnResolve installs fn as the pre-resolution hook.
func WithOnResolve(fn func(name string, partial param.Result) error) Option {
	return func(o *Options) {
		o.OnResolve = fn
	}
}

// WithOnEmpty installs fn as the empty-parameter hook.
func WithOnEmpty(fn func(name string, partial param.Result)) Option {
	return func(o *Options) {
		o.OnEmpty = fn
	}
}
