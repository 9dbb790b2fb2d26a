// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/paramgrid/param"
)

// walker carries the state of one walk.
type walker struct {
	set   param.Set
	opts  Options
	yield func(param.Result, error) bool
}

// Walk returns the lazy sequence of all combinations of set. Each range over
// the returned sequence performs a fresh walk from the first parameter.
//
// A failure (producer error, hook error or cancelled context) is yielded once
// as (param.Result{}, err) and ends the walk; results yielded before it stay
// valid.
func Walk(set param.Set, opts ...Option) iter.Seq2[param.Result, error] {
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	return func(yield func(param.Result, error) bool) {
		// Zero parameters: zero results, never one empty Result.
		if set.Len() == 0 {
			return
		}
		w := &walker{set: set, opts: wopts, yield: yield}
		w.traverse(0, param.Result{})
	}
}

// traverse enumerates every completion of partial from parameter i onward.
// It returns false once the consumer has stopped or the walk has failed.
func (w *walker) traverse(i int, partial param.Result) bool {
	// 1. Cancellation point, before every resolution and every yield.
	if err := w.opts.Ctx.Err(); err != nil {
		return w.fail(err)
	}

	// 2. Base case: every parameter processed on this branch.
	if i == w.set.Len() {
		if w.debug() {
			w.opts.Logger.LogAttrs(w.opts.Ctx, slog.LevelDebug, "combine: combination",
				slog.Any("result", partial))
		}

		return w.yield(partial, nil)
	}

	p := w.set.At(i)

	// 3. Pre-resolution hook.
	if w.opts.OnResolve != nil {
		if err := w.opts.OnResolve(p.Name(), partial); err != nil {
			return w.fail(fmt.Errorf("%w: param %q: %w", ErrHookAborted, p.Name(), err))
		}
	}

	// 4. Branch on each candidate.
	produced := 0
	for v, err := range param.Resolve(p, partial) {
		if err != nil {
			return w.fail(err)
		}
		produced++
		if !w.traverse(i+1, partial.With(p.Name(), v)) {
			return false
		}
	}
	if produced > 0 {
		if w.debug() {
			w.opts.Logger.LogAttrs(w.opts.Ctx, slog.LevelDebug, "combine: param exhausted",
				slog.String("param", p.Name()), slog.String("kind", p.Kind().String()),
				slog.Int("values", produced))
		}

		return true
	}

	// 5. Empty parameter: no key, no branching, walk on once.
	if w.debug() {
		w.opts.Logger.LogAttrs(w.opts.Ctx, slog.LevelDebug, "combine: param empty, skipped",
			slog.String("param", p.Name()), slog.String("kind", p.Kind().String()))
	}
	if w.opts.OnEmpty != nil {
		w.opts.OnEmpty(p.Name(), partial)
	}

	return w.traverse(i+1, partial)
}

// debug reports whether trace records would be kept; attrs are built only then.
func (w *walker) debug() bool {
	return w.opts.Logger.Enabled(w.opts.Ctx, slog.LevelDebug)
}

// fail hands err to the consumer and stops the walk.
func (w *walker) fail(err error) bool {
	if w.debug() {
		w.opts.Logger.LogAttrs(w.opts.Ctx, slog.LevelDebug, "combine: walk failed",
			slog.String("error", err.Error()))
	}
	w.yield(param.Result{}, err)

	return false
}
