// Package report provides ready-made Reporter sinks for safecall.
//
// The sinks cover the common destinations for unexpected-failure notifications:
// structured logging via log/slog, Prometheus counters for alerting, plain
// functions for ad-hoc handlers, and Multi for fanning a notification out to
// several sinks at once. All sinks are safe for concurrent use.
package report

import (
	"context"

	"github.com/jmgilman/go/safecall"
)

// Func adapts a plain function to the safecall.Reporter interface.
//
// Example:
//
//	sink := report.Func(func(ctx context.Context, err error) {
//	    tracker.Capture(err)
//	})
type Func func(ctx context.Context, err error)

// Report calls the function itself.
func (f Func) Report(ctx context.Context, err error) {
	f(ctx, err)
}

// Noop returns a sink that discards every notification. It is equivalent to the
// sink Execute falls back to when none is configured; it exists so compositions
// like Multi can take an explicit placeholder.
func Noop() safecall.Reporter {
	return noop{}
}

type noop struct{}

func (noop) Report(context.Context, error) {}

// Multi fans each notification out to every given sink, in order. A sink that
// panics is contained so the remaining sinks still receive the notification.
type Multi struct {
	reporters []safecall.Reporter
}

// Compile-time guarantee that *Multi implements safecall.Reporter.
var _ safecall.Reporter = (*Multi)(nil)

// NewMulti creates a fan-out sink over the given reporters. Nil reporters are
// skipped.
func NewMulti(reporters ...safecall.Reporter) *Multi {
	kept := make([]safecall.Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			kept = append(kept, r)
		}
	}

	return &Multi{reporters: kept}
}

// Report forwards the failure to every sink.
func (m *Multi) Report(ctx context.Context, err error) {
	for _, r := range m.reporters {
		reportContained(ctx, r, err)
	}
}

// reportContained invokes a single sink, absorbing any panic it raises.
func reportContained(ctx context.Context, r safecall.Reporter, err error) {
	defer func() {
		_ = recover()
	}()

	r.Report(ctx, err)
}
