package safecall

import (
	"context"
	"fmt"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/reporter.go -pkg mocks . Reporter

// Reporter is the external sink notified of unexpected failures. It stands in for
// an error-tracking/alerting system: expected failures never reach it, so whatever
// it forwards to is only paged for actionable problems.
//
// Report is fire-and-forget from Execute's perspective. Implementations should not
// block on slow downstreams; a panicking Reporter is contained by Execute and never
// alters the returned Outcome. Implementations must be safe for concurrent use.
//
// The report sub-package provides ready-made implementations (slog, Prometheus,
// fan-out); mocks.ReporterMock provides a test double.
type Reporter interface {
	// Report forwards an unexpected failure to the sink.
	Report(ctx context.Context, err error)
}

// Operation is a single outbound call producing a typed payload. It is invoked
// exactly once per Execute call; Execute performs no retries at any level.
type Operation[T any] func(ctx context.Context) (T, error)

// config holds the per-call configuration assembled from options.
type config struct {
	reporter Reporter
	expected ExpectedErrors
}

// Option configures a single Execute call.
type Option func(*config)

// WithReporter sets the sink notified on the unexpected path. Passing nil leaves
// the default no-op sink in place.
func WithReporter(reporter Reporter) Option {
	return func(cfg *config) {
		if reporter != nil {
			cfg.reporter = reporter
		}
	}
}

// WithExpectedErrors registers the status codes the caller considers acceptable
// for this call. If omitted, every failure is classified unexpected.
func WithExpectedErrors(expected ExpectedErrors) Option {
	return func(cfg *config) {
		cfg.expected = expected
	}
}

// Execute runs op and converts its result into an Outcome instead of an error.
// It is total over the failure space: it never returns an error, never panics
// outward, and always produces exactly one Outcome.
//
// Classification of a failure:
//  1. If the error carries a status code (see StatusFromError) and the code is
//     registered via WithExpectedErrors, the failure is expected: the Outcome
//     carries the registered message and the Reporter is NOT notified.
//  2. Every other failure — unknown code, no code, no map — is unexpected: the
//     Reporter is notified with the original error and the Outcome carries
//     GenericFailureMessage, never the underlying detail. A panic raised by op
//     is recovered and classified the same way, wrapped as an error for the
//     Reporter.
//
// Execute blocks until op settles. Context cancellation is not a distinct
// outcome: an op failing with ctx.Err() carries no status code and surfaces as
// an unexpected failure through the same path.
//
// Example:
//
//	outcome := safecall.Execute(ctx, fetchOrder,
//	    safecall.WithReporter(sink),
//	    safecall.WithExpectedErrors(safecall.ExpectedErrors{
//	        http.StatusForbidden: "Not authorized",
//	        http.StatusNotFound:  "Not Found",
//	    }),
//	)
func Execute[T any](ctx context.Context, op Operation[T], opts ...Option) Outcome[T] {
	cfg := &config{
		reporter: noopReporter{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := run(ctx, op)
	if err == nil {
		return Success(data)
	}

	if code, ok := StatusFromError(err); ok {
		if message, registered := cfg.expected.Message(code); registered {
			return ExpectedFailure[T](message)
		}
	}

	notify(ctx, cfg.reporter, err)
	return UnexpectedFailure[T]()
}

// run invokes the operation, converting a panic into an error so a defect in the
// operation classifies like any other failure without a status code.
func run[T any](ctx context.Context, op Operation[T]) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()

	return op(ctx)
}

// notify forwards the failure to the sink, containing any panic the sink raises.
// A failing sink must not alter the Outcome or propagate to the caller.
func notify(ctx context.Context, reporter Reporter, err error) {
	defer func() {
		_ = recover()
	}()

	reporter.Report(ctx, err)
}

// noopReporter is the default sink; it discards every notification.
type noopReporter struct{}

func (noopReporter) Report(context.Context, error) {}
