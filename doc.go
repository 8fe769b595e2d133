// Package safecall provides a safe wrapper around single outbound network calls.
//
// Execute runs a caller-supplied operation, absorbs any failure it produces, and
// returns a uniform three-variant Outcome instead of an error. The point of the
// design is to separate two audiences: the caller learns whether to render data,
// show a known notice, or show a generic error (the Outcome), while an operator
// is only alerted when something genuinely broke (the Reporter). Failures whose
// status code the caller pre-registered as acceptable never reach the Reporter.
//
// # Core Types
//
// Outcome is a tagged union with exactly one of three variants per call:
//
//   - Success: the operation completed; Data() is the payload, unmodified.
//   - ExpectedFailure: the failure carried a status code registered via
//     WithExpectedErrors; Message() is the registered message.
//   - UnexpectedFailure: any other failure; Message() is a fixed generic string
//     and the original error is forwarded to the Reporter.
//
// Callers branch on Status() or the Is* predicates; the union is exhaustive and
// mutually exclusive by construction.
//
// # Quick Start
//
//	sink := report.NewSlog(slog.Default())
//
//	outcome := safecall.Execute(ctx, fetchProfile,
//	    safecall.WithReporter(sink),
//	    safecall.WithExpectedErrors(safecall.ExpectedErrors{
//	        http.StatusForbidden: "Not authorized",
//	        http.StatusNotFound:  "Not Found",
//	    }),
//	)
//
//	switch outcome.Status() {
//	case safecall.StatusSuccess:
//	    render(outcome.Data())
//	case safecall.StatusExpectedFailure:
//	    showNotice(outcome.Message())
//	case safecall.StatusUnexpectedFailure:
//	    showError(outcome.Message())
//	}
//
// # Status-Carrying Failures
//
// Classification hinges on whether a failure carries a response status code.
// StatusFromError inspects the error chain for the StatusCarrier capability
// (a StatusCode accessor), the HTTPStatus accessor convention, and the response
// error types of the go-github SDK. Transports without their own carrier can use
// StatusError (NewStatusError, WrapStatus) or build one from a raw response with
// ErrorFromResponse.
//
// A failure without a usable status code — a network-level error, a defect in the
// operation, a cancelled context — is always unexpected, regardless of the map.
//
// # Reporting
//
// The Reporter is an explicit dependency injected per call; there is no hidden
// global sink. The notification is fire-and-forget: Execute does not depend on
// the sink's own success, and a panicking sink is contained without changing the
// returned Outcome. The report sub-package ships sinks for structured logging
// (log/slog), Prometheus counters, plain functions, and fan-out composition, and
// the mocks package ships a generated ReporterMock for tests.
//
// # Scope
//
// Execute performs exactly one invocation of the operation per call. There is no
// retry policy, no circuit breaking, no batching, and no transport configuration;
// timeouts and connection handling belong to the transport the operation wraps.
// Classification is stateless and per-call.
//
// # Dependencies
//
// This library depends on:
//   - github.com/google/go-github/v67 - recognized transport error types
//   - github.com/prometheus/client_golang - Prometheus reporter sink
//   - github.com/lmittmann/tint - slog handler used in examples
package safecall
