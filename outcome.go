package safecall

import "encoding/json"

// Status identifies the variant of an Outcome.
// Statuses are string-based for debuggability and natural JSON serialization.
type Status string

const (
	// StatusSuccess indicates the operation completed and the Outcome carries its payload.
	StatusSuccess Status = "SUCCESS"

	// StatusExpectedFailure indicates the operation failed with a status code the
	// caller pre-registered as acceptable.
	StatusExpectedFailure Status = "EXPECTED_FAILURE"

	// StatusUnexpectedFailure indicates the operation failed for any other reason.
	StatusUnexpectedFailure Status = "UNEXPECTED_FAILURE"
)

// GenericFailureMessage is the message carried by every unexpected-failure Outcome.
// The underlying failure detail is deliberately never surfaced to the caller; it is
// forwarded to the Reporter instead.
const GenericFailureMessage = "An unexpected error occurred"

// Outcome is the three-variant result of a safe call. Exactly one variant is
// produced per Execute invocation; callers branch on Status (or the Is* predicates),
// never on payload shape.
//
// Outcome values are immutable once created and own no external resources.
//
// Example:
//
//	outcome := safecall.Execute(ctx, fetchUser)
//	switch outcome.Status() {
//	case safecall.StatusSuccess:
//	    render(outcome.Data())
//	case safecall.StatusExpectedFailure:
//	    showNotice(outcome.Message())
//	case safecall.StatusUnexpectedFailure:
//	    showError(outcome.Message())
//	}
type Outcome[T any] struct {
	status  Status
	data    T
	message string
}

// Success creates a success Outcome carrying the operation's payload unmodified.
func Success[T any](data T) Outcome[T] {
	return Outcome[T]{
		status: StatusSuccess,
		data:   data,
	}
}

// ExpectedFailure creates an expected-failure Outcome carrying the caller-registered
// message for the failure's status code.
func ExpectedFailure[T any](message string) Outcome[T] {
	return Outcome[T]{
		status:  StatusExpectedFailure,
		message: message,
	}
}

// UnexpectedFailure creates an unexpected-failure Outcome. The message is always
// GenericFailureMessage; the underlying failure is never attached.
func UnexpectedFailure[T any]() Outcome[T] {
	return Outcome[T]{
		status:  StatusUnexpectedFailure,
		message: GenericFailureMessage,
	}
}

// Status returns the variant discriminant.
func (o Outcome[T]) Status() Status {
	return o.status
}

// Data returns the operation's payload. It is only meaningful when the Outcome
// is a success; for either failure variant it is the zero value of T.
func (o Outcome[T]) Data() T {
	return o.data
}

// Message returns the human-readable message for a failure Outcome.
// Returns the empty string for a success.
func (o Outcome[T]) Message() string {
	return o.message
}

// IsSuccess returns true if the operation completed with a payload.
func (o Outcome[T]) IsSuccess() bool {
	return o.status == StatusSuccess
}

// IsExpectedFailure returns true if the operation failed with a pre-registered
// status code.
func (o Outcome[T]) IsExpectedFailure() bool {
	return o.status == StatusExpectedFailure
}

// IsUnexpectedFailure returns true if the operation failed for any reason the
// caller did not pre-register.
func (o Outcome[T]) IsUnexpectedFailure() bool {
	return o.status == StatusUnexpectedFailure
}

// outcomeResponse is the flat JSON representation of an Outcome.
// Data and Message are mutually exclusive; Status is always present so consumers
// can branch without inspecting payload shape.
type outcomeResponse[T any] struct {
	Status  Status `json:"status"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON implements json.Marshaler. Success Outcomes serialize their payload
// under "data"; failure Outcomes serialize only the status and message, so the
// unexpected path never leaks internal failure detail through serialization.
//
// Example:
//
//	outcome := safecall.Success(User{Name: "ada"})
//	body, _ := json.Marshal(outcome)
//	// Output: {"status":"SUCCESS","data":{"name":"ada"}}
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	response := outcomeResponse[T]{
		Status:  o.status,
		Message: o.message,
	}
	if o.status == StatusSuccess {
		response.Data = &o.data
	}
	return json.Marshal(response)
}
