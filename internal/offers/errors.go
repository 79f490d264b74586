package offers

import "fmt"

const (
	CodeMissingStrategy = "missing_strategy"
	CodeMalformedDraft  = "malformed_draft"
	CodeDraftingFailure = "drafting_failure"
	CodeInternal        = "internal"
)

// Error is the engine's failure type. Code identifies the contract that was
// violated; Status is the HTTP status the API boundary should report.
type Error struct {
	Code    string
	Message string
	Status  int
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func statusForCode(code string) int {
	switch code {
	case CodeMissingStrategy:
		return 400
	case CodeMalformedDraft, CodeDraftingFailure:
		return 502
	default:
		return 500
	}
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Status: statusForCode(code), cause: cause}
}

// NewMissingStrategyError rejects a request whose strategy selector is
// absent or not a catalog key. Raised before any drafting call is made.
func NewMissingStrategyError(field, value string) error {
	if value == "" {
		return newError(CodeMissingStrategy, fmt.Sprintf("%s is required", field), nil)
	}
	return newError(CodeMissingStrategy, fmt.Sprintf("%s: unknown strategy %q", field, value), nil)
}

// NewMalformedDraftError reports a drafting response whose envelope shape
// violates the contract (for example, a missing offer_a or offer_b key).
func NewMalformedDraftError(message string) error {
	return newError(CodeMalformedDraft, message, nil)
}

// NewDraftingFailureError wraps a transport or timeout failure from the
// drafting service. The cause is preserved for diagnostics; the engine
// never retries.
func NewDraftingFailureError(cause error) error {
	return newError(CodeDraftingFailure, "offer drafting service call failed", cause)
}
