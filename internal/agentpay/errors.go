package agentpay

import "fmt"

// ErrorType classifies the category of an Error.
type ErrorType string

const (
	// ErrorTypeConfig indicates a configuration error.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeBilling indicates an AgentPay API error.
	ErrorTypeBilling ErrorType = "billing"
	// ErrorTypeNetwork indicates a network/transport error.
	ErrorTypeNetwork ErrorType = "network"
)

// Error is a typed error returned by the agentpay package.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("agentpay %s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("agentpay %s error: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newConfigError(msg string, err error) *Error {
	return &Error{Type: ErrorTypeConfig, Message: msg, Err: err}
}

func newBillingError(msg string, err error) *Error {
	return &Error{Type: ErrorTypeBilling, Message: msg, Err: err}
}

func newNetworkError(msg string, err error) *Error {
	return &Error{Type: ErrorTypeNetwork, Message: msg, Err: err}
}
