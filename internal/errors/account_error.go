package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAmount     = &AccountError{Code: AccountInvalidAmount}
	ErrInsufficientFunds = &AccountError{Code: AccountInsufficientFunds}
	ErrSameAccount       = &AccountError{Code: AccountSameAccount}
	ErrValidation        = &AccountError{Code: ValidationGeneral}
)

// AccountError is the error returned by every failing account operation.
// Two AccountErrors match under errors.Is when their codes are equal, so the
// package-level sentinels can be used to test for a kind of failure.
type AccountError struct {
	Code    ErrorCode
	Message string
	Account string
	Details []string
}

// ErrorOption is a functional option for configuring account errors
type ErrorOption func(*AccountError)

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *AccountError) {
		e.Message = message
	}
}

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(e *AccountError) {
		e.Details = details
	}
}

// New creates an AccountError for the named account
func New(code ErrorCode, account string, opts ...ErrorOption) *AccountError {
	e := &AccountError{
		Code:    code,
		Message: GetErrorMessage(code),
		Account: account,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Error implements the error interface
func (e *AccountError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = GetErrorMessage(e.Code)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, msg)
	if e.Account != "" {
		fmt.Fprintf(&b, " (account: %s)", e.Account)
	}
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Details, "; "))
	}
	return b.String()
}

// Is reports whether target is an AccountError with the same code
func (e *AccountError) Is(target error) bool {
	t, ok := target.(*AccountError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the error code from err, or returns an empty code when err
// is not an AccountError
func CodeOf(err error) ErrorCode {
	var ae *AccountError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
