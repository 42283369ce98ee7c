package sip

import "github.com/arentrue/nksip/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	ErrInvalidMessage  Error = "invalid message"
)

// Transaction errors.
const (
	ErrTransactionNotMatched Error = "transaction not matched"
	ErrTransactionTimedOut   Error = "transaction timed out"
)

// Error represents a SIP error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
