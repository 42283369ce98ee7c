package uac

import (
	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

const (
	ErrInvalidArgument       = errorutil.ErrInvalidArgument
	ErrTransactionNotMatched = sip.ErrTransactionNotMatched
	ErrTransactionTimedOut   = sip.ErrTransactionTimedOut
)

const (
	// ErrUnknownRequest is reported to the caller of [Engine.CancelByID]
	// when no cancellable transaction with the given id exists.
	ErrUnknownRequest errorutil.Error = "unknown request"
	// ErrInvalidTransition is returned when a transaction status change is not allowed.
	ErrInvalidTransition errorutil.Error = "invalid transaction status transition"
)
