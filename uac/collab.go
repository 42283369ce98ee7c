package uac

//go:generate go tool mockgen -typed -destination ../internal/mocks/uacmock/uacmock.go -package uacmock . Dialogs,Builder,Transmitter,ResponseReceiver

import (
	"context"

	"github.com/arentrue/nksip/sip"
)

// Dialogs is the dialog subsystem as seen by the engine.
type Dialogs interface {
	// RequestDialogID resolves the dialog of an outbound request.
	// Proxy forks get fork-specific dialog identifiers.
	RequestDialogID(req *sip.Request, isProxy bool, call *Call) sip.DialogID
	// ResponseDialogID resolves the dialog of an inbound response.
	ResponseDialogID(res *sip.Response, isProxy bool, call *Call) sip.DialogID
	// NewLocalSeq returns the next local CSeq number of the dialog the request belongs to.
	NewLocalSeq(req *sip.Request, call *Call) uint32
	// InDialogTarget resolves the request target of a new in-dialog request
	// and returns the options augmented with the dialog route set.
	InDialogTarget(
		ctx context.Context,
		dialogID sip.DialogID,
		method sip.RequestMethod,
		opts *sip.Options,
		call *Call,
	) (string, *sip.Options, error)
}

// Builder constructs requests.
type Builder interface {
	// BuildRequest builds a request of the call and returns the options actually used.
	BuildRequest(
		ctx context.Context,
		call *Call,
		method sip.RequestMethod,
		ruri string,
		opts *sip.Options,
	) (*sip.Request, *sip.Options, error)
	// BuildCancel builds a CANCEL for the INVITE request.
	BuildCancel(ctx context.Context, invite *sip.Request, opts *sip.Options) (*sip.Request, error)
}

// Transmitter sends the request of a new transaction.
// It sets [Transaction.TransID] and schedules the transaction timers.
type Transmitter interface {
	Transmit(ctx context.Context, call *Call, tx *Transaction) error
}

// TransmitterFunc is a function implementing [Transmitter].
type TransmitterFunc func(ctx context.Context, call *Call, tx *Transaction) error

func (fn TransmitterFunc) Transmit(ctx context.Context, call *Call, tx *Transaction) error {
	return fn(ctx, call, tx) //errtrace:skip
}

// ResponseReceiver processes a response matched to a transaction.
type ResponseReceiver interface {
	RecvResponse(ctx context.Context, call *Call, tx *Transaction, res *sip.Response) error
}

// ResponseReceiverFunc is a function implementing [ResponseReceiver].
type ResponseReceiverFunc func(ctx context.Context, call *Call, tx *Transaction, res *sip.Response) error

func (fn ResponseReceiverFunc) RecvResponse(ctx context.Context, call *Call, tx *Transaction, res *sip.Response) error {
	return fn(ctx, call, tx, res) //errtrace:skip
}

// Metrics receives engine events, see package metrics.
type Metrics interface {
	TransactionCreated(method sip.RequestMethod, proxy bool)
	RequestResent(method sip.RequestMethod)
	CancelHandled(outcome CancelOutcome)
	ResponseHandled(outcome ResponseOutcome)
}

// CancelOutcome is the result of a cancel attempt.
type CancelOutcome string

const (
	CancelOutcomeDeferred CancelOutcome = "deferred"
	CancelOutcomeSent     CancelOutcome = "sent"
	CancelOutcomeLate     CancelOutcome = "late"
	CancelOutcomeIgnored  CancelOutcome = "ignored"
	CancelOutcomeUnknown  CancelOutcome = "unknown"
)

// ResponseOutcome is the result of response correlation.
type ResponseOutcome string

const (
	ResponseOutcomeMatched   ResponseOutcome = "matched"
	ResponseOutcomeUnknown   ResponseOutcome = "unknown"
	ResponseOutcomeStateless ResponseOutcome = "stateless"
)

type noopMetrics struct{}

func (noopMetrics) TransactionCreated(sip.RequestMethod, bool) {}
func (noopMetrics) RequestResent(sip.RequestMethod) {}
func (noopMetrics) CancelHandled(CancelOutcome) {}
func (noopMetrics) ResponseHandled(ResponseOutcome) {}
