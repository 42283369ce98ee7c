package uac

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/log"
)

// EngineOptions contains options for an [Engine].
type EngineOptions struct {
	// GlobalID is the process-wide identifier mixed into stateless branches.
	GlobalID string
	// Dialogs is the dialog subsystem. Required.
	Dialogs Dialogs
	// Builder constructs requests. Required.
	Builder Builder
	// Transmitter sends requests of new transactions. Required.
	Transmitter Transmitter
	// Receiver processes matched responses.
	// If nil, a [StdResponseProcessor] delivering to Deliver is used.
	Receiver ResponseReceiver
	// Deliver is called by the default response processor after the transaction was updated.
	Deliver ResponseReceiver
	// RequestInterceptors are run before a transaction is created for an outbound request.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors are run before a matched response reaches the Receiver.
	ResponseInterceptors []ResponseInterceptor
	// Metrics receives engine events. Optional.
	Metrics Metrics
	// Log is the logger that will be used with the engine.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *EngineOptions) metrics() Metrics {
	if o == nil || o.Metrics == nil {
		return noopMetrics{}
	}
	return o.Metrics
}

func (o *EngineOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Engine is the UAC transaction engine.
// It keeps no per-call state and can be shared by all call workers.
type Engine struct {
	globalID string
	dialogs  Dialogs
	builder  Builder
	tp       Transmitter
	sendReq  RequestSender
	recvRes  ResponseReceiver
	metrics  Metrics
	log      *slog.Logger
}

// NewEngine creates a new engine.
func NewEngine(opts *EngineOptions) (*Engine, error) {
	if opts == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing engine options"))
	}
	if opts.Dialogs == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing dialogs"))
	}
	if opts.Builder == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing builder"))
	}
	if opts.Transmitter == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing transmitter"))
	}
	if opts.GlobalID == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing global id"))
	}

	e := &Engine{
		globalID: opts.GlobalID,
		dialogs:  opts.Dialogs,
		builder:  opts.Builder,
		tp:       opts.Transmitter,
		metrics:  opts.metrics(),
		log:      opts.log(),
	}

	recv := opts.Receiver
	if recv == nil {
		recv = NewStdResponseProcessor(e, opts.Deliver, e.log)
	}
	e.sendReq = ChainRequest(opts.RequestInterceptors, RequestSenderFunc(e.send))
	e.recvRes = ChainResponse(opts.ResponseInterceptors, recv)
	return e, nil
}

// GlobalID returns the identifier mixed into stateless branches.
func (e *Engine) GlobalID() string { return e.globalID }

func (e *Engine) transmit(ctx context.Context, call *Call, tx *Transaction) error {
	if err := e.tp.Transmit(ctx, call, tx); err != nil {
		return errtrace.Wrap(fmt.Errorf("transmit %q request: %w", tx.Method, err))
	}
	return nil
}
