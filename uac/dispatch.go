package uac

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

// SendRequest starts a new client transaction for the request.
//
// The request passes the request interceptors, gets a transaction in the call
// and is handed to the [Transmitter]. The engine takes ownership of the request.
// When opts is async and the origin is a caller, the caller is completed before transmission.
func (e *Engine) SendRequest(
	ctx context.Context,
	call *Call,
	req *sip.Request,
	opts *sip.Options,
	from Origin,
) error {
	if call == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing call"))
	}
	if req == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing request"))
	}
	if from == nil {
		from = NoOrigin{}
	}
	return errtrace.Wrap(e.sendReq.SendRequest(ctx, call, req, opts, from))
}

func (e *Engine) send(ctx context.Context, call *Call, req *sip.Request, opts *sip.Options, from Origin) error {
	tx := e.newTransaction(ctx, call, req, opts, from)

	if tx.Opts.IsAsync() {
		if c, ok := completionOf(tx.From); ok {
			if tx.Method == sip.RequestMethodAck {
				c.Fulfill(AckReply{})
			} else {
				c.Fulfill(HandleReply{Handle: req.Handle()})
			}
		}
	}

	if tx.IsProxy() {
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC sending forked request",
			slog.Any("call", call),
			slog.Any("transaction", tx),
			slog.Any("origin", tx.From),
		)
	} else {
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC sending request",
			slog.Any("call", call),
			slog.Any("transaction", tx),
		)
	}
	return errtrace.Wrap(e.transmit(ctx, call, tx))
}

// SendInDialogRequest builds a request inside an existing dialog and sends it
// without origin. Errors of target resolution and request building are returned unchanged
// and the call is left untouched.
func (e *Engine) SendInDialogRequest(
	ctx context.Context,
	call *Call,
	dialogID sip.DialogID,
	method sip.RequestMethod,
	opts *sip.Options,
) error {
	ruri, opts, err := e.dialogs.InDialogTarget(ctx, dialogID, method, opts, call)
	if err != nil {
		return errtrace.Wrap(err)
	}
	req, opts, err := e.builder.BuildRequest(ctx, call, method, ruri, opts)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(e.SendRequest(ctx, call, req, opts, NoOrigin{}))
}
