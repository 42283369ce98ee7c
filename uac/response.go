package uac

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

// OnResponse matches the inbound response to a client transaction of the call.
//
// A matched response is stamped with the request URI and the dialog id,
// passes the response interceptors and is handed to the response receiver.
// Responses without a transaction are logged and dropped, they are not an error.
func (e *Engine) OnResponse(ctx context.Context, call *Call, res *sip.Response) error {
	if call == nil || res == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing call or response"))
	}

	key, err := sip.MakeClientTransactionKey(res)
	var tx *Transaction
	if err == nil {
		tx, _ = call.TransactionByKey(key)
	}
	if tx == nil {
		e.dropResponse(ctx, call, res, err)
		return nil
	}

	res.RequestURI = tx.RURI
	res.DialogID = e.dialogs.ResponseDialogID(res, tx.IsProxy(), call)
	e.metrics.ResponseHandled(ResponseOutcomeMatched)
	return errtrace.Wrap(e.recvRes.RecvResponse(ctx, call, tx, res))
}

func (e *Engine) dropResponse(ctx context.Context, call *Call, res *sip.Response, err error) {
	if e.IsStatelessResponse(res) {
		e.metrics.ResponseHandled(ResponseOutcomeStateless)
		e.log.LogAttrs(ctx, slog.LevelDebug, "response for stateless request",
			slog.Any("call", call),
			slog.Any("response", res),
		)
		return
	}

	e.metrics.ResponseHandled(ResponseOutcomeUnknown)
	attrs := []slog.Attr{
		slog.Any("call", call),
		slog.Any("response", res),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	e.log.LogAttrs(ctx, slog.LevelInfo, "response for unknown transaction", attrs...)
}

// OnTimeout finishes the transaction after its timeout timer fired.
// A synchronous caller waiting for the final response is completed with [ErrTransactionTimedOut].
func (e *Engine) OnTimeout(ctx context.Context, call *Call, tx *Transaction) error {
	if call == nil || tx == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing call or transaction"))
	}
	return errtrace.Wrap(timeOut(ctx, call, tx, e.log))
}
