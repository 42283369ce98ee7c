package uac

import (
	"context"
	"log/slog"

	"github.com/arentrue/nksip/sip"
)

// newTransaction creates a transaction for the request and registers it in the call.
// The request is owned by the transaction from now on.
func (e *Engine) newTransaction(
	ctx context.Context,
	call *Call,
	req *sip.Request,
	opts *sip.Options,
	from Origin,
) *Transaction {
	isProxy := IsProxy(from)
	if isProxy && req.Method.IsOneOf(sip.RequestMethodSubscribe, sip.RequestMethodNotify, sip.RequestMethodRefer) {
		opts = opts.WithNoDialog()
	} else {
		opts = opts.Clone()
	}

	if req.ID == "" {
		req.ID = sip.NewMessageID()
	}
	req.DialogID = e.dialogs.RequestDialogID(req, isProxy, call)

	tx := &Transaction{
		ID:        max(call.NextID, 1),
		Class:     ClassUAC,
		Status:    InitialStatus(req.Method),
		Method:    req.Method,
		RURI:      req.RURI,
		Request:   req,
		From:      from,
		Opts:      opts,
		Iter:      1,
		Cancel:    CancelNone,
		Stateless: opts.IsStateless(),
	}
	call.add(tx)

	e.metrics.TransactionCreated(tx.Method, isProxy)
	e.log.LogAttrs(ctx, slog.LevelDebug, "transaction created",
		slog.Any("call", call),
		slog.Any("transaction", tx),
		slog.Any("dialog_id", req.DialogID),
	)
	return tx
}
