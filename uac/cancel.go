package uac

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/sip"
)

// CancelByID cancels the UAC INVITE transaction with the given id.
//
// done, if not nil, is fulfilled right away: with [OKReply] when the transaction exists,
// with an [ErrorReply] holding [ErrUnknownRequest] otherwise.
// The outcome of the cancel itself is not reported to the caller.
func (e *Engine) CancelByID(ctx context.Context, call *Call, id int, opts *sip.Options, done *Completion) error {
	tx, ok := call.Transaction(id)
	if !ok || tx.Class != ClassUAC || !tx.IsInvite() {
		if done != nil {
			done.Fulfill(ErrorReply{Err: ErrUnknownRequest})
		}
		e.metrics.CancelHandled(CancelOutcomeUnknown)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel of unknown request",
			slog.Any("call", call),
			slog.Int("id", id),
		)
		return nil
	}

	if done != nil {
		done.Fulfill(OKReply{})
	}
	return errtrace.Wrap(e.CancelTransaction(ctx, call, tx, opts))
}

// CancelTransaction cancels the INVITE transaction.
//
// Before any provisional response the cancel is deferred: the transaction is marked
// with [CancelPending] and the CANCEL is sent once it is proceeding.
// In proceeding status the CANCEL request is built and sent without dialog.
// Transactions with a final response, already cancelled or non-INVITE ones are left as is.
func (e *Engine) CancelTransaction(ctx context.Context, call *Call, tx *Transaction, opts *sip.Options) error {
	if tx.Class != ClassUAC || !tx.IsInvite() {
		e.metrics.CancelHandled(CancelOutcomeIgnored)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel of not INVITE transaction ignored",
			slog.Any("call", call),
			slog.Any("transaction", tx),
		)
		return nil
	}
	if tx.Cancel != CancelNone && tx.Cancel != CancelPending {
		e.metrics.CancelHandled(CancelOutcomeIgnored)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel of cancelled transaction ignored",
			slog.Any("call", call),
			slog.Any("status", tx.Status),
			slog.Any("cancel", tx.Cancel),
		)
		return nil
	}

	switch tx.Status {
	case StatusInviteCalling:
		tx.Cancel = CancelPending
		call.update(tx)
		e.metrics.CancelHandled(CancelOutcomeDeferred)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel deferred until provisional response",
			slog.Any("call", call),
			slog.Any("transaction", tx),
		)
		return nil
	case StatusInviteProceeding:
		req, err := e.builder.BuildCancel(ctx, tx.Request, opts)
		if err != nil {
			return errtrace.Wrap(err)
		}
		tx.Cancel = CancelDone
		call.update(tx)
		e.metrics.CancelHandled(CancelOutcomeSent)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC sending CANCEL",
			slog.Any("call", call),
			slog.Any("transaction", tx),
		)
		return errtrace.Wrap(e.SendRequest(ctx, call, req, &sip.Options{NoDialog: true}, NoOrigin{}))
	case StatusInviteCompleted, StatusInviteAccepted:
		e.metrics.CancelHandled(CancelOutcomeLate)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel after final response ignored",
			slog.Any("call", call),
			slog.Any("transaction", tx),
		)
		return nil
	default:
		e.metrics.CancelHandled(CancelOutcomeIgnored)
		e.log.LogAttrs(ctx, slog.LevelDebug, "UAC cancel in invalid status ignored",
			slog.Any("call", call),
			slog.Any("status", tx.Status),
			slog.Any("cancel", tx.Cancel),
		)
		return nil
	}
}
