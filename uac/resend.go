package uac

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

// Resend sends a new attempt of a prior transaction, usually with credentials added to req.
//
// The top Via of req is removed, the CSeq gets the next local sequence number
// and the Contact option is dropped. The new attempt keeps the prior transaction id
// and origin, and replaces the prior attempt in the call.
func (e *Engine) Resend(ctx context.Context, call *Call, req *sip.Request, prior *Transaction) error {
	if call == nil || req == nil || prior == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing call, request or transaction"))
	}

	req = req.Clone()
	req.ID = sip.NewMessageID()
	req.Via = req.Via.PopFirst()
	req.CSeq = sip.CSeq{
		SeqNum: e.dialogs.NewLocalSeq(req, call),
		Method: req.CSeq.Method,
	}

	from := prior.From
	if c, ok := completionOf(from); ok && c.Fulfilled() {
		// the caller already got the prior attempt's reply
		from = NoOrigin{}
	}

	prior.Timers.StopAll()
	tx := e.newTransaction(ctx, call, req, prior.Opts.WithoutContact(), from)
	call.supersede(prior, tx)
	tx.Iter = prior.Iter + 1

	e.metrics.RequestResent(tx.Method)
	e.log.LogAttrs(ctx, slog.LevelInfo, "UAC resending request",
		slog.Any("call", call),
		slog.Any("method", tx.Method),
		slog.Any("prior_status", prior.Status),
		slog.Int("iter", tx.Iter),
	)
	return errtrace.Wrap(e.transmit(ctx, call, tx))
}
