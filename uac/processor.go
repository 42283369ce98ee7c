package uac

import (
	"context"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/sip"
)

// Canceller cancels INVITE transactions, it is implemented by [Engine].
type Canceller interface {
	CancelTransaction(ctx context.Context, call *Call, tx *Transaction, opts *sip.Options) error
}

// StdResponseProcessor is the default response processor of the [Engine].
//
// It stores the response in the transaction, advances the transaction status,
// sends a deferred CANCEL once the INVITE is proceeding and completes synchronous callers
// with the final response. Responses of ACK transactions are ignored.
type StdResponseProcessor struct {
	canceller Canceller
	next      ResponseReceiver
	log       *slog.Logger
}

// NewStdResponseProcessor creates a response processor.
// next, if not nil, receives every response after the transaction was updated.
func NewStdResponseProcessor(canceller Canceller, next ResponseReceiver, logger *slog.Logger) *StdResponseProcessor {
	if logger == nil {
		logger = log.Default()
	}
	return &StdResponseProcessor{
		canceller: canceller,
		next:      next,
		log:       logger,
	}
}

// RecvResponse implements [ResponseReceiver].
func (p *StdResponseProcessor) RecvResponse(ctx context.Context, call *Call, tx *Transaction, res *sip.Response) error {
	if tx.Status == StatusAck {
		p.log.LogAttrs(ctx, slog.LevelDebug, "response for ACK transaction ignored",
			slog.Any("transaction", tx),
			slog.Any("response", res),
		)
		return nil
	}

	prev := tx.Status
	changed, err := tx.Advance(ctx, res.Status)
	if err != nil {
		return errtrace.Wrap(err)
	}
	// late responses of answered transactions are not stored
	if changed || tx.Status == StatusInviteProceeding || tx.Status == StatusProceeding {
		tx.Response = res
		tx.Code = res.Status
	}
	if res.ToTag != "" && !slices.Contains(tx.ToTags, res.ToTag) {
		tx.ToTags = append(tx.ToTags, res.ToTag)
	}
	if res.Status.IsFinal() {
		tx.Timers.StopAll()
	} else if tx.IsInvite() {
		stopTimer(&tx.Timers.Retrans)
		stopTimer(&tx.Timers.Timeout)
	}
	call.update(tx)

	if changed {
		p.log.LogAttrs(ctx, slog.LevelDebug, "transaction status changed",
			slog.Any("transaction", tx),
			slog.Any("from", prev),
			slog.Any("to", tx.Status),
		)
	}

	if changed && tx.Status == StatusInviteProceeding && tx.Cancel == CancelPending {
		if err := p.canceller.CancelTransaction(ctx, call, tx, nil); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if changed && res.Status.IsFinal() && !tx.Opts.IsAsync() {
		if c, ok := completionOf(tx.From); ok {
			c.Fulfill(ResponseReply{Response: res})
		}
	}

	if p.next == nil {
		return nil
	}
	return errtrace.Wrap(p.next.RecvResponse(ctx, call, tx, res))
}

// TimeOut finishes the transaction after its timeout timer fired
// and completes a synchronous caller with [ErrTransactionTimedOut].
func (p *StdResponseProcessor) TimeOut(ctx context.Context, call *Call, tx *Transaction) error {
	return errtrace.Wrap(timeOut(ctx, call, tx, p.log))
}

func timeOut(ctx context.Context, call *Call, tx *Transaction, logger *slog.Logger) error {
	changed, err := tx.TimeOut(ctx)
	if err != nil {
		return errtrace.Wrap(err)
	}
	tx.Timers.StopAll()
	call.update(tx)
	if !changed {
		return nil
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "transaction timed out",
		slog.Any("call", call),
		slog.Any("transaction", tx),
	)
	if !tx.Opts.IsAsync() {
		if c, ok := completionOf(tx.From); ok {
			c.Fulfill(ErrorReply{Err: ErrTransactionTimedOut})
		}
	}
	return nil
}
