package uac

import (
	"context"
	"fmt"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

// Status is the status of a client transaction.
type Status string

const (
	StatusInviteCalling    Status = "invite_calling"
	StatusInviteProceeding Status = "invite_proceeding"
	StatusInviteAccepted   Status = "invite_accepted"
	StatusInviteCompleted  Status = "invite_completed"
	StatusTrying           Status = "trying"
	StatusProceeding       Status = "proceeding"
	StatusCompleted        Status = "completed"
	StatusFinished         Status = "finished"
	// StatusAck is the sink status of ACK transactions, they never track responses.
	StatusAck Status = "ack"
)

// InitialStatus returns the status a new transaction for the method starts with.
func InitialStatus(method sip.RequestMethod) Status {
	switch {
	case method.Equal(sip.RequestMethodAck):
		return StatusAck
	case method.Equal(sip.RequestMethodInvite):
		return StatusInviteCalling
	default:
		return StatusTrying
	}
}

const (
	txEvtRecv1xx    = "recv_1xx"
	txEvtRecv2xx    = "recv_2xx"
	txEvtRecv300699 = "recv_300-699"
	txEvtTimeout    = "timeout"
	txEvtTerminate  = "terminate"
)

func (tx *Transaction) machine() *stateless.StateMachine {
	if tx.fsm == nil {
		tx.fsm = newStatusMachine(tx)
	}
	return tx.fsm
}

func newStatusMachine(tx *Transaction) *stateless.StateMachine {
	fsm := stateless.NewStateMachineWithExternalStorage(
		func(context.Context) (stateless.State, error) {
			return tx.Status, nil
		},
		func(_ context.Context, s stateless.State) error {
			tx.Status = s.(Status) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)

	fsm.Configure(StatusInviteCalling).
		Permit(txEvtRecv1xx, StatusInviteProceeding).
		Permit(txEvtRecv2xx, StatusInviteAccepted).
		Permit(txEvtRecv300699, StatusInviteCompleted).
		Permit(txEvtTimeout, StatusFinished).
		Permit(txEvtTerminate, StatusFinished)

	// timer B only runs while calling
	fsm.Configure(StatusInviteProceeding).
		Ignore(txEvtRecv1xx).
		Permit(txEvtRecv2xx, StatusInviteAccepted).
		Permit(txEvtRecv300699, StatusInviteCompleted).
		Ignore(txEvtTimeout).
		Permit(txEvtTerminate, StatusFinished)

	// 2xx retransmissions and forked 2xx keep the transaction accepted.
	fsm.Configure(StatusInviteAccepted).
		Ignore(txEvtRecv1xx).
		Ignore(txEvtRecv2xx).
		Ignore(txEvtRecv300699).
		Ignore(txEvtTimeout).
		Permit(txEvtTerminate, StatusFinished)

	fsm.Configure(StatusInviteCompleted).
		Ignore(txEvtRecv1xx).
		Ignore(txEvtRecv2xx).
		Ignore(txEvtRecv300699).
		Ignore(txEvtTimeout).
		Permit(txEvtTerminate, StatusFinished)

	fsm.Configure(StatusTrying).
		Permit(txEvtRecv1xx, StatusProceeding).
		Permit(txEvtRecv2xx, StatusCompleted).
		Permit(txEvtRecv300699, StatusCompleted).
		Permit(txEvtTimeout, StatusFinished).
		Permit(txEvtTerminate, StatusFinished)

	fsm.Configure(StatusProceeding).
		Ignore(txEvtRecv1xx).
		Permit(txEvtRecv2xx, StatusCompleted).
		Permit(txEvtRecv300699, StatusCompleted).
		Permit(txEvtTimeout, StatusFinished).
		Permit(txEvtTerminate, StatusFinished)

	fsm.Configure(StatusCompleted).
		Ignore(txEvtRecv1xx).
		Ignore(txEvtRecv2xx).
		Ignore(txEvtRecv300699).
		Ignore(txEvtTimeout).
		Permit(txEvtTerminate, StatusFinished)

	for _, st := range []Status{StatusFinished, StatusAck} {
		cfg := fsm.Configure(st)
		for _, evt := range []string{txEvtRecv1xx, txEvtRecv2xx, txEvtRecv300699, txEvtTimeout, txEvtTerminate} {
			cfg.Ignore(evt)
		}
	}

	return fsm
}

func (tx *Transaction) fire(ctx context.Context, evt string) (changed bool, err error) {
	prev := tx.Status
	if err := tx.machine().FireCtx(ctx, evt); err != nil {
		return false, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTransition,
			fmt.Errorf("fire %q in status %q: %w", evt, prev, err)))
	}
	return tx.Status != prev, nil
}

// Advance moves the transaction status forward according to the received response status.
// It reports whether the status has changed.
// ACK transactions and transactions already finished are never changed.
func (tx *Transaction) Advance(ctx context.Context, code sip.ResponseStatus) (bool, error) {
	var evt string
	switch {
	case code.IsProvisional():
		evt = txEvtRecv1xx
	case code.IsSuccessful():
		evt = txEvtRecv2xx
	case code.IsFinal():
		evt = txEvtRecv300699
	default:
		return false, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid response status %d", code))
	}
	return errtrace.Wrap2(tx.fire(ctx, evt))
}

// TimeOut finishes a transaction that got no final response in time.
// Transactions that already have a final response are not affected.
func (tx *Transaction) TimeOut(ctx context.Context) (bool, error) {
	return errtrace.Wrap2(tx.fire(ctx, txEvtTimeout))
}

// Terminate finishes the transaction.
func (tx *Transaction) Terminate(ctx context.Context) (bool, error) {
	return errtrace.Wrap2(tx.fire(ctx, txEvtTerminate))
}
