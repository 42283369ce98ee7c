package uac

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/qmuntal/stateless"

	"github.com/arentrue/nksip/sip"
)

// Class is the transaction class.
type Class string

const (
	ClassUAC Class = "uac"
	ClassUAS Class = "uas"
)

// CancelState tracks the CANCEL of an INVITE transaction.
// It only moves forward: [CancelNone] → [CancelPending] → [CancelDone].
type CancelState string

const (
	CancelNone CancelState = ""
	// CancelPending means a CANCEL was requested before any provisional response
	// and must be sent once the transaction is proceeding.
	CancelPending CancelState = "to_cancel"
	// CancelDone means the CANCEL request was sent.
	CancelDone CancelState = "cancelled"
)

// TimerHandle is an opaque timer scheduled by the [Transmitter].
type TimerHandle interface {
	Stop() bool
}

// Timers holds the timers attached to a transaction by the [Transmitter].
type Timers struct {
	Timeout     TimerHandle
	Retrans     TimerHandle
	NextRetrans time.Duration
	Expire      TimerHandle
}

// StopAll stops every running timer and clears the handles.
func (t *Timers) StopAll() {
	for _, h := range []*TimerHandle{&t.Timeout, &t.Retrans, &t.Expire} {
		stopTimer(h)
	}
	t.NextRetrans = 0
}

func stopTimer(h *TimerHandle) {
	if *h != nil {
		(*h).Stop()
		*h = nil
	}
}

// Transaction is the state of one outgoing request attempt.
type Transaction struct {
	ID     int
	Class  Class
	Status Status
	Method sip.RequestMethod
	// RURI is the resolved request target.
	RURI     string
	Request  *sip.Request
	Response *sip.Response
	Code     sip.ResponseStatus
	From     Origin
	Opts     *sip.Options
	// Iter is the attempt counter, it is incremented on each resend.
	Iter   int
	Cancel CancelState
	// TransID is the key used to match responses, it is set by the [Transmitter].
	TransID sip.ClientTransactionKey
	// AckTransID links a 2xx INVITE transaction with its ACK.
	AckTransID sip.ClientTransactionKey
	Timers     Timers
	Stateless  bool
	ToTags     []string
	Meta       map[string]any

	fsm *stateless.StateMachine
}

// IsInvite reports whether the transaction was created by an INVITE request.
func (tx *Transaction) IsInvite() bool {
	return tx != nil && tx.Method.Equal(sip.RequestMethodInvite)
}

// IsProxy reports whether the transaction was created by a proxy fork.
func (tx *Transaction) IsProxy() bool {
	return tx != nil && IsProxy(tx.From)
}

// Clone returns a copy of the transaction.
// Messages are deep copied, timer handles are shared.
func (tx *Transaction) Clone() *Transaction {
	if tx == nil {
		return nil
	}
	c := *tx
	c.Request = tx.Request.Clone()
	c.Response = tx.Response.Clone()
	if tx.Opts != nil {
		c.Opts = tx.Opts.Clone()
	}
	c.ToTags = slices.Clone(tx.ToTags)
	c.Meta = maps.Clone(tx.Meta)
	c.fsm = nil
	return &c
}

// LogValue implements [slog.LogValuer].
func (tx *Transaction) LogValue() slog.Value {
	if tx == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Int("id", tx.ID),
		slog.Any("class", tx.Class),
		slog.Any("method", tx.Method),
		slog.Any("status", tx.Status),
		slog.Any("cancel", tx.Cancel),
		slog.Int("iter", tx.Iter),
		slog.Any("from", tx.From),
	)
}
