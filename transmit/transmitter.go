package transmit

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/internal/timeutil"
	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

// Sender writes requests to the network.
type Sender interface {
	Send(ctx context.Context, req *sip.Request) error
}

// SenderFunc is a function implementing [Sender].
type SenderFunc func(ctx context.Context, req *sip.Request) error

func (fn SenderFunc) Send(ctx context.Context, req *sip.Request) error {
	return fn(ctx, req) //errtrace:skip
}

// Metrics receives transmit events.
type Metrics interface {
	RequestRetransmitted(method sip.RequestMethod)
}

// Options contains options for a [Transmitter].
type Options struct {
	// GlobalID is mixed into the branches of stateless requests.
	GlobalID string
	// Transport is the transport put into Via hops. Default is UDP.
	Transport string
	// Host and Port are the sent-by address put into Via hops.
	Host string
	Port uint16
	// Reliable disables retransmissions.
	Reliable bool
	// Timings is the SIP timing config.
	Timings sip.TimingConfig
	Metrics Metrics
	// Log is the logger that will be used with the transmitter.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *Options) transport() string {
	if o == nil || o.Transport == "" {
		return "UDP"
	}
	return o.Transport
}

func (o *Options) host() string {
	if o == nil || o.Host == "" {
		return "127.0.0.1"
	}
	return o.Host
}

func (o *Options) port() uint16 {
	if o == nil {
		return 0
	}
	return o.Port
}

func (o *Options) reliable() bool { return o != nil && o.Reliable }

func (o *Options) timings() sip.TimingConfig {
	if o == nil {
		return sip.TimingConfig{}
	}
	return o.Timings
}

func (o *Options) metrics() Metrics {
	if o == nil || o.Metrics == nil {
		return noopMetrics{}
	}
	return o.Metrics
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

type noopMetrics struct{}

func (noopMetrics) RequestRetransmitted(sip.RequestMethod) {}

// Transmitter is the reference transmit step of the UAC engine, it implements [uac.Transmitter].
type Transmitter struct {
	sender    Sender
	globalID  string
	transport string
	host      string
	port      uint16
	reliable  bool
	timings   sip.TimingConfig
	metrics   Metrics
	log       *slog.Logger
}

// New creates a new transmitter.
func New(sender Sender, opts *Options) (*Transmitter, error) {
	if sender == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing sender"))
	}
	if opts == nil || opts.GlobalID == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing global id"))
	}
	return &Transmitter{
		sender:    sender,
		globalID:  opts.GlobalID,
		transport: opts.transport(),
		host:      opts.host(),
		port:      opts.port(),
		reliable:  opts.reliable(),
		timings:   opts.timings(),
		metrics:   opts.metrics(),
		log:       opts.log(),
	}, nil
}

// Transmit sends the request of a new transaction.
//
// Stateless requests get a stateless branch and neither a transaction key nor timers,
// their responses are recognised by [uac.IsStatelessResponse].
// A CANCEL keeps the top Via of the INVITE it cancels.
func (t *Transmitter) Transmit(ctx context.Context, call *uac.Call, tx *uac.Transaction) error {
	branch := t.stampVia(tx)
	if !tx.Stateless {
		tx.TransID = sip.ClientTransactionKey{
			Branch: branch,
			Method: string(tx.Request.CSeq.Method.ToUpper()),
		}
	}

	if err := t.sender.Send(ctx, tx.Request); err != nil {
		return errtrace.Wrap(fmt.Errorf("send request: %w", err))
	}
	t.log.LogAttrs(ctx, slog.LevelDebug, "request sent",
		slog.Any("transaction", tx),
		slog.Any("via", tx.Request.Via),
	)

	if tx.Stateless || tx.Status == uac.StatusAck {
		return nil
	}
	p, ok := PosterFromContext(ctx)
	if !ok {
		t.log.LogAttrs(ctx, slog.LevelWarn, "no timer poster in context, transaction timers not scheduled",
			slog.Any("transaction", tx),
		)
		return nil
	}

	timeout, retrans := t.timings.TimeF(), t.timings.TimeE()
	if tx.IsInvite() {
		timeout, retrans = t.timings.TimeB(), t.timings.TimeA()
	}
	tx.Timers.Timeout = t.after(p, timeout, newEvent(call, tx, TimerTimeout))
	if !t.reliable {
		tx.Timers.NextRetrans = retrans
		tx.Timers.Retrans = t.after(p, retrans, newEvent(call, tx, TimerRetransmit))
	}
	return nil
}

func (t *Transmitter) stampVia(tx *uac.Transaction) string {
	req := tx.Request
	if req.Method.Equal(sip.RequestMethodCancel) {
		if hop, ok := req.FirstVia(); ok {
			if branch, ok := hop.Branch(); ok {
				return branch
			}
		}
	}

	var branch string
	if tx.Stateless {
		branch = sip.GenerateStatelessBranch(t.globalID)
	} else {
		branch = sip.GenerateBranch()
	}
	hop := sip.ViaHop{
		Proto:     "SIP/2.0",
		Transport: t.transport,
		Host:      t.host,
		Port:      t.port,
		Params:    map[string]string{"rport": "", "branch": branch},
	}
	req.Via = slices.Insert(req.Via, 0, hop)
	return branch
}

// Retransmit sends the request of the transaction again after its retransmission timer fired
// and schedules the next retransmission.
// Transactions that got a final response or a provisional response to INVITE are not retransmitted.
func (t *Transmitter) Retransmit(ctx context.Context, call *uac.Call, tx *uac.Transaction) error {
	tx.Timers.Retrans = nil
	switch tx.Status {
	case uac.StatusInviteCalling, uac.StatusTrying, uac.StatusProceeding:
	default:
		return nil
	}

	if err := t.sender.Send(ctx, tx.Request); err != nil {
		return errtrace.Wrap(fmt.Errorf("retransmit request: %w", err))
	}
	t.metrics.RequestRetransmitted(tx.Method)

	next := t.timings.NextRetrans(tx.IsInvite(), tx.Status == uac.StatusProceeding, tx.Timers.NextRetrans)
	tx.Timers.NextRetrans = next
	t.log.LogAttrs(ctx, slog.LevelDebug, "request retransmitted",
		slog.Any("transaction", tx),
		slog.Duration("next", next),
	)

	if p, ok := PosterFromContext(ctx); ok {
		tx.Timers.Retrans = t.after(p, next, newEvent(call, tx, TimerRetransmit))
	}
	return nil
}

func (t *Transmitter) after(p Poster, d time.Duration, ev TimerEvent) uac.TimerHandle {
	return timeutil.AfterFunc(d, func() {
		if !p.PostTimer(ev) {
			t.log.LogAttrs(context.Background(), slog.LevelDebug, "timer event dropped", slog.Any("event", ev))
		}
	})
}

func newEvent(call *uac.Call, tx *uac.Transaction, kind TimerKind) TimerEvent {
	return TimerEvent{
		CallID:  call.CallID,
		Kind:    kind,
		TransID: tx.ID,
		Iter:    tx.Iter,
	}
}
