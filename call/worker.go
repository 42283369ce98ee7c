package call

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"
	"sync"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/transmit"
	"github.com/arentrue/nksip/uac"
)

const (
	// ErrWorkerStopped is returned when an operation is sent to a stopped worker.
	ErrWorkerStopped errorutil.Error = "call worker stopped"
	// ErrRegistryClosed is returned when a worker is requested from a closed registry.
	ErrRegistryClosed errorutil.Error = "call registry closed"
)

// Retransmitter resends requests when their retransmission timer expires.
type Retransmitter interface {
	Retransmit(ctx context.Context, call *uac.Call, tx *uac.Transaction) error
}

// TimeoutHandler finishes transactions when their timeout timer expires.
type TimeoutHandler interface {
	OnTimeout(ctx context.Context, call *uac.Call, tx *uac.Transaction) error
}

// Func is an operation executed by a [Worker] on its call context.
type Func func(ctx context.Context, call *uac.Call) error

// WorkerOptions contains options for a [Worker].
type WorkerOptions struct {
	// QueueSize is the capacity of the operation queue. Default is 64.
	QueueSize int
	// Retransmitter handles expired retransmission timers.
	// If nil, retransmission events are dropped.
	Retransmitter Retransmitter
	// TimeoutHandler handles expired timeout timers.
	// If nil, timeout events are dropped.
	TimeoutHandler TimeoutHandler
	// Log is the logger that will be used with the worker.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *WorkerOptions) queueSize() int {
	if o == nil || o.QueueSize <= 0 {
		return 64
	}
	return o.QueueSize
}

func (o *WorkerOptions) retransmitter() Retransmitter {
	if o == nil {
		return nil
	}
	return o.Retransmitter
}

func (o *WorkerOptions) timeoutHandler() TimeoutHandler {
	if o == nil {
		return nil
	}
	return o.TimeoutHandler
}

func (o *WorkerOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

type task struct {
	ctx  context.Context //nolint:containedctx
	fn   Func
	errc chan error
}

// Worker is a goroutine owning the context of a single call.
// Operations passed to [Worker.Do] and timer events are executed one at a time,
// so the call context is never accessed concurrently.
type Worker struct {
	call     *uac.Call
	retrans  Retransmitter
	timeouts TimeoutHandler
	tasks    chan task
	timers   chan transmit.TimerEvent
	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	log      *slog.Logger
}

// NewWorker creates a worker for the call and starts it.
// The worker runs until [Worker.Stop] is called.
func NewWorker(call *uac.Call, opts *WorkerOptions) *Worker {
	w := &Worker{
		call:     call,
		retrans:  opts.retransmitter(),
		timeouts: opts.timeoutHandler(),
		tasks:    make(chan task, opts.queueSize()),
		timers:   make(chan transmit.TimerEvent, opts.queueSize()),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		log:      opts.log(),
	}
	go w.run()
	return w
}

// CallID returns the Call-ID of the call owned by the worker.
func (w *Worker) CallID() string { return w.call.CallID }

func (w *Worker) run() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			w.shutdown()
			return
		case t := <-w.tasks:
			t.errc <- t.fn(transmit.ContextWithPoster(t.ctx, w), w.call)
		case ev := <-w.timers:
			w.handleTimer(ev)
		}
	}
}

func (w *Worker) shutdown() {
	for {
		select {
		case t := <-w.tasks:
			t.errc <- errtrace.Wrap(ErrWorkerStopped)
		default:
			for _, tx := range w.call.Transactions {
				tx.Timers.StopAll()
			}
			return
		}
	}
}

// Do executes fn on the call context and returns its error.
// The context passed to fn carries the worker as the [transmit.Poster],
// so the timers scheduled by fn are delivered back to this worker.
func (w *Worker) Do(ctx context.Context, fn Func) error {
	if err := ctx.Err(); err != nil {
		return errtrace.Wrap(err)
	}

	t := task{ctx: ctx, fn: fn, errc: make(chan error, 1)}
	select {
	case <-w.stop:
		return errtrace.Wrap(ErrWorkerStopped)
	default:
	}

	select {
	case w.tasks <- t:
	case <-w.stop:
		return errtrace.Wrap(ErrWorkerStopped)
	case <-ctx.Done():
		return errtrace.Wrap(ctx.Err())
	}

	select {
	case err := <-t.errc:
		return errtrace.Wrap(err)
	case <-w.stopped:
		select {
		case err := <-t.errc:
			return errtrace.Wrap(err)
		default:
			return errtrace.Wrap(ErrWorkerStopped)
		}
	case <-ctx.Done():
		return errtrace.Wrap(ctx.Err())
	}
}

// PostTimer implements [transmit.Poster].
func (w *Worker) PostTimer(ev transmit.TimerEvent) bool {
	select {
	case <-w.stop:
		return false
	default:
	}

	select {
	case w.timers <- ev:
		return true
	default:
		return false
	}
}

func (w *Worker) handleTimer(ev transmit.TimerEvent) {
	ctx := transmit.ContextWithPoster(context.Background(), w)

	tx, ok := w.call.Transaction(ev.TransID)
	if !ok || tx.Iter != ev.Iter {
		w.log.LogAttrs(ctx, slog.LevelDebug, "stale timer event dropped",
			slog.Any("event", ev),
			slog.Any("call", w.call),
		)
		return
	}

	var err error
	switch ev.Kind {
	case transmit.TimerRetransmit:
		if w.retrans == nil || tx.Timers.Retrans == nil {
			return
		}
		err = w.retrans.Retransmit(ctx, w.call, tx)
	case transmit.TimerTimeout:
		if w.timeouts == nil || tx.Timers.Timeout == nil {
			return
		}
		err = w.timeouts.OnTimeout(ctx, w.call, tx)
	default:
		w.log.LogAttrs(ctx, slog.LevelWarn, "unknown timer event", slog.Any("event", ev))
		return
	}
	if err != nil {
		w.log.LogAttrs(ctx, slog.LevelWarn, "failed to handle timer event",
			slog.Any("event", ev),
			slog.Any("transaction", tx),
			slog.Any("error", err),
		)
	}
}

// Stop stops the worker and waits until its goroutine exits.
// Pending operations fail with [ErrWorkerStopped] and every transaction timer is stopped.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.stopped
}

// Done returns a channel that is closed when the worker exits.
func (w *Worker) Done() <-chan struct{} { return w.stopped }
