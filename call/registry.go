package call

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/internal/syncutil"
	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

// Metrics receives worker lifecycle events.
type Metrics interface {
	WorkerStarted()
	WorkerStopped()
}

type noopMetrics struct{}

func (noopMetrics) WorkerStarted() {}
func (noopMetrics) WorkerStopped() {}

// RegistryOptions contains options for a [Registry].
type RegistryOptions struct {
	// SrvID is the identifier of the server the calls belong to.
	SrvID string
	// Engine runs the UAC operations. Required.
	Engine *uac.Engine
	// Retransmitter handles expired retransmission timers.
	// Usually the same [transmit.Transmitter] given to the engine.
	Retransmitter Retransmitter
	// QueueSize is the operation queue capacity of each worker.
	QueueSize int
	// Shards is the number of shards of the worker map.
	Shards syncutil.ShardsNum
	Metrics Metrics
	// Log is the logger that will be used with the registry and its workers.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *RegistryOptions) metrics() Metrics {
	if o == nil || o.Metrics == nil {
		return noopMetrics{}
	}
	return o.Metrics
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Registry keeps one [Worker] per Call-ID.
type Registry struct {
	srvID   string
	engine  *uac.Engine
	wrkOpts *WorkerOptions
	workers *syncutil.ShardMap[*Worker]
	metrics Metrics
	log     *slog.Logger

	closing   atomic.Bool
	closeOnce sync.Once
}

// NewRegistry creates a new registry.
func NewRegistry(opts *RegistryOptions) (*Registry, error) {
	if opts == nil || opts.Engine == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing engine"))
	}
	return &Registry{
		srvID:  opts.SrvID,
		engine: opts.Engine,
		wrkOpts: &WorkerOptions{
			QueueSize:      opts.QueueSize,
			Retransmitter:  opts.Retransmitter,
			TimeoutHandler: opts.Engine,
			Log:            opts.log(),
		},
		workers: syncutil.NewShardMap[*Worker](opts.Shards),
		metrics: opts.metrics(),
		log:     opts.log(),
	}, nil
}

// Worker returns the worker of the call, starting a new one if needed.
func (r *Registry) Worker(callID string) (*Worker, error) {
	if callID == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty Call-ID"))
	}
	if r.closing.Load() {
		return nil, errtrace.Wrap(ErrRegistryClosed)
	}

	w, created := r.workers.GetOrCreate(callID, func() *Worker {
		return NewWorker(uac.NewCall(r.srvID, callID), r.wrkOpts)
	})
	if created {
		r.metrics.WorkerStarted()
		r.log.LogAttrs(context.Background(), slog.LevelDebug, "call worker started",
			slog.String("call_id", callID),
		)
	}
	return w, nil
}

// Lookup returns the worker of the call if it is running.
func (r *Registry) Lookup(callID string) (*Worker, bool) {
	return r.workers.Get(callID)
}

// Remove stops the worker of the call and forgets it.
// It reports whether the worker existed.
func (r *Registry) Remove(callID string) bool {
	w, ok := r.workers.Del(callID)
	if !ok {
		return false
	}
	w.Stop()
	r.metrics.WorkerStopped()
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "call worker stopped",
		slog.String("call_id", callID),
	)
	return true
}

// Len returns the number of running workers.
func (r *Registry) Len() int { return r.workers.Size() }

// Close stops every worker. Workers can not be started after close.
func (r *Registry) Close() error {
	r.closeOnce.Do(func() {
		r.closing.Store(true)
		for callID := range r.workers.Items() {
			r.Remove(callID)
		}
	})
	return nil
}

// SendRequest sends the request on behalf of the caller and waits for the reply.
//
// Asynchronous sends reply as soon as the request is handed to the transport,
// otherwise the reply carries the final response or the timeout error.
// ACK and stateless requests are always sent asynchronously, they never get a final response.
func (r *Registry) SendRequest(ctx context.Context, req *sip.Request, opts *sip.Options) (uac.Reply, error) {
	if req == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid request"))
	}
	w, err := r.Worker(req.CallID)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if !opts.IsAsync() && (req.Method.Equal(sip.RequestMethodAck) || opts.IsStateless()) {
		opts = opts.Clone()
		opts.Async = true
	}

	done := uac.NewCompletion()
	if err := w.Do(ctx, func(ctx context.Context, call *uac.Call) error {
		return errtrace.Wrap(r.engine.SendRequest(ctx, call, req, opts, uac.CallerOrigin{Completion: done}))
	}); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("send %q request: %w", req.Method, err))
	}
	return errtrace.Wrap2(done.Wait(ctx))
}

// Cancel cancels the INVITE transaction with the id and waits for the reply.
// Unknown calls reply with [uac.ErrUnknownRequest].
func (r *Registry) Cancel(ctx context.Context, callID string, id int) (uac.Reply, error) {
	w, ok := r.Lookup(callID)
	if !ok {
		return uac.ErrorReply{Err: uac.ErrUnknownRequest}, nil
	}

	done := uac.NewCompletion()
	if err := w.Do(ctx, func(ctx context.Context, call *uac.Call) error {
		return errtrace.Wrap(r.engine.CancelByID(ctx, call, id, nil, done))
	}); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("cancel transaction %d: %w", id, err))
	}
	return errtrace.Wrap2(done.Wait(ctx))
}

// OnResponse passes the inbound response to the worker of its call.
// Responses for unknown calls are logged and dropped.
func (r *Registry) OnResponse(ctx context.Context, res *sip.Response) error {
	if res == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid response"))
	}
	w, ok := r.Lookup(res.CallID)
	if !ok {
		lvl := slog.LevelInfo
		if r.engine.IsStatelessResponse(res) {
			lvl = slog.LevelDebug
		}
		r.log.LogAttrs(ctx, lvl, "response for unknown call", slog.Any("response", res))
		return nil
	}
	return errtrace.Wrap(w.Do(ctx, func(ctx context.Context, call *uac.Call) error {
		return errtrace.Wrap(r.engine.OnResponse(ctx, call, res))
	}))
}
