package transmit

import (
	"context"
	"log/slog"
)

// TimerKind is the kind of an expired transaction timer.
type TimerKind string

const (
	// TimerRetransmit is timer A or E.
	TimerRetransmit TimerKind = "retransmit"
	// TimerTimeout is timer B or F.
	TimerTimeout TimerKind = "timeout"
)

// TimerEvent is posted when a transaction timer expires.
// Iter identifies the attempt that scheduled the timer, events of superseded attempts are stale.
type TimerEvent struct {
	CallID  string
	Kind    TimerKind
	TransID int
	Iter    int
}

func (ev TimerEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("call_id", ev.CallID),
		slog.Any("kind", ev.Kind),
		slog.Int("trans_id", ev.TransID),
		slog.Int("iter", ev.Iter),
	)
}

// Poster delivers timer events to the worker owning the call.
type Poster interface {
	// PostTimer enqueues the event without blocking.
	// It returns false if the event was dropped.
	PostTimer(ev TimerEvent) bool
}

// PosterFunc is a function implementing [Poster].
type PosterFunc func(ev TimerEvent) bool

func (fn PosterFunc) PostTimer(ev TimerEvent) bool { return fn(ev) }

type posterCtxKey struct{}

// ContextWithPoster returns a context carrying the poster.
func ContextWithPoster(ctx context.Context, p Poster) context.Context {
	return context.WithValue(ctx, posterCtxKey{}, p)
}

// PosterFromContext returns the poster carried by the context.
func PosterFromContext(ctx context.Context) (Poster, bool) {
	p, ok := ctx.Value(posterCtxKey{}).(Poster)
	return p, ok && p != nil
}
