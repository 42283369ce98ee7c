package uac

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/sip"
)

// Origin tells who asked to send a request.
// It is one of [NoOrigin], [CallerOrigin] or [ForkOrigin].
type Origin interface {
	slog.LogValuer
	isOrigin()
}

// NoOrigin is the origin of requests generated by the engine itself.
type NoOrigin struct{}

// CallerOrigin is the origin of requests sent on behalf of a synchronous API caller.
type CallerOrigin struct {
	Completion *Completion
}

// ForkOrigin is the origin of requests sent by a proxy fork.
type ForkOrigin struct {
	ForkID string
}

func (NoOrigin) isOrigin() {}
func (CallerOrigin) isOrigin() {}
func (ForkOrigin) isOrigin() {}

func (NoOrigin) LogValue() slog.Value { return slog.StringValue("none") }

func (CallerOrigin) LogValue() slog.Value { return slog.StringValue("caller") }

func (o ForkOrigin) LogValue() slog.Value {
	return slog.GroupValue(slog.String("fork", o.ForkID))
}

// IsProxy reports whether the origin is a proxy fork.
func IsProxy(from Origin) bool {
	switch from.(type) {
	case nil, NoOrigin, CallerOrigin:
		return false
	case ForkOrigin:
		return true
	default:
		panic(fmt.Errorf("unexpected origin %T", from))
	}
}

func completionOf(from Origin) (*Completion, bool) {
	switch o := from.(type) {
	case nil, NoOrigin, ForkOrigin:
		return nil, false
	case CallerOrigin:
		return o.Completion, o.Completion != nil
	default:
		panic(fmt.Errorf("unexpected origin %T", from))
	}
}

// Reply is the value a [Completion] is fulfilled with.
// It is one of [AckReply], [HandleReply], [OKReply], [ErrorReply] or [ResponseReply].
type Reply interface {
	isReply()
}

// AckReply acknowledges an asynchronously sent ACK.
type AckReply struct{}

// HandleReply carries the handle of an asynchronously sent request.
type HandleReply struct {
	Handle sip.RequestHandle
}

// OKReply acknowledges an accepted operation.
type OKReply struct{}

// ErrorReply reports a failed operation.
type ErrorReply struct {
	Err error
}

// ResponseReply carries the final response of a request.
type ResponseReply struct {
	Response *sip.Response
}

func (AckReply) isReply() {}
func (HandleReply) isReply() {}
func (OKReply) isReply() {}
func (ErrorReply) isReply() {}
func (ResponseReply) isReply() {}

// Completion is a single-use token used to answer a synchronous API caller.
type Completion struct {
	ch   chan Reply
	used atomic.Bool
}

// NewCompletion creates a new completion token.
func NewCompletion() *Completion {
	return &Completion{ch: make(chan Reply, 1)}
}

// Fulfill delivers the reply to the caller.
// A completion is fulfilled at most once, the second call panics.
func (c *Completion) Fulfill(r Reply) {
	if !c.used.CompareAndSwap(false, true) {
		panic("uac: completion already fulfilled")
	}
	c.ch <- r
	close(c.ch)
}

// Fulfilled reports whether the completion was already fulfilled.
func (c *Completion) Fulfilled() bool { return c.used.Load() }

// Done returns a channel that receives the reply.
func (c *Completion) Done() <-chan Reply { return c.ch }

// Wait blocks until the completion is fulfilled or the context is done.
func (c *Completion) Wait(ctx context.Context) (Reply, error) {
	select {
	case r, ok := <-c.ch:
		if !ok {
			return nil, errtrace.Wrap(ErrInvalidArgument)
		}
		return r, nil
	case <-ctx.Done():
		return nil, errtrace.Wrap(ctx.Err())
	}
}
