package uac

import (
	"context"

	"github.com/arentrue/nksip/sip"
)

// RequestSender sends a new request on behalf of the origin.
type RequestSender interface {
	SendRequest(ctx context.Context, call *Call, req *sip.Request, opts *sip.Options, from Origin) error
}

// RequestSenderFunc is a function implementing [RequestSender].
type RequestSenderFunc func(ctx context.Context, call *Call, req *sip.Request, opts *sip.Options, from Origin) error

func (fn RequestSenderFunc) SendRequest(
	ctx context.Context,
	call *Call,
	req *sip.Request,
	opts *sip.Options,
	from Origin,
) error {
	return fn(ctx, call, req, opts, from) //errtrace:skip
}

// RequestInterceptor intercepts outbound requests before a transaction is created for them.
// An interceptor may rewrite the request, the options or the origin,
// and must pass the result to next.
type RequestInterceptor interface {
	InterceptRequest(
		ctx context.Context,
		call *Call,
		req *sip.Request,
		opts *sip.Options,
		from Origin,
		next RequestSender,
	) error
}

type RequestInterceptorFunc func(
	ctx context.Context,
	call *Call,
	req *sip.Request,
	opts *sip.Options,
	from Origin,
	next RequestSender,
) error

func (fn RequestInterceptorFunc) InterceptRequest(
	ctx context.Context,
	call *Call,
	req *sip.Request,
	opts *sip.Options,
	from Origin,
	next RequestSender,
) error {
	return fn(ctx, call, req, opts, from, next) //errtrace:skip
}

// ResponseInterceptor intercepts matched responses before they reach the [ResponseReceiver].
// An interceptor that does not call next takes over the processing of the response.
type ResponseInterceptor interface {
	InterceptResponse(
		ctx context.Context,
		call *Call,
		tx *Transaction,
		res *sip.Response,
		next ResponseReceiver,
	) error
}

type ResponseInterceptorFunc func(
	ctx context.Context,
	call *Call,
	tx *Transaction,
	res *sip.Response,
	next ResponseReceiver,
) error

func (fn ResponseInterceptorFunc) InterceptResponse(
	ctx context.Context,
	call *Call,
	tx *Transaction,
	res *sip.Response,
	next ResponseReceiver,
) error {
	return fn(ctx, call, tx, res, next) //errtrace:skip
}

// ChainRequest builds a request sender pipeline in FIFO order.
func ChainRequest(interceptors []RequestInterceptor, final RequestSender) RequestSender {
	if final == nil {
		return nil
	}

	sender := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		if interceptor == nil {
			continue
		}
		next := sender
		sender = RequestSenderFunc(
			func(ctx context.Context, call *Call, req *sip.Request, opts *sip.Options, from Origin) error {
				return interceptor.InterceptRequest(ctx, call, req, opts, from, next) //errtrace:skip
			},
		)
	}
	return sender
}

// ChainResponse builds a response receiver pipeline in FIFO order.
func ChainResponse(interceptors []ResponseInterceptor, final ResponseReceiver) ResponseReceiver {
	if final == nil {
		return nil
	}

	receiver := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		if interceptor == nil {
			continue
		}
		next := receiver
		receiver = ResponseReceiverFunc(
			func(ctx context.Context, call *Call, tx *Transaction, res *sip.Response) error {
				return interceptor.InterceptResponse(ctx, call, tx, res, next) //errtrace:skip
			},
		)
	}
	return receiver
}
