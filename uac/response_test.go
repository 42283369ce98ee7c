package uac_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/arentrue/nksip/internal/mocks/uacmock"
	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

func TestEngine_OnResponse_Matched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	recv := uacmock.NewMockResponseReceiver(ctrl)
	env := newTestEnv(t, &uac.EngineOptions{Receiver: recv})

	env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})
	tx := env.send(t, sip.RequestMethodInvite, nil, uac.ForkOrigin{ForkID: "f1"})
	tx.RURI = "sip:bob@10.0.0.2:5060"
	res := newResponse(tx, sip.ResponseStatusRinging, "b1")

	recv.EXPECT().
		RecvResponse(gomock.Any(), env.call, tx, res).
		DoAndReturn(func(_ context.Context, _ *uac.Call, _ *uac.Transaction, res *sip.Response) error {
			if got, want := res.RequestURI, "sip:bob@10.0.0.2:5060"; got != want {
				t.Errorf("res.RequestURI = %q, want %q", got, want)
			}
			if got, want := res.DialogID, sip.DialogID("fork_call-1_b1"); got != want {
				t.Errorf("res.DialogID = %q, want %q", got, want)
			}
			return nil
		})

	if err := env.engine.OnResponse(t.Context(), env.call, res); err != nil {
		t.Fatalf("engine.OnResponse(ctx, call, res) error = %v, want nil", err)
	}
}

func TestEngine_OnResponse_MethodAware(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	recv := uacmock.NewMockResponseReceiver(ctrl)
	env := newTestEnv(t, &uac.EngineOptions{Receiver: recv})

	invite := env.send(t, sip.RequestMethodInvite, nil, uac.NoOrigin{})
	invite.Status = uac.StatusInviteProceeding
	if err := env.engine.CancelTransaction(t.Context(), env.call, invite, nil); err != nil {
		t.Fatalf("engine.CancelTransaction() error = %v, want nil", err)
	}
	cancel := env.call.Transactions[0]
	// CANCEL shares the INVITE branch in real stacks
	cancel.TransID.Branch = invite.TransID.Branch

	res := newResponse(cancel, sip.ResponseStatusOK, "")
	res.Via = invite.Request.Via.Clone()
	recv.EXPECT().RecvResponse(gomock.Any(), env.call, cancel, res).Return(nil)

	if err := env.engine.OnResponse(t.Context(), env.call, res); err != nil {
		t.Fatalf("engine.OnResponse(ctx, call, res) error = %v, want nil", err)
	}
}

func TestEngine_OnResponse_Unmatched(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		res  func(tx *uac.Transaction) *sip.Response
	}{
		{"unknown branch", func(tx *uac.Transaction) *sip.Response {
			res := newResponse(tx, sip.ResponseStatusOK, "")
			res.Via[0] = res.Via[0].WithBranch(sip.GenerateBranch())
			return res
		}},
		{"other method", func(tx *uac.Transaction) *sip.Response {
			res := newResponse(tx, sip.ResponseStatusOK, "")
			res.CSeq.Method = sip.RequestMethodBye
			return res
		}},
		{"stateless", func(tx *uac.Transaction) *sip.Response {
			res := newResponse(tx, sip.ResponseStatusOK, "")
			res.Via[0] = res.Via[0].WithBranch(sip.GenerateStatelessBranch(testGlobalID))
			return res
		}},
		{"missing via", func(tx *uac.Transaction) *sip.Response {
			res := newResponse(tx, sip.ResponseStatusOK, "")
			res.Via = nil
			return res
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			recv := uacmock.NewMockResponseReceiver(ctrl)
			env := newTestEnv(t, &uac.EngineOptions{Receiver: recv})
			tx := env.send(t, sip.RequestMethodInvite, nil, uac.NoOrigin{})
			before := env.call.Clone()

			if err := env.engine.OnResponse(t.Context(), env.call, c.res(tx)); err != nil {
				t.Fatalf("engine.OnResponse(ctx, call, res) error = %v, want nil", err)
			}
			if diff := cmp.Diff(before, env.call, cmpCallOpts); diff != "" {
				t.Fatalf("call mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_OnResponse_Interceptors(t *testing.T) {
	t.Parallel()

	hookErr := errors.New("hook failed")

	t.Run("short circuit", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		recv := uacmock.NewMockResponseReceiver(ctrl)
		var seen []sip.ResponseStatus
		env := newTestEnv(t, &uac.EngineOptions{
			Receiver: recv,
			ResponseInterceptors: []uac.ResponseInterceptor{
				uac.ResponseInterceptorFunc(func(
					_ context.Context,
					_ *uac.Call,
					_ *uac.Transaction,
					res *sip.Response,
					_ uac.ResponseReceiver,
				) error {
					seen = append(seen, res.Status)
					return nil
				}),
			},
		})
		tx := env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})

		if err := env.engine.OnResponse(t.Context(), env.call, newResponse(tx, sip.ResponseStatusOK, "")); err != nil {
			t.Fatalf("engine.OnResponse(ctx, call, res) error = %v, want nil", err)
		}
		if diff := cmp.Diff([]sip.ResponseStatus{sip.ResponseStatusOK}, seen); diff != "" {
			t.Fatalf("intercepted statuses mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rewrite and continue", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		recv := uacmock.NewMockResponseReceiver(ctrl)
		env := newTestEnv(t, &uac.EngineOptions{
			Receiver: recv,
			ResponseInterceptors: []uac.ResponseInterceptor{
				uac.ResponseInterceptorFunc(func(
					ctx context.Context,
					call *uac.Call,
					tx *uac.Transaction,
					res *sip.Response,
					next uac.ResponseReceiver,
				) error {
					res = res.Clone()
					res.Reason = "Rewritten"
					return next.RecvResponse(ctx, call, tx, res)
				}),
			},
		})
		tx := env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})
		recv.EXPECT().
			RecvResponse(gomock.Any(), env.call, tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *uac.Call, _ *uac.Transaction, res *sip.Response) error {
				if got, want := res.Reason, "Rewritten"; got != want {
					t.Errorf("res.Reason = %q, want %q", got, want)
				}
				return hookErr
			})

		err := env.engine.OnResponse(t.Context(), env.call, newResponse(tx, sip.ResponseStatusOK, ""))
		if !errors.Is(err, hookErr) {
			t.Fatalf("engine.OnResponse(ctx, call, res) error = %v, want %v", err, hookErr)
		}
	})
}
