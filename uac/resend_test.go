package uac_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

func TestEngine_Resend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	done := uac.NewCompletion()
	opts := &sip.Options{
		Contact: []string{"<sip:alice@10.0.0.1>"},
		Extra:   map[string]any{"auth": "digest"},
	}
	prior := env.send(t, sip.RequestMethodInvite, opts, uac.CallerOrigin{Completion: done})
	prior.Status = uac.StatusInviteCompleted
	priorSeq := prior.Request.CSeq.SeqNum
	priorVia := len(prior.Request.Via)

	if err := env.engine.Resend(t.Context(), env.call, prior.Request, prior); err != nil {
		t.Fatalf("engine.Resend(ctx, call, req, tx) error = %v, want nil", err)
	}

	if got, want := len(env.call.Transactions), 1; got != want {
		t.Fatalf("len(call.Transactions) = %d, want %d", got, want)
	}
	tx := env.call.Transactions[0]
	if tx == prior {
		t.Fatal("resend reused the prior transaction record")
	}
	if got, want := tx.ID, prior.ID; got != want {
		t.Fatalf("tx.ID = %d, want %d", got, want)
	}
	if got, want := tx.Iter, prior.Iter+1; got != want {
		t.Fatalf("tx.Iter = %d, want %d", got, want)
	}
	if got := tx.Request.CSeq.SeqNum; got <= priorSeq {
		t.Fatalf("tx.Request.CSeq.SeqNum = %d, want > %d", got, priorSeq)
	}
	if got, want := tx.Request.CSeq.Method, sip.RequestMethodInvite; got != want {
		t.Fatalf("tx.Request.CSeq.Method = %q, want %q", got, want)
	}
	if got, want := tx.Request.CallID, prior.Request.CallID; got != want {
		t.Fatalf("tx.Request.CallID = %q, want %q", got, want)
	}
	if tx.Opts.HasContact() {
		t.Fatalf("tx.Opts.Contact = %v, want absent", tx.Opts.Contact)
	}
	if diff := cmp.Diff(opts.Extra, tx.Opts.Extra); diff != "" {
		t.Fatalf("tx.Opts.Extra mismatch (-want +got):\n%s", diff)
	}
	if got, want := tx.Status, uac.StatusInviteCalling; got != want {
		t.Fatalf("tx.Status = %q, want %q", got, want)
	}
	if co, ok := tx.From.(uac.CallerOrigin); !ok || co.Completion != done {
		t.Fatalf("tx.From = %v, want the prior caller origin", tx.From)
	}
	// the prior top Via was replaced by the one of the new transmission
	if got, want := len(tx.Request.Via), priorVia; got != want {
		t.Fatalf("len(tx.Request.Via) = %d, want %d", got, want)
	}
	if tx.TransID.Equal(prior.TransID) {
		t.Fatalf("tx.TransID = %v, want a new key", tx.TransID)
	}

	ref, ok := env.call.MsgRef(tx.Request.ID)
	if !ok {
		t.Fatalf("call.MsgRef(%q) not found", tx.Request.ID)
	}
	if got, want := ref.TransID, prior.ID; got != want {
		t.Fatalf("ref.TransID = %d, want %d", got, want)
	}
	if got, want := len(env.tp.sent), 2; got != want {
		t.Fatalf("len(sent) = %d, want %d", got, want)
	}
}

func TestEngine_Resend_Twice(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	tx := env.send(t, sip.RequestMethodRegister, nil, uac.NoOrigin{})
	other := env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})

	for i := range 2 {
		prior := tx
		if err := env.engine.Resend(t.Context(), env.call, prior.Request, prior); err != nil {
			t.Fatalf("engine.Resend() #%d error = %v, want nil", i, err)
		}
		tx = env.call.Transactions[0]
		if got, want := tx.ID, prior.ID; got != want {
			t.Fatalf("tx.ID = %d, want %d", got, want)
		}
	}

	if got, want := tx.Iter, 3; got != want {
		t.Fatalf("tx.Iter = %d, want %d", got, want)
	}
	if got, want := len(env.call.Transactions), 2; got != want {
		t.Fatalf("len(call.Transactions) = %d, want %d", got, want)
	}
	if got, ok := env.call.Transaction(other.ID); !ok || got != other {
		t.Fatalf("call.Transaction(%d) = %v, %v, want the OPTIONS transaction", other.ID, got, ok)
	}
	if env.call.NextID <= other.ID {
		t.Fatalf("call.NextID = %d, want > %d", env.call.NextID, other.ID)
	}
}

func TestEngine_Resend_AfterChallenge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		method    sip.RequestMethod
		challenge sip.ResponseStatus
		want      uac.Status
	}{
		{"options 401", sip.RequestMethodOptions, sip.ResponseStatusUnauthorized, uac.StatusCompleted},
		{"invite 407", sip.RequestMethodInvite, sip.ResponseStatusProxyAuthenticationRequired, uac.StatusInviteAccepted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, nil)
			done := uac.NewCompletion()
			prior := env.send(t, c.method, nil, uac.CallerOrigin{Completion: done})

			recvResponse(t, env, prior, c.challenge, "b1")
			r, err := done.Wait(t.Context())
			if err != nil {
				t.Fatalf("done.Wait(ctx) error = %v, want nil", err)
			}
			if rr, ok := r.(uac.ResponseReply); !ok || rr.Response.Status != c.challenge {
				t.Fatalf("reply = %v, want %d response", r, c.challenge)
			}

			if err := env.engine.Resend(t.Context(), env.call, prior.Request, prior); err != nil {
				t.Fatalf("engine.Resend(ctx, call, req, tx) error = %v, want nil", err)
			}
			tx := env.call.Transactions[0]
			if _, ok := tx.From.(uac.NoOrigin); !ok {
				t.Fatalf("tx.From = %v, want no origin", tx.From)
			}

			recvResponse(t, env, tx, sip.ResponseStatusOK, "b2")
			if got := tx.Status; got != c.want {
				t.Fatalf("tx.Status = %q, want %q", got, c.want)
			}
			if got, want := tx.Code, sip.ResponseStatusOK; got != want {
				t.Fatalf("tx.Code = %v, want %v", got, want)
			}
		})
	}
}
