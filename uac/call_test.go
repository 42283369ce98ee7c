package uac_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

func TestCall_TransactionByKey(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	invite := env.send(t, sip.RequestMethodInvite, nil, uac.NoOrigin{})
	opts := env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})

	cases := []struct {
		name string
		key  sip.ClientTransactionKey
		want *uac.Transaction
	}{
		{"invite", invite.TransID, invite},
		{"options", opts.TransID, opts},
		{"lower case method", sip.ClientTransactionKey{Branch: opts.TransID.Branch, Method: "options"}, opts},
		{"other method", sip.ClientTransactionKey{Branch: invite.TransID.Branch, Method: "BYE"}, nil},
		{"zero key", sip.ClientTransactionKey{}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := env.call.TransactionByKey(c.key)
			if ok != (c.want != nil) || got != c.want {
				t.Fatalf("call.TransactionByKey(%v) = %v, %v, want %v", c.key, got, ok, c.want)
			}
		})
	}
}

func TestCall_Clone(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	tx := env.send(t, sip.RequestMethodInvite, &sip.Options{Contact: []string{"<sip:a@b>"}}, uac.NoOrigin{})

	clone := env.call.Clone()
	if diff := cmp.Diff(env.call, clone, cmpCallOpts); diff != "" {
		t.Fatalf("call.Clone() mismatch (-want +got):\n%s", diff)
	}

	clone.Transactions[0].Status = uac.StatusInviteAccepted
	clone.Transactions[0].Opts.Contact[0] = "changed"
	clone.Transactions[0].Request.Via[0].Params["branch"] = "changed"
	clone.Msgs[sip.NewMessageID()] = uac.MsgRef{TransID: 9}

	if got, want := tx.Status, uac.StatusInviteCalling; got != want {
		t.Fatalf("tx.Status = %q, want %q", got, want)
	}
	if got, want := tx.Opts.Contact[0], "<sip:a@b>"; got != want {
		t.Fatalf("tx.Opts.Contact[0] = %q, want %q", got, want)
	}
	if branch, _ := tx.Request.Via[0].Branch(); branch == "changed" {
		t.Fatal("clone shares Via params with the original")
	}
	if got, want := len(env.call.Msgs), 1; got != want {
		t.Fatalf("len(call.Msgs) = %d, want %d", got, want)
	}
	if (*uac.Call)(nil).Clone() != nil {
		t.Fatal("nil call clone is not nil")
	}
}

func TestCall_ZeroValue(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.call = &uac.Call{CallID: "call-1"}
	tx := env.send(t, sip.RequestMethodOptions, nil, uac.NoOrigin{})

	if got, want := tx.ID, 1; got != want {
		t.Fatalf("tx.ID = %d, want %d", got, want)
	}
	if got, want := env.call.NextID, 2; got != want {
		t.Fatalf("call.NextID = %d, want %d", got, want)
	}
	if _, ok := env.call.MsgRef(tx.Request.ID); !ok {
		t.Fatal("request is not indexed")
	}
}
