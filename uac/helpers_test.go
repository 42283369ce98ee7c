package uac_test

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/arentrue/nksip/log"
	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

const testGlobalID = "test-node"

var cmpCallOpts = cmp.Options{
	cmpopts.IgnoreUnexported(uac.Transaction{}, uac.Completion{}),
	cmpopts.EquateEmpty(),
}

type stubDialogs struct {
	seq uint32
}

func (d *stubDialogs) RequestDialogID(req *sip.Request, isProxy bool, _ *uac.Call) sip.DialogID {
	if isProxy {
		return sip.DialogID("fork_" + req.CallID)
	}
	return sip.DialogID("dlg_" + req.CallID)
}

func (d *stubDialogs) ResponseDialogID(res *sip.Response, isProxy bool, _ *uac.Call) sip.DialogID {
	if isProxy {
		return sip.DialogID("fork_" + res.CallID + "_" + res.ToTag)
	}
	return sip.DialogID("dlg_" + res.CallID)
}

func (d *stubDialogs) NewLocalSeq(req *sip.Request, _ *uac.Call) uint32 {
	d.seq++
	return req.CSeq.SeqNum + d.seq
}

func (d *stubDialogs) InDialogTarget(
	_ context.Context,
	dialogID sip.DialogID,
	_ sip.RequestMethod,
	opts *sip.Options,
	_ *uac.Call,
) (string, *sip.Options, error) {
	return "sip:bob@" + string(dialogID) + ".example.com", opts.Clone(), nil
}

type stubBuilder struct{}

func (stubBuilder) BuildRequest(
	_ context.Context,
	call *uac.Call,
	method sip.RequestMethod,
	ruri string,
	opts *sip.Options,
) (*sip.Request, *sip.Options, error) {
	req := newRequest(method)
	req.CallID = call.CallID
	req.RURI = ruri
	req.Via = nil
	return req, opts.Clone(), nil
}

func (stubBuilder) BuildCancel(_ context.Context, invite *sip.Request, _ *sip.Options) (*sip.Request, error) {
	req := invite.Clone()
	req.ID = sip.NewMessageID()
	req.Method = sip.RequestMethodCancel
	req.CSeq.Method = sip.RequestMethodCancel
	req.Via = invite.Via.Clone()
	return req, nil
}

// recordingTransmitter adds a Via hop like a real transmit step and remembers sent transactions.
type recordingTransmitter struct {
	sent []*uac.Transaction
}

func (tp *recordingTransmitter) Transmit(_ context.Context, _ *uac.Call, tx *uac.Transaction) error {
	branch := sip.GenerateBranch()
	hop := sip.ViaHop{
		Proto:     "SIP/2.0",
		Transport: "UDP",
		Host:      "127.0.0.1",
		Port:      5060,
		Params:    map[string]string{"branch": branch},
	}
	tx.Request.Via = slices.Insert(tx.Request.Via, 0, hop)
	tx.TransID = sip.ClientTransactionKey{Branch: branch, Method: string(tx.Request.CSeq.Method)}
	tp.sent = append(tp.sent, tx)
	return nil
}

func (tp *recordingTransmitter) methods() []sip.RequestMethod {
	methods := make([]sip.RequestMethod, len(tp.sent))
	for i, tx := range tp.sent {
		methods[i] = tx.Method
	}
	return methods
}

type testEnv struct {
	engine  *uac.Engine
	dialogs *stubDialogs
	tp      *recordingTransmitter
	call    *uac.Call
}

func newTestEnv(t *testing.T, opts *uac.EngineOptions) *testEnv {
	t.Helper()

	env := &testEnv{
		dialogs: &stubDialogs{},
		tp:      &recordingTransmitter{},
		call:    uac.NewCall("srv1", "call-1"),
	}
	if opts == nil {
		opts = &uac.EngineOptions{}
	}
	if opts.GlobalID == "" {
		opts.GlobalID = testGlobalID
	}
	if opts.Dialogs == nil {
		opts.Dialogs = env.dialogs
	}
	if opts.Builder == nil {
		opts.Builder = stubBuilder{}
	}
	if opts.Transmitter == nil {
		opts.Transmitter = env.tp
	}
	if opts.Log == nil {
		opts.Log = log.Noop
	}

	e, err := uac.NewEngine(opts)
	if err != nil {
		t.Fatalf("uac.NewEngine(opts) error = %v, want nil", err)
	}
	env.engine = e
	return env
}

// send dispatches a new request and returns its transaction.
func (env *testEnv) send(t *testing.T, method sip.RequestMethod, opts *sip.Options, from uac.Origin) *uac.Transaction {
	t.Helper()

	req := newRequest(method)
	if err := env.engine.SendRequest(t.Context(), env.call, req, opts, from); err != nil {
		t.Fatalf("engine.SendRequest(ctx, call, %s, opts, from) error = %v, want nil", method, err)
	}
	return env.call.Transactions[0]
}

func newRequest(method sip.RequestMethod) *sip.Request {
	return &sip.Request{
		ID:     sip.NewMessageID(),
		SrvID:  "srv1",
		Method: method,
		RURI:   "sip:bob@example.com",
		CallID: "call-1",
		From:   "<sip:alice@example.com>;tag=a1",
		To:     "<sip:bob@example.com>",
		Via: sip.Via{{
			Proto:     "SIP/2.0",
			Transport: "UDP",
			Host:      "10.0.0.1",
			Port:      5060,
			Params:    map[string]string{"branch": sip.MagicCookie + "prev"},
		}},
		CSeq:     sip.CSeq{SeqNum: 1, Method: method},
		Contacts: []string{"<sip:alice@10.0.0.1>"},
	}
}

func newResponse(tx *uac.Transaction, status sip.ResponseStatus, toTag string) *sip.Response {
	return &sip.Response{
		ID:     sip.NewMessageID(),
		SrvID:  tx.Request.SrvID,
		Status: status,
		Reason: status.Reason(),
		CallID: tx.Request.CallID,
		From:   tx.Request.From,
		To:     tx.Request.To,
		ToTag:  toTag,
		Via:    tx.Request.Via.Clone(),
		CSeq:   tx.Request.CSeq,
	}
}

func countMethod(call *uac.Call, method sip.RequestMethod) int {
	var n int
	for _, tx := range call.Transactions {
		if tx.Method == method {
			n++
		}
	}
	return n
}
