package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/arentrue/nksip/call"
	"github.com/arentrue/nksip/metrics"
	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/transmit"
	"github.com/arentrue/nksip/uac"
)

var (
	_ uac.Metrics      = (*metrics.Recorder)(nil)
	_ transmit.Metrics = (*metrics.Recorder)(nil)
	_ call.Metrics     = (*metrics.Recorder)(nil)
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := metrics.New(&metrics.Options{Namespace: "test", ConstLabels: prometheus.Labels{"node": "n1"}})

	rec.TransactionCreated(sip.RequestMethodInvite, false)
	rec.TransactionCreated("invite", false)
	rec.TransactionCreated(sip.RequestMethodSubscribe, true)
	rec.RequestResent(sip.RequestMethodInvite)
	rec.RequestRetransmitted(sip.RequestMethodOptions)
	rec.CancelHandled(uac.CancelOutcomeSent)
	rec.CancelHandled(uac.CancelOutcomeDeferred)
	rec.ResponseHandled(uac.ResponseOutcomeMatched)
	rec.ResponseHandled(uac.ResponseOutcomeStateless)
	rec.WorkerStarted()
	rec.WorkerStarted()
	rec.WorkerStopped()

	want := `
# HELP test_transactions_created_total Number of created client transactions
# TYPE test_transactions_created_total counter
test_transactions_created_total{method="INVITE",node="n1",proxy="false"} 2
test_transactions_created_total{method="SUBSCRIBE",node="n1",proxy="true"} 1
# HELP test_cancels_total Number of cancel attempts by outcome
# TYPE test_cancels_total counter
test_cancels_total{node="n1",outcome="deferred"} 1
test_cancels_total{node="n1",outcome="sent"} 1
# HELP test_call_workers Number of running call workers
# TYPE test_call_workers gauge
test_call_workers{node="n1"} 1
`
	err := testutil.GatherAndCompare(rec.Registry(), strings.NewReader(want),
		"test_transactions_created_total",
		"test_cancels_total",
		"test_call_workers",
	)
	if err != nil {
		t.Fatalf("testutil.GatherAndCompare() error = %v, want nil", err)
	}

	n, err := testutil.GatherAndCount(rec.Registry(), "test_responses_total")
	if err != nil {
		t.Fatalf("testutil.GatherAndCount() error = %v, want nil", err)
	}
	if want := 2; n != want {
		t.Fatalf("responses series = %d, want %d", n, want)
	}
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()

	rec := metrics.New(nil)
	rec.RequestResent(sip.RequestMethodRegister)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL) //nolint:noctx
	if err != nil {
		t.Fatalf("http.Get() error = %v, want nil", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v, want nil", err)
	}
	if want := `uac_requests_resent_total{method="REGISTER"} 1`; !strings.Contains(string(body), want) {
		t.Fatalf("metrics body does not contain %q:\n%s", want, body)
	}
}
