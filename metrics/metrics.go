// Package metrics exposes UAC engine events as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arentrue/nksip/sip"
	"github.com/arentrue/nksip/uac"
)

// Options contains options for a [Recorder].
type Options struct {
	// Namespace prefixes every metric name. Default is "uac".
	Namespace string
	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels
}

func (o *Options) namespace() string {
	if o == nil || o.Namespace == "" {
		return "uac"
	}
	return o.Namespace
}

func (o *Options) constLabels() prometheus.Labels {
	if o == nil {
		return nil
	}
	return o.ConstLabels
}

// Recorder records engine, transmit and worker events.
// It implements [uac.Metrics], [transmit.Metrics] and [call.Metrics].
type Recorder struct {
	registry *prometheus.Registry

	txsCreated    *prometheus.CounterVec
	reqsResent    *prometheus.CounterVec
	reqsRetrans   *prometheus.CounterVec
	cancels       *prometheus.CounterVec
	responses     *prometheus.CounterVec
	workersActive prometheus.Gauge
}

// New creates a recorder with its own registry.
func New(opts *Options) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	ns, labels := opts.namespace(), opts.constLabels()

	return &Recorder{
		registry: reg,
		txsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "transactions_created_total",
			Help:        "Number of created client transactions",
			ConstLabels: labels,
		}, []string{"method", "proxy"}),
		reqsResent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "requests_resent_total",
			Help:        "Number of requests resent with a new CSeq",
			ConstLabels: labels,
		}, []string{"method"}),
		reqsRetrans: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "requests_retransmitted_total",
			Help:        "Number of request retransmissions",
			ConstLabels: labels,
		}, []string{"method"}),
		cancels: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "cancels_total",
			Help:        "Number of cancel attempts by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "responses_total",
			Help:        "Number of inbound responses by correlation outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		workersActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Name:        "call_workers",
			Help:        "Number of running call workers",
			ConstLabels: labels,
		}),
	}
}

// Registry returns the registry the metrics are registered with.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler returns an HTTP handler serving the metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) TransactionCreated(method sip.RequestMethod, proxy bool) {
	r.txsCreated.WithLabelValues(string(method.ToUpper()), strconv.FormatBool(proxy)).Inc()
}

func (r *Recorder) RequestResent(method sip.RequestMethod) {
	r.reqsResent.WithLabelValues(string(method.ToUpper())).Inc()
}

func (r *Recorder) RequestRetransmitted(method sip.RequestMethod) {
	r.reqsRetrans.WithLabelValues(string(method.ToUpper())).Inc()
}

func (r *Recorder) CancelHandled(outcome uac.CancelOutcome) {
	r.cancels.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) ResponseHandled(outcome uac.ResponseOutcome) {
	r.responses.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) WorkerStarted() { r.workersActive.Inc() }

func (r *Recorder) WorkerStopped() { r.workersActive.Dec() }
