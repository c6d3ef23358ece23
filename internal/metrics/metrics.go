// Package metrics exposes Prometheus counters for quote submissions and fleet
// page traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "julmar"

// Recorder owns a private registry so several instances can coexist in tests.
type Recorder struct {
	registry     *prometheus.Registry
	quotes       *prometheus.CounterVec
	rejected     prometheus.Counter
	machineViews *prometheus.CounterVec
	notFound     prometheus.Counter
	requests     *prometheus.CounterVec
}

// New builds a Recorder with process and Go runtime collectors attached.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Quote requests redirected to a contact channel.",
		}, []string{"channel"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_rejected_total",
			Help:      "Quote submissions that failed validation.",
		}),
		machineViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_views_total",
			Help:      "Machine detail page views by slug.",
		}, []string{"slug"}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machine_not_found_total",
			Help:      "Machine detail lookups with an unknown slug.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses by status class.",
		}, []string{"code"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.quotes, r.rejected, r.machineViews, r.notFound, r.requests,
	)
	return r
}

// Quote counts a successful quote redirect for the channel.
func (r *Recorder) Quote(channel string) {
	if r == nil {
		return
	}
	r.quotes.WithLabelValues(channel).Inc()
}

// QuoteRejected counts a submission that failed validation.
func (r *Recorder) QuoteRejected() {
	if r == nil {
		return
	}
	r.rejected.Inc()
}

// MachineView counts a rendered detail page.
func (r *Recorder) MachineView(slug string) {
	if r == nil {
		return
	}
	r.machineViews.WithLabelValues(slug).Inc()
}

// MachineNotFound counts a detail lookup that missed.
func (r *Recorder) MachineNotFound() {
	if r == nil {
		return
	}
	r.notFound.Inc()
}

// Response counts a finished response by status class ("2xx", "4xx", ...).
func (r *Recorder) Response(status int) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(statusClass(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
