package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const OutcomeOK = "ok"

// Ledger holds the collectors for ledger operations. A nil *Ledger is a no-op
// so use cases can be built without a registry in tests.
type Ledger struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	txRetries  *prometheus.CounterVec
	requests   *prometheus.HistogramVec
}

func NewLedger(namespace string) *Ledger {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger operations by outcome.",
	}, []string{"operation", "outcome"})
	txRetries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "tx_retries_total",
		Help:      "Transactions retried after serialization failure or deadlock.",
	}, []string{"reason"})
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	registry.MustRegister(
		operations,
		txRetries,
		requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Ledger{
		registry:   registry,
		operations: operations,
		txRetries:  txRetries,
		requests:   requests,
	}
}

func (l *Ledger) RecordOperation(operation, outcome string) {
	if l == nil {
		return
	}
	l.operations.WithLabelValues(operation, outcome).Inc()
}

func (l *Ledger) RecordTxRetry(reason string) {
	if l == nil {
		return
	}
	l.txRetries.WithLabelValues(reason).Inc()
}

func (l *Ledger) ObserveRequest(route, method, status string, d time.Duration) {
	if l == nil {
		return
	}
	l.requests.WithLabelValues(route, method, status).Observe(d.Seconds())
}

func (l *Ledger) Handler() http.Handler {
	if l == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(l.registry, promhttp.HandlerOpts{})
}

func (l *Ledger) Registry() *prometheus.Registry {
	if l == nil {
		return nil
	}
	return l.registry
}
