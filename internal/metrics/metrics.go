// Package metrics holds the prometheus collectors of the orchestrator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BackendRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Ad backend calls by mode, operation and outcome.",
	}, []string{"mode", "operation", "status"})

	BackendRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of ad backend calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode", "operation"})

	CampaignsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campaigns_created_total",
		Help: "Validation campaigns created, always paused.",
	}, []string{"mode"})

	GateDecisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gate_decisions_total",
		Help: "Readiness gate evaluations by tier.",
	}, []string{"tier"})

	RealtimeDroppedUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "realtime_dropped_updates_total",
		Help: "Campaign updates dropped because a subscriber queue was full.",
	})

	RealtimeActiveSubscriptions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "realtime_active_subscriptions",
		Help: "Current room subscriptions across all accounts.",
	})

	RelayPollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_poll_errors_total",
		Help: "Failed metric relay polls.",
	})
)

// MustRegister registers every collector.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		BackendRequestsTotal,
		BackendRequestDuration,
		CampaignsCreatedTotal,
		GateDecisionsTotal,
		RealtimeDroppedUpdates,
		RealtimeActiveSubscriptions,
		RelayPollErrors,
	)
}

// ObserveBackend records one backend call started at start.
func ObserveBackend(mode, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	BackendRequestsTotal.WithLabelValues(mode, operation, status).Inc()
	BackendRequestDuration.WithLabelValues(mode, operation).Observe(time.Since(start).Seconds())
}
