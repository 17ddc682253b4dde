package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/cargokit/internal/core/domain"
)

const namespace = "cargokit"

// PrometheusRecorder implements ports.BuildRecorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	triggers      *prom.CounterVec
	cancels       prom.Counter
	active        prom.Gauge
	buildOutcome  *prom.CounterVec
	buildDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		triggers: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_total",
			Help:      "Build triggers by outcome",
		}, []string{"outcome"}),
		cancels: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_cancel_requests_total",
			Help:      "Cancellation requests sent to an active build",
		}),
		active: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "build_active",
			Help:      "Whether a build is currently active (0 or 1)",
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Finished build cycles by outcome",
		}, []string{"outcome"}),
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of build cycles",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.triggers, pr.cancels, pr.active, pr.buildOutcome, pr.buildDuration)
	return pr
}

// IncTrigger counts a trigger by its outcome.
func (p *PrometheusRecorder) IncTrigger(outcome domain.TriggerOutcome) {
	p.triggers.WithLabelValues(outcome.String()).Inc()
}

// IncCancelRequest counts a cancellation request.
func (p *PrometheusRecorder) IncCancelRequest() {
	p.cancels.Inc()
}

// SetActive records whether a build is active.
func (p *PrometheusRecorder) SetActive(active bool) {
	if active {
		p.active.Set(1)
		return
	}
	p.active.Set(0)
}

// ObserveBuild records a finished build cycle.
func (p *PrometheusRecorder) ObserveBuild(outcome domain.BuildOutcome, d time.Duration) {
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
	p.buildDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// Handler returns an http.Handler serving the recorder's registry.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
