package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargokit/internal/adapters/metrics"
	"go.trai.ch/cargokit/internal/core/domain"
)

func TestPrometheusRecorder(t *testing.T) {
	pr := metrics.NewPrometheusRecorder(nil)

	pr.IncTrigger(domain.OutcomeScheduled)
	pr.IncTrigger(domain.OutcomeScheduled)
	pr.IncTrigger(domain.OutcomeSuppressed)
	pr.IncCancelRequest()
	pr.SetActive(true)
	pr.ObserveBuild(domain.BuildSucceeded, 1500*time.Millisecond)

	mfs, err := pr.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)

	count, err := testutil.GatherAndCount(pr.Registry(), "cargokit_triggers_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per outcome label")
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	pr := metrics.NewPrometheusRecorder(nil)
	pr.ObserveBuild(domain.BuildFailed, time.Second)

	rec := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cargokit_build_outcomes_total{outcome="failed"} 1`)
}

func TestNopRecorder(t *testing.T) {
	r := metrics.NewNopRecorder()

	assert.NotPanics(t, func() {
		r.IncTrigger(domain.OutcomeScheduled)
		r.IncCancelRequest()
		r.SetActive(true)
		r.ObserveBuild(domain.BuildCancelled, 0)
	})
}
