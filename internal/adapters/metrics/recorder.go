// Package metrics records build coordination metrics.
package metrics

import (
	"time"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
)

var (
	_ ports.BuildRecorder = (*NopRecorder)(nil)
	_ ports.BuildRecorder = (*PrometheusRecorder)(nil)
)

// NopRecorder discards all metrics.
type NopRecorder struct{}

// NewNopRecorder returns a recorder that does nothing.
func NewNopRecorder() *NopRecorder { return &NopRecorder{} }

func (NopRecorder) IncTrigger(domain.TriggerOutcome)                {}
func (NopRecorder) IncCancelRequest()                               {}
func (NopRecorder) SetActive(bool)                                  {}
func (NopRecorder) ObserveBuild(domain.BuildOutcome, time.Duration) {}
