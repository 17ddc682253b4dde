package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargokit/internal/core/ports"
)

const (
	// RecordStoreNodeID is the unique identifier for the build record store Graft node.
	RecordStoreNodeID graft.ID = "adapter.build_record_store"
	// MarkerStoreNodeID is the unique identifier for the marker store Graft node.
	MarkerStoreNodeID graft.ID = "adapter.marker_store"
)

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        RecordStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRecordStore, error) {
			return NewRecordStore(), nil
		},
	})

	graft.Register(graft.Node[ports.MarkerStore]{
		ID:        MarkerStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkerStore, error) {
			return NewMarkerStore(), nil
		},
	})
}
