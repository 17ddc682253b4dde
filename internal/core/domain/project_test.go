package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargokit/internal/core/domain"
)

func TestBuildSpec(t *testing.T) {
	t.Run("add appends once", func(t *testing.T) {
		spec := domain.BuildSpec{"org.eclipse.jdt.core.javabuilder"}

		spec = spec.Add(domain.BuilderID)
		spec = spec.Add(domain.BuilderID)

		assert.Equal(t, domain.BuildSpec{"org.eclipse.jdt.core.javabuilder", domain.BuilderID}, spec)
		assert.True(t, spec.Has(domain.BuilderID))
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		spec := domain.BuildSpec{"a", domain.BuilderID, "b", domain.BuilderID}

		spec = spec.Remove(domain.BuilderID)

		assert.Equal(t, domain.BuildSpec{"a", "b"}, spec)
		assert.False(t, spec.Has(domain.BuilderID))
	})

	t.Run("empty spec", func(t *testing.T) {
		var spec domain.BuildSpec

		assert.False(t, spec.Has(domain.BuilderID))
		assert.Empty(t, spec.Remove(domain.BuilderID))
	})
}

func TestBuildRequest(t *testing.T) {
	req := domain.NewBuildRequest("/work/hello")

	assert.Equal(t, "/work/hello/Cargo.toml", req.Manifest)
	assert.Equal(t,
		[]string{"cargo", "build", "--manifest-path", "/work/hello/Cargo.toml"},
		req.BuildCommand("cargo"),
	)
}

func TestBuildStateString(t *testing.T) {
	assert.Equal(t, "idle", domain.StateIdle.String())
	assert.Equal(t, "running", domain.StateRunning.String())
	assert.Equal(t, "cancelling", domain.StateCancelling.String())
	assert.Equal(t, "refresh-pending", domain.StateRefreshPending.String())
	assert.Equal(t, "suppressed", domain.OutcomeSuppressed.String())
}
