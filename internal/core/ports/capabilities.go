package ports

import (
	"context"

	"go.trai.ch/cargokit/internal/core/domain"
)

// Triggerable is the capability a host calls when a project changed or a build was requested.
type Triggerable interface {
	// OnTrigger decides whether to start a build for req. causedBySelfRefresh
	// must be true when the notification stems from the refresh that follows a build.
	OnTrigger(ctx context.Context, req domain.BuildRequest, causedBySelfRefresh bool) (domain.TriggerOutcome, error)
}

// OptionProvider lists the options a tool subcommand accepts.
//
//go:generate mockgen -source=capabilities.go -destination=mocks/mock_capabilities.go -package=mocks
type OptionProvider interface {
	Options(ctx context.Context, executable, subcommand, dir string) ([]domain.OptionDescriptor, error)
}
