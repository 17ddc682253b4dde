package ports

import "context"

// WorkspaceRefresher rescans a project tree after a build changed it.
//
// Implementations notify the host's change listeners, which re-enter the
// build trigger path. The build coordinator marks that re-entry as self-caused.
//
//go:generate mockgen -source=refresher.go -destination=mocks/mock_refresher.go -package=mocks
type WorkspaceRefresher interface {
	// RefreshRecursive rescans everything below root.
	RefreshRecursive(ctx context.Context, root string) error
}
