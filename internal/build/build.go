// Package build holds build-time information.
package build

// Version, Commit and Date are set by linker flags, e.g.
//
//	-ldflags "-X go.trai.ch/cargokit/internal/build.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
