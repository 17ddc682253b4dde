package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project once and wait for the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), app.BuildOptions{Dir: c.project})
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the project whenever its sources change",
		Long: "Rebuild the project whenever its sources change.\n\n" +
			"A new change cancels the running build. Changes made by the build itself\n" +
			"do not start another one. The cargokit builder must be attached first\n" +
			"(see \"cargokit builder add\").",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{Dir: c.project, Addr: addr})
		},
	}
	cmd.Flags().StringVar(&addr, "metrics-addr", "",
		"Serve /build, /status, /healthz and /metrics on this address (e.g. 127.0.0.1:9464)")
	return cmd
}
