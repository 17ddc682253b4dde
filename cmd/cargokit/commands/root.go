// Package commands implements the CLI commands for cargokit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/app"
	"go.trai.ch/cargokit/internal/build"
	"go.trai.ch/cargokit/internal/core/domain"
)

// CLI represents the command line interface for cargokit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	project   string
	logFormat string
	verbose   bool
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions)
	Build(ctx context.Context, opts app.BuildOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Options(ctx context.Context, q app.OptionsQuery) ([]domain.OptionDescriptor, error)
	AttachBuilder(dir string) error
	DetachBuilder(dir string) error
	BuilderAttached(dir string) (bool, error)
	Markers(dir string) ([]domain.Marker, error)
	AddMarker(dir string, marker domain.Marker) error
	ClearMarkers(dir string) error
	LastBuild(dir string) (*domain.BuildRecord, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cargokit",
		Short:         "Build coordination and option discovery for Cargo projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.project, "project", "C", ".", "Project directory")
	flags.StringVar(&c.logFormat, "log-format", "auto", "Log format: auto, pretty, or json")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(app.LogOptions{Format: c.logFormat, Verbose: c.verbose})
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newOptionsCmd())
	rootCmd.AddCommand(c.newBuilderCmd())
	rootCmd.AddCommand(c.newMarkersCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
