package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/ui/style"
)

type statusReport struct {
	BuilderAttached bool                `json:"builder_attached"`
	LastBuild       *domain.BuildRecord `json:"last_build"`
}

func (c *CLI) newStatusCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the builder is attached and how the last build ended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			attached, err := c.app.BuilderAttached(c.project)
			if err != nil {
				return err
			}
			last, err := c.app.LastBuild(c.project)
			if err != nil {
				return err
			}
			report := statusReport{BuilderAttached: attached, LastBuild: last}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			renderStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the status as JSON")
	return cmd
}

func renderStatus(w io.Writer, report statusReport) {
	r := newRenderer(w)
	muted := style.Muted.Renderer(r)

	builder := muted.Render(style.Circle + " not attached")
	if report.BuilderAttached {
		builder = style.Ok.Renderer(r).Render(style.Check + " attached")
	}
	_, _ = fmt.Fprintln(w, "builder    "+builder)

	last := report.LastBuild
	if last == nil {
		_, _ = fmt.Fprintln(w, "last build "+muted.Render("none recorded"))
		return
	}

	var outcome lipgloss.Style
	icon := style.Dot
	switch last.Outcome {
	case domain.BuildSucceeded:
		outcome, icon = style.Ok, style.Check
	case domain.BuildFailed:
		outcome, icon = style.Failed, style.Cross
	default:
		outcome = style.Warn
	}
	id := last.ID
	if len(id) > 8 {
		id = id[:8]
	}
	_, _ = fmt.Fprintf(w, "last build %s %s\n",
		outcome.Renderer(r).Render(icon+" "+string(last.Outcome)),
		muted.Render(fmt.Sprintf("%s, %s, exit code %d, %d errors, %d warnings",
			id, last.Duration().Round(time.Millisecond), last.ExitCode, last.Errors, last.Warnings)),
	)
}
