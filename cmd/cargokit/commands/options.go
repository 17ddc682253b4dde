package commands

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/app"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/ui/style"
)

const (
	defaultWidth = 100
	columnGap    = 2
	ellipsis     = "..."
)

func (c *CLI) newOptionsCmd() *cobra.Command {
	var (
		asJSON bool
		width  int
	)
	cmd := &cobra.Command{
		Use:     "options <subcommand>",
		Short:   "List the options a cargo subcommand accepts",
		Example: "  cargokit options build\n  cargokit options test --json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.app.Options(cmd.Context(), app.OptionsQuery{Dir: c.project, Subcommand: args[0]})
			if err != nil {
				return err
			}
			if asJSON {
				if opts == nil {
					opts = []domain.OptionDescriptor{}
				}
				return writeJSON(cmd.OutOrStdout(), opts)
			}
			renderOptions(cmd.OutOrStdout(), opts, width)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the options as JSON")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "Maximum line width of the table")
	return cmd
}

// renderOptions prints one option per line with descriptions cut to fit width.
func renderOptions(w io.Writer, opts []domain.OptionDescriptor, width int) {
	r := newRenderer(w)
	muted := style.Muted.Renderer(r)

	if len(opts) == 0 {
		_, _ = fmt.Fprintln(w, muted.Render("no options found"))
		return
	}

	flagWidth := len("OPTION")
	for _, o := range opts {
		flagWidth = max(flagWidth, lipgloss.Width(o.Usage()))
	}
	flagWidth += columnGap
	descWidth := max(width-flagWidth, 0)

	header := style.Header.Renderer(r)
	flagCol := r.NewStyle().Width(flagWidth)

	_, _ = fmt.Fprintln(w, header.Width(flagWidth).Render("OPTION")+header.Render("DESCRIPTION"))
	for _, o := range opts {
		_, _ = fmt.Fprintln(w, flagCol.Render(o.Usage())+muted.Render(fitDescription(o, descWidth)))
	}
}

// fitDescription cuts the description to width, marking cut text with an ellipsis.
func fitDescription(o domain.OptionDescriptor, width int) string {
	desc := o.Description(width)
	if utf8.RuneCountInString(o.FullDescription()) > width && width > len(ellipsis) {
		desc += ellipsis
	}
	return desc
}
