package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/ui/style"
)

func (c *CLI) newBuilderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builder",
		Short: "Attach or detach the cargokit builder",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Attach the builder so watch rebuilds the project",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return c.app.AttachBuilder(c.project)
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Detach the builder",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return c.app.DetachBuilder(c.project)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether the builder is attached",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				attached, err := c.app.BuilderAttached(c.project)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				r := newRenderer(w)
				if attached {
					_, _ = fmt.Fprintln(w, style.Ok.Renderer(r).Render(style.Check+" attached"))
				} else {
					_, _ = fmt.Fprintln(w, style.Muted.Renderer(r).Render(style.Circle+" not attached"))
				}
				return nil
			},
		},
	)
	return cmd
}
