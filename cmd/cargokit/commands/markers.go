package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/ui/style"
)

func (c *CLI) newMarkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Manage the problem markers that block automatic builds",
	}
	cmd.AddCommand(c.newMarkersListCmd(), c.newMarkersAddCmd(), c.newMarkersClearCmd())
	return cmd
}

func (c *CLI) newMarkersListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unresolved markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			markers, err := c.app.Markers(c.project)
			if err != nil {
				return err
			}
			if asJSON {
				if markers == nil {
					markers = []domain.Marker{}
				}
				return writeJSON(cmd.OutOrStdout(), markers)
			}
			renderMarkers(cmd.OutOrStdout(), markers)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the markers as JSON")
	return cmd
}

func (c *CLI) newMarkersAddCmd() *cobra.Command {
	var (
		marker   domain.Marker
		severity string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a marker; error markers block automatic builds",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			marker.Severity = domain.Severity(severity)
			return c.app.AddMarker(c.project, marker)
		},
	}
	cmd.Flags().StringVar(&marker.Message, "message", "", "Marker message")
	cmd.Flags().StringVar(&marker.File, "file", "", "File the marker refers to")
	cmd.Flags().IntVar(&marker.Line, "line", 0, "Line the marker refers to")
	cmd.Flags().StringVar(&severity, "severity", string(domain.SeverityError), "Severity: error or warning")
	cmd.Flags().StringVar(&marker.Source, "source", "cli", "Integration that reported the marker")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func (c *CLI) newMarkersClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every marker",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ClearMarkers(c.project)
		},
	}
}

func renderMarkers(w io.Writer, markers []domain.Marker) {
	r := newRenderer(w)
	muted := style.Muted.Renderer(r)
	if len(markers) == 0 {
		_, _ = fmt.Fprintln(w, muted.Render("no markers"))
		return
	}

	for _, m := range markers {
		icon := style.Warn.Renderer(r).Render(style.Warning)
		if m.Severity == domain.SeverityError {
			icon = style.Failed.Renderer(r).Render(style.Cross)
		}
		location := m.File
		if location != "" && m.Line > 0 {
			location += ":" + strconv.Itoa(m.Line)
		}
		line := icon + " " + m.Message
		if location != "" {
			line += " " + muted.Render(location)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}
