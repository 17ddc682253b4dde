package helpopts

import (
	"context"
	"strings"

	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

// helpFlag is appended to the subcommand to request its help text.
const helpFlag = "--help"

// Provider discovers options by running "<executable> <subcommand> --help".
type Provider struct {
	output ports.CommandOutput
}

var _ ports.OptionProvider = (*Provider)(nil)

// NewProvider creates a Provider that captures help text through output.
func NewProvider(output ports.CommandOutput) *Provider {
	return &Provider{output: output}
}

// HelpCommand returns the command line that prints the help text of subcommand.
func HelpCommand(executable, subcommand string) []string {
	return []string{executable, subcommand, helpFlag}
}

// Options runs the help command in dir and parses its output.
func (p *Provider) Options(ctx context.Context, executable, subcommand, dir string) ([]domain.OptionDescriptor, error) {
	subcommand = strings.TrimSpace(subcommand)
	if subcommand == "" {
		return nil, domain.ErrNoSubcommand
	}
	if executable == "" {
		executable = domain.DefaultCargoExecutable
	}

	lines, err := p.output.Lines(ctx, HelpCommand(executable, subcommand), dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessOutputFailed.Error()), "subcommand", subcommand)
	}
	return ParseLines(lines), nil
}
