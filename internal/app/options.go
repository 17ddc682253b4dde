package app

import (
	"context"

	"go.trai.ch/cargokit/internal/core/domain"
)

// OptionsQuery selects the subcommand whose options are listed.
type OptionsQuery struct {
	Dir        string
	Subcommand string
}

// Options lists the options of a cargo subcommand, using the configured executable.
func (a *App) Options(ctx context.Context, q OptionsQuery) ([]domain.OptionDescriptor, error) {
	root, err := resolveRoot(q.Dir)
	if err != nil {
		return nil, err
	}
	prefs, err := a.configLoader.LoadPreferences(root)
	if err != nil {
		return nil, err
	}
	return a.options.Options(ctx, prefs.CargoExecutable, q.Subcommand, root)
}
