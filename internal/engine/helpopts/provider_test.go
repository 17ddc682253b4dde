package helpopts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports/mocks"
	"go.trai.ch/cargokit/internal/engine/helpopts"
	"go.uber.org/mock/gomock"
)

func TestProvider_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	output := mocks.NewMockCommandOutput(ctrl)

	output.EXPECT().
		Lines(gomock.Any(), []string{"/usr/local/bin/cargo", "test", "--help"}, "/work/hello").
		Return([]string{
			"Execute all unit and integration tests",
			"",
			"Options:",
			"      --no-run       Compile, but don't run tests",
			"      --no-fail-fast Run all tests regardless of failure",
			"",
		}, nil)

	p := helpopts.NewProvider(output)
	opts, err := p.Options(context.Background(), "/usr/local/bin/cargo", "test", "/work/hello")
	require.NoError(t, err)

	require.Len(t, opts, 2)
	assert.Equal(t, "--no-run", opts[0].Flag)
	assert.Equal(t, "Compile, but don't run tests", opts[0].FullDescription())
	// A single space does not separate the description column.
	assert.Equal(t, "--no-fail-fast", opts[1].Flag)
	assert.Equal(t, []string{"Run", "all", "tests", "regardless", "of", "failure"}, opts[1].Arguments)
}

func TestProvider_Options_DefaultExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	output := mocks.NewMockCommandOutput(ctrl)

	output.EXPECT().
		Lines(gomock.Any(), []string{"cargo", "doc", "--help"}, "").
		Return(nil, nil)

	opts, err := helpopts.NewProvider(output).Options(context.Background(), "", " doc ", "")
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestProvider_Options_NoSubcommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	output := mocks.NewMockCommandOutput(ctrl)

	_, err := helpopts.NewProvider(output).Options(context.Background(), "cargo", "  ", "")
	require.ErrorIs(t, err, domain.ErrNoSubcommand)
}

func TestProvider_Options_CommandFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	output := mocks.NewMockCommandOutput(ctrl)

	launchErr := errors.New("exec: \"cargo\": executable file not found in $PATH")
	output.EXPECT().Lines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, launchErr)

	_, err := helpopts.NewProvider(output).Options(context.Background(), "cargo", "build", "")
	require.ErrorIs(t, err, launchErr)
	require.ErrorContains(t, err, domain.ErrProcessOutputFailed.Error())
}

func TestHelpCommand(t *testing.T) {
	assert.Equal(t, []string{"cargo", "build", "--help"}, helpopts.HelpCommand("cargo", "build"))
}
