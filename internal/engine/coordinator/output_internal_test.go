package coordinator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargokit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBuildOutput_SplitsLinesAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		logger.EXPECT().Info("   Compiling hello v0.1.0"),
		logger.EXPECT().Info("warning: unused import"),
		logger.EXPECT().Info("\x1b[1m\x1b[31merror[E0425]\x1b[0m: cannot find value `y`"),
		logger.EXPECT().Info("partial"),
	)

	out := newBuildOutput(logger)
	_, _ = fmt.Fprint(out, "   Compiling hello v0.1.0\r\nwarn")
	_, _ = fmt.Fprint(out, "ing: unused import\r\n")
	_, _ = fmt.Fprint(out, "\x1b[1m\x1b[31merror[E0425]\x1b[0m: cannot find value `y`\nparti")
	_, _ = fmt.Fprint(out, "al")

	errs, warnings := out.Counts()
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warnings)

	assert.NoError(t, out.Close())
	assert.NoError(t, out.Close())
}
