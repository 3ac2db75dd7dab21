package commands_test

import (
	"testing"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedeliverEventsCommand(t *testing.T) {
	t.Run("should keep batch size and attempt limit", func(t *testing.T) {
		cmd, err := commands.NewRedeliverEventsCommand(50, 5)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 50, cmd.BatchSize())
		assert.Equal(t, 5, cmd.MaxAttempts())
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		testCases := []struct {
			batchSize   int
			maxAttempts int
		}{
			{0, 5},
			{1001, 5},
			{10, 0},
			{-1, -1},
		}

		for _, tc := range testCases {
			_, err := commands.NewRedeliverEventsCommand(tc.batchSize, tc.maxAttempts)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "batch %d attempts %d", tc.batchSize, tc.maxAttempts)
		}
	})

	t.Run("should reject a zero command", func(t *testing.T) {
		var cmd commands.RedeliverEventsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRedeliverEventsCommandIsNotConstructed)
	})
}
