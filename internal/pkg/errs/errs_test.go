package errs_test

import (
	"errors"
	"testing"

	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("broker unreachable")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "required value",
			err:      errs.NewValueIsRequiredError("orderId"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: orderId",
		},
		{
			name:     "required value with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("previousStatus", cause),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: previousStatus (cause: broker unreachable)",
		},
		{
			name:     "invalid value",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: status",
		},
		{
			name:     "invalid value with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", cause),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: status (cause: broker unreachable)",
		},
		{
			name:     "out of range value",
			err:      errs.NewValueIsOutOfRangeError("batchSize", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 0 is batchSize, min value is 1, max value is 1000",
		},
		{
			name:     "out of range value with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("attempts", -1, 1, 10, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -1 is attempts, min value is 1, max value is 10 (cause: broker unreachable)",
		},
		{
			name:     "missing object",
			err:      errs.NewObjectNotFoundError("entryId", "a1"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: a1",
		},
		{
			name:     "missing object with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("entryId", "a1", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: entryId, ID is: a1 (cause: broker unreachable)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	t.Run("should keep the out of range bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("limit", 600, 1, 500)

		assert.Equal(t, "limit", err.ParamName)
		assert.Equal(t, 600, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 500, err.Max)
		assert.NoError(t, err.Cause)
	})

	t.Run("should keep the cause without unwrapping to it", func(t *testing.T) {
		cause := errors.New("ready message carries status pending")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.NotErrorIs(t, err, cause)
	})

	t.Run("should put a multi-line value on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "left at\r\nthe door", 0, 10)

		assert.Contains(t, err.Error(), "left at the door")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestJoinedErrors(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("orderId"),
		errs.NewValueIsInvalidError("status"),
	)

	t.Run("should match every sentinel in the join", func(t *testing.T) {
		require.ErrorIs(t, joined, errs.ErrValueIsRequired)
		require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, joined, errs.ErrObjectNotFound)
	})

	t.Run("should find the typed error", func(t *testing.T) {
		var invalid *errs.ValueIsInvalidError

		require.ErrorAs(t, joined, &invalid)
		assert.Equal(t, "status", invalid.ParamName)
	})

	t.Run("should list each message on its own line", func(t *testing.T) {
		assert.Equal(t, "value is required: orderId\nvalue is invalid: status", joined.Error())
	})
}
