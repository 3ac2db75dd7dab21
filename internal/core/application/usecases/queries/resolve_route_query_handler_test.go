package queries_test

import (
	"testing"

	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveRouteQuery(t *testing.T) {
	t.Run("should require a key", func(t *testing.T) {
		_, err := queries.NewResolveRouteQuery("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero query", func(t *testing.T) {
		var q queries.ResolveRouteQuery

		require.ErrorIs(t, q.Validate(), queries.ErrResolveRouteQueryIsNotConstructed)
	})
}

func TestResolveRouteQueryHandler_Handle(t *testing.T) {
	handler := queries.NewResolveRouteQueryHandler()

	t.Run("should resolve the dead-letter key", func(t *testing.T) {
		q, err := queries.NewResolveRouteQuery("dlq")
		require.NoError(t, err)

		r := handler.Handle(testContext(t), q)

		require.True(t, r.IsSuccess(), r.Message())
		assert.Equal(t, routing.DeadLetter(), r.ValueOrDefault(routing.Destination{}))
	})

	t.Run("should report unknown keys", func(t *testing.T) {
		q, err := queries.NewResolveRouteQuery("shipped")
		require.NoError(t, err)

		r := handler.Handle(testContext(t), q)

		require.True(t, r.IsFailure())
		assert.Equal(t, result.CodeUnmappedRoutingDestination, r.Code())
	})

	t.Run("should fail validation for a zero query", func(t *testing.T) {
		r := handler.Handle(testContext(t), queries.ResolveRouteQuery{})

		assert.Equal(t, result.CodeValidationError, r.Code())
	})
}
