package queries_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestQueryConstructorGuards(t *testing.T) {
	t.Run("zero value queries fail validation", func(t *testing.T) {
		require.ErrorIs(t,
			queries.GetOrderQuery{}.Validate(),
			queries.ErrGetOrderQueryIsNotConstructed)
		require.ErrorIs(t,
			queries.GetActiveOrdersQuery{}.Validate(),
			queries.ErrGetActiveOrdersQueryIsNotConstructed)
		require.ErrorIs(t,
			queries.ListStationsQuery{}.Validate(),
			queries.ErrListStationsQueryIsNotConstructed)
		require.ErrorIs(t,
			queries.GetStationSummaryQuery{}.Validate(),
			queries.ErrGetStationSummaryQueryIsNotConstructed)
	})

	t.Run("constructed queries pass validation", func(t *testing.T) {
		orderQuery, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, orderQuery.Validate())

		require.NoError(t, queries.NewGetActiveOrdersQuery().Validate())
		require.NoError(t, queries.NewListStationsQuery(true).Validate())
		require.NoError(t, queries.NewGetStationSummaryQuery().Validate())
	})
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetOrdersByTableQuery(t *testing.T) {
	t.Run("rejects empty table reference", func(t *testing.T) {
		_, err := queries.NewGetOrdersByTableQuery("")
		require.Error(t, err)
	})

	t.Run("keeps the table reference", func(t *testing.T) {
		query, err := queries.NewGetOrdersByTableQuery("T12")
		require.NoError(t, err)
		require.Equal(t, "T12", query.TableRef())
	})
}

func TestNewGetOrderStatsQuery(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accepts a valid range", func(t *testing.T) {
		query, err := queries.NewGetOrderStatsQuery(from, to)
		require.NoError(t, err)
		require.Equal(t, from, query.From())
		require.Equal(t, to, query.To())
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		_, err := queries.NewGetOrderStatsQuery(to, from)
		require.ErrorIs(t, err, queries.ErrStatsRangeIsInvalid)
	})

	t.Run("rejects a zero start", func(t *testing.T) {
		_, err := queries.NewGetOrderStatsQuery(time.Time{}, to)
		require.Error(t, err)
	})
}
