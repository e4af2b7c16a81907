package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/routing"
	"orders/internal/core/domain/model/station"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func testItemSpec(name string) commands.ItemSpec {
	return commands.ItemSpec{
		ProductID: kernel.NewUUID(),
		Name:      name,
		Category:  "mains",
		Tags:      []string{"hot"},
		Quantity:  1,
	}
}

func newTestItem(t *testing.T, name string) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), name, "mains", []string{"hot"}, 1, nil, "", nil,
	)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "20260831-0001", "T12", order.DineIn, order.Normal, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, o.AddItem(item))
	}
	return o
}

// fireTestOrder fires the order with every item routed to one fresh station
// and returns that station id.
func fireTestOrder(t *testing.T, o *order.Order) kernel.UUID {
	t.Helper()
	stationID := kernel.NewUUID()
	routes := make(map[kernel.UUID][]kernel.UUID)
	for _, item := range o.Items() {
		routes[item.ID()] = []kernel.UUID{stationID}
	}
	require.NoError(t, o.Fire(routes, time.Now().UTC()))
	return stationID
}

// dispatchTestTicket fires the order and returns its single ticket.
func dispatchTestTicket(t *testing.T, o *order.Order) *ticket.Ticket {
	t.Helper()
	fireTestOrder(t, o)
	dispatcher := services.NewTicketDispatcher()
	tickets, err := dispatcher.Dispatch(o, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	return tickets[0]
}

func newTestStation(t *testing.T, name string) *station.Station {
	t.Helper()
	s, err := station.NewStation(kernel.NewUUID(), name, []string{"hot"}, 1)
	require.NoError(t, err)
	return s
}

// newCategoryRule builds an active rule routing a category to a station.
func newCategoryRule(t *testing.T, category string, stationID kernel.UUID) *routing.Rule {
	t.Helper()
	matcher, err := routing.NewCategoryMatcher(category)
	require.NoError(t, err)
	rule, err := routing.NewRule(kernel.NewUUID(), 10, matcher, stationID)
	require.NoError(t, err)
	return rule
}
