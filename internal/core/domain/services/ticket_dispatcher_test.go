package services_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firedOrder(t *testing.T, routes map[kernel.UUID][]kernel.UUID, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "20260831-0001", "T1",
		order.DineIn, order.Normal, "", time.Now(),
	)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, o.AddItem(item))
	}
	require.NoError(t, o.Fire(routes, time.Now()))
	return o
}

func TestTicketDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewTicketDispatcher()

	t.Run("groups_items_by_station", func(t *testing.T) {
		// Given: burger and fries route to the grill, cola to the bar
		grill := kernel.NewUUID()
		bar := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		fries := newItem(t, "Fries", "sides")
		cola := newItem(t, "Cola", "drinks")
		routes := map[kernel.UUID][]kernel.UUID{
			burger.ID(): {grill},
			fries.ID():  {grill},
			cola.ID():   {bar},
		}
		o := firedOrder(t, routes, burger, fries, cola)
		now := time.Now()

		// When
		tickets, err := dispatcher.Dispatch(o, now)

		// Then: exactly two tickets, grill with two items and bar with one
		require.NoError(t, err)
		require.Len(t, tickets, 2)

		byStation := make(map[kernel.UUID]*ticket.Ticket)
		for _, tk := range tickets {
			byStation[tk.StationID()] = tk
		}
		require.Contains(t, byStation, grill)
		require.Contains(t, byStation, bar)
		assert.Len(t, byStation[grill].ItemIDs(), 2)
		assert.Len(t, byStation[bar].ItemIDs(), 1)
		assert.True(t, byStation[bar].ItemIDs()[0].IsEqual(cola.ID()))
	})

	t.Run("all_tickets_share_one_fire_sequence", func(t *testing.T) {
		grill := kernel.NewUUID()
		bar := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		cola := newItem(t, "Cola", "drinks")
		o := firedOrder(t, map[kernel.UUID][]kernel.UUID{
			burger.ID(): {grill},
			cola.ID():   {bar},
		}, burger, cola)

		tickets, err := dispatcher.Dispatch(o, time.Now())

		require.NoError(t, err)
		for _, tk := range tickets {
			assert.Equal(t, 1, tk.FireSeq())
		}
		assert.Equal(t, 1, o.FireSequence())
	})

	t.Run("fan_out_places_item_on_several_tickets", func(t *testing.T) {
		grill := kernel.NewUUID()
		expo := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		o := firedOrder(t, map[kernel.UUID][]kernel.UUID{
			burger.ID(): {grill, expo},
		}, burger)

		tickets, err := dispatcher.Dispatch(o, time.Now())

		require.NoError(t, err)
		require.Len(t, tickets, 2)
		for _, tk := range tickets {
			require.Len(t, tk.ItemIDs(), 1)
			assert.True(t, tk.ItemIDs()[0].IsEqual(burger.ID()))
		}
	})

	t.Run("unfired_order_is_rejected", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "20260831-0002", "",
			order.Takeaway, order.Normal, "", time.Now(),
		)
		require.NoError(t, err)

		_, err = dispatcher.Dispatch(o, time.Now())

		assert.ErrorIs(t, err, services.ErrOrderIsNotFired)
	})

	t.Run("tickets_start_pending_and_unacked", func(t *testing.T) {
		grill := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		o := firedOrder(t, map[kernel.UUID][]kernel.UUID{burger.ID(): {grill}}, burger)

		tickets, err := dispatcher.Dispatch(o, time.Now())

		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, ticket.PrintPending, tickets[0].PrintStatus())
		assert.False(t, tickets[0].IsAcked())
	})
}

func TestTicketDispatcher_Reprint(t *testing.T) {
	dispatcher := services.NewTicketDispatcher()

	reprintFixture := func(t *testing.T) (*order.Order, *ticket.Ticket) {
		t.Helper()
		grill := kernel.NewUUID()
		burger := newItem(t, "Burger", "mains")
		o := firedOrder(t, map[kernel.UUID][]kernel.UUID{burger.ID(): {grill}}, burger)
		tickets, err := dispatcher.Dispatch(o, time.Now())
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		return o, tickets[0]
	}

	t.Run("creates_new_ticket_with_same_snapshot_and_next_seq", func(t *testing.T) {
		// Given
		o, original := reprintFixture(t)
		require.NoError(t, original.MarkPrinted())
		original.Ack(time.Now())

		// When
		reprinted, err := dispatcher.Reprint(o, original, time.Now())

		// Then
		require.NoError(t, err)
		assert.False(t, reprinted.IsEqual(original))
		assert.True(t, reprinted.StationID().IsEqual(original.StationID()))
		assert.Equal(t, original.ItemIDs(), reprinted.ItemIDs())
		assert.Equal(t, original.FireSeq()+1, reprinted.FireSeq())
		assert.Equal(t, ticket.PrintPending, reprinted.PrintStatus())
		assert.False(t, reprinted.IsAcked())
	})

	t.Run("rejects_foreign_ticket", func(t *testing.T) {
		o, _ := reprintFixture(t)
		otherOrder, otherTicket := reprintFixture(t)
		_ = otherOrder

		_, err := dispatcher.Reprint(o, otherTicket, time.Now())

		assert.ErrorIs(t, err, services.ErrTicketOrderMismatch)
	})

	t.Run("rejects_unfired_order", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "20260831-0003", "",
			order.Takeaway, order.Normal, "", time.Now(),
		)
		require.NoError(t, err)
		tk, err := ticket.NewTicket(
			kernel.NewUUID(), o.ID(), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, 1, time.Now(),
		)
		require.NoError(t, err)

		_, err = dispatcher.Reprint(o, tk, time.Now())

		assert.ErrorIs(t, err, services.ErrOrderIsNotFired)
	})

	t.Run("rejects_cancelled_order", func(t *testing.T) {
		o, tk := reprintFixture(t)
		require.NoError(t, o.Cancel("guest left", time.Now()))

		_, err := dispatcher.Reprint(o, tk, time.Now())

		assert.ErrorIs(t, err, services.ErrOrderIsNotFired)
	})
}
