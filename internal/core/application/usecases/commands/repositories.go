// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StationRepoFactory provides access to the station repository within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// RuleRepoFactory provides access to the routing rule repository within a transaction.
	RuleRepoFactory interface {
		RuleRepository() ports.RuleRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StationUoW manages transactions for station registry operations.
	// Rule access is included because station deactivation checks, in the same
	// transaction, that no active rule still targets the station.
	StationUoW interface {
		TxManager
		StationRepoFactory
		RuleRepoFactory
	}

	// StationUoWFactory creates new station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}

	// TicketUoW manages transactions spanning an order and its tickets.
	// Used by ticket acknowledgment, reprint and print-status commands.
	TicketUoW interface {
		TxManager
		OrderRepoFactory
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// FireUoW manages transactions for the fire workflow: the order, the rule
	// snapshot read inside the same transaction, and the dispatched tickets.
	FireUoW interface {
		TxManager
		OrderRepoFactory
		RuleRepoFactory
		TicketRepoFactory
	}

	// FireUoWFactory creates new fire unit of work instances.
	FireUoWFactory interface {
		Create() FireUoW
	}
)
