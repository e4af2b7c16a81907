// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the kitchen routing system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutingEngine: resolves order items to stations against a rule snapshot
//   - TicketDispatcher: turns a fired order into per-station tickets and reprints
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
