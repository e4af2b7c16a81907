// Package ticket implements the kitchen ticket aggregate.
//
// A Ticket is what a station works from: one fire event of one order, sliced
// to the items routed to that station. The item snapshot is immutable; a
// reprint creates a new Ticket with the same snapshot and the order's next
// fire sequence, and never re-invokes routing. Tickets also track the print
// workflow (pending, printed, failed) and the station acknowledgment.
package ticket
