// Package order provides the domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root, the owned Item entity and
// the two coupled state machines.
//
// The package includes:
//   - Order: The aggregate root that manages identity, items and lifecycle
//   - Item: An order line owning its own preparation lifecycle
//   - Status: The order state machine (Open -> Fired -> InProgress -> Ready -> Bumped)
//   - ItemStatus: The per-item state machine (Pending -> Fired -> Preparing -> Ready -> Served)
//   - Type and Priority: closed value objects for order classification
//
// Key business rules:
//   - Items may be added, removed or changed only while the order is Open
//   - Fire freezes the item snapshot and records resolved stations exactly once
//   - The order becomes Ready only when every non-cancelled item is Ready
//   - Cancellation is allowed from Open and Fired only and is idempotent
//   - Bumped and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
