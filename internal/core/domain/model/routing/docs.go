// Package routing implements the routing rule model that decides which kitchen
// stations receive an order item when the order is fired.
//
// A Rule binds one Matcher predicate (by product, by category or by tag) to a
// target station. Rules carry a priority (lower evaluates first) and an
// insertion sequence that breaks priority ties deterministically. Product
// rules conventionally use a lower priority than category rules, so a direct
// product mapping overrides the category mapping.
//
// Rules are pure data; evaluation against an item and the exclusive/fan-out
// decision live in services.RoutingEngine.
package routing
