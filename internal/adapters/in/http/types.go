package http

import "time"

// Error is the uniform error payload for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItem describes one order line in a create or add-item request.
type NewItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags,omitempty"`
	Quantity  int      `json:"quantity"`
	Modifiers []string `json:"modifiers,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Seat      *int     `json:"seat,omitempty"`
}

// NewOrder is the request body for opening an order.
type NewOrder struct {
	TableRef  string    `json:"table_ref"`
	OrderType string    `json:"order_type"`
	Priority  string    `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	Items     []NewItem `json:"items"`
}

// OrderCreated is returned after an order is opened.
type OrderCreated struct {
	ID string `json:"id"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// ChangeQuantity is the request body for changing an item's quantity.
type ChangeQuantity struct {
	Quantity int `json:"quantity"`
}

// ChangeItemStatus is the request body for moving an item through the
// cooking statuses. Target accepts "Preparing" or "Ready".
type ChangeItemStatus struct {
	Target string `json:"target"`
}

// NewStation is the request body for registering a station.
type NewStation struct {
	Name      string   `json:"name"`
	Tags      []string `json:"tags,omitempty"`
	SortOrder int      `json:"sort_order"`
}

// StationCreated is returned after a station is registered.
type StationCreated struct {
	ID string `json:"id"`
}

// NewRoutingRule is the request body for adding a routing rule.
type NewRoutingRule struct {
	Priority   int    `json:"priority"`
	MatchKind  string `json:"match_kind"`
	MatchValue string `json:"match_value"`
	StationID  string `json:"station_id"`
}

// RuleCreated is returned after a routing rule is added.
type RuleCreated struct {
	ID string `json:"id"`
}

// PrintOutcome is the request body reporting a printer result.
// Outcome accepts "Printed" or "Failed".
type PrintOutcome struct {
	Outcome string `json:"outcome"`
}

// OrderItem is one order line in a read response.
type OrderItem struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    int        `json:"quantity"`
	Modifiers   []string   `json:"modifiers,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Seat        *int       `json:"seat,omitempty"`
	Status      string     `json:"status"`
	StationIDs  []string   `json:"station_ids,omitempty"`
	FiredAt     *time.Time `json:"fired_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Order is the full order read model.
type Order struct {
	ID           string      `json:"id"`
	Number       string      `json:"number"`
	TableRef     string      `json:"table_ref"`
	OrderType    string      `json:"order_type"`
	Priority     string      `json:"priority"`
	Notes        string      `json:"notes,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	FiredAt      *time.Time  `json:"fired_at,omitempty"`
	ReadyAt      *time.Time  `json:"ready_at,omitempty"`
	BumpedAt     *time.Time  `json:"bumped_at,omitempty"`
	CancelledAt  *time.Time  `json:"cancelled_at,omitempty"`
	CancelReason string      `json:"cancel_reason,omitempty"`
	Items        []OrderItem `json:"items"`
}

// ActiveOrder is one row on the active order board.
type ActiveOrder struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	TableRef   string     `json:"table_ref"`
	OrderType  string     `json:"order_type"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	ItemCount  int        `json:"item_count"`
	ReadyCount int        `json:"ready_count"`
	CreatedAt  time.Time  `json:"created_at"`
	FiredAt    *time.Time `json:"fired_at,omitempty"`
}

// Station is the station read model.
type Station struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags,omitempty"`
	Active    bool     `json:"active"`
	SortOrder int      `json:"sort_order"`
}

// StationSummary is one row of the expo load overview.
type StationSummary struct {
	StationID      string `json:"station_id"`
	Name           string `json:"name"`
	PendingTickets int    `json:"pending_tickets"`
	WorkingTickets int    `json:"working_tickets"`
}

// StationTicket is one entry in a station's work queue.
type StationTicket struct {
	TicketID    string    `json:"ticket_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	TableRef    string    `json:"table_ref"`
	Priority    string    `json:"priority"`
	FireSeq     int       `json:"fire_seq"`
	PrintStatus string    `json:"print_status"`
	Acked       bool      `json:"acked"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketLine is one line of a rendered ticket.
type TicketLine struct {
	Quantity  int      `json:"quantity"`
	Name      string   `json:"name"`
	Modifiers []string `json:"modifiers,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Seat      *int     `json:"seat,omitempty"`
}

// RenderedTicket is a ticket prepared for printing, including the plain-text
// rendition for line printers.
type RenderedTicket struct {
	TicketID    string       `json:"ticket_id"`
	StationName string       `json:"station_name"`
	OrderNumber string       `json:"order_number"`
	TableRef    string       `json:"table_ref"`
	Priority    string       `json:"priority"`
	FireSeq     int          `json:"fire_seq"`
	CreatedAt   time.Time    `json:"created_at"`
	Lines       []TicketLine `json:"lines"`
	Text        string       `json:"text"`
}

// DailyOrderStats is one day's aggregate counters.
type DailyOrderStats struct {
	Day             time.Time `json:"day"`
	TotalOrders     int       `json:"total_orders"`
	BumpedOrders    int       `json:"bumped_orders"`
	CancelledOrders int       `json:"cancelled_orders"`
	AvgPrepMinutes  float64   `json:"avg_prep_minutes"`
}
