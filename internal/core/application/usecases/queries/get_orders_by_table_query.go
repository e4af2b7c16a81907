package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByTableQueryIsNotConstructed = errors.New(
	"GetOrdersByTableQuery must be created via NewGetOrdersByTableQuery constructor",
)

// GetOrdersByTableQuery retrieves the orders of one table, newest first.
type GetOrdersByTableQuery struct { //nolint:recvcheck //using for validation
	tableRef string

	guard guard.ConstructorGuard
}

// NewGetOrdersByTableQuery creates a query for a table's orders.
func NewGetOrdersByTableQuery(tableRef string) (GetOrdersByTableQuery, error) {
	query := GetOrdersByTableQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTableRef(tableRef); err != nil {
		return GetOrdersByTableQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByTableQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByTableQueryIsNotConstructed)
}

// TableRef returns the table reference being looked up.
func (q GetOrdersByTableQuery) TableRef() string {
	return q.tableRef
}

func (q *GetOrdersByTableQuery) setTableRef(tableRef string) error {
	if tableRef == "" {
		return errs.NewValueIsRequiredError("tableRef")
	}

	q.tableRef = tableRef
	return nil
}
