package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// List-valued columns are stored as json. These helpers decode them into the
// read model's types; empty and NULL columns decode to nil.

func parseStringList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func parseUUIDList(raw []byte) ([]kernel.UUID, error) {
	values, err := parseStringList(raw)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(values))
	for _, value := range values {
		id, idErr := kernel.UUIDFromString(value)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func timePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func intPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
