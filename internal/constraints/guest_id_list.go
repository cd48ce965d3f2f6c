package constraints

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// GuestIDList stores a constraint's guest references as a jsonb array.
type GuestIDList []uuid.UUID

// Value implements driver.Valuer for gorm/jsonb storage
func (l GuestIDList) Value() (driver.Value, error) {
	if l == nil {
		l = GuestIDList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guest id list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for gorm/jsonb storage
func (l *GuestIDList) Scan(value interface{}) error {
	if value == nil {
		*l = GuestIDList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported guest id list type %T", value)
	}

	return json.Unmarshal(data, l)
}

// Contains reports whether the list holds the given id
func (l GuestIDList) Contains(id uuid.UUID) bool {
	for _, g := range l {
		if g == id {
			return true
		}
	}
	return false
}

// Distinct returns the list with duplicates removed, order preserved
func (l GuestIDList) Distinct() GuestIDList {
	seen := make(map[uuid.UUID]bool, len(l))
	out := make(GuestIDList, 0, len(l))
	for _, id := range l {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
