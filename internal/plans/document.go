package plans

import (
	"encoding/json"
	"fmt"

	"seatwise/internal/tables"
)

// PlanDocument is the serialized form of a full plan aggregate, used
// for exports and snapshot transfer. Loading runs the same structural
// validation as the database loader, so a corrupt snapshot is rejected
// before anything reads it.
type PlanDocument struct {
	Plan      SeatingPlan       `json:"plan"`
	Tables    []tables.Table    `json:"tables"`
	ChairRows []tables.ChairRow `json:"chair_rows"`
}

// Document snapshots the registry's current state
func (r *Registry) Document() *PlanDocument {
	return &PlanDocument{
		Plan:      *r.Plan,
		Tables:    r.Tables,
		ChairRows: r.ChairRows,
	}
}

// Marshal serializes the document to JSON
func (d *PlanDocument) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// LoadDocument parses and validates a serialized plan, returning a
// working registry over it.
func LoadDocument(data []byte) (*Registry, error) {
	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPlanData, err)
	}
	return NewRegistry(&doc.Plan, doc.Tables, doc.ChairRows)
}
