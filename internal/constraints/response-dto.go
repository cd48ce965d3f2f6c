package constraints

import "time"

type ConstraintResponse struct {
	ID        string    `json:"id"`
	PlanID    string    `json:"plan_id"`
	Type      string    `json:"type"`
	GuestIDs  []string  `json:"guest_ids"`
	Priority  string    `json:"priority"`
	IsActive  bool      `json:"is_active"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Ids of stored rules this one contradicts, if any
	ContradictsWith []string `json:"contradicts_with,omitempty"`
}

// ToResponse converts a constraint to its API shape
func (c *SeatingConstraint) ToResponse() ConstraintResponse {
	ids := make([]string, 0, len(c.GuestIDs))
	for _, id := range c.GuestIDs {
		ids = append(ids, id.String())
	}
	return ConstraintResponse{
		ID:        c.ID.String(),
		PlanID:    c.PlanID.String(),
		Type:      string(c.Type),
		GuestIDs:  ids,
		Priority:  string(c.Priority),
		IsActive:  c.IsActive,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}
