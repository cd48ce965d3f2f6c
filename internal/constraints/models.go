package constraints

import (
	"time"

	"github.com/google/uuid"
)

// ConstraintType enumerates the relationship rules between guests
type ConstraintType string

const (
	MustSitTogether   ConstraintType = "must_sit_together"
	CannotSitTogether ConstraintType = "cannot_sit_together"
	MustSitNear       ConstraintType = "must_sit_near"
	VipTable          ConstraintType = "vip_table"
)

// Priority orders constraints for reporting; the detector treats all
// active constraints the same, priority is surfaced to the organizer.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityRequired Priority = "required"
)

// SeatingConstraint is a relationship rule between guests on one plan.
type SeatingConstraint struct {
	ID     uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PlanID uuid.UUID      `json:"plan_id" gorm:"type:uuid;not null;index"`
	Type   ConstraintType `json:"type" gorm:"type:varchar(30);not null;check:type IN ('must_sit_together','cannot_sit_together','must_sit_near','vip_table')"`

	// Stored as a uuid array; pairwise types require at least two
	// distinct entries.
	GuestIDs GuestIDList `json:"guest_ids" gorm:"type:jsonb;not null"`

	Priority Priority `json:"priority" gorm:"type:varchar(10);default:'medium';check:priority IN ('low','medium','high','required')"`
	IsActive bool     `json:"is_active" gorm:"default:true"`
	Note     string   `json:"note" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for SeatingConstraint
func (SeatingConstraint) TableName() string {
	return "seating_constraints"
}

// IsPairwise reports whether the type relates pairs of guests
func (t ConstraintType) IsPairwise() bool {
	return t == MustSitTogether || t == CannotSitTogether || t == MustSitNear
}

// References reports whether the constraint mentions the guest
func (c *SeatingConstraint) References(guestID uuid.UUID) bool {
	for _, id := range c.GuestIDs {
		if id == guestID {
			return true
		}
	}
	return false
}

// SamePair reports whether two pairwise constraints bind the exact
// same guest pair, regardless of order.
func SamePair(a, b *SeatingConstraint) bool {
	if len(a.GuestIDs) != 2 || len(b.GuestIDs) != 2 {
		return false
	}
	return (a.GuestIDs[0] == b.GuestIDs[0] && a.GuestIDs[1] == b.GuestIDs[1]) ||
		(a.GuestIDs[0] == b.GuestIDs[1] && a.GuestIDs[1] == b.GuestIDs[0])
}
