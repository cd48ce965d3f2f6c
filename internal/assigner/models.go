package assigner

import (
	"github.com/google/uuid"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/tables"
)

// Options tune a single solver run. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// RespectConstraints makes the solver leave a party unassigned
	// rather than seat it in violation of a cannot_sit_together rule.
	RespectConstraints bool

	// StrictParties forbids splitting a must_sit_together party across
	// tables. When false, an oversized party is split as a last resort.
	StrictParties bool

	// Randomize shuffles unconstrained guests before packing. Seed
	// makes a shuffled run reproducible.
	Randomize bool
	Seed      int64
}

func DefaultOptions() Options {
	return Options{
		RespectConstraints: true,
		StrictParties:      true,
	}
}

// Input is a snapshot of the plan state the solver packs against. The
// solver reads it and never mutates it.
type Input struct {
	// Guests are the unseated guests to place, in priority order.
	Guests []guests.Guest

	Tables []tables.Table

	// Seats is the full seat list of the plan, including occupied and
	// reserved seats. Occupied seats both shrink table capacity and
	// feed the cannot_sit_together check.
	Seats []tables.Seat

	Constraints []constraints.SeatingConstraint
}

// Result is a proposed assignment. The caller applies Assignments
// seat by seat through the registry; the solver itself holds no state.
type Result struct {
	Success         bool
	AssignedCount   int
	UnassignedCount int

	// Assignments maps guest id to the seat id chosen for it.
	Assignments map[uuid.UUID]uuid.UUID

	UnassignedGuestIDs    []uuid.UUID
	ViolatedConstraintIDs []uuid.UUID
	Suggestions           []string

	// Errors holds the recoverable conditions hit during the run,
	// matchable with errors.Is (ErrPartySizeExceedsCapacity).
	Errors []error
}
