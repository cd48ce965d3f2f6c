package constraints

import (
	"seatwise/internal/guests"
	"seatwise/internal/tables"

	"github.com/google/uuid"
)

// Evaluation reason codes surfaced to the conflicts panel
const (
	ReasonNotSeated         = "not_seated"
	ReasonSplitAcrossTables = "split_across_tables"
	ReasonSharesTable       = "shares_table"
	ReasonTablesTooFar      = "tables_too_far"
	ReasonNotAtVipTable     = "not_at_vip_table"
	ReasonContradictory     = "contradictory_constraints"
)

// DefaultNearDistanceThreshold is the canvas-space distance under which
// two tables count as "near". A product default, overridable per venue.
const DefaultNearDistanceThreshold = 300.0

// Evaluation is the verdict for one active constraint given the
// current assignment.
type Evaluation struct {
	ConstraintID uuid.UUID      `json:"constraint_id"`
	Type         ConstraintType `json:"type"`
	Satisfied    bool           `json:"satisfied"`
	Reason       string         `json:"reason,omitempty"`
}

// PlusOneWarning flags a plus-one seated away from their host guest.
// A soft expectation, never an assignment error.
type PlusOneWarning struct {
	GuestID     uuid.UUID `json:"guest_id"`
	HostGuestID uuid.UUID `json:"host_guest_id"`
	Reason      string    `json:"reason"`
}

// DetectorOptions tunes constraint evaluation
type DetectorOptions struct {
	NearDistanceThreshold float64
}

func (o DetectorOptions) nearThreshold() float64 {
	if o.NearDistanceThreshold > 0 {
		return o.NearDistanceThreshold
	}
	return DefaultNearDistanceThreshold
}

// Evaluate checks every active constraint against the current
// assignment. Chair-row seating counts as seated but never as sitting
// "together"; rows have no togetherness semantic beyond adjacency.
func Evaluate(tbls []tables.Table, seats []tables.Seat, chairSeats []tables.ChairSeat, cons []SeatingConstraint, opts DetectorOptions) []Evaluation {
	tableByID := make(map[uuid.UUID]*tables.Table, len(tbls))
	for i := range tbls {
		tableByID[tbls[i].ID] = &tbls[i]
	}

	guestTable := make(map[uuid.UUID]uuid.UUID, len(seats))
	for i := range seats {
		if seats[i].GuestID != nil {
			guestTable[*seats[i].GuestID] = seats[i].TableID
		}
	}
	chairSeated := make(map[uuid.UUID]bool, len(chairSeats))
	for i := range chairSeats {
		if chairSeats[i].GuestID != nil {
			chairSeated[*chairSeats[i].GuestID] = true
		}
	}

	contradictory := contradictorySet(cons)

	out := make([]Evaluation, 0, len(cons))
	for i := range cons {
		c := &cons[i]
		if !c.IsActive {
			continue
		}

		ev := Evaluation{ConstraintID: c.ID, Type: c.Type}

		// A contradictory must/cannot pair can never both hold; report
		// both as violated until the organizer deactivates one.
		if contradictory[c.ID] {
			ev.Reason = ReasonContradictory
			out = append(out, ev)
			continue
		}

		if unseated(c.GuestIDs, guestTable, chairSeated) {
			ev.Reason = ReasonNotSeated
			out = append(out, ev)
			continue
		}

		switch c.Type {
		case MustSitTogether:
			ev.Satisfied, ev.Reason = checkTogether(c.GuestIDs, guestTable)
		case CannotSitTogether:
			ev.Satisfied, ev.Reason = checkApart(c.GuestIDs, guestTable)
		case MustSitNear:
			ev.Satisfied, ev.Reason = checkNear(c.GuestIDs, guestTable, tableByID, opts.nearThreshold())
		case VipTable:
			ev.Satisfied, ev.Reason = checkVip(c.GuestIDs, guestTable, tableByID)
		default:
			ev.Satisfied = true
		}

		out = append(out, ev)
	}

	return out
}

// EvaluatePlusOnes reports plus-one guests seated at a different table
// than their host guest. Both must be seated for the pairing to be
// judged; an unseated plus-one is already visible as such.
func EvaluatePlusOnes(seats []tables.Seat, guestList []guests.Guest) []PlusOneWarning {
	guestTable := make(map[uuid.UUID]uuid.UUID, len(seats))
	for i := range seats {
		if seats[i].GuestID != nil {
			guestTable[*seats[i].GuestID] = seats[i].TableID
		}
	}

	var warnings []PlusOneWarning
	for i := range guestList {
		g := &guestList[i]
		if g.PlusOneOf == nil {
			continue
		}
		ownTable, seated := guestTable[g.ID]
		hostTable, hostSeated := guestTable[*g.PlusOneOf]
		if seated && hostSeated && ownTable != hostTable {
			warnings = append(warnings, PlusOneWarning{
				GuestID:     g.ID,
				HostGuestID: *g.PlusOneOf,
				Reason:      "plus_one_separated",
			})
		}
	}
	return warnings
}

// CountVerdicts tallies satisfied and violated evaluations
func CountVerdicts(evals []Evaluation) (satisfied, violated int) {
	for _, ev := range evals {
		if ev.Satisfied {
			satisfied++
		} else {
			violated++
		}
	}
	return satisfied, violated
}

func contradictorySet(cons []SeatingConstraint) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool)
	for i := range cons {
		a := &cons[i]
		if !a.IsActive || a.Type != MustSitTogether {
			continue
		}
		for j := range cons {
			b := &cons[j]
			if !b.IsActive || b.Type != CannotSitTogether {
				continue
			}
			if SamePair(a, b) {
				out[a.ID] = true
				out[b.ID] = true
			}
		}
	}
	return out
}

func unseated(ids GuestIDList, guestTable map[uuid.UUID]uuid.UUID, chairSeated map[uuid.UUID]bool) bool {
	for _, id := range ids {
		if _, ok := guestTable[id]; !ok && !chairSeated[id] {
			return true
		}
	}
	return false
}

// A chair-seated guest has no table, so a together rule over them can
// never hold and a cannot rule over them can never break.
func checkTogether(ids GuestIDList, guestTable map[uuid.UUID]uuid.UUID) (bool, string) {
	first, ok := guestTable[ids[0]]
	if !ok {
		return false, ReasonSplitAcrossTables
	}
	for _, id := range ids[1:] {
		if t, ok := guestTable[id]; !ok || t != first {
			return false, ReasonSplitAcrossTables
		}
	}
	return true, ""
}

func checkApart(ids GuestIDList, guestTable map[uuid.UUID]uuid.UUID) (bool, string) {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		t, ok := guestTable[id]
		if !ok {
			continue
		}
		if seen[t] {
			return false, ReasonSharesTable
		}
		seen[t] = true
	}
	return true, ""
}

func checkNear(ids GuestIDList, guestTable map[uuid.UUID]uuid.UUID, tableByID map[uuid.UUID]*tables.Table, threshold float64) (bool, string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			ta := tableByID[guestTable[ids[i]]]
			tb := tableByID[guestTable[ids[j]]]
			if ta == nil || tb == nil {
				return false, ReasonTablesTooFar
			}
			if tables.CenterDistance(ta, tb) >= threshold {
				return false, ReasonTablesTooFar
			}
		}
	}
	return true, ""
}

func checkVip(ids GuestIDList, guestTable map[uuid.UUID]uuid.UUID, tableByID map[uuid.UUID]*tables.Table) (bool, string) {
	for _, id := range ids {
		t := tableByID[guestTable[id]]
		if t == nil || !t.IsVip {
			return false, ReasonNotAtVipTable
		}
	}
	return true, ""
}
