package plans

import (
	"github.com/google/uuid"

	"seatwise/internal/tables"
)

// Registry is the in-memory working copy of one plan's seats. It is
// built from a loaded aggregate, mutated by assignment operations, and
// handed back to the repository for a version-guarded save. It is not
// safe for concurrent use; each request builds its own.
type Registry struct {
	Plan      *SeatingPlan
	Tables    []tables.Table
	ChairRows []tables.ChairRow

	tableByID     map[uuid.UUID]*tables.Table
	seatByID      map[uuid.UUID]*tables.Seat
	chairSeatByID map[uuid.UUID]*tables.ChairSeat
	guestSeat     map[uuid.UUID]uuid.UUID

	dirtySeats      map[uuid.UUID]bool
	dirtyChairSeats map[uuid.UUID]bool
}

// NewRegistry validates the aggregate and builds lookup indexes. A
// document whose seats reference missing tables or rows, or that seats
// the same guest twice, is rejected with ErrCorruptPlanData.
func NewRegistry(plan *SeatingPlan, tbls []tables.Table, rows []tables.ChairRow) (*Registry, error) {
	r := &Registry{
		Plan:            plan,
		Tables:          tbls,
		ChairRows:       rows,
		tableByID:       make(map[uuid.UUID]*tables.Table, len(tbls)),
		seatByID:        make(map[uuid.UUID]*tables.Seat),
		chairSeatByID:   make(map[uuid.UUID]*tables.ChairSeat),
		guestSeat:       make(map[uuid.UUID]uuid.UUID),
		dirtySeats:      make(map[uuid.UUID]bool),
		dirtyChairSeats: make(map[uuid.UUID]bool),
	}

	if err := validateAggregate(plan, tbls, rows); err != nil {
		return nil, err
	}

	for i := range r.Tables {
		t := &r.Tables[i]
		r.tableByID[t.ID] = t
		for j := range t.Seats {
			seat := &t.Seats[j]
			r.seatByID[seat.ID] = seat
			if seat.GuestID != nil {
				r.guestSeat[*seat.GuestID] = seat.ID
			}
		}
	}
	for i := range r.ChairRows {
		row := &r.ChairRows[i]
		for j := range row.Seats {
			seat := &row.Seats[j]
			r.chairSeatByID[seat.ID] = seat
			if seat.GuestID != nil {
				r.guestSeat[*seat.GuestID] = seat.ID
			}
		}
	}
	return r, nil
}

// Assign puts a guest on a seat. Assigning a guest to the seat they
// already hold is a no-op. A seat id may name a table seat or a chair.
func (r *Registry) Assign(seatID, guestID uuid.UUID) error {
	current, seated := r.guestSeat[guestID]
	if seated && current == seatID {
		return nil
	}

	if seat, ok := r.seatByID[seatID]; ok {
		if seat.GuestID != nil {
			return ErrSeatOccupied
		}
		if seated {
			return ErrGuestAlreadySeated
		}
		gid := guestID
		seat.GuestID = &gid
		r.guestSeat[guestID] = seatID
		r.dirtySeats[seatID] = true
		return nil
	}

	if seat, ok := r.chairSeatByID[seatID]; ok {
		if seat.GuestID != nil {
			return ErrSeatOccupied
		}
		if seated {
			return ErrGuestAlreadySeated
		}
		gid := guestID
		seat.GuestID = &gid
		r.guestSeat[guestID] = seatID
		r.dirtyChairSeats[seatID] = true
		return nil
	}
	return ErrSeatNotFound
}

// Unassign clears a seat. Clearing an empty seat is a no-op.
func (r *Registry) Unassign(seatID uuid.UUID) error {
	if seat, ok := r.seatByID[seatID]; ok {
		if seat.GuestID != nil {
			delete(r.guestSeat, *seat.GuestID)
			seat.GuestID = nil
			r.dirtySeats[seatID] = true
		}
		return nil
	}
	if seat, ok := r.chairSeatByID[seatID]; ok {
		if seat.GuestID != nil {
			delete(r.guestSeat, *seat.GuestID)
			seat.GuestID = nil
			r.dirtyChairSeats[seatID] = true
		}
		return nil
	}
	return ErrSeatNotFound
}

// SwapGuestSeats exchanges the occupants of two seats. Either side may
// be empty, which turns the swap into a move.
func (r *Registry) SwapGuestSeats(seatA, seatB uuid.UUID) error {
	if seatA == seatB {
		return nil
	}
	guestA, okA := r.occupant(seatA)
	if !okA {
		return ErrSeatNotFound
	}
	guestB, okB := r.occupant(seatB)
	if !okB {
		return ErrSeatNotFound
	}

	if guestA != nil {
		if err := r.Unassign(seatA); err != nil {
			return err
		}
	}
	if guestB != nil {
		if err := r.Unassign(seatB); err != nil {
			return err
		}
	}
	if guestA != nil {
		if err := r.Assign(seatB, *guestA); err != nil {
			return err
		}
	}
	if guestB != nil {
		if err := r.Assign(seatA, *guestB); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) occupant(seatID uuid.UUID) (*uuid.UUID, bool) {
	if seat, ok := r.seatByID[seatID]; ok {
		return seat.GuestID, true
	}
	if seat, ok := r.chairSeatByID[seatID]; ok {
		return seat.GuestID, true
	}
	return nil, false
}

// GuestSeat returns the seat a guest currently holds
func (r *Registry) GuestSeat(guestID uuid.UUID) (uuid.UUID, bool) {
	id, ok := r.guestSeat[guestID]
	return id, ok
}

// IsSeated reports whether a guest holds any seat in the plan
func (r *Registry) IsSeated(guestID uuid.UUID) bool {
	_, ok := r.guestSeat[guestID]
	return ok
}

// AllSeats returns every table seat in the plan, in table order
func (r *Registry) AllSeats() []tables.Seat {
	var out []tables.Seat
	for i := range r.Tables {
		out = append(out, r.Tables[i].Seats...)
	}
	return out
}

// SeatsForTable returns the seat list of one table
func (r *Registry) SeatsForTable(tableID uuid.UUID) []tables.Seat {
	t, ok := r.tableByID[tableID]
	if !ok {
		return nil
	}
	return t.Seats
}

func (r *Registry) AllChairSeats() []tables.ChairSeat {
	var out []tables.ChairSeat
	for i := range r.ChairRows {
		out = append(out, r.ChairRows[i].Seats...)
	}
	return out
}

// SeatsForRow returns copies of the chair seats belonging to one row,
// in grid order.
func (r *Registry) SeatsForRow(rowID uuid.UUID) []tables.ChairSeat {
	for i := range r.ChairRows {
		if r.ChairRows[i].ID == rowID {
			out := make([]tables.ChairSeat, len(r.ChairRows[i].Seats))
			copy(out, r.ChairRows[i].Seats)
			return out
		}
	}
	return nil
}

// UnassignedGuests filters a candidate guest id list down to the guests
// not seated anywhere in this plan, preserving input order.
func (r *Registry) UnassignedGuests(guestIDs []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(guestIDs))
	for _, id := range guestIDs {
		if _, seated := r.guestSeat[id]; !seated {
			out = append(out, id)
		}
	}
	return out
}

// ChairSeatCounts returns total and occupied chair seats
func (r *Registry) ChairSeatCounts() (total, assigned int) {
	for i := range r.ChairRows {
		for j := range r.ChairRows[i].Seats {
			total++
			if r.ChairRows[i].Seats[j].GuestID != nil {
				assigned++
			}
		}
	}
	return total, assigned
}

// Recount refreshes the plan's denormalized seat totals from the
// current seat state. Totals cover table seats only.
func (r *Registry) Recount() {
	total, assigned := 0, 0
	for i := range r.Tables {
		total += r.Tables[i].Capacity
		for j := range r.Tables[i].Seats {
			if r.Tables[i].Seats[j].GuestID != nil {
				assigned++
			}
		}
	}
	r.Plan.TotalSeats = total
	r.Plan.AssignedSeats = assigned
	r.Plan.AvailableSeats = total - assigned
}

// DirtySeats returns the table seats whose assignment changed since
// the registry was built.
func (r *Registry) DirtySeats() []tables.Seat {
	out := make([]tables.Seat, 0, len(r.dirtySeats))
	for id := range r.dirtySeats {
		out = append(out, *r.seatByID[id])
	}
	return out
}

// DirtyChairSeats returns the chair seats whose assignment changed
// since the registry was built.
func (r *Registry) DirtyChairSeats() []tables.ChairSeat {
	out := make([]tables.ChairSeat, 0, len(r.dirtyChairSeats))
	for id := range r.dirtyChairSeats {
		out = append(out, *r.chairSeatByID[id])
	}
	return out
}
