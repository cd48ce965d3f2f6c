package assigner

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/tables"
)

func newTestTable(name string, capacity int, vip bool) tables.Table {
	table := tables.Table{
		ID:       uuid.New(),
		PlanID:   uuid.New(),
		Name:     name,
		Capacity: capacity,
		IsVip:    vip,
	}
	table.Seats = tables.GenerateSeats(&table)
	return table
}

func newTestGuests(n int) []guests.Guest {
	out := make([]guests.Guest, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, guests.Guest{
			ID:        uuid.New(),
			FirstName: fmt.Sprintf("Guest%d", i+1),
			LastName:  "Test",
		})
	}
	return out
}

func allSeats(tbls []tables.Table) []tables.Seat {
	var seats []tables.Seat
	for i := range tbls {
		seats = append(seats, tbls[i].Seats...)
	}
	return seats
}

// seatTable maps an assigned seat id back to its table id
func seatTable(tbls []tables.Table, seatID uuid.UUID) uuid.UUID {
	for i := range tbls {
		for j := range tbls[i].Seats {
			if tbls[i].Seats[j].ID == seatID {
				return tbls[i].ID
			}
		}
	}
	return uuid.Nil
}

func mustTogether(ids ...uuid.UUID) constraints.SeatingConstraint {
	return constraints.SeatingConstraint{
		ID:       uuid.New(),
		Type:     constraints.MustSitTogether,
		GuestIDs: constraints.GuestIDList(ids),
		IsActive: true,
	}
}

func cannotTogether(a, b uuid.UUID) constraints.SeatingConstraint {
	return constraints.SeatingConstraint{
		ID:       uuid.New(),
		Type:     constraints.CannotSitTogether,
		GuestIDs: constraints.GuestIDList{a, b},
		IsActive: true,
	}
}

func TestRunPartyStaysTogetherWithOverflow(t *testing.T) {
	table := newTestTable("Table 1", 8, false)
	guestList := newTestGuests(10)

	result := Run(Input{
		Guests:      guestList,
		Tables:      []tables.Table{table},
		Seats:       allSeats([]tables.Table{table}),
		Constraints: []constraints.SeatingConstraint{mustTogether(guestList[0].ID, guestList[1].ID, guestList[2].ID)},
	}, DefaultOptions())

	assert.False(t, result.Success)
	assert.Equal(t, 8, result.AssignedCount)
	assert.Equal(t, 2, result.UnassignedCount)
	assert.Len(t, result.UnassignedGuestIDs, 2)

	for i := 0; i < 3; i++ {
		_, ok := result.Assignments[guestList[i].ID]
		assert.True(t, ok, "party member %d should be seated", i+1)
	}
}

func TestRunKeepsCannotPairApart(t *testing.T) {
	tbls := []tables.Table{
		newTestTable("Table 1", 4, false),
		newTestTable("Table 2", 4, false),
	}
	guestList := newTestGuests(8)

	result := Run(Input{
		Guests:      guestList,
		Tables:      tbls,
		Seats:       allSeats(tbls),
		Constraints: []constraints.SeatingConstraint{cannotTogether(guestList[0].ID, guestList[4].ID)},
	}, DefaultOptions())

	require.True(t, result.Success)
	assert.Equal(t, 8, result.AssignedCount)
	assert.Empty(t, result.ViolatedConstraintIDs)

	tableA := seatTable(tbls, result.Assignments[guestList[0].ID])
	tableB := seatTable(tbls, result.Assignments[guestList[4].ID])
	require.NotEqual(t, uuid.Nil, tableA)
	require.NotEqual(t, uuid.Nil, tableB)
	assert.NotEqual(t, tableA, tableB, "cannot pair must land at different tables")
}

func TestRunRelaxedConstraintsStillReportsViolations(t *testing.T) {
	tbls := []tables.Table{newTestTable("Table 1", 4, false)}
	guestList := newTestGuests(2)
	cannot := cannotTogether(guestList[0].ID, guestList[1].ID)

	opts := DefaultOptions()
	opts.RespectConstraints = false
	result := Run(Input{
		Guests:      guestList,
		Tables:      tbls,
		Seats:       allSeats(tbls),
		Constraints: []constraints.SeatingConstraint{cannot},
	}, opts)

	// With one table the relaxed run seats the pair together; that
	// lands in the violation list instead of disappearing.
	assert.Equal(t, 2, result.AssignedCount)
	tableA := seatTable(tbls, result.Assignments[guestList[0].ID])
	tableB := seatTable(tbls, result.Assignments[guestList[1].ID])
	assert.Equal(t, tableA, tableB)

	require.Contains(t, result.ViolatedConstraintIDs, cannot.ID,
		"realized cannot_sit_together violation must be reported")
	assert.False(t, result.Success, "a run with a violated constraint is not a success")
}

func TestRunReportsPreexistingCannotViolation(t *testing.T) {
	table := newTestTable("Table 1", 4, false)
	guestList := newTestGuests(1)
	seated := uuid.New()
	table.Seats[0].GuestID = &seated

	cannot := cannotTogether(guestList[0].ID, seated)

	opts := DefaultOptions()
	opts.RespectConstraints = false
	result := Run(Input{
		Guests:      guestList,
		Tables:      []tables.Table{table},
		Seats:       table.Seats,
		Constraints: []constraints.SeatingConstraint{cannot},
	}, opts)

	assert.Equal(t, 1, result.AssignedCount)
	assert.Contains(t, result.ViolatedConstraintIDs, cannot.ID)
	assert.False(t, result.Success)
}

func TestRunTransitiveGrouping(t *testing.T) {
	tbls := []tables.Table{
		newTestTable("Small", 2, false),
		newTestTable("Large", 4, false),
	}
	guestList := newTestGuests(3)

	result := Run(Input{
		Guests: guestList,
		Tables: tbls,
		Seats:  allSeats(tbls),
		Constraints: []constraints.SeatingConstraint{
			mustTogether(guestList[0].ID, guestList[1].ID),
			mustTogether(guestList[1].ID, guestList[2].ID),
		},
	}, DefaultOptions())

	require.True(t, result.Success)

	first := seatTable(tbls, result.Assignments[guestList[0].ID])
	for i := 1; i < 3; i++ {
		assert.Equal(t, first, seatTable(tbls, result.Assignments[guestList[i].ID]),
			"transitively linked guests must share a table")
	}
}

func TestRunContradictoryPartyExcluded(t *testing.T) {
	table := newTestTable("Table 1", 4, false)
	guestList := newTestGuests(3)

	cannot := cannotTogether(guestList[0].ID, guestList[1].ID)
	result := Run(Input{
		Guests: guestList,
		Tables: []tables.Table{table},
		Seats:  allSeats([]tables.Table{table}),
		Constraints: []constraints.SeatingConstraint{
			mustTogether(guestList[0].ID, guestList[1].ID),
			cannot,
		},
	}, DefaultOptions())

	assert.False(t, result.Success)
	assert.Contains(t, result.ViolatedConstraintIDs, cannot.ID)
	assert.NotContains(t, result.Assignments, guestList[0].ID)
	assert.NotContains(t, result.Assignments, guestList[1].ID)
	assert.Contains(t, result.Assignments, guestList[2].ID, "unconstrained guest still seated")
	assert.Equal(t, 2, result.UnassignedCount)
}

func TestRunVipPartyPrefersVipTable(t *testing.T) {
	vipTable := newTestTable("Head", 2, true)
	regular := newTestTable("Table 1", 8, false)
	tbls := []tables.Table{regular, vipTable}

	guestList := newTestGuests(4)
	guestList[3].IsVip = true

	result := Run(Input{
		Guests: guestList,
		Tables: tbls,
		Seats:  allSeats(tbls),
	}, DefaultOptions())

	require.True(t, result.Success)
	assert.Equal(t, vipTable.ID, seatTable(tbls, result.Assignments[guestList[3].ID]),
		"VIP guest should land at the VIP table")
}

func TestRunOversizedPartyStrict(t *testing.T) {
	tbls := []tables.Table{
		newTestTable("Table 1", 4, false),
		newTestTable("Table 2", 4, false),
	}
	guestList := newTestGuests(5)
	ids := make([]uuid.UUID, len(guestList))
	for i := range guestList {
		ids[i] = guestList[i].ID
	}

	input := Input{
		Guests:      guestList,
		Tables:      tbls,
		Seats:       allSeats(tbls),
		Constraints: []constraints.SeatingConstraint{mustTogether(ids...)},
	}

	strict := Run(input, DefaultOptions())
	assert.False(t, strict.Success)
	assert.Equal(t, 0, strict.AssignedCount)
	assert.Equal(t, 5, strict.UnassignedCount)
	assert.NotEmpty(t, strict.Suggestions)
	require.Len(t, strict.Errors, 1)
	assert.ErrorIs(t, strict.Errors[0], ErrPartySizeExceedsCapacity)

	opts := DefaultOptions()
	opts.StrictParties = false
	split := Run(input, opts)
	assert.True(t, split.Success)
	assert.Equal(t, 5, split.AssignedCount)
	assert.Equal(t, 0, split.UnassignedCount)
	assert.Empty(t, split.Errors)
}

func TestRunReservedSeatsSkipped(t *testing.T) {
	table := newTestTable("Table 1", 2, false)
	table.Seats[0].IsReserved = true
	guestList := newTestGuests(2)

	result := Run(Input{
		Guests: guestList,
		Tables: []tables.Table{table},
		Seats:  table.Seats,
	}, DefaultOptions())

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.AssignedCount)
	assert.Equal(t, 1, result.UnassignedCount)
}

func TestRunOccupiedSeatsShrinkCapacity(t *testing.T) {
	table := newTestTable("Table 1", 3, false)
	occupant := uuid.New()
	table.Seats[1].GuestID = &occupant

	guestList := newTestGuests(3)
	result := Run(Input{
		Guests: guestList,
		Tables: []tables.Table{table},
		Seats:  table.Seats,
	}, DefaultOptions())

	assert.Equal(t, 2, result.AssignedCount)
	assert.Equal(t, 1, result.UnassignedCount)
}

func TestRunDeterministicWithSeed(t *testing.T) {
	tbls := []tables.Table{
		newTestTable("Table 1", 3, false),
		newTestTable("Table 2", 3, false),
	}
	guestList := newTestGuests(6)

	opts := DefaultOptions()
	opts.Randomize = true
	opts.Seed = 42

	input := Input{Guests: guestList, Tables: tbls, Seats: allSeats(tbls)}
	first := Run(input, opts)
	second := Run(input, opts)

	require.True(t, first.Success)
	assert.Equal(t, first.Assignments, second.Assignments, "same seed must replay the same layout")
}

func TestRunNeverMutatesInput(t *testing.T) {
	table := newTestTable("Table 1", 4, false)
	seats := allSeats([]tables.Table{table})
	guestList := newTestGuests(2)

	_ = Run(Input{
		Guests: guestList,
		Tables: []tables.Table{table},
		Seats:  seats,
	}, DefaultOptions())

	for i := range seats {
		assert.Nil(t, seats[i].GuestID, "solver must not write through the input seats")
	}
}
