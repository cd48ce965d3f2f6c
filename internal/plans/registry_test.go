package plans

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatwise/internal/tables"
)

func testPlan() *SeatingPlan {
	return &SeatingPlan{
		ID:        uuid.New(),
		WeddingID: uuid.New(),
		Name:      "Reception",
		IsActive:  true,
		Version:   1,
	}
}

func testTable(planID uuid.UUID, capacity int) tables.Table {
	table := tables.Table{
		ID:       uuid.New(),
		PlanID:   planID,
		Name:     "Table",
		Capacity: capacity,
	}
	table.Seats = tables.GenerateSeats(&table)
	return table
}

func testChairRow(planID uuid.UUID, rows, columns int) tables.ChairRow {
	row := tables.ChairRow{
		ID:      uuid.New(),
		PlanID:  planID,
		Name:    "Row A",
		Rows:    rows,
		Columns: columns,
	}
	row.Seats = tables.GenerateChairSeats(&row)
	return row
}

func TestRegistryAssignAndUnassign(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	reg, err := NewRegistry(plan, []tables.Table{table}, nil)
	require.NoError(t, err)

	guest := uuid.New()
	seat := table.Seats[0].ID

	require.NoError(t, reg.Assign(seat, guest))

	got, ok := reg.GuestSeat(guest)
	require.True(t, ok)
	assert.Equal(t, seat, got)

	require.NoError(t, reg.Unassign(seat))
	assert.False(t, reg.IsSeated(guest))
}

func TestRegistryAssignErrors(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	reg, err := NewRegistry(plan, []tables.Table{table}, nil)
	require.NoError(t, err)

	guestA, guestB := uuid.New(), uuid.New()
	seat1, seat2 := table.Seats[0].ID, table.Seats[1].ID

	require.NoError(t, reg.Assign(seat1, guestA))

	assert.ErrorIs(t, reg.Assign(seat1, guestB), ErrSeatOccupied)
	assert.ErrorIs(t, reg.Assign(seat2, guestA), ErrGuestAlreadySeated)
	assert.ErrorIs(t, reg.Assign(uuid.New(), guestB), ErrSeatNotFound)

	// Re-assigning a guest to their own seat is a no-op
	assert.NoError(t, reg.Assign(seat1, guestA))
}

func TestRegistryAssignChairSeat(t *testing.T) {
	plan := testPlan()
	row := testChairRow(plan.ID, 2, 3)
	reg, err := NewRegistry(plan, nil, []tables.ChairRow{row})
	require.NoError(t, err)

	guest := uuid.New()
	require.NoError(t, reg.Assign(row.Seats[0].ID, guest))
	assert.True(t, reg.IsSeated(guest))

	// A guest seated on a chair cannot also take a table seat
	assert.ErrorIs(t, reg.Assign(row.Seats[1].ID, guest), ErrGuestAlreadySeated)
}

func TestRegistryLookupHelpers(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	row := testChairRow(plan.ID, 2, 3)
	reg, err := NewRegistry(plan, []tables.Table{table}, []tables.ChairRow{row})
	require.NoError(t, err)

	seatedAtTable := uuid.New()
	seatedOnChair := uuid.New()
	unseated := uuid.New()
	require.NoError(t, reg.Assign(table.Seats[0].ID, seatedAtTable))
	require.NoError(t, reg.Assign(row.Seats[0].ID, seatedOnChair))

	rowSeats := reg.SeatsForRow(row.ID)
	require.Len(t, rowSeats, 6)
	require.NotNil(t, rowSeats[0].GuestID)
	assert.Equal(t, seatedOnChair, *rowSeats[0].GuestID)
	assert.Nil(t, reg.SeatsForRow(uuid.New()))

	left := reg.UnassignedGuests([]uuid.UUID{seatedAtTable, unseated, seatedOnChair})
	assert.Equal(t, []uuid.UUID{unseated}, left)
}

func TestRegistrySwapGuestSeats(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	reg, err := NewRegistry(plan, []tables.Table{table}, nil)
	require.NoError(t, err)

	guestA, guestB := uuid.New(), uuid.New()
	seat1, seat2, seat3 := table.Seats[0].ID, table.Seats[1].ID, table.Seats[2].ID

	require.NoError(t, reg.Assign(seat1, guestA))
	require.NoError(t, reg.Assign(seat2, guestB))

	require.NoError(t, reg.SwapGuestSeats(seat1, seat2))

	gotA, _ := reg.GuestSeat(guestA)
	gotB, _ := reg.GuestSeat(guestB)
	assert.Equal(t, seat2, gotA)
	assert.Equal(t, seat1, gotB)

	// Swap with an empty seat moves the occupant
	require.NoError(t, reg.SwapGuestSeats(seat2, seat3))
	gotA, _ = reg.GuestSeat(guestA)
	assert.Equal(t, seat3, gotA)

	assert.ErrorIs(t, reg.SwapGuestSeats(seat1, uuid.New()), ErrSeatNotFound)
}

func TestRegistryRecount(t *testing.T) {
	plan := testPlan()
	t1 := testTable(plan.ID, 4)
	t2 := testTable(plan.ID, 6)
	reg, err := NewRegistry(plan, []tables.Table{t1, t2}, nil)
	require.NoError(t, err)

	require.NoError(t, reg.Assign(t1.Seats[0].ID, uuid.New()))
	require.NoError(t, reg.Assign(t2.Seats[0].ID, uuid.New()))
	require.NoError(t, reg.Assign(t2.Seats[1].ID, uuid.New()))

	reg.Recount()
	assert.Equal(t, 10, plan.TotalSeats)
	assert.Equal(t, 3, plan.AssignedSeats)
	assert.Equal(t, 7, plan.AvailableSeats)
}

func TestRegistryDirtyTracking(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	row := testChairRow(plan.ID, 1, 2)
	reg, err := NewRegistry(plan, []tables.Table{table}, []tables.ChairRow{row})
	require.NoError(t, err)

	assert.Empty(t, reg.DirtySeats())
	assert.Empty(t, reg.DirtyChairSeats())

	guestA, guestB := uuid.New(), uuid.New()
	require.NoError(t, reg.Assign(table.Seats[0].ID, guestA))
	require.NoError(t, reg.Assign(row.Seats[0].ID, guestB))

	dirty := reg.DirtySeats()
	require.Len(t, dirty, 1)
	assert.Equal(t, table.Seats[0].ID, dirty[0].ID)
	require.NotNil(t, dirty[0].GuestID)
	assert.Equal(t, guestA, *dirty[0].GuestID)

	dirtyChairs := reg.DirtyChairSeats()
	require.Len(t, dirtyChairs, 1)
	assert.Equal(t, row.Seats[0].ID, dirtyChairs[0].ID)
}

func TestRegistryRejectsCorruptAggregate(t *testing.T) {
	plan := testPlan()

	t.Run("seat references wrong table", func(t *testing.T) {
		table := testTable(plan.ID, 2)
		table.Seats[0].TableID = uuid.New()
		_, err := NewRegistry(plan, []tables.Table{table}, nil)
		assert.ErrorIs(t, err, ErrCorruptPlanData)
	})

	t.Run("guest seated twice", func(t *testing.T) {
		table := testTable(plan.ID, 2)
		guest := uuid.New()
		table.Seats[0].GuestID = &guest
		table.Seats[1].GuestID = &guest
		_, err := NewRegistry(plan, []tables.Table{table}, nil)
		assert.ErrorIs(t, err, ErrCorruptPlanData)
	})

	t.Run("chair seat references wrong row", func(t *testing.T) {
		row := testChairRow(plan.ID, 1, 2)
		row.Seats[1].RowID = uuid.New()
		_, err := NewRegistry(plan, nil, []tables.ChairRow{row})
		assert.ErrorIs(t, err, ErrCorruptPlanData)
	})

	t.Run("duplicate guest across table and chair", func(t *testing.T) {
		table := testTable(plan.ID, 2)
		row := testChairRow(plan.ID, 1, 2)
		guest := uuid.New()
		table.Seats[0].GuestID = &guest
		row.Seats[0].GuestID = &guest
		_, err := NewRegistry(plan, []tables.Table{table}, []tables.ChairRow{row})
		assert.ErrorIs(t, err, ErrCorruptPlanData)
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	plan := testPlan()
	table := testTable(plan.ID, 4)
	row := testChairRow(plan.ID, 2, 2)
	reg, err := NewRegistry(plan, []tables.Table{table}, []tables.ChairRow{row})
	require.NoError(t, err)

	guestA, guestB := uuid.New(), uuid.New()
	require.NoError(t, reg.Assign(table.Seats[0].ID, guestA))
	require.NoError(t, reg.Assign(row.Seats[3].ID, guestB))
	reg.Recount()

	data, err := reg.Document().Marshal()
	require.NoError(t, err)

	reloaded, err := LoadDocument(data)
	require.NoError(t, err)

	assert.Equal(t, plan.ID, reloaded.Plan.ID)
	assert.Equal(t, plan.TotalSeats, reloaded.Plan.TotalSeats)

	seatA, ok := reloaded.GuestSeat(guestA)
	require.True(t, ok)
	assert.Equal(t, table.Seats[0].ID, seatA)

	seatB, ok := reloaded.GuestSeat(guestB)
	require.True(t, ok)
	assert.Equal(t, row.Seats[3].ID, seatB)
}

func TestLoadDocumentRejectsCorruptPayload(t *testing.T) {
	_, err := LoadDocument([]byte("{not json"))
	assert.ErrorIs(t, err, ErrCorruptPlanData)
}
