package constraints

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatwise/internal/guests"
	"seatwise/internal/tables"
)

func detectorTable(name string, capacity int, x, y float64, vip bool) tables.Table {
	table := tables.Table{
		ID:       uuid.New(),
		PlanID:   uuid.New(),
		Name:     name,
		Capacity: capacity,
		Position: tables.Position{X: x, Y: y},
		IsVip:    vip,
	}
	table.Seats = tables.GenerateSeats(&table)
	return table
}

func seatGuest(table *tables.Table, position int, guestID uuid.UUID) {
	id := guestID
	table.Seats[position].GuestID = &id
}

func collectSeats(tbls ...tables.Table) []tables.Seat {
	var out []tables.Seat
	for i := range tbls {
		out = append(out, tbls[i].Seats...)
	}
	return out
}

func findEval(t *testing.T, evals []Evaluation, id uuid.UUID) Evaluation {
	t.Helper()
	for _, ev := range evals {
		if ev.ConstraintID == id {
			return ev
		}
	}
	t.Fatalf("no evaluation for constraint %s", id)
	return Evaluation{}
}

func TestEvaluateMustSitTogether(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	t2 := detectorTable("Table 2", 4, 500, 0, false)
	a, b := uuid.New(), uuid.New()

	con := newConstraint(MustSitTogether, a, b)

	seatGuest(&t1, 0, a)
	seatGuest(&t1, 1, b)
	evals := Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{})
	ev := findEval(t, evals, con.ID)
	assert.True(t, ev.Satisfied)

	t1.Seats[1].GuestID = nil
	seatGuest(&t2, 0, b)
	evals = Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{})
	ev = findEval(t, evals, con.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonSplitAcrossTables, ev.Reason)
}

func TestEvaluateUnseatedGuestIsNotSeated(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	a, b := uuid.New(), uuid.New()
	seatGuest(&t1, 0, a)

	con := newConstraint(MustSitTogether, a, b)
	evals := Evaluate([]tables.Table{t1}, collectSeats(t1), nil, []SeatingConstraint{con}, DetectorOptions{})

	ev := findEval(t, evals, con.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonNotSeated, ev.Reason)
}

func TestEvaluateCannotSitTogether(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	t2 := detectorTable("Table 2", 4, 500, 0, false)
	a, b := uuid.New(), uuid.New()

	con := newConstraint(CannotSitTogether, a, b)

	seatGuest(&t1, 0, a)
	seatGuest(&t2, 0, b)
	evals := Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{})
	assert.True(t, findEval(t, evals, con.ID).Satisfied)

	t2.Seats[0].GuestID = nil
	seatGuest(&t1, 1, b)
	evals = Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{})
	ev := findEval(t, evals, con.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonSharesTable, ev.Reason)
}

func detectorChairRow(rows, columns int) tables.ChairRow {
	row := tables.ChairRow{
		ID:      uuid.New(),
		PlanID:  uuid.New(),
		Name:    "Ceremony Row",
		Rows:    rows,
		Columns: columns,
	}
	row.Seats = tables.GenerateChairSeats(&row)
	return row
}

func TestEvaluateChairSeatedGuestsCountAsSeated(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	row := detectorChairRow(1, 4)
	a, b := uuid.New(), uuid.New()

	aid, bid := a, b
	row.Seats[0].GuestID = &aid
	row.Seats[1].GuestID = &bid

	// Guests in ceremony rows share no table, so a cannot pair holds.
	cannot := newConstraint(CannotSitTogether, a, b)
	evals := Evaluate([]tables.Table{t1}, collectSeats(t1), row.Seats, []SeatingConstraint{cannot}, DetectorOptions{})
	ev := findEval(t, evals, cannot.ID)
	assert.True(t, ev.Satisfied, "guests sharing no table cannot violate cannot_sit_together")

	// One chair-seated guest against a table-seated one: still apart.
	row.Seats[1].GuestID = nil
	seatGuest(&t1, 0, b)
	evals = Evaluate([]tables.Table{t1}, collectSeats(t1), row.Seats, []SeatingConstraint{cannot}, DetectorOptions{})
	assert.True(t, findEval(t, evals, cannot.ID).Satisfied)
}

func TestEvaluateChairSeatsNeverCountAsTogether(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	row := detectorChairRow(1, 4)
	a, b := uuid.New(), uuid.New()

	aid, bid := a, b
	row.Seats[0].GuestID = &aid
	row.Seats[1].GuestID = &bid

	// Adjacent chairs are still not "together"; the rule needs a table.
	must := newConstraint(MustSitTogether, a, b)
	evals := Evaluate([]tables.Table{t1}, collectSeats(t1), row.Seats, []SeatingConstraint{must}, DetectorOptions{})
	ev := findEval(t, evals, must.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonSplitAcrossTables, ev.Reason)

	// A chair-seated guest is not at a VIP table either.
	vip := newConstraint(VipTable, a)
	evals = Evaluate([]tables.Table{t1}, collectSeats(t1), row.Seats, []SeatingConstraint{vip}, DetectorOptions{})
	ev = findEval(t, evals, vip.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonNotAtVipTable, ev.Reason)
}

func TestEvaluateMustSitNearUsesThreshold(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	t2 := detectorTable("Table 2", 4, 400, 0, false)
	a, b := uuid.New(), uuid.New()
	seatGuest(&t1, 0, a)
	seatGuest(&t2, 0, b)

	con := newConstraint(MustSitNear, a, b)

	// 400 apart fails the 300 default
	evals := Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{})
	ev := findEval(t, evals, con.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonTablesTooFar, ev.Reason)

	// A wider venue threshold accepts the same layout
	evals = Evaluate([]tables.Table{t1, t2}, collectSeats(t1, t2), nil, []SeatingConstraint{con}, DetectorOptions{NearDistanceThreshold: 500})
	assert.True(t, findEval(t, evals, con.ID).Satisfied)
}

func TestEvaluateVipTable(t *testing.T) {
	vip := detectorTable("Head", 4, 0, 0, true)
	regular := detectorTable("Table 1", 4, 500, 0, false)
	a := uuid.New()

	con := newConstraint(VipTable, a)

	seatGuest(&vip, 0, a)
	evals := Evaluate([]tables.Table{vip, regular}, collectSeats(vip, regular), nil, []SeatingConstraint{con}, DetectorOptions{})
	assert.True(t, findEval(t, evals, con.ID).Satisfied)

	vip.Seats[0].GuestID = nil
	seatGuest(&regular, 0, a)
	evals = Evaluate([]tables.Table{vip, regular}, collectSeats(vip, regular), nil, []SeatingConstraint{con}, DetectorOptions{})
	ev := findEval(t, evals, con.ID)
	assert.False(t, ev.Satisfied)
	assert.Equal(t, ReasonNotAtVipTable, ev.Reason)
}

func TestEvaluateContradictoryPairBothViolated(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	a, b := uuid.New(), uuid.New()
	seatGuest(&t1, 0, a)
	seatGuest(&t1, 1, b)

	must := newConstraint(MustSitTogether, a, b)
	cannot := newConstraint(CannotSitTogether, a, b)

	evals := Evaluate([]tables.Table{t1}, collectSeats(t1), nil, []SeatingConstraint{must, cannot}, DetectorOptions{})
	require.Len(t, evals, 2)
	for _, ev := range evals {
		assert.False(t, ev.Satisfied)
		assert.Equal(t, ReasonContradictory, ev.Reason)
	}
}

func TestEvaluateSkipsInactiveConstraints(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	a, b := uuid.New(), uuid.New()

	con := newConstraint(MustSitTogether, a, b)
	con.IsActive = false

	evals := Evaluate([]tables.Table{t1}, collectSeats(t1), nil, []SeatingConstraint{con}, DetectorOptions{})
	assert.Empty(t, evals)
}

func TestEvaluatePlusOnesWarnsWhenSeparated(t *testing.T) {
	t1 := detectorTable("Table 1", 4, 0, 0, false)
	t2 := detectorTable("Table 2", 4, 500, 0, false)

	host := guests.Guest{ID: uuid.New()}
	plusOne := guests.Guest{ID: uuid.New(), PlusOneOf: &host.ID}

	seatGuest(&t1, 0, host.ID)
	seatGuest(&t2, 0, plusOne.ID)

	warnings := EvaluatePlusOnes(collectSeats(t1, t2), []guests.Guest{host, plusOne})
	require.Len(t, warnings, 1)
	assert.Equal(t, plusOne.ID, warnings[0].GuestID)
	assert.Equal(t, host.ID, warnings[0].HostGuestID)

	// Same table: no warning
	t2.Seats[0].GuestID = nil
	seatGuest(&t1, 1, plusOne.ID)
	warnings = EvaluatePlusOnes(collectSeats(t1, t2), []guests.Guest{host, plusOne})
	assert.Empty(t, warnings)

	// Unseated plus-one is not a separation warning
	t1.Seats[1].GuestID = nil
	warnings = EvaluatePlusOnes(collectSeats(t1, t2), []guests.Guest{host, plusOne})
	assert.Empty(t, warnings)
}

func TestCountVerdicts(t *testing.T) {
	evals := []Evaluation{
		{Satisfied: true},
		{Satisfied: false},
		{Satisfied: true},
	}
	satisfied, violated := CountVerdicts(evals)
	assert.Equal(t, 2, satisfied)
	assert.Equal(t, 1, violated)
}
