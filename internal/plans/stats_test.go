package plans

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/tables"
)

func sizedTable(planID uuid.UUID, capacity int, size tables.TableSize) tables.Table {
	table := tables.Table{
		ID:       uuid.New(),
		PlanID:   planID,
		Name:     "Table",
		Capacity: capacity,
		Size:     size,
	}
	table.Seats = tables.GenerateSeats(&table)
	return table
}

func TestComputeStatsEmptyPlan(t *testing.T) {
	plan := testPlan()
	reg, err := NewRegistry(plan, nil, nil)
	require.NoError(t, err)

	stats := ComputeStats(reg, nil, nil)

	assert.Equal(t, 0, stats.TotalSeats)
	assert.Equal(t, 0, stats.AssignedSeats)
	assert.Equal(t, 0, stats.OccupancyRate, "no seats never divides by zero")
}

func TestComputeStatsTotalsMatchCapacities(t *testing.T) {
	plan := testPlan()
	tbls := []tables.Table{
		sizedTable(plan.ID, 4, tables.SizeSmall),
		sizedTable(plan.ID, 8, tables.SizeMedium),
		sizedTable(plan.ID, 8, tables.SizeMedium),
	}
	reg, err := NewRegistry(plan, tbls, nil)
	require.NoError(t, err)

	stats := ComputeStats(reg, nil, nil)

	sum := 0
	for i := range tbls {
		sum += tbls[i].Capacity
	}
	assert.Equal(t, sum, stats.TotalSeats)
	assert.Equal(t, sum, stats.AvailableSeats)
}

func TestComputeStatsOccupancyRounding(t *testing.T) {
	plan := testPlan()
	table := sizedTable(plan.ID, 3, tables.SizeSmall)
	reg, err := NewRegistry(plan, []tables.Table{table}, nil)
	require.NoError(t, err)

	require.NoError(t, reg.Assign(table.Seats[0].ID, uuid.New()))

	stats := ComputeStats(reg, nil, nil)
	// 1/3 = 33.33 rounds to 33
	assert.Equal(t, 33, stats.OccupancyRate)

	require.NoError(t, reg.Assign(table.Seats[1].ID, uuid.New()))
	stats = ComputeStats(reg, nil, nil)
	// 2/3 = 66.67 rounds to 67
	assert.Equal(t, 67, stats.OccupancyRate)

	require.NoError(t, reg.Assign(table.Seats[2].ID, uuid.New()))
	stats = ComputeStats(reg, nil, nil)
	assert.Equal(t, 100, stats.OccupancyRate)
}

func TestComputeStatsBySize(t *testing.T) {
	plan := testPlan()
	small := sizedTable(plan.ID, 4, tables.SizeSmall)
	medium := sizedTable(plan.ID, 8, tables.SizeMedium)
	reg, err := NewRegistry(plan, []tables.Table{small, medium}, nil)
	require.NoError(t, err)

	require.NoError(t, reg.Assign(small.Seats[0].ID, uuid.New()))

	stats := ComputeStats(reg, nil, nil)

	require.Contains(t, stats.ByTableSize, tables.SizeSmall)
	assert.Equal(t, SizeBreakdown{Tables: 1, Seats: 4, AssignedSeats: 1}, stats.ByTableSize[tables.SizeSmall])
	assert.Equal(t, SizeBreakdown{Tables: 1, Seats: 8, AssignedSeats: 0}, stats.ByTableSize[tables.SizeMedium])
}

func TestComputeStatsByGuestCategory(t *testing.T) {
	plan := testPlan()
	table := sizedTable(plan.ID, 4, tables.SizeSmall)
	reg, err := NewRegistry(plan, []tables.Table{table}, nil)
	require.NoError(t, err)

	seated := guests.Guest{ID: uuid.New(), Category: guests.CategoryFamilyBride}
	alsoSeated := guests.Guest{ID: uuid.New(), Category: guests.CategoryFamilyBride}
	unseated := guests.Guest{ID: uuid.New(), Category: guests.CategoryFriendsGroom}

	require.NoError(t, reg.Assign(table.Seats[0].ID, seated.ID))
	require.NoError(t, reg.Assign(table.Seats[1].ID, alsoSeated.ID))

	stats := ComputeStats(reg, []guests.Guest{seated, alsoSeated, unseated}, nil)

	assert.Equal(t, 2, stats.ByGuestCategory[guests.CategoryFamilyBride])
	assert.Zero(t, stats.ByGuestCategory[guests.CategoryFriendsGroom], "unseated guests are not counted")
}

func TestComputeStatsChairSeats(t *testing.T) {
	plan := testPlan()
	table := sizedTable(plan.ID, 2, tables.SizeSmall)
	row := testChairRow(plan.ID, 2, 3)
	reg, err := NewRegistry(plan, []tables.Table{table}, []tables.ChairRow{row})
	require.NoError(t, err)

	require.NoError(t, reg.Assign(row.Seats[0].ID, uuid.New()))

	stats := ComputeStats(reg, nil, nil)
	assert.Equal(t, 6, stats.ChairSeats)
	assert.Equal(t, 1, stats.AssignedChairSeats)
	assert.Equal(t, 2, stats.TotalSeats, "chair seats stay out of the table totals")
}

func TestComputeStatsConstraintCounts(t *testing.T) {
	plan := testPlan()
	reg, err := NewRegistry(plan, nil, nil)
	require.NoError(t, err)

	evals := []constraints.Evaluation{
		{ConstraintID: uuid.New(), Satisfied: true},
		{ConstraintID: uuid.New(), Satisfied: false},
		{ConstraintID: uuid.New(), Satisfied: false},
	}

	stats := ComputeStats(reg, nil, evals)
	assert.Equal(t, 1, stats.SatisfiedConstraints)
	assert.Equal(t, 2, stats.ViolatedConstraints)
}
