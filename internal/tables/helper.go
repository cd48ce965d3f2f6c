package tables

import (
	"github.com/google/uuid"
)

// GenerateSeats builds the seat set 1..capacity for a table. Called on
// table creation and whenever capacity changes; previous seats (and
// their assignments) are replaced, releasing guests back to the
// unassigned pool.
func GenerateSeats(table *Table) []Seat {
	seats := make([]Seat, 0, table.Capacity)
	for i := 1; i <= table.Capacity; i++ {
		seat := Seat{
			ID:       uuid.New(),
			PlanID:   table.PlanID,
			TableID:  table.ID,
			Position: i,
		}
		// Head seats occupy the first positions on head-configured tables
		if i <= table.HeadSeats {
			seat.IsHost = true
		}
		if table.IsVip {
			seat.IsVip = true
		}
		seats = append(seats, seat)
	}
	return seats
}

// GenerateChairSeats builds the rows x columns chair grid for a row.
func GenerateChairSeats(row *ChairRow) []ChairSeat {
	seats := make([]ChairSeat, 0, row.Rows*row.Columns)
	position := 1
	for r := 1; r <= row.Rows; r++ {
		for c := 1; c <= row.Columns; c++ {
			seats = append(seats, ChairSeat{
				ID:          uuid.New(),
				PlanID:      row.PlanID,
				RowID:       row.ID,
				RowIndex:    r,
				ColumnIndex: c,
				Position:    position,
			})
			position++
		}
	}
	return seats
}

// SizeClassForCapacity derives the coarse size class used in stats
// breakdowns when a table was stored without one.
func SizeClassForCapacity(capacity int) TableSize {
	switch {
	case capacity <= 4:
		return SizeSmall
	case capacity <= 8:
		return SizeMedium
	default:
		return SizeLarge
	}
}
