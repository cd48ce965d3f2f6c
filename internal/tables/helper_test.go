package tables

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeats(t *testing.T) {
	table := &Table{
		ID:        uuid.New(),
		PlanID:    uuid.New(),
		Capacity:  8,
		HeadSeats: 2,
		IsVip:     true,
	}

	seats := GenerateSeats(table)
	require.Len(t, seats, 8)

	for i, seat := range seats {
		assert.Equal(t, i+1, seat.Position)
		assert.Equal(t, table.ID, seat.TableID)
		assert.Equal(t, table.PlanID, seat.PlanID)
		assert.Nil(t, seat.GuestID)
		assert.True(t, seat.IsVip, "VIP tables produce VIP seats")
		assert.Equal(t, i < 2, seat.IsHost, "only the first head_seats positions are host seats")
	}
}

func TestGenerateChairSeats(t *testing.T) {
	row := &ChairRow{
		ID:      uuid.New(),
		PlanID:  uuid.New(),
		Rows:    2,
		Columns: 3,
	}

	seats := GenerateChairSeats(row)
	require.Len(t, seats, 6)

	assert.Equal(t, 1, seats[0].RowIndex)
	assert.Equal(t, 1, seats[0].ColumnIndex)
	assert.Equal(t, 2, seats[5].RowIndex)
	assert.Equal(t, 3, seats[5].ColumnIndex)

	for i, seat := range seats {
		assert.Equal(t, i+1, seat.Position, "positions run sequentially across the grid")
		assert.Equal(t, row.ID, seat.RowID)
	}
}

func TestSizeClassForCapacity(t *testing.T) {
	assert.Equal(t, SizeSmall, SizeClassForCapacity(2))
	assert.Equal(t, SizeSmall, SizeClassForCapacity(4))
	assert.Equal(t, SizeMedium, SizeClassForCapacity(5))
	assert.Equal(t, SizeMedium, SizeClassForCapacity(8))
	assert.Equal(t, SizeLarge, SizeClassForCapacity(9))
	assert.Equal(t, SizeLarge, SizeClassForCapacity(16))
}

func TestSeatAvailability(t *testing.T) {
	seat := Seat{}
	assert.True(t, seat.IsAvailable())
	assert.False(t, seat.IsOccupied())

	guest := uuid.New()
	seat.GuestID = &guest
	assert.False(t, seat.IsAvailable())
	assert.True(t, seat.IsOccupied())

	reserved := Seat{IsReserved: true}
	assert.False(t, reserved.IsAvailable())
	assert.False(t, reserved.IsOccupied())
}
