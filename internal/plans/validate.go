package plans

import (
	"fmt"

	"github.com/google/uuid"

	"seatwise/internal/tables"
)

// validateAggregate rejects structurally corrupt documents before any
// computation runs on them. A corrupt document is never partially
// loaded; the caller gets ErrCorruptPlanData and the stored form stays
// untouched.
func validateAggregate(plan *SeatingPlan, tbls []tables.Table, rows []tables.ChairRow) error {
	tableIDs := make(map[uuid.UUID]bool, len(tbls))
	for i := range tbls {
		if tableIDs[tbls[i].ID] {
			return fmt.Errorf("%w: duplicate table %s", ErrCorruptPlanData, tbls[i].ID)
		}
		tableIDs[tbls[i].ID] = true
	}

	rowIDs := make(map[uuid.UUID]bool, len(rows))
	for i := range rows {
		if rowIDs[rows[i].ID] {
			return fmt.Errorf("%w: duplicate chair row %s", ErrCorruptPlanData, rows[i].ID)
		}
		rowIDs[rows[i].ID] = true
	}

	seatIDs := make(map[uuid.UUID]bool)
	seatedGuests := make(map[uuid.UUID]uuid.UUID)

	checkGuest := func(seatID uuid.UUID, guestID *uuid.UUID) error {
		if guestID == nil {
			return nil
		}
		if prev, ok := seatedGuests[*guestID]; ok {
			return fmt.Errorf("%w: guest %s holds seats %s and %s", ErrCorruptPlanData, *guestID, prev, seatID)
		}
		seatedGuests[*guestID] = seatID
		return nil
	}

	for i := range tbls {
		for j := range tbls[i].Seats {
			seat := &tbls[i].Seats[j]
			if seat.TableID != tbls[i].ID {
				return fmt.Errorf("%w: seat %s references table %s but belongs to %s",
					ErrCorruptPlanData, seat.ID, seat.TableID, tbls[i].ID)
			}
			if seatIDs[seat.ID] {
				return fmt.Errorf("%w: duplicate seat %s", ErrCorruptPlanData, seat.ID)
			}
			seatIDs[seat.ID] = true
			if err := checkGuest(seat.ID, seat.GuestID); err != nil {
				return err
			}
		}
	}

	for i := range rows {
		for j := range rows[i].Seats {
			seat := &rows[i].Seats[j]
			if seat.RowID != rows[i].ID {
				return fmt.Errorf("%w: chair seat %s references row %s but belongs to %s",
					ErrCorruptPlanData, seat.ID, seat.RowID, rows[i].ID)
			}
			if seatIDs[seat.ID] {
				return fmt.Errorf("%w: duplicate seat %s", ErrCorruptPlanData, seat.ID)
			}
			seatIDs[seat.ID] = true
			if err := checkGuest(seat.ID, seat.GuestID); err != nil {
				return err
			}
		}
	}
	return nil
}
