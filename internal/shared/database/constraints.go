package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database-level invariants the seating core
// relies on: one guest per seat across a plan, unique seat positions
// per table, and sane table geometry.
func MigrateConstraints(db *gorm.DB) error {
	// A guest occupies at most one seat per plan
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_guest_per_plan
		ON seats (plan_id, guest_id)
		WHERE guest_id IS NOT NULL;
	`).Error
	if err != nil {
		return err
	}

	// Seat positions are unique within a table
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_position_per_table
		ON seats (table_id, position);
	`).Error
	if err != nil {
		return err
	}

	// Same invariant for standalone chair seats
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_chair_guest_per_plan
		ON chair_seats (plan_id, guest_id)
		WHERE guest_id IS NOT NULL;
	`).Error
	if err != nil {
		return err
	}

	// Index for loading a plan's seats in one pass
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_plan_table
		ON seats (plan_id, table_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
