package database

import (
	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/plans"
	"seatwise/internal/tables"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&guests.Guest{},
		&plans.SeatingPlan{},
		&tables.Table{},
		&tables.Seat{},
		&tables.ChairRow{},
		&tables.ChairSeat{},
		&constraints.SeatingConstraint{},
	)
}
