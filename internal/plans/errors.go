package plans

import "errors"

var (
	ErrPlanNotFound = errors.New("seating plan not found")
	ErrSeatNotFound = errors.New("seat not found")

	// ErrSeatOccupied - the target seat already holds a different guest
	ErrSeatOccupied = errors.New("seat is already occupied")

	// ErrGuestAlreadySeated - the guest already holds a different seat
	ErrGuestAlreadySeated = errors.New("guest is already seated")

	// ErrStalePlanVersion - the plan changed since it was loaded;
	// reload and retry
	ErrStalePlanVersion = errors.New("seating plan was modified by another session")

	// ErrCorruptPlanData - the persisted document references entities
	// that do not exist; it must not be loaded
	ErrCorruptPlanData = errors.New("seating plan data is corrupt")
)
