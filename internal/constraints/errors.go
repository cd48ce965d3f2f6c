package constraints

import "errors"

var (
	// ErrConstraintNotFound is returned for unknown constraint ids
	ErrConstraintNotFound = errors.New("constraint not found")

	// ErrTooFewGuests rejects pairwise constraints with fewer than two
	// distinct guest references
	ErrTooFewGuests = errors.New("pairwise constraint requires at least two distinct guests")

	// ErrInvalidConstraintReference rejects constraints naming guests
	// absent from the wedding's guest list
	ErrInvalidConstraintReference = errors.New("constraint references unknown guest")

	// ErrContradictoryConstraints flags a must_sit_together and
	// cannot_sit_together rule on the exact same guest pair. Both are
	// kept; the detector reports the pair violated until one is
	// deactivated.
	ErrContradictoryConstraints = errors.New("contradictory constraints on the same guest pair")
)
