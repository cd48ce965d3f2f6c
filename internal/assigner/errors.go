package assigner

import "errors"

// ErrPartySizeExceedsCapacity marks a must_sit_together party that no
// single table can hold. Recoverable: the run continues and the party
// is reported unassigned.
var ErrPartySizeExceedsCapacity = errors.New("party size exceeds table capacity")
