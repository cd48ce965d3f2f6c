package constraints

import (
	"github.com/google/uuid"
)

// Store holds the constraints of one plan as explicit, caller-owned
// state. It is not a singleton and carries no subscribers; evaluation
// and solving read from it through pure functions.
type Store struct {
	constraints []SeatingConstraint
	byID        map[uuid.UUID]int
}

// AddReport describes side findings of an Add that do not reject the
// constraint.
type AddReport struct {
	// Constraint ids this new rule contradicts (must vs cannot on the
	// same pair). The rule is stored anyway.
	ContradictsWith []uuid.UUID
}

// NewStore builds a store over an existing constraint list
func NewStore(list []SeatingConstraint) *Store {
	s := &Store{
		constraints: make([]SeatingConstraint, 0, len(list)),
		byID:        make(map[uuid.UUID]int, len(list)),
	}
	for _, c := range list {
		s.byID[c.ID] = len(s.constraints)
		s.constraints = append(s.constraints, c)
	}
	return s
}

// Add validates and stores a constraint. Shape violations reject it;
// a contradiction with an existing rule is reported but both rules are
// kept so the organizer resolves it explicitly.
func (s *Store) Add(c SeatingConstraint) (*AddReport, error) {
	c.GuestIDs = c.GuestIDs.Distinct()

	if c.Type.IsPairwise() && len(c.GuestIDs) < 2 {
		return nil, ErrTooFewGuests
	}
	if len(c.GuestIDs) == 0 {
		return nil, ErrTooFewGuests
	}

	report := &AddReport{}
	if opposite, ok := oppositeType(c.Type); ok {
		for i := range s.constraints {
			other := &s.constraints[i]
			if other.Type == opposite && SamePair(&c, other) {
				report.ContradictsWith = append(report.ContradictsWith, other.ID)
			}
		}
	}

	s.byID[c.ID] = len(s.constraints)
	s.constraints = append(s.constraints, c)
	return report, nil
}

// Remove deletes a constraint by id
func (s *Store) Remove(id uuid.UUID) error {
	idx, ok := s.byID[id]
	if !ok {
		return ErrConstraintNotFound
	}

	s.constraints = append(s.constraints[:idx], s.constraints[idx+1:]...)
	delete(s.byID, id)
	for i := idx; i < len(s.constraints); i++ {
		s.byID[s.constraints[i].ID] = i
	}
	return nil
}

// Get returns a constraint by id
func (s *Store) Get(id uuid.UUID) (*SeatingConstraint, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.constraints[idx], true
}

// All returns every stored constraint in insertion order
func (s *Store) All() []SeatingConstraint {
	return s.constraints
}

// Active returns active constraints in insertion order
func (s *Store) Active() []SeatingConstraint {
	out := make([]SeatingConstraint, 0, len(s.constraints))
	for _, c := range s.constraints {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// ActiveConstraintsFor returns active constraints referencing a guest
func (s *Store) ActiveConstraintsFor(guestID uuid.UUID) []SeatingConstraint {
	var out []SeatingConstraint
	for _, c := range s.constraints {
		if c.IsActive && c.References(guestID) {
			out = append(out, c)
		}
	}
	return out
}

// Contradictions returns every active must/cannot pair binding the
// same two guests.
func (s *Store) Contradictions() [][2]uuid.UUID {
	var out [][2]uuid.UUID
	for i := range s.constraints {
		a := &s.constraints[i]
		if !a.IsActive || a.Type != MustSitTogether {
			continue
		}
		for j := range s.constraints {
			b := &s.constraints[j]
			if !b.IsActive || b.Type != CannotSitTogether {
				continue
			}
			if SamePair(a, b) {
				out = append(out, [2]uuid.UUID{a.ID, b.ID})
			}
		}
	}
	return out
}

func oppositeType(t ConstraintType) (ConstraintType, bool) {
	switch t {
	case MustSitTogether:
		return CannotSitTogether, true
	case CannotSitTogether:
		return MustSitTogether, true
	default:
		return "", false
	}
}
