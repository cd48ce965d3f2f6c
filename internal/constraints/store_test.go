package constraints

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConstraint(t ConstraintType, ids ...uuid.UUID) SeatingConstraint {
	return SeatingConstraint{
		ID:       uuid.New(),
		PlanID:   uuid.New(),
		Type:     t,
		GuestIDs: GuestIDList(ids),
		Priority: PriorityMedium,
		IsActive: true,
	}
}

func TestStoreAddRejectsTooFewGuests(t *testing.T) {
	store := NewStore(nil)

	_, err := store.Add(newConstraint(MustSitTogether, uuid.New()))
	assert.ErrorIs(t, err, ErrTooFewGuests)

	_, err = store.Add(newConstraint(CannotSitTogether, uuid.New()))
	assert.ErrorIs(t, err, ErrTooFewGuests)

	_, err = store.Add(newConstraint(VipTable))
	assert.ErrorIs(t, err, ErrTooFewGuests)
}

func TestStoreAddDeduplicatesGuestIDs(t *testing.T) {
	store := NewStore(nil)
	id := uuid.New()

	_, err := store.Add(newConstraint(MustSitTogether, id, id))
	assert.ErrorIs(t, err, ErrTooFewGuests, "a pair collapsed by dedup is too few")
}

func TestStoreAddReportsContradiction(t *testing.T) {
	store := NewStore(nil)
	a, b := uuid.New(), uuid.New()

	must := newConstraint(MustSitTogether, a, b)
	report, err := store.Add(must)
	require.NoError(t, err)
	assert.Empty(t, report.ContradictsWith)

	cannot := newConstraint(CannotSitTogether, a, b)
	report, err = store.Add(cannot)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{must.ID}, report.ContradictsWith)

	// Both rules stay; resolving the contradiction is the organizer's
	// decision, not the store's.
	assert.Len(t, store.All(), 2)

	pairs := store.Contradictions()
	require.Len(t, pairs, 1)
	assert.Equal(t, must.ID, pairs[0][0])
	assert.Equal(t, cannot.ID, pairs[0][1])
}

func TestStoreContradictionIsOrderInsensitive(t *testing.T) {
	store := NewStore(nil)
	a, b := uuid.New(), uuid.New()

	_, err := store.Add(newConstraint(CannotSitTogether, a, b))
	require.NoError(t, err)

	report, err := store.Add(newConstraint(MustSitTogether, b, a))
	require.NoError(t, err)
	assert.Len(t, report.ContradictsWith, 1, "reversed pair order is the same pair")
}

func TestStoreRemove(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	first := newConstraint(MustSitTogether, a, b)
	second := newConstraint(CannotSitTogether, b, c)
	store := NewStore([]SeatingConstraint{first, second})

	require.NoError(t, store.Remove(first.ID))
	assert.Len(t, store.All(), 1)

	got, ok := store.Get(second.ID)
	require.True(t, ok, "remaining constraint must stay addressable after reindex")
	assert.Equal(t, second.ID, got.ID)

	assert.ErrorIs(t, store.Remove(first.ID), ErrConstraintNotFound)
}

func TestStoreActiveFiltersInactive(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	active := newConstraint(MustSitTogether, a, b)
	inactive := newConstraint(CannotSitTogether, a, b)
	inactive.IsActive = false

	store := NewStore([]SeatingConstraint{active, inactive})

	got := store.Active()
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)

	assert.Empty(t, store.Contradictions(), "inactive rules cannot contradict")
}

func TestStoreActiveConstraintsFor(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	first := newConstraint(MustSitTogether, a, b)
	second := newConstraint(VipTable, c)
	store := NewStore([]SeatingConstraint{first, second})

	got := store.ActiveConstraintsFor(a)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)

	assert.Empty(t, store.ActiveConstraintsFor(uuid.New()))
}
