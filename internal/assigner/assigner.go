package assigner

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"seatwise/internal/constraints"
	"seatwise/internal/tables"
)

// cannotEdge is one active cannot_sit_together pair.
type cannotEdge struct {
	a, b         uuid.UUID
	constraintID uuid.UUID
}

// tableState tracks remaining seats and current occupants of one table
// while the solver packs.
type tableState struct {
	table     *tables.Table
	freeSeats []uuid.UUID
	occupants map[uuid.UUID]bool
}

func (ts *tableState) free() int { return len(ts.freeSeats) }

type party struct {
	members       []int // indexes into Input.Guests
	vip           bool
	constrained   bool
	contradictory bool
}

// Run packs the given guests into free seats. It is pure relative to
// its input: the same snapshot, options, and seed always produce the
// same result, and nothing in the input is mutated.
func Run(input Input, opts Options) Result {
	result := Result{
		Assignments: make(map[uuid.UUID]uuid.UUID),
	}

	guestIndex := make(map[uuid.UUID]int, len(input.Guests))
	for i := range input.Guests {
		guestIndex[input.Guests[i].ID] = i
	}

	uf := newUnionFind(len(input.Guests))
	referenced := make([]bool, len(input.Guests))
	vipConstrained := make([]bool, len(input.Guests))
	var cannotEdges []cannotEdge

	for i := range input.Constraints {
		c := &input.Constraints[i]
		if !c.IsActive {
			continue
		}
		switch c.Type {
		case constraints.MustSitTogether:
			first := -1
			for _, gid := range c.GuestIDs {
				idx, ok := guestIndex[gid]
				if !ok {
					continue
				}
				referenced[idx] = true
				if first < 0 {
					first = idx
				} else {
					uf.union(first, idx)
				}
			}
		case constraints.CannotSitTogether:
			if len(c.GuestIDs) == 2 {
				cannotEdges = append(cannotEdges, cannotEdge{
					a:            c.GuestIDs[0],
					b:            c.GuestIDs[1],
					constraintID: c.ID,
				})
			}
			for _, gid := range c.GuestIDs {
				if idx, ok := guestIndex[gid]; ok {
					referenced[idx] = true
				}
			}
		case constraints.VipTable:
			for _, gid := range c.GuestIDs {
				if idx, ok := guestIndex[gid]; ok {
					referenced[idx] = true
					vipConstrained[idx] = true
				}
			}
		case constraints.MustSitNear:
			for _, gid := range c.GuestIDs {
				if idx, ok := guestIndex[gid]; ok {
					referenced[idx] = true
				}
			}
		}
	}

	// A party whose members also carry a cannot_sit_together edge with
	// each other can never be seated legally. It is excluded from
	// packing and the edge is reported as violated.
	contradictoryRoots := make(map[int]bool)
	violated := newIDSet()
	for _, edge := range cannotEdges {
		ia, okA := guestIndex[edge.a]
		ib, okB := guestIndex[edge.b]
		if okA && okB && uf.sameSet(ia, ib) {
			contradictoryRoots[uf.find(ia)] = true
			violated.add(edge.constraintID)
		}
	}

	states := buildTableStates(input)
	cannotByGuest := make(map[uuid.UUID][]cannotEdge)
	for _, edge := range cannotEdges {
		cannotByGuest[edge.a] = append(cannotByGuest[edge.a], edge)
		cannotByGuest[edge.b] = append(cannotByGuest[edge.b], edge)
	}

	parties := collectParties(input, uf, referenced, vipConstrained, contradictoryRoots)

	var vipParties, packParties []*party
	var singles []*party
	for _, p := range parties {
		if p.contradictory {
			continue
		}
		switch {
		case p.vip:
			vipParties = append(vipParties, p)
		case p.constrained || len(p.members) > 1:
			packParties = append(packParties, p)
		default:
			singles = append(singles, p)
		}
	}
	sortBySizeDesc(vipParties)
	sortBySizeDesc(packParties)
	if opts.Randomize {
		rng := rand.New(rand.NewSource(opts.Seed))
		rng.Shuffle(len(singles), func(i, j int) {
			singles[i], singles[j] = singles[j], singles[i]
		})
	}

	ordered := make([]*party, 0, len(vipParties)+len(packParties)+len(singles))
	ordered = append(ordered, vipParties...)
	ordered = append(ordered, packParties...)
	ordered = append(ordered, singles...)

	var unassigned []uuid.UUID
	for _, p := range parties {
		if p.contradictory {
			for _, idx := range p.members {
				unassigned = append(unassigned, input.Guests[idx].ID)
			}
		}
	}

	for _, p := range ordered {
		unplaced, blockedBy := placeParty(input, states, p, cannotByGuest, opts, &result)
		if len(unplaced) == 0 {
			continue
		}
		for _, idx := range unplaced {
			unassigned = append(unassigned, input.Guests[idx].ID)
		}
		for _, id := range blockedBy {
			violated.add(id)
		}
		if len(blockedBy) == 0 && len(p.members) > 1 && opts.StrictParties {
			result.Errors = append(result.Errors,
				fmt.Errorf("party of %d: %w", len(p.members), ErrPartySizeExceedsCapacity))
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("party of %d has no table with enough free seats; add a larger table or split the group", len(p.members)))
		}
	}

	// Re-check the realized occupancy. With constraints relaxed, or
	// when occupied seats already broke a rule, a cannot pair can end
	// up sharing a table; it is reported, never silently dropped.
	for _, edge := range cannotEdges {
		for _, st := range states {
			if st.occupants[edge.a] && st.occupants[edge.b] {
				violated.add(edge.constraintID)
				break
			}
		}
	}

	result.AssignedCount = len(result.Assignments)
	result.UnassignedGuestIDs = unassigned
	result.UnassignedCount = len(unassigned)
	result.ViolatedConstraintIDs = violated.ordered
	result.Success = result.UnassignedCount == 0 && len(violated.ordered) == 0

	if result.UnassignedCount > 0 && totalFree(states) == 0 {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("%d guests could not be seated because every seat is taken; add tables to the layout", result.UnassignedCount))
	}
	return result
}

func buildTableStates(input Input) []*tableState {
	states := make([]*tableState, 0, len(input.Tables))
	byTable := make(map[uuid.UUID]*tableState, len(input.Tables))
	for i := range input.Tables {
		st := &tableState{
			table:     &input.Tables[i],
			occupants: make(map[uuid.UUID]bool),
		}
		states = append(states, st)
		byTable[input.Tables[i].ID] = st
	}

	seats := make([]tables.Seat, len(input.Seats))
	copy(seats, input.Seats)
	sort.SliceStable(seats, func(i, j int) bool { return seats[i].Position < seats[j].Position })
	for i := range seats {
		st, ok := byTable[seats[i].TableID]
		if !ok {
			continue
		}
		switch {
		case seats[i].GuestID != nil:
			st.occupants[*seats[i].GuestID] = true
		case seats[i].IsReserved:
			// held back from packing
		default:
			st.freeSeats = append(st.freeSeats, seats[i].ID)
		}
	}
	return states
}

func collectParties(input Input, uf *unionFind, referenced, vipConstrained []bool, contradictoryRoots map[int]bool) []*party {
	byRoot := make(map[int]*party)
	var parties []*party
	for i := range input.Guests {
		root := uf.find(i)
		p, ok := byRoot[root]
		if !ok {
			p = &party{contradictory: contradictoryRoots[root]}
			byRoot[root] = p
			parties = append(parties, p)
		}
		p.members = append(p.members, i)
		if input.Guests[i].IsVip || vipConstrained[i] {
			p.vip = true
		}
		if referenced[i] {
			p.constrained = true
		}
	}
	return parties
}

func sortBySizeDesc(parties []*party) {
	sort.SliceStable(parties, func(i, j int) bool {
		return len(parties[i].members) > len(parties[j].members)
	})
}

// placeParty seats a whole party at one table, or splits it when
// allowed. It returns the members it could not seat together with the
// cannot_sit_together constraint ids that blocked placement when
// capacity alone was not the problem.
func placeParty(input Input, states []*tableState, p *party, cannotByGuest map[uuid.UUID][]cannotEdge, opts Options, result *Result) ([]int, []uuid.UUID) {
	size := len(p.members)
	st, blockedBy := pickTable(input, states, p, size, cannotByGuest, opts)
	if st != nil {
		seatMembers(input, st, p.members, result)
		return nil, nil
	}

	if len(blockedBy) == 0 && !opts.StrictParties && size > 1 {
		// Last resort: break the party up one guest at a time.
		var unplaced []int
		for _, idx := range p.members {
			single := &party{members: []int{idx}, vip: p.vip}
			st, _ := pickTable(input, states, single, 1, cannotByGuest, opts)
			if st == nil {
				unplaced = append(unplaced, idx)
				continue
			}
			seatMembers(input, st, single.members, result)
		}
		if len(unplaced) < size {
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("party of %d was split across tables because no single table could hold it", size))
		}
		return unplaced, nil
	}
	return p.members, blockedBy
}

// pickTable selects the table with the smallest remaining capacity
// that still fits the party, preferring VIP and head tables for VIP
// parties.
func pickTable(input Input, states []*tableState, p *party, size int, cannotByGuest map[uuid.UUID][]cannotEdge, opts Options) (*tableState, []uuid.UUID) {
	blocked := newIDSet()
	capacityExists := false

	choose := func(vipOnly bool) *tableState {
		var best *tableState
		for _, st := range states {
			if vipOnly && !st.table.IsVip && !st.table.IsHeadTable {
				continue
			}
			if st.free() < size {
				continue
			}
			capacityExists = true
			if ids := conflictIDs(input, st, p.members, cannotByGuest); len(ids) > 0 {
				if opts.RespectConstraints {
					for _, id := range ids {
						blocked.add(id)
					}
					continue
				}
			}
			if best == nil || st.free() < best.free() {
				best = st
			}
		}
		return best
	}

	if p.vip {
		if st := choose(true); st != nil {
			return st, nil
		}
	}
	if st := choose(false); st != nil {
		return st, nil
	}
	if capacityExists {
		return nil, blocked.ordered
	}
	return nil, nil
}

// conflictIDs reports the cannot_sit_together constraints that would be
// violated by seating the given members at this table.
func conflictIDs(input Input, st *tableState, members []int, cannotByGuest map[uuid.UUID][]cannotEdge) []uuid.UUID {
	joining := make(map[uuid.UUID]bool, len(members))
	for _, idx := range members {
		joining[input.Guests[idx].ID] = true
	}
	ids := newIDSet()
	for _, idx := range members {
		gid := input.Guests[idx].ID
		for _, edge := range cannotByGuest[gid] {
			other := edge.a
			if other == gid {
				other = edge.b
			}
			if st.occupants[other] && !joining[other] {
				ids.add(edge.constraintID)
			}
		}
	}
	return ids.ordered
}

func seatMembers(input Input, st *tableState, members []int, result *Result) {
	for _, idx := range members {
		gid := input.Guests[idx].ID
		seatID := st.freeSeats[0]
		st.freeSeats = st.freeSeats[1:]
		st.occupants[gid] = true
		result.Assignments[gid] = seatID
	}
}

func totalFree(states []*tableState) int {
	n := 0
	for _, st := range states {
		n += st.free()
	}
	return n
}

// idSet keeps insertion order so results are stable across runs.
type idSet struct {
	seen    map[uuid.UUID]bool
	ordered []uuid.UUID
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]bool)}
}

func (s *idSet) add(id uuid.UUID) {
	if !s.seen[id] {
		s.seen[id] = true
		s.ordered = append(s.ordered, id)
	}
}
