package plans

import (
	"math"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/tables"
)

// SizeBreakdown aggregates tables of one size class
type SizeBreakdown struct {
	Tables        int `json:"tables"`
	Seats         int `json:"seats"`
	AssignedSeats int `json:"assigned_seats"`
}

// SeatingStats is the summary shown on the plan dashboard.
type SeatingStats struct {
	TotalSeats     int `json:"total_seats"`
	AssignedSeats  int `json:"assigned_seats"`
	AvailableSeats int `json:"available_seats"`

	// Percentage of table seats occupied, rounded to the nearest
	// whole number. 0 when the plan has no seats.
	OccupancyRate int `json:"occupancy_rate"`

	ChairSeats         int `json:"chair_seats"`
	AssignedChairSeats int `json:"assigned_chair_seats"`

	ByTableSize     map[tables.TableSize]SizeBreakdown `json:"by_table_size"`
	ByGuestCategory map[guests.GuestCategory]int       `json:"by_guest_category"`

	SatisfiedConstraints int `json:"satisfied_constraints"`
	ViolatedConstraints  int `json:"violated_constraints"`
}

// ComputeStats derives the summary from the registry's current state.
// Pure: it reads the registry and inputs, touches nothing else.
func ComputeStats(reg *Registry, guestList []guests.Guest, evals []constraints.Evaluation) SeatingStats {
	stats := SeatingStats{
		ByTableSize:     make(map[tables.TableSize]SizeBreakdown),
		ByGuestCategory: make(map[guests.GuestCategory]int),
	}

	for i := range reg.Tables {
		t := &reg.Tables[i]
		b := stats.ByTableSize[t.Size]
		b.Tables++
		b.Seats += t.Capacity
		stats.TotalSeats += t.Capacity
		for j := range t.Seats {
			if t.Seats[j].GuestID != nil {
				b.AssignedSeats++
				stats.AssignedSeats++
			}
		}
		stats.ByTableSize[t.Size] = b
	}
	stats.AvailableSeats = stats.TotalSeats - stats.AssignedSeats

	if stats.TotalSeats > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.AssignedSeats) / float64(stats.TotalSeats) * 100))
	}

	stats.ChairSeats, stats.AssignedChairSeats = reg.ChairSeatCounts()

	for i := range guestList {
		g := &guestList[i]
		if reg.IsSeated(g.ID) {
			stats.ByGuestCategory[g.Category]++
		}
	}

	stats.SatisfiedConstraints, stats.ViolatedConstraints = constraints.CountVerdicts(evals)
	return stats
}
