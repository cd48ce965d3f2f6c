package plans

import (
	"time"

	"seatwise/internal/constraints"
	"seatwise/internal/tables"
)

type PlanResponse struct {
	ID          string      `json:"id"`
	WeddingID   string      `json:"wedding_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	VenueLayout VenueLayout `json:"venue_layout"`
	IsActive    bool        `json:"is_active"`
	IsPublished bool        `json:"is_published"`

	TotalSeats     int `json:"total_seats"`
	AssignedSeats  int `json:"assigned_seats"`
	AvailableSeats int `json:"available_seats"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanDetailResponse struct {
	PlanResponse
	Tables    []tables.TableResponse    `json:"tables"`
	ChairRows []tables.ChairRowResponse `json:"chair_rows"`
}

type AutoAssignResponse struct {
	Success               bool     `json:"success"`
	AssignedCount         int      `json:"assigned_count"`
	UnassignedCount       int      `json:"unassigned_count"`
	UnassignedGuestIDs    []string `json:"unassigned_guest_ids,omitempty"`
	ViolatedConstraintIDs []string `json:"violated_constraint_ids,omitempty"`
	Suggestions           []string `json:"suggestions,omitempty"`
	PlanVersion           int      `json:"plan_version"`
}

type ConflictReportResponse struct {
	PlanID          string                       `json:"plan_id"`
	PlanVersion     int                          `json:"plan_version"`
	Evaluations     []constraints.Evaluation     `json:"evaluations"`
	PlusOneWarnings []constraints.PlusOneWarning `json:"plus_one_warnings,omitempty"`
	Satisfied       int                          `json:"satisfied"`
	Violated        int                          `json:"violated"`
}

type StatsResponse struct {
	PlanID      string       `json:"plan_id"`
	PlanVersion int          `json:"plan_version"`
	Stats       SeatingStats `json:"stats"`
}

// ToResponse converts a plan to its API shape
func (p *SeatingPlan) ToResponse() PlanResponse {
	return PlanResponse{
		ID:             p.ID.String(),
		WeddingID:      p.WeddingID.String(),
		Name:           p.Name,
		Description:    p.Description,
		VenueLayout:    p.VenueLayout,
		IsActive:       p.IsActive,
		IsPublished:    p.IsPublished,
		TotalSeats:     p.TotalSeats,
		AssignedSeats:  p.AssignedSeats,
		AvailableSeats: p.AvailableSeats,
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
