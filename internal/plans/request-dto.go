package plans

// VenueLayoutRequest describes the canvas and its fixed areas
type VenueLayoutRequest struct {
	CanvasWidth  float64             `json:"canvas_width" binding:"required,gt=0"`
	CanvasHeight float64             `json:"canvas_height" binding:"required,gt=0"`
	Areas        []CustomAreaRequest `json:"areas" binding:"omitempty,dive"`
}

type CustomAreaRequest struct {
	Type     string  `json:"type" binding:"required,oneof=dance_floor stage bar entrance gift_table"`
	Label    string  `json:"label" binding:"omitempty,max=100"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Rotation float64 `json:"rotation" binding:"omitempty,gte=0,lt=360"`
}

type CreatePlanRequest struct {
	WeddingID   string              `json:"wedding_id" binding:"required,uuid"`
	Name        string              `json:"name" binding:"required,min=1,max=150"`
	Description string              `json:"description" binding:"omitempty,max=2000"`
	VenueLayout *VenueLayoutRequest `json:"venue_layout" binding:"omitempty"`
}

type UpdatePlanRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=150"`
	Description *string             `json:"description" binding:"omitempty,max=2000"`
	VenueLayout *VenueLayoutRequest `json:"venue_layout" binding:"omitempty"`
	IsActive    *bool               `json:"is_active"`
	IsPublished *bool               `json:"is_published"`
}

type AssignSeatRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
}

type SwapSeatsRequest struct {
	SeatA string `json:"seat_a" binding:"required,uuid"`
	SeatB string `json:"seat_b" binding:"required,uuid"`
}

// AutoAssignRequest tunes a solver run. Omitted booleans fall back to
// the solver defaults (respect constraints, keep parties whole).
type AutoAssignRequest struct {
	RespectConstraints *bool `json:"respect_constraints"`
	StrictParties      *bool `json:"strict_parties"`
	Randomize          bool  `json:"randomize"`
	Seed               int64 `json:"seed"`

	// Optional subset of guests to place; empty means every unseated
	// attending guest.
	GuestIDs []string `json:"guest_ids" binding:"omitempty,dive,uuid"`
}
