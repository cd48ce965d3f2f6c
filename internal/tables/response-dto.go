package tables

import "time"

type SeatResponse struct {
	ID         string  `json:"id"`
	TableID    string  `json:"table_id"`
	Position   int     `json:"position"`
	GuestID    *string `json:"guest_id,omitempty"`
	IsReserved bool    `json:"is_reserved"`
	PlusOneOf  *string `json:"plus_one_of,omitempty"`
	IsHost     bool    `json:"is_host"`
	IsVip      bool    `json:"is_vip"`
}

type TableResponse struct {
	ID          string         `json:"id"`
	PlanID      string         `json:"plan_id"`
	Name        string         `json:"name"`
	Shape       string         `json:"shape"`
	Size        string         `json:"size"`
	Capacity    int            `json:"capacity"`
	Position    Position       `json:"position"`
	Rotation    float64        `json:"rotation"`
	HeadSeats   int            `json:"head_seats"`
	IsVip       bool           `json:"is_vip"`
	IsHeadTable bool           `json:"is_head_table"`
	Color       string         `json:"color,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Occupancy   int            `json:"occupancy_percent"`
	Seats       []SeatResponse `json:"seats,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ChairSeatResponse struct {
	ID          string  `json:"id"`
	RowID       string  `json:"row_id"`
	RowIndex    int     `json:"row_index"`
	ColumnIndex int     `json:"column_index"`
	Position    int     `json:"position"`
	GuestID     *string `json:"guest_id,omitempty"`
	IsReserved  bool    `json:"is_reserved"`
}

type ChairRowResponse struct {
	ID               string              `json:"id"`
	PlanID           string              `json:"plan_id"`
	Name             string              `json:"name"`
	Orientation      string              `json:"orientation"`
	Rows             int                 `json:"rows"`
	Columns          int                 `json:"columns"`
	AisleAfterColumn *int                `json:"aisle_after_column,omitempty"`
	Position         Position            `json:"position"`
	Rotation         float64             `json:"rotation"`
	Seats            []ChairSeatResponse `json:"seats,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ToResponse converts a Seat to its API shape
func (s *Seat) ToResponse() SeatResponse {
	resp := SeatResponse{
		ID:         s.ID.String(),
		TableID:    s.TableID.String(),
		Position:   s.Position,
		IsReserved: s.IsReserved,
		IsHost:     s.IsHost,
		IsVip:      s.IsVip,
	}
	if s.GuestID != nil {
		id := s.GuestID.String()
		resp.GuestID = &id
	}
	if s.PlusOneOf != nil {
		id := s.PlusOneOf.String()
		resp.PlusOneOf = &id
	}
	return resp
}

// ToResponse converts a Table (with preloaded seats) to its API shape
func (t *Table) ToResponse() TableResponse {
	resp := TableResponse{
		ID:          t.ID.String(),
		PlanID:      t.PlanID.String(),
		Name:        t.Name,
		Shape:       string(t.Shape),
		Size:        string(t.Size),
		Capacity:    t.Capacity,
		Position:    t.Position,
		Rotation:    t.Rotation,
		HeadSeats:   t.HeadSeats,
		IsVip:       t.IsVip,
		IsHeadTable: t.IsHeadTable,
		Color:       t.Color,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	occupied := 0
	for i := range t.Seats {
		if t.Seats[i].IsOccupied() {
			occupied++
		}
		resp.Seats = append(resp.Seats, t.Seats[i].ToResponse())
	}
	if len(t.Seats) > 0 {
		resp.Occupancy = int(float64(occupied)/float64(len(t.Seats))*100 + 0.5)
	}

	return resp
}

// ToResponse converts a ChairSeat to its API shape
func (cs *ChairSeat) ToResponse() ChairSeatResponse {
	resp := ChairSeatResponse{
		ID:          cs.ID.String(),
		RowID:       cs.RowID.String(),
		RowIndex:    cs.RowIndex,
		ColumnIndex: cs.ColumnIndex,
		Position:    cs.Position,
		IsReserved:  cs.IsReserved,
	}
	if cs.GuestID != nil {
		id := cs.GuestID.String()
		resp.GuestID = &id
	}
	return resp
}

// ToResponse converts a ChairRow (with preloaded seats) to its API shape
func (cr *ChairRow) ToResponse() ChairRowResponse {
	resp := ChairRowResponse{
		ID:               cr.ID.String(),
		PlanID:           cr.PlanID.String(),
		Name:             cr.Name,
		Orientation:      string(cr.Orientation),
		Rows:             cr.Rows,
		Columns:          cr.Columns,
		AisleAfterColumn: cr.AisleAfterColumn,
		Position:         cr.Position,
		Rotation:         cr.Rotation,
		CreatedAt:        cr.CreatedAt,
	}
	for i := range cr.Seats {
		resp.Seats = append(resp.Seats, cr.Seats[i].ToResponse())
	}
	return resp
}
