package tables

import (
	"time"

	"github.com/google/uuid"
)

// TableShape enumerates supported table geometries
type TableShape string

const (
	ShapeRound       TableShape = "round"
	ShapeRectangular TableShape = "rectangular"
	ShapeSquare      TableShape = "square"
	ShapeOval        TableShape = "oval"
)

// TableSize is the coarse size class used for stats breakdowns
type TableSize string

const (
	SizeSmall  TableSize = "small"
	SizeMedium TableSize = "medium"
	SizeLarge  TableSize = "large"
)

// RowOrientation enumerates chair-row directions on the canvas
type RowOrientation string

const (
	OrientationHorizontal RowOrientation = "horizontal"
	OrientationVertical   RowOrientation = "vertical"
)

// Position is a point in the venue canvas coordinate space
type Position struct {
	X float64 `json:"x" gorm:"column:x"`
	Y float64 `json:"y" gorm:"column:y"`
}

// Table is a seated table on the venue layout. Position is the table
// center in canvas coordinates.
type Table struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PlanID   uuid.UUID  `json:"plan_id" gorm:"type:uuid;not null;index"`
	Name     string     `json:"name" gorm:"not null;size:100"`
	Shape    TableShape `json:"shape" gorm:"type:varchar(20);default:'round';check:shape IN ('round','rectangular','square','oval')"`
	Size     TableSize  `json:"size" gorm:"type:varchar(10);default:'medium';check:size IN ('small','medium','large')"`
	Capacity int        `json:"capacity" gorm:"not null;check:capacity >= 1"`

	Position Position `json:"position" gorm:"embedded;embeddedPrefix:position_"`
	Rotation float64  `json:"rotation" gorm:"default:0;check:rotation >= 0 AND rotation < 360"`

	// Head seats sit at the narrow ends of rectangular tables
	HeadSeats   int  `json:"head_seats" gorm:"default:0;check:head_seats >= 0"`
	IsVip       bool `json:"is_vip" gorm:"default:false"`
	IsHeadTable bool `json:"is_head_table" gorm:"default:false"`

	Color     string    `json:"color" gorm:"size:20"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Seats []Seat `json:"seats,omitempty" gorm:"foreignKey:TableID;constraint:OnDelete:CASCADE;"`
}

// Seat is the smallest addressable unit of capacity at a table.
// Position runs 1..capacity and is unique per table.
type Seat struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PlanID   uuid.UUID `json:"plan_id" gorm:"type:uuid;not null;index"`
	TableID  uuid.UUID `json:"table_id" gorm:"type:uuid;not null;index"`
	Position int       `json:"position" gorm:"not null;check:position >= 1"`

	GuestID    *uuid.UUID `json:"guest_id,omitempty" gorm:"type:uuid"`
	IsReserved bool       `json:"is_reserved" gorm:"default:false"`

	// Pre-tagged expectation that this seat is for the plus-one of a
	// guest; misplacement is a warning, never an assignment error.
	PlusOneOf *uuid.UUID `json:"plus_one_of,omitempty" gorm:"type:uuid"`

	IsHost    bool      `json:"is_host" gorm:"default:false"`
	IsVip     bool      `json:"is_vip" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ChairRow is standalone seating not bound to a table, e.g. ceremony rows.
type ChairRow struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PlanID uuid.UUID `json:"plan_id" gorm:"type:uuid;not null;index"`
	Name   string    `json:"name" gorm:"not null;size:100"`

	Orientation RowOrientation `json:"orientation" gorm:"type:varchar(10);default:'horizontal';check:orientation IN ('horizontal','vertical')"`
	Rows        int            `json:"rows" gorm:"not null;check:rows >= 1"`
	Columns     int            `json:"columns" gorm:"not null;check:columns >= 1"`

	// Optional aisle gap after the given column (1-based), nil for none
	AisleAfterColumn *int `json:"aisle_after_column,omitempty"`

	Position  Position  `json:"position" gorm:"embedded;embeddedPrefix:position_"`
	Rotation  float64   `json:"rotation" gorm:"default:0;check:rotation >= 0 AND rotation < 360"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Seats []ChairSeat `json:"seats,omitempty" gorm:"foreignKey:RowID;constraint:OnDelete:CASCADE;"`
}

// ChairSeat is one chair within a chair row grid.
type ChairSeat struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PlanID uuid.UUID `json:"plan_id" gorm:"type:uuid;not null;index"`
	RowID  uuid.UUID `json:"row_id" gorm:"type:uuid;not null;index"`

	RowIndex    int `json:"row_index" gorm:"not null;check:row_index >= 1"`
	ColumnIndex int `json:"column_index" gorm:"not null;check:column_index >= 1"`
	Position    int `json:"position" gorm:"not null;check:position >= 1"`

	GuestID    *uuid.UUID `json:"guest_id,omitempty" gorm:"type:uuid"`
	IsReserved bool       `json:"is_reserved" gorm:"default:false"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Table
func (Table) TableName() string {
	return "layout_tables"
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// TableName sets the table name for ChairRow
func (ChairRow) TableName() string {
	return "chair_rows"
}

// TableName sets the table name for ChairSeat
func (ChairSeat) TableName() string {
	return "chair_seats"
}

// IsOccupied reports whether a guest currently holds this seat
func (s *Seat) IsOccupied() bool {
	return s.GuestID != nil
}

// IsAvailable reports whether this seat can take an assignment
func (s *Seat) IsAvailable() bool {
	return s.GuestID == nil && !s.IsReserved
}

// IsOccupied reports whether a guest currently holds this chair seat
func (cs *ChairSeat) IsOccupied() bool {
	return cs.GuestID != nil
}

// TotalSeats returns the number of chairs the row generates
func (cr *ChairRow) TotalSeats() int {
	return cr.Rows * cr.Columns
}
