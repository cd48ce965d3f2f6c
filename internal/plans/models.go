package plans

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AreaType enumerates non-seating fixtures drawn on the venue canvas
type AreaType string

const (
	AreaDanceFloor AreaType = "dance_floor"
	AreaStage      AreaType = "stage"
	AreaBar        AreaType = "bar"
	AreaEntrance   AreaType = "entrance"
	AreaGiftTable  AreaType = "gift_table"
)

// CustomArea is a decorative region on the layout, e.g. the dance
// floor. Areas never hold seats; they only constrain where the
// organizer places tables.
type CustomArea struct {
	ID       string   `json:"id"`
	Type     AreaType `json:"type"`
	Label    string   `json:"label,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Rotation float64  `json:"rotation,omitempty"`
}

// VenueLayout is the canvas definition stored as a jsonb column.
type VenueLayout struct {
	CanvasWidth  float64      `json:"canvas_width"`
	CanvasHeight float64      `json:"canvas_height"`
	Areas        []CustomArea `json:"areas,omitempty"`
}

func (v VenueLayout) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *VenueLayout) Scan(value interface{}) error {
	if value == nil {
		*v = VenueLayout{}
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return errors.New("unsupported type for VenueLayout")
	}
}

// SeatingPlan is the aggregate root. Seat totals are denormalized for
// cheap list views and recomputed on every layout or assignment
// change. Version guards saves: a writer holding a stale version is
// rejected and reloads.
type SeatingPlan struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	WeddingID   uuid.UUID `json:"wedding_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:150"`
	Description string    `json:"description" gorm:"type:text"`

	VenueLayout VenueLayout `json:"venue_layout" gorm:"type:jsonb"`

	IsActive    bool `json:"is_active" gorm:"default:true"`
	IsPublished bool `json:"is_published" gorm:"default:false"`

	// Table seats only; chair rows are tracked separately in stats
	TotalSeats     int `json:"total_seats" gorm:"default:0"`
	AssignedSeats  int `json:"assigned_seats" gorm:"default:0"`
	AvailableSeats int `json:"available_seats" gorm:"default:0"`

	Version   int       `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for SeatingPlan
func (SeatingPlan) TableName() string {
	return "seating_plans"
}
