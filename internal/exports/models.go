package exports

import (
	"time"

	"seatwise/internal/constraints"
	"seatwise/internal/plans"
)

// ExportFormat names the renderer the document is handed to. The
// service assembles the data contract; PDF, Excel, and image rendering
// run in a separate exporter service.
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
	FormatPNG   ExportFormat = "png"
)

type ExportRequest struct {
	Format             string `json:"format" validate:"required,oneof=pdf excel png"`
	IncludeGuestList   bool   `json:"include_guest_list"`
	IncludeConstraints bool   `json:"include_constraints"`
	IncludeStats       bool   `json:"include_stats"`
}

// GuestEntry is one row of the printable guest list
type GuestEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	IsVip    bool   `json:"is_vip"`
	Seated   bool   `json:"seated"`
	SeatedAt string `json:"seated_at,omitempty"`
}

// ExportDocument is the complete payload handed to the renderer.
type ExportDocument struct {
	Format      ExportFormat             `json:"format"`
	GeneratedAt time.Time                `json:"generated_at"`
	Plan        plans.PlanDetailResponse `json:"plan"`

	GuestList   []GuestEntry                     `json:"guest_list,omitempty"`
	Constraints []constraints.ConstraintResponse `json:"constraints,omitempty"`
	Stats       *plans.SeatingStats              `json:"stats,omitempty"`
}
