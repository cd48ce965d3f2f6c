package tables

// PositionRequest carries a canvas point in requests
type PositionRequest struct {
	X float64 `json:"x" binding:"min=0"`
	Y float64 `json:"y" binding:"min=0"`
}

type CreateTableRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	Shape     string          `json:"shape" binding:"required,oneof=round rectangular square oval"`
	Size      string          `json:"size" binding:"omitempty,oneof=small medium large"`
	Capacity  int             `json:"capacity" binding:"required,min=1,max=50"`
	Position  PositionRequest `json:"position" binding:"required"`
	Rotation  float64         `json:"rotation" binding:"omitempty,gte=0,lt=360"`
	HeadSeats int             `json:"head_seats" binding:"omitempty,min=0,max=4"`
	IsVip     bool            `json:"is_vip"`
	IsHead    bool            `json:"is_head_table"`
	Color     string          `json:"color" binding:"omitempty,max=20"`
	Notes     string          `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateTableRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Shape     *string  `json:"shape" binding:"omitempty,oneof=round rectangular square oval"`
	Size      *string  `json:"size" binding:"omitempty,oneof=small medium large"`
	Capacity  *int     `json:"capacity" binding:"omitempty,min=1,max=50"`
	Rotation  *float64 `json:"rotation" binding:"omitempty,gte=0,lt=360"`
	HeadSeats *int     `json:"head_seats" binding:"omitempty,min=0,max=4"`
	IsVip     *bool    `json:"is_vip"`
	IsHead    *bool    `json:"is_head_table"`
	Color     *string  `json:"color" binding:"omitempty,max=20"`
	Notes     *string  `json:"notes" binding:"omitempty,max=2000"`
}

// MoveTableRequest is the drag-and-drop position/rotation update
type MoveTableRequest struct {
	Position PositionRequest `json:"position" binding:"required"`
	Rotation *float64        `json:"rotation" binding:"omitempty,gte=0,lt=360"`
}

type CreateChairRowRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=100"`
	Orientation      string          `json:"orientation" binding:"required,oneof=horizontal vertical"`
	Rows             int             `json:"rows" binding:"required,min=1,max=50"`
	Columns          int             `json:"columns" binding:"required,min=1,max=50"`
	AisleAfterColumn *int            `json:"aisle_after_column" binding:"omitempty,min=1"`
	Position         PositionRequest `json:"position" binding:"required"`
	Rotation         float64         `json:"rotation" binding:"omitempty,gte=0,lt=360"`
}
