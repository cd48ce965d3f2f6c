package constraints

type CreateConstraintRequest struct {
	Type     string   `json:"type" binding:"required,oneof=must_sit_together cannot_sit_together must_sit_near vip_table"`
	GuestIDs []string `json:"guest_ids" binding:"required,min=1,dive,uuid"`
	Priority string   `json:"priority" binding:"omitempty,oneof=low medium high required"`
	Note     string   `json:"note" binding:"omitempty,max=500"`
}

type SetConstraintActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
