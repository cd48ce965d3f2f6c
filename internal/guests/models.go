package guests

import (
	"time"

	"github.com/google/uuid"
)

// GuestCategory mirrors the categories owned by the guest-list module
type GuestCategory string

const (
	CategoryFamilyBride     GuestCategory = "family-bride"
	CategoryFamilyGroom     GuestCategory = "family-groom"
	CategoryFriendsBride    GuestCategory = "friends-bride"
	CategoryFriendsGroom    GuestCategory = "friends-groom"
	CategoryColleaguesBride GuestCategory = "colleagues-bride"
	CategoryColleaguesGroom GuestCategory = "colleagues-groom"
	CategoryOther           GuestCategory = "other"
)

// Guest is a read model of the external guest list. The seating service
// never creates or edits guests; it only consumes this shape.
type Guest struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	WeddingID uuid.UUID     `json:"wedding_id" gorm:"type:uuid;not null;index"`
	FirstName string        `json:"first_name" gorm:"not null;size:100"`
	LastName  string        `json:"last_name" gorm:"not null;size:100"`
	Category  GuestCategory `json:"category" gorm:"type:varchar(30);default:'other'"`
	IsVip     bool          `json:"is_vip" gorm:"default:false"`

	// Plus-ones are separate guest rows linked back to their host guest
	PlusOneOf *uuid.UUID `json:"plus_one_of,omitempty" gorm:"type:uuid"`

	RSVPStatus string    `json:"rsvp_status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Guest
func (Guest) TableName() string {
	return "guests"
}

// FullName returns the guest's display name
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// IsPlusOne reports whether this guest is someone's plus-one
func (g *Guest) IsPlusOne() bool {
	return g.PlusOneOf != nil
}
