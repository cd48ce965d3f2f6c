package notifications

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventPlanSaved           EventType = "plan_saved"
	EventPlanPublished       EventType = "plan_published"
	EventAutoAssignCompleted EventType = "auto_assign_completed"
	EventConflictsDetected   EventType = "conflicts_detected"
)

// SeatingEvent is the message published to the seating topic whenever
// a plan changes in a way downstream consumers care about (email
// digests, activity feeds, analytics).
type SeatingEvent struct {
	Type       EventType              `json:"type"`
	PlanID     uuid.UUID              `json:"plan_id"`
	WeddingID  uuid.UUID              `json:"wedding_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
