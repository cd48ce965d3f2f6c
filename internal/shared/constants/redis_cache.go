package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for seating data.
// Pattern: seatwise:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	// Venue layouts change when the organizer edits tables; medium TTL
	TTL_PLAN_LAYOUT = 15 * time.Minute

	// Stats and conflict evaluations are cheap to recompute but hot
	// on the editor screen; short TTL plus version-keyed invalidation
	TTL_PLAN_STATS     = 5 * time.Minute
	TTL_PLAN_CONFLICTS = 5 * time.Minute

	// Guest read model owned by the external guest module
	TTL_GUEST_LIST = 10 * time.Minute
)

// ================== CACHE KEY PREFIXES ==================

const (
	CACHE_KEY_PLAN           = "seatwise:plans:plan:"
	CACHE_KEY_PLAN_STATS     = "seatwise:plans:stats:"
	CACHE_KEY_PLAN_CONFLICTS = "seatwise:plans:conflicts:"
	CACHE_KEY_GUESTS         = "seatwise:guests:wedding:"

	PATTERN_INVALIDATE_PLAN_ALL = "seatwise:plans:*"
)

// PlanKey returns the cache key for a plan document
func PlanKey(planID string) string {
	return CACHE_KEY_PLAN + planID
}

// PlanStatsKey keys stats by plan id AND version so a successful save
// can never serve stale numbers.
func PlanStatsKey(planID string, version int) string {
	return fmt.Sprintf("%s%s:v%d", CACHE_KEY_PLAN_STATS, planID, version)
}

// PlanConflictsKey keys conflict evaluations by plan id and version.
func PlanConflictsKey(planID string, version int) string {
	return fmt.Sprintf("%s%s:v%d", CACHE_KEY_PLAN_CONFLICTS, planID, version)
}

// GuestsKey returns the cache key for a wedding's guest list
func GuestsKey(weddingID string) string {
	return CACHE_KEY_GUESTS + weddingID
}

// PlanInvalidationPatterns returns every pattern touched by a plan mutation
func PlanInvalidationPatterns(planID string) []string {
	return []string{
		CACHE_KEY_PLAN + planID + "*",
		CACHE_KEY_PLAN_STATS + planID + "*",
		CACHE_KEY_PLAN_CONFLICTS + planID + "*",
	}
}
