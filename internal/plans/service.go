package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seatwise/internal/assigner"
	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/notifications"
	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"
)

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*PlanDetailResponse, error)
	GetPlansByWedding(ctx context.Context, weddingID uuid.UUID) ([]PlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req UpdatePlanRequest) (*PlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error

	AssignSeat(ctx context.Context, planID, seatID, guestID uuid.UUID) (*PlanResponse, error)
	UnassignSeat(ctx context.Context, planID, seatID uuid.UUID) (*PlanResponse, error)
	SwapSeats(ctx context.Context, planID uuid.UUID, req SwapSeatsRequest) (*PlanResponse, error)

	AutoAssign(ctx context.Context, planID uuid.UUID, req AutoAssignRequest) (*AutoAssignResponse, error)
	GetConflicts(ctx context.Context, planID uuid.UUID, nearThreshold float64) (*ConflictReportResponse, error)
	GetStats(ctx context.Context, planID uuid.UUID) (*StatsResponse, error)

	// RefreshTotals implements the refresher hook the layout package
	// calls after a table or chair row mutation.
	RefreshTotals(ctx context.Context, planID uuid.UUID) error
}

type service struct {
	repo              Repository
	guestService      guests.Service
	constraintService constraints.Service
	cacheService      cache.Service
	events            notifications.Publisher
	nearThreshold     float64
	log               *logger.Logger
}

func NewService(repo Repository, guestService guests.Service, constraintService constraints.Service, nearThreshold float64) *service {
	return &service{
		repo:              repo,
		guestService:      guestService,
		constraintService: constraintService,
		events:            notifications.NewNoopPublisher(),
		nearThreshold:     nearThreshold,
		log:               logger.GetDefault(),
	}
}

// SetCacheService injects the cache dependency (wired in api/routes)
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetEventPublisher injects the event bus dependency (wired in api/routes)
func (s *service) SetEventPublisher(events notifications.Publisher) {
	s.events = events
}

// PLAN CRUD

func (s *service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	weddingID, err := uuid.Parse(req.WeddingID)
	if err != nil {
		return nil, fmt.Errorf("invalid wedding id: %w", err)
	}

	plan := &SeatingPlan{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		Version:     1,
	}
	if req.VenueLayout != nil {
		plan.VenueLayout = toVenueLayout(req.VenueLayout)
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	resp := plan.ToResponse()
	return &resp, nil
}

func (s *service) GetPlan(ctx context.Context, id uuid.UUID) (*PlanDetailResponse, error) {
	reg, err := s.loadRegistry(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetailResponse(reg), nil
}

func (s *service) GetPlansByWedding(ctx context.Context, weddingID uuid.UUID) ([]PlanResponse, error) {
	list, err := s.repo.GetByWedding(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}
	responses := make([]PlanResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses, nil
}

func (s *service) UpdatePlan(ctx context.Context, id uuid.UUID, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.VenueLayout != nil {
		updates["venue_layout"] = toVenueLayout(req.VenueLayout)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	published := false
	if req.IsPublished != nil && *req.IsPublished != plan.IsPublished {
		updates["is_published"] = *req.IsPublished
		published = *req.IsPublished
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update plan: %w", err)
		}
		s.invalidateCaches(ctx, id)
	}

	plan, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if published {
		s.publish(ctx, notifications.SeatingEvent{
			Type:      notifications.EventPlanPublished,
			PlanID:    plan.ID,
			WeddingID: plan.WeddingID,
		})
	}

	resp := plan.ToResponse()
	return &resp, nil
}

func (s *service) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	s.invalidateCaches(ctx, id)
	return nil
}

// SEAT MUTATIONS

func (s *service) AssignSeat(ctx context.Context, planID, seatID, guestID uuid.UUID) (*PlanResponse, error) {
	if _, err := s.guestService.GetByID(ctx, guestID); err != nil {
		return nil, err
	}

	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}
	if err := reg.Assign(seatID, guestID); err != nil {
		return nil, err
	}
	plan, err := s.saveRegistry(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.log.LogGuestAssigned(ctx, planID.String(), seatID.String(), guestID.String())
	resp := plan.ToResponse()
	return &resp, nil
}

func (s *service) UnassignSeat(ctx context.Context, planID, seatID uuid.UUID) (*PlanResponse, error) {
	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}
	if err := reg.Unassign(seatID); err != nil {
		return nil, err
	}
	plan, err := s.saveRegistry(ctx, reg)
	if err != nil {
		return nil, err
	}
	resp := plan.ToResponse()
	return &resp, nil
}

func (s *service) SwapSeats(ctx context.Context, planID uuid.UUID, req SwapSeatsRequest) (*PlanResponse, error) {
	seatA, err := uuid.Parse(req.SeatA)
	if err != nil {
		return nil, fmt.Errorf("invalid seat id: %w", err)
	}
	seatB, err := uuid.Parse(req.SeatB)
	if err != nil {
		return nil, fmt.Errorf("invalid seat id: %w", err)
	}

	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}
	if err := reg.SwapGuestSeats(seatA, seatB); err != nil {
		return nil, err
	}
	plan, err := s.saveRegistry(ctx, reg)
	if err != nil {
		return nil, err
	}
	resp := plan.ToResponse()
	return &resp, nil
}

// SOLVER

func (s *service) AutoAssign(ctx context.Context, planID uuid.UUID, req AutoAssignRequest) (*AutoAssignResponse, error) {
	start := time.Now()

	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}

	store, err := s.constraintService.LoadStore(ctx, planID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.solverCandidates(ctx, reg, req)
	if err != nil {
		return nil, err
	}

	opts := assigner.DefaultOptions()
	if req.RespectConstraints != nil {
		opts.RespectConstraints = *req.RespectConstraints
	}
	if req.StrictParties != nil {
		opts.StrictParties = *req.StrictParties
	}
	opts.Randomize = req.Randomize
	opts.Seed = req.Seed

	result := assigner.Run(assigner.Input{
		Guests:      candidates,
		Tables:      reg.Tables,
		Seats:       reg.AllSeats(),
		Constraints: store.Active(),
	}, opts)

	// The solver proposes; the registry applies. A proposal the
	// registry rejects leaves that guest unassigned instead of
	// corrupting state.
	for guestID, seatID := range result.Assignments {
		if err := reg.Assign(seatID, guestID); err != nil {
			s.log.WithError(err).WithPlanID(planID.String()).Warn("Skipping proposed assignment")
			result.AssignedCount--
			result.UnassignedCount++
			result.UnassignedGuestIDs = append(result.UnassignedGuestIDs, guestID)
			result.Success = false
		}
	}

	plan, err := s.saveRegistry(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.log.LogAutoAssignRun(ctx, planID.String(), result.AssignedCount, result.UnassignedCount, len(result.ViolatedConstraintIDs), time.Since(start))
	s.publish(ctx, notifications.SeatingEvent{
		Type:      notifications.EventAutoAssignCompleted,
		PlanID:    plan.ID,
		WeddingID: plan.WeddingID,
		Payload: map[string]interface{}{
			"success":          result.Success,
			"assigned_count":   result.AssignedCount,
			"unassigned_count": result.UnassignedCount,
		},
	})

	return toAutoAssignResponse(&result, plan.Version), nil
}

// solverCandidates resolves the guests the solver should place: the
// requested subset, or every unseated guest who has not declined.
func (s *service) solverCandidates(ctx context.Context, reg *Registry, req AutoAssignRequest) ([]guests.Guest, error) {
	var pool []guests.Guest
	if len(req.GuestIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(req.GuestIDs))
		for _, raw := range req.GuestIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid guest id: %w", err)
			}
			ids = append(ids, id)
		}
		list, err := s.guestService.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		pool = list
	} else {
		list, err := s.guestService.GetByWedding(ctx, reg.Plan.WeddingID)
		if err != nil {
			return nil, err
		}
		pool = list
	}

	candidates := make([]guests.Guest, 0, len(pool))
	for i := range pool {
		if pool[i].RSVPStatus == "declined" {
			continue
		}
		if reg.IsSeated(pool[i].ID) {
			continue
		}
		candidates = append(candidates, pool[i])
	}
	return candidates, nil
}

// DIAGNOSTICS

// GetConflicts evaluates the active constraints. A positive
// nearThreshold overrides the configured must_sit_near distance for
// this evaluation only; overridden evaluations bypass the cache.
func (s *service) GetConflicts(ctx context.Context, planID uuid.UUID, nearThreshold float64) (*ConflictReportResponse, error) {
	plan, err := s.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	threshold := s.nearThreshold
	if nearThreshold > 0 {
		threshold = nearThreshold
	}

	var report ConflictReportResponse
	fetch := func() (interface{}, error) {
		return s.buildConflictReport(ctx, planID, threshold)
	}

	if s.cacheService != nil && nearThreshold <= 0 {
		key := constants.PlanConflictsKey(planID.String(), plan.Version)
		if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_PLAN_CONFLICTS, fetch, &report); err != nil {
			return nil, err
		}
		return &report, nil
	}

	built, err := s.buildConflictReport(ctx, planID, threshold)
	if err != nil {
		return nil, err
	}
	return built, nil
}

func (s *service) buildConflictReport(ctx context.Context, planID uuid.UUID, nearThreshold float64) (*ConflictReportResponse, error) {
	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}
	store, err := s.constraintService.LoadStore(ctx, planID)
	if err != nil {
		return nil, err
	}
	guestList, err := s.guestService.GetByWedding(ctx, reg.Plan.WeddingID)
	if err != nil {
		return nil, err
	}

	evals := constraints.Evaluate(reg.Tables, reg.AllSeats(), reg.AllChairSeats(), store.Active(), constraints.DetectorOptions{
		NearDistanceThreshold: nearThreshold,
	})
	warnings := constraints.EvaluatePlusOnes(reg.AllSeats(), guestList)
	satisfied, violated := constraints.CountVerdicts(evals)

	s.log.LogConflictScan(ctx, planID.String(), satisfied, violated)
	if violated > 0 {
		s.publish(ctx, notifications.SeatingEvent{
			Type:      notifications.EventConflictsDetected,
			PlanID:    reg.Plan.ID,
			WeddingID: reg.Plan.WeddingID,
			Payload:   map[string]interface{}{"violated": violated},
		})
	}

	return &ConflictReportResponse{
		PlanID:          planID.String(),
		PlanVersion:     reg.Plan.Version,
		Evaluations:     evals,
		PlusOneWarnings: warnings,
		Satisfied:       satisfied,
		Violated:        violated,
	}, nil
}

func (s *service) GetStats(ctx context.Context, planID uuid.UUID) (*StatsResponse, error) {
	plan, err := s.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	fetch := func() (interface{}, error) {
		return s.buildStats(ctx, planID)
	}

	if s.cacheService != nil {
		var resp StatsResponse
		key := constants.PlanStatsKey(planID.String(), plan.Version)
		if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_PLAN_STATS, fetch, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	}
	return s.buildStats(ctx, planID)
}

func (s *service) buildStats(ctx context.Context, planID uuid.UUID) (*StatsResponse, error) {
	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return nil, err
	}
	store, err := s.constraintService.LoadStore(ctx, planID)
	if err != nil {
		return nil, err
	}
	guestList, err := s.guestService.GetByWedding(ctx, reg.Plan.WeddingID)
	if err != nil {
		return nil, err
	}

	evals := constraints.Evaluate(reg.Tables, reg.AllSeats(), reg.AllChairSeats(), store.Active(), constraints.DetectorOptions{
		NearDistanceThreshold: s.nearThreshold,
	})
	stats := ComputeStats(reg, guestList, evals)

	return &StatsResponse{
		PlanID:      planID.String(),
		PlanVersion: reg.Plan.Version,
		Stats:       stats,
	}, nil
}

// RefreshTotals recounts denormalized seat totals after a layout
// mutation and bumps the plan version.
func (s *service) RefreshTotals(ctx context.Context, planID uuid.UUID) error {
	reg, err := s.loadRegistry(ctx, planID)
	if err != nil {
		return err
	}
	_, err = s.saveRegistry(ctx, reg)
	return err
}

// INTERNAL

func (s *service) loadRegistry(ctx context.Context, planID uuid.UUID) (*Registry, error) {
	plan, tbls, rows, err := s.repo.LoadAggregate(ctx, planID)
	if err != nil {
		return nil, err
	}
	return NewRegistry(plan, tbls, rows)
}

func (s *service) saveRegistry(ctx context.Context, reg *Registry) (*SeatingPlan, error) {
	reg.Recount()
	expected := reg.Plan.Version
	err := s.repo.SaveAssignments(ctx, reg.Plan, expected, reg.DirtySeats(), reg.DirtyChairSeats())
	if err != nil {
		if errors.Is(err, ErrStalePlanVersion) {
			s.log.LogStaleSave(ctx, reg.Plan.ID.String(), expected)
		}
		return nil, err
	}

	s.invalidateCaches(ctx, reg.Plan.ID)
	s.log.LogPlanSaved(ctx, reg.Plan.ID.String(), reg.Plan.Version)
	s.publish(ctx, notifications.SeatingEvent{
		Type:      notifications.EventPlanSaved,
		PlanID:    reg.Plan.ID,
		WeddingID: reg.Plan.WeddingID,
		Payload:   map[string]interface{}{"version": reg.Plan.Version},
	})
	return reg.Plan, nil
}

func (s *service) invalidateCaches(ctx context.Context, planID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	for _, pattern := range constants.PlanInvalidationPatterns(planID.String()) {
		if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
			s.log.WithError(err).Warn("Cache invalidation failed")
		}
	}
}

func (s *service) publish(ctx context.Context, event notifications.SeatingEvent) {
	if err := s.events.PublishSeatingEvent(ctx, event); err != nil {
		s.log.WithError(err).Warn("Failed to publish seating event")
	}
}

func toVenueLayout(req *VenueLayoutRequest) VenueLayout {
	layout := VenueLayout{
		CanvasWidth:  req.CanvasWidth,
		CanvasHeight: req.CanvasHeight,
	}
	for _, a := range req.Areas {
		layout.Areas = append(layout.Areas, CustomArea{
			ID:       uuid.NewString(),
			Type:     AreaType(a.Type),
			Label:    a.Label,
			X:        a.X,
			Y:        a.Y,
			Width:    a.Width,
			Height:   a.Height,
			Rotation: a.Rotation,
		})
	}
	return layout
}

func toDetailResponse(reg *Registry) *PlanDetailResponse {
	detail := &PlanDetailResponse{
		PlanResponse: reg.Plan.ToResponse(),
	}
	for i := range reg.Tables {
		detail.Tables = append(detail.Tables, reg.Tables[i].ToResponse())
	}
	for i := range reg.ChairRows {
		detail.ChairRows = append(detail.ChairRows, reg.ChairRows[i].ToResponse())
	}
	return detail
}

func toAutoAssignResponse(result *assigner.Result, version int) *AutoAssignResponse {
	resp := &AutoAssignResponse{
		Success:         result.Success,
		AssignedCount:   result.AssignedCount,
		UnassignedCount: result.UnassignedCount,
		Suggestions:     result.Suggestions,
		PlanVersion:     version,
	}
	for _, id := range result.UnassignedGuestIDs {
		resp.UnassignedGuestIDs = append(resp.UnassignedGuestIDs, id.String())
	}
	for _, id := range result.ViolatedConstraintIDs {
		resp.ViolatedConstraintIDs = append(resp.ViolatedConstraintIDs, id.String())
	}
	return resp
}
