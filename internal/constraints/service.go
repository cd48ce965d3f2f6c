package constraints

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"seatwise/internal/guests"
	"seatwise/pkg/logger"
)

type Service interface {
	CreateConstraint(ctx context.Context, planID uuid.UUID, req CreateConstraintRequest) (*ConstraintResponse, error)
	GetConstraintsByPlan(ctx context.Context, planID uuid.UUID) ([]ConstraintResponse, error)
	SetConstraintActive(ctx context.Context, id uuid.UUID, active bool) (*ConstraintResponse, error)
	DeleteConstraint(ctx context.Context, id uuid.UUID) error

	// LoadStore materializes the active rules of a plan into an
	// in-memory store for conflict scans and auto assignment.
	LoadStore(ctx context.Context, planID uuid.UUID) (*Store, error)
}

type service struct {
	repo         Repository
	guestService guests.Service
	log          *logger.Logger
}

func NewService(repo Repository, guestService guests.Service) Service {
	return &service{
		repo:         repo,
		guestService: guestService,
		log:          logger.GetDefault(),
	}
}

func (s *service) CreateConstraint(ctx context.Context, planID uuid.UUID, req CreateConstraintRequest) (*ConstraintResponse, error) {
	guestIDs := make(GuestIDList, 0, len(req.GuestIDs))
	for _, raw := range req.GuestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConstraintReference, raw)
		}
		guestIDs = append(guestIDs, id)
	}
	guestIDs = guestIDs.Distinct()

	constraint := &SeatingConstraint{
		PlanID:   planID,
		Type:     ConstraintType(req.Type),
		GuestIDs: guestIDs,
		Priority: Priority(req.Priority),
		IsActive: true,
		Note:     req.Note,
	}
	if constraint.Priority == "" {
		constraint.Priority = PriorityMedium
	}

	known, err := s.guestService.KnownIDs(ctx, guestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify guest references: %w", err)
	}
	for _, id := range guestIDs {
		if !known[id] {
			return nil, fmt.Errorf("%w: guest %s", ErrInvalidConstraintReference, id)
		}
	}

	// Shape validation and contradiction detection run against the
	// plan's current rule set before anything is persisted.
	store, err := s.LoadStore(ctx, planID)
	if err != nil {
		return nil, err
	}
	report, err := store.Add(*constraint)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, constraint); err != nil {
		return nil, fmt.Errorf("failed to create constraint: %w", err)
	}

	resp := constraint.ToResponse()
	if len(report.ContradictsWith) > 0 {
		ids := make([]string, 0, len(report.ContradictsWith))
		for _, id := range report.ContradictsWith {
			ids = append(ids, id.String())
		}
		resp.ContradictsWith = ids
		s.log.WithFields(map[string]interface{}{
			"plan_id":          planID.String(),
			"constraint_id":    constraint.ID.String(),
			"contradicts_with": ids,
		}).Warn("Constraint contradicts existing rules")
	}

	return &resp, nil
}

func (s *service) GetConstraintsByPlan(ctx context.Context, planID uuid.UUID) ([]ConstraintResponse, error) {
	list, err := s.repo.GetByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get constraints: %w", err)
	}
	responses := make([]ConstraintResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses, nil
}

func (s *service) SetConstraintActive(ctx context.Context, id uuid.UUID, active bool) (*ConstraintResponse, error) {
	constraint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if constraint.IsActive != active {
		if err := s.repo.SetActive(ctx, id, active); err != nil {
			return nil, fmt.Errorf("failed to update constraint: %w", err)
		}
		constraint.IsActive = active
	}
	resp := constraint.ToResponse()
	return &resp, nil
}

func (s *service) DeleteConstraint(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) LoadStore(ctx context.Context, planID uuid.UUID) (*Store, error) {
	list, err := s.repo.GetByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load constraints: %w", err)
	}
	return NewStore(list), nil
}
