package exports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seatwise/internal/constraints"
	"seatwise/internal/guests"
	"seatwise/internal/plans"
)

type Service interface {
	BuildExport(ctx context.Context, planID uuid.UUID, req ExportRequest) (*ExportDocument, error)
}

type service struct {
	planService       plans.Service
	constraintService constraints.Service
	guestService      guests.Service
}

func NewService(planService plans.Service, constraintService constraints.Service, guestService guests.Service) Service {
	return &service{
		planService:       planService,
		constraintService: constraintService,
		guestService:      guestService,
	}
}

func (s *service) BuildExport(ctx context.Context, planID uuid.UUID, req ExportRequest) (*ExportDocument, error) {
	detail, err := s.planService.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	doc := &ExportDocument{
		Format:      ExportFormat(req.Format),
		GeneratedAt: time.Now().UTC(),
		Plan:        *detail,
	}

	if req.IncludeGuestList {
		entries, err := s.buildGuestList(ctx, detail)
		if err != nil {
			return nil, err
		}
		doc.GuestList = entries
	}

	if req.IncludeConstraints {
		list, err := s.constraintService.GetConstraintsByPlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		doc.Constraints = list
	}

	if req.IncludeStats {
		stats, err := s.planService.GetStats(ctx, planID)
		if err != nil {
			return nil, err
		}
		doc.Stats = &stats.Stats
	}
	return doc, nil
}

// buildGuestList joins the wedding's guests against the seat map so
// the printout shows where each guest ended up.
func (s *service) buildGuestList(ctx context.Context, detail *plans.PlanDetailResponse) ([]GuestEntry, error) {
	weddingID, err := uuid.Parse(detail.WeddingID)
	if err != nil {
		return nil, fmt.Errorf("invalid wedding id on plan: %w", err)
	}
	guestList, err := s.guestService.GetByWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	seatedAt := make(map[string]string)
	for _, t := range detail.Tables {
		for _, seat := range t.Seats {
			if seat.GuestID != nil {
				seatedAt[*seat.GuestID] = t.Name
			}
		}
	}
	for _, row := range detail.ChairRows {
		for _, seat := range row.Seats {
			if seat.GuestID != nil {
				seatedAt[*seat.GuestID] = row.Name
			}
		}
	}

	entries := make([]GuestEntry, 0, len(guestList))
	for i := range guestList {
		g := &guestList[i]
		location, seated := seatedAt[g.ID.String()]
		entries = append(entries, GuestEntry{
			ID:       g.ID.String(),
			Name:     g.FullName(),
			Category: string(g.Category),
			IsVip:    g.IsVip,
			Seated:   seated,
			SeatedAt: location,
		})
	}
	return entries, nil
}
