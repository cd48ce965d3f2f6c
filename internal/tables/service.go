package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatwise/pkg/logger"
)

var ErrTableNotFound = errors.New("table not found")
var ErrChairRowNotFound = errors.New("chair row not found")

// PlanRefresher lets this package tell the plan aggregate to recompute
// its denormalized seat totals (and bump the version) after a layout
// mutation. Implemented by the plans service, injected during wiring.
type PlanRefresher interface {
	RefreshTotals(ctx context.Context, planID uuid.UUID) error
}

type Service interface {
	// Tables
	CreateTable(ctx context.Context, planID uuid.UUID, req CreateTableRequest) (*Table, error)
	GetTable(ctx context.Context, id uuid.UUID) (*Table, error)
	GetTablesByPlan(ctx context.Context, planID uuid.UUID) ([]Table, error)
	UpdateTable(ctx context.Context, id uuid.UUID, req UpdateTableRequest) (*Table, error)
	MoveTable(ctx context.Context, id uuid.UUID, req MoveTableRequest) (*Table, error)
	DeleteTable(ctx context.Context, id uuid.UUID) error

	// Chair rows
	CreateChairRow(ctx context.Context, planID uuid.UUID, req CreateChairRowRequest) (*ChairRow, error)
	GetChairRowsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairRow, error)
	DeleteChairRow(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	refresher PlanRefresher
	log       *logger.Logger
}

func NewService(repo Repository) *service {
	return &service{repo: repo, log: logger.GetDefault()}
}

// SetPlanRefresher injects the plans dependency (wired in api/routes)
func (s *service) SetPlanRefresher(refresher PlanRefresher) {
	s.refresher = refresher
}

// TABLES

func (s *service) CreateTable(ctx context.Context, planID uuid.UUID, req CreateTableRequest) (*Table, error) {
	table := &Table{
		ID:          uuid.New(),
		PlanID:      planID,
		Name:        req.Name,
		Shape:       TableShape(req.Shape),
		Size:        TableSize(req.Size),
		Capacity:    req.Capacity,
		Position:    Position{X: req.Position.X, Y: req.Position.Y},
		Rotation:    NormalizeRotation(req.Rotation),
		HeadSeats:   req.HeadSeats,
		IsVip:       req.IsVip,
		IsHeadTable: req.IsHead,
		Color:       req.Color,
		Notes:       req.Notes,
	}
	if table.Size == "" {
		table.Size = SizeClassForCapacity(table.Capacity)
	}

	seats := GenerateSeats(table)
	if err := s.repo.CreateTable(ctx, table, seats); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	table.Seats = seats

	s.refreshTotals(ctx, planID)
	return table, nil
}

func (s *service) GetTable(ctx context.Context, id uuid.UUID) (*Table, error) {
	table, err := s.repo.GetTableByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return table, nil
}

func (s *service) GetTablesByPlan(ctx context.Context, planID uuid.UUID) ([]Table, error) {
	return s.repo.GetTablesByPlan(ctx, planID)
}

func (s *service) UpdateTable(ctx context.Context, id uuid.UUID, req UpdateTableRequest) (*Table, error) {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Shape != nil {
		updates["shape"] = *req.Shape
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Rotation != nil {
		updates["rotation"] = NormalizeRotation(*req.Rotation)
	}
	if req.HeadSeats != nil {
		updates["head_seats"] = *req.HeadSeats
	}
	if req.IsVip != nil {
		updates["is_vip"] = *req.IsVip
	}
	if req.IsHead != nil {
		updates["is_head_table"] = *req.IsHead
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	capacityChanged := req.Capacity != nil && *req.Capacity != table.Capacity
	if capacityChanged {
		updates["capacity"] = *req.Capacity
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateTable(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update table: %w", err)
		}
	}

	// Capacity change regenerates the seat set; assignments on the old
	// seats are released back to the unassigned pool.
	if capacityChanged {
		fresh, err := s.repo.GetTableByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to reload table: %w", err)
		}
		seats := GenerateSeats(fresh)
		if err := s.repo.ReplaceSeats(ctx, id, seats); err != nil {
			return nil, fmt.Errorf("failed to regenerate seats: %w", err)
		}
	}

	updated, err := s.repo.GetTableByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload table: %w", err)
	}

	s.refreshTotals(ctx, table.PlanID)
	return updated, nil
}

func (s *service) MoveTable(ctx context.Context, id uuid.UUID, req MoveTableRequest) (*Table, error) {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"position_x": req.Position.X,
		"position_y": req.Position.Y,
	}
	if req.Rotation != nil {
		updates["rotation"] = NormalizeRotation(*req.Rotation)
	}

	if err := s.repo.UpdateTable(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to move table: %w", err)
	}

	table.Position = Position{X: req.Position.X, Y: req.Position.Y}
	if req.Rotation != nil {
		table.Rotation = NormalizeRotation(*req.Rotation)
	}
	return table, nil
}

func (s *service) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return err
	}

	// Cascade: seats go with the table, guests return to the unassigned
	// pool. Guests themselves are never deleted.
	if err := s.repo.DeleteTable(ctx, id); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	s.refreshTotals(ctx, table.PlanID)
	return nil
}

// CHAIR ROWS

func (s *service) CreateChairRow(ctx context.Context, planID uuid.UUID, req CreateChairRowRequest) (*ChairRow, error) {
	if req.AisleAfterColumn != nil && *req.AisleAfterColumn >= req.Columns {
		return nil, fmt.Errorf("aisle_after_column must be less than columns")
	}

	row := &ChairRow{
		ID:               uuid.New(),
		PlanID:           planID,
		Name:             req.Name,
		Orientation:      RowOrientation(req.Orientation),
		Rows:             req.Rows,
		Columns:          req.Columns,
		AisleAfterColumn: req.AisleAfterColumn,
		Position:         Position{X: req.Position.X, Y: req.Position.Y},
		Rotation:         NormalizeRotation(req.Rotation),
	}

	seats := GenerateChairSeats(row)
	if err := s.repo.CreateChairRow(ctx, row, seats); err != nil {
		return nil, fmt.Errorf("failed to create chair row: %w", err)
	}
	row.Seats = seats

	s.refreshTotals(ctx, planID)
	return row, nil
}

func (s *service) GetChairRowsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairRow, error) {
	return s.repo.GetChairRowsByPlan(ctx, planID)
}

func (s *service) DeleteChairRow(ctx context.Context, id uuid.UUID) error {
	row, err := s.repo.GetChairRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChairRowNotFound
		}
		return fmt.Errorf("failed to load chair row: %w", err)
	}

	if err := s.repo.DeleteChairRow(ctx, id); err != nil {
		return fmt.Errorf("failed to delete chair row: %w", err)
	}

	s.refreshTotals(ctx, row.PlanID)
	return nil
}

func (s *service) refreshTotals(ctx context.Context, planID uuid.UUID) {
	if s.refresher == nil {
		return
	}
	// Totals refresh is best effort; the next plan load recomputes
	if err := s.refresher.RefreshTotals(ctx, planID); err != nil {
		s.log.WithError(err).WithPlanID(planID.String()).Warn("Plan totals refresh failed")
	}
}
