package plans

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatwise/internal/constraints"
	"seatwise/internal/tables"
)

type Repository interface {
	Create(ctx context.Context, plan *SeatingPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*SeatingPlan, error)
	GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]SeatingPlan, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LoadAggregate fetches the plan with its full layout: tables with
	// seats and chair rows with chairs, ordered for stable iteration.
	LoadAggregate(ctx context.Context, id uuid.UUID) (*SeatingPlan, []tables.Table, []tables.ChairRow, error)

	// SaveAssignments persists changed seats together with the plan's
	// refreshed totals under an optimistic version check. RowsAffected
	// zero on the plan row means another session saved first.
	SaveAssignments(ctx context.Context, plan *SeatingPlan, expectedVersion int, seats []tables.Seat, chairSeats []tables.ChairSeat) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, plan *SeatingPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*SeatingPlan, error) {
	var plan SeatingPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *repository) GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]SeatingPlan, error) {
	var list []SeatingPlan
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&SeatingPlan{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&tables.Seat{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&tables.ChairSeat{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&tables.Table{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&tables.ChairRow{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&constraints.SeatingConstraint{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&SeatingPlan{}, "id = ?", id).Error
	})
}

func (r *repository) LoadAggregate(ctx context.Context, id uuid.UUID) (*SeatingPlan, []tables.Table, []tables.ChairRow, error) {
	plan, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	var tbls []tables.Table
	err = r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("seats.position ASC")
		}).
		Where("plan_id = ?", id).
		Order("created_at ASC").
		Find(&tbls).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var rows []tables.ChairRow
	err = r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("chair_seats.position ASC")
		}).
		Where("plan_id = ?", id).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, nil, nil, err
	}
	return plan, tbls, rows, nil
}

func (r *repository) SaveAssignments(ctx context.Context, plan *SeatingPlan, expectedVersion int, seats []tables.Seat, chairSeats []tables.ChairSeat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&SeatingPlan{}).
			Where("id = ? AND version = ?", plan.ID, expectedVersion).
			Updates(map[string]interface{}{
				"total_seats":     plan.TotalSeats,
				"assigned_seats":  plan.AssignedSeats,
				"available_seats": plan.AvailableSeats,
				"version":         expectedVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStalePlanVersion
		}
		plan.Version = expectedVersion + 1

		for i := range seats {
			err := tx.Model(&tables.Seat{}).
				Where("id = ?", seats[i].ID).
				Update("guest_id", seats[i].GuestID).Error
			if err != nil {
				return err
			}
		}
		for i := range chairSeats {
			err := tx.Model(&tables.ChairSeat{}).
				Where("id = ?", chairSeats[i].ID).
				Update("guest_id", chairSeats[i].GuestID).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
