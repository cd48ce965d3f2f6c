package constraints

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, constraint *SeatingConstraint) error
	GetByID(ctx context.Context, id uuid.UUID) (*SeatingConstraint, error)
	GetByPlan(ctx context.Context, planID uuid.UUID) ([]SeatingConstraint, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, constraint *SeatingConstraint) error {
	return r.db.WithContext(ctx).Create(constraint).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*SeatingConstraint, error) {
	var c SeatingConstraint
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByPlan(ctx context.Context, planID uuid.UUID) ([]SeatingConstraint, error) {
	var list []SeatingConstraint
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&SeatingConstraint{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&SeatingConstraint{}, "id = ?", id).Error
}
