package guests

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]Guest, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Guest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Guest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]Guest, error) {
	var list []Guest
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("last_name ASC, first_name ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Guest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []Guest
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Guest, error) {
	var guest Guest
	if err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}
