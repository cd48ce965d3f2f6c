package tables

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Table CRUD
	CreateTable(ctx context.Context, table *Table, seats []Seat) error
	GetTableByID(ctx context.Context, id uuid.UUID) (*Table, error)
	GetTablesByPlan(ctx context.Context, planID uuid.UUID) ([]Table, error)
	UpdateTable(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	ReplaceSeats(ctx context.Context, tableID uuid.UUID, seats []Seat) error
	DeleteTable(ctx context.Context, id uuid.UUID) error

	// Chair rows
	CreateChairRow(ctx context.Context, row *ChairRow, seats []ChairSeat) error
	GetChairRowByID(ctx context.Context, id uuid.UUID) (*ChairRow, error)
	GetChairRowsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairRow, error)
	DeleteChairRow(ctx context.Context, id uuid.UUID) error

	// Seat lookups
	GetSeatsByPlan(ctx context.Context, planID uuid.UUID) ([]Seat, error)
	GetSeatsByTable(ctx context.Context, tableID uuid.UUID) ([]Seat, error)
	GetChairSeatsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairSeat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// TABLE CRUD

func (r *repository) CreateTable(ctx context.Context, table *Table, seats []Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(table).Error; err != nil {
			return err
		}
		if len(seats) > 0 {
			if err := tx.Create(&seats).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) GetTableByID(ctx context.Context, id uuid.UUID) (*Table, error) {
	var table Table
	err := r.db.WithContext(ctx).Preload("Seats").First(&table, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *repository) GetTablesByPlan(ctx context.Context, planID uuid.UUID) ([]Table, error) {
	var list []Table
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("seats.position ASC")
		}).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) UpdateTable(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Table{}).Where("id = ?", id).Updates(updates).Error
}

// ReplaceSeats swaps a table's seat set in one transaction; used when
// capacity changes. Assignments on removed seats are released with them.
func (r *repository) ReplaceSeats(ctx context.Context, tableID uuid.UUID, seats []Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Seat{}, "table_id = ?", tableID).Error; err != nil {
			return err
		}
		if len(seats) > 0 {
			if err := tx.Create(&seats).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) DeleteTable(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Seat{}, "table_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Table{}, "id = ?", id).Error
	})
}

// CHAIR ROWS

func (r *repository) CreateChairRow(ctx context.Context, row *ChairRow, seats []ChairSeat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		if len(seats) > 0 {
			if err := tx.Create(&seats).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) GetChairRowByID(ctx context.Context, id uuid.UUID) (*ChairRow, error) {
	var row ChairRow
	err := r.db.WithContext(ctx).Preload("Seats").First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) GetChairRowsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairRow, error) {
	var list []ChairRow
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("chair_seats.position ASC")
		}).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) DeleteChairRow(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ChairSeat{}, "row_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&ChairRow{}, "id = ?", id).Error
	})
}

// SEAT LOOKUPS

func (r *repository) GetSeatsByPlan(ctx context.Context, planID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("table_id ASC, position ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetSeatsByTable(ctx context.Context, tableID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("position ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetChairSeatsByPlan(ctx context.Context, planID uuid.UUID) ([]ChairSeat, error) {
	var seats []ChairSeat
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("row_id ASC, position ASC").
		Find(&seats).Error
	return seats, err
}
