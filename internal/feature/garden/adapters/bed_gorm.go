package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

type bedGorm struct {
	db *gorm.DB
}

var (
	_ usecase.BedRepository = (*bedGorm)(nil)
	_ usecase.DemoBedStore  = (*bedGorm)(nil)
)

// NewBedRepository returns a BedRepository backed by db.
func NewBedRepository(db *gorm.DB) *bedGorm {
	return &bedGorm{db: db}
}

func (r *bedGorm) Create(ctx context.Context, b *entity.Bed) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

// CreateWithPlantings inserts b and its plantings in one transaction. Each
// planting is attached to b; nothing is kept if any insert fails.
func (r *bedGorm) CreateWithPlantings(ctx context.Context, b *entity.Bed, plantings []entity.Planting) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		for i := range plantings {
			plantings[i].BedID = &b.ID
			if err := tx.Omit(clause.Associations).Create(&plantings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

func (r *bedGorm) List(ctx context.Context, page usecase.Page) ([]entity.Bed, error) {
	var bs []entity.Bed
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&bs).Error
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *bedGorm) FindByID(ctx context.Context, id uint) (*entity.Bed, error) {
	var b entity.Bed
	if err := r.db.WithContext(ctx).Preload("Garden").First(&b, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *bedGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Bed{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *bedGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Bed{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *bedGorm) Update(ctx context.Context, id uint, mutate func(*entity.Bed) error) (*entity.Bed, error) {
	var b entity.Bed
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		if err := mutate(&b); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&b).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

// Delete nulls plantings.bed_id before removing the bed.
func (r *bedGorm) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Bed{}, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Planting{}).Where("bed_id = ?", id).Update("bed_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Bed{}, id).Error
	}))
}
