package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

type gardenGorm struct {
	db *gorm.DB
}

var _ usecase.GardenRepository = (*gardenGorm)(nil)

// NewGardenRepository returns a GardenRepository backed by db.
func NewGardenRepository(db *gorm.DB) *gardenGorm {
	return &gardenGorm{db: db}
}

func (r *gardenGorm) Create(ctx context.Context, g *entity.Garden) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error)
}

func (r *gardenGorm) List(ctx context.Context, page usecase.Page) ([]entity.Garden, error) {
	var gs []entity.Garden
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&gs).Error
	if err != nil {
		return nil, err
	}
	return gs, nil
}

func (r *gardenGorm) FindByID(ctx context.Context, id uint) (*entity.Garden, error) {
	var g entity.Garden
	err := r.db.WithContext(ctx).
		Preload("Beds", func(db *gorm.DB) *gorm.DB { return db.Order("beds.id ASC") }).
		First(&g, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

func (r *gardenGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Garden{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gardenGorm) Update(ctx context.Context, id uint, mutate func(*entity.Garden) error) (*entity.Garden, error) {
	var g entity.Garden
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&g, id).Error; err != nil {
			return err
		}
		if err := mutate(&g); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&g).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

// Delete nulls beds.garden_id before removing the garden.
func (r *gardenGorm) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Garden{}, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Bed{}).Where("garden_id = ?", id).Update("garden_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Garden{}, id).Error
	}))
}
