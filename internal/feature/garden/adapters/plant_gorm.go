package adapters

import (
	"context"

	"gorm.io/gorm"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

type plantGorm struct {
	db *gorm.DB
}

var _ usecase.PlantRepository = (*plantGorm)(nil)

// NewPlantRepository returns a PlantRepository backed by db.
func NewPlantRepository(db *gorm.DB) *plantGorm {
	return &plantGorm{db: db}
}

func (r *plantGorm) Create(ctx context.Context, p *entity.Plant) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *plantGorm) List(ctx context.Context, page usecase.Page) ([]entity.Plant, error) {
	var ps []entity.Plant
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *plantGorm) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	var p entity.Plant
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *plantGorm) FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error) {
	ps := []entity.Plant{}
	if len(ids) == 0 {
		return ps, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *plantGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Plant{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *plantGorm) Update(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error) {
	var p entity.Plant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := mutate(&p); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *plantGorm) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Plant{}, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM planting_plants WHERE plant_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Plant{}, id).Error
	}))
}
