package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
)

type plantingGorm struct {
	db *gorm.DB
}

var _ usecase.PlantingRepository = (*plantingGorm)(nil)

// NewPlantingRepository returns a PlantingRepository backed by db.
func NewPlantingRepository(db *gorm.DB) *plantingGorm {
	return &plantingGorm{db: db}
}

func orderPlants(db *gorm.DB) *gorm.DB {
	return db.Order("plants.id ASC")
}

func (r *plantingGorm) Create(ctx context.Context, p *entity.Planting, plants []entity.Plant) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Plants = nil
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		if len(plants) == 0 {
			p.Plants = []entity.Plant{}
			return nil
		}
		return tx.Model(p).Association("Plants").Append(plants)
	}))
}

func (r *plantingGorm) List(ctx context.Context, page usecase.Page) ([]entity.Planting, error) {
	var ps []entity.Planting
	err := r.db.WithContext(ctx).
		Preload("Plants", orderPlants).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *plantingGorm) FindByID(ctx context.Context, id uint) (*entity.Planting, error) {
	var p entity.Planting
	err := r.db.WithContext(ctx).
		Preload("Bed").
		Preload("Plants", orderPlants).
		First(&p, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *plantingGorm) Update(ctx context.Context, id uint, mutate func(*entity.Planting) error, plants *[]entity.Plant) (*entity.Planting, error) {
	var p entity.Planting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := mutate(&p); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&p).Error; err != nil {
			return err
		}
		if plants != nil {
			assoc := tx.Model(&p).Association("Plants")
			var err error
			if len(*plants) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(*plants)
			}
			if err != nil {
				return err
			}
		}
		return tx.Model(&p).Order("plants.id ASC").Association("Plants").Find(&p.Plants)
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *plantingGorm) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Planting{}, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM planting_plants WHERE planting_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Planting{}, id).Error
	}))
}
