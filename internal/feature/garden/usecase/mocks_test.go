package usecase

import (
	"context"

	"garden_backend/internal/feature/garden/domain/entity"
)

type mockGardenRepository struct {
	CreateFunc   func(ctx context.Context, g *entity.Garden) error
	ListFunc     func(ctx context.Context, page Page) ([]entity.Garden, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Garden, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	UpdateFunc   func(ctx context.Context, id uint, mutate func(*entity.Garden) error) (*entity.Garden, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockGardenRepository) Create(ctx context.Context, g *entity.Garden) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	g.ID = 1
	return nil
}

func (m *mockGardenRepository) List(ctx context.Context, page Page) ([]entity.Garden, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockGardenRepository) FindByID(ctx context.Context, id uint) (*entity.Garden, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *mockGardenRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockGardenRepository) Update(ctx context.Context, id uint, mutate func(*entity.Garden) error) (*entity.Garden, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, mutate)
	}
	return nil, ErrNotFound
}

func (m *mockGardenRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockBedRepository struct {
	CreateFunc   func(ctx context.Context, b *entity.Bed) error
	ListFunc     func(ctx context.Context, page Page) ([]entity.Bed, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Bed, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	CountFunc    func(ctx context.Context) (int64, error)
	UpdateFunc   func(ctx context.Context, id uint, mutate func(*entity.Bed) error) (*entity.Bed, error)
	DeleteFunc   func(ctx context.Context, id uint) error

	CreateWithPlantingsFunc func(ctx context.Context, b *entity.Bed, plantings []entity.Planting) error
}

func (m *mockBedRepository) CreateWithPlantings(ctx context.Context, b *entity.Bed, plantings []entity.Planting) error {
	if m.CreateWithPlantingsFunc != nil {
		return m.CreateWithPlantingsFunc(ctx, b, plantings)
	}
	b.ID = 1
	return nil
}

func (m *mockBedRepository) Create(ctx context.Context, b *entity.Bed) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	b.ID = 1
	return nil
}

func (m *mockBedRepository) List(ctx context.Context, page Page) ([]entity.Bed, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockBedRepository) FindByID(ctx context.Context, id uint) (*entity.Bed, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *mockBedRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockBedRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockBedRepository) Update(ctx context.Context, id uint, mutate func(*entity.Bed) error) (*entity.Bed, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, mutate)
	}
	return nil, ErrNotFound
}

func (m *mockBedRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPlantingRepository struct {
	CreateFunc   func(ctx context.Context, p *entity.Planting, plants []entity.Plant) error
	ListFunc     func(ctx context.Context, page Page) ([]entity.Planting, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Planting, error)
	UpdateFunc   func(ctx context.Context, id uint, mutate func(*entity.Planting) error, plants *[]entity.Plant) (*entity.Planting, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockPlantingRepository) Create(ctx context.Context, p *entity.Planting, plants []entity.Plant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p, plants)
	}
	p.ID = 1
	p.Plants = plants
	return nil
}

func (m *mockPlantingRepository) List(ctx context.Context, page Page) ([]entity.Planting, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockPlantingRepository) FindByID(ctx context.Context, id uint) (*entity.Planting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *mockPlantingRepository) Update(ctx context.Context, id uint, mutate func(*entity.Planting) error, plants *[]entity.Plant) (*entity.Planting, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, mutate, plants)
	}
	return nil, ErrNotFound
}

func (m *mockPlantingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPlantRepository struct {
	CreateFunc    func(ctx context.Context, p *entity.Plant) error
	ListFunc      func(ctx context.Context, page Page) ([]entity.Plant, error)
	FindByIDFunc  func(ctx context.Context, id uint) (*entity.Plant, error)
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]entity.Plant, error)
	CountFunc     func(ctx context.Context) (int64, error)
	UpdateFunc    func(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error)
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockPlantRepository) Create(ctx context.Context, p *entity.Plant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

func (m *mockPlantRepository) List(ctx context.Context, page Page) ([]entity.Plant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockPlantRepository) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *mockPlantRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return []entity.Plant{}, nil
}

func (m *mockPlantRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockPlantRepository) Update(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, mutate)
	}
	return nil, ErrNotFound
}

func (m *mockPlantRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
