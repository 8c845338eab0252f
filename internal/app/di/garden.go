// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authentity "garden_backend/internal/feature/auth/domain/entity"
	gardenadapters "garden_backend/internal/feature/garden/adapters"
	"garden_backend/internal/feature/garden/domain/entity"
	gardenhandler "garden_backend/internal/feature/garden/transport/handler"
	"garden_backend/internal/feature/garden/usecase"
	"garden_backend/internal/platform/cache"
)

// Models lists every table for migration.
func Models() []any {
	return []any{
		&entity.Garden{},
		&entity.Bed{},
		&entity.Plant{},
		&entity.Planting{},
		&authentity.User{},
	}
}

// NewPlantRepository returns the gorm plant repository, wrapped in the Redis
// cache when a client is available.
func NewPlantRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.PlantRepository {
	repo := gardenadapters.NewPlantRepository(db)
	if rdb != nil {
		return cache.NewCachingPlantRepository(rdb, ttl, repo, "plants")
	}
	return repo
}

// Garden bundles the garden feature's handlers and the seeding usecase.
type Garden struct {
	Gardens   *gardenhandler.GardenHandler
	Beds      *gardenhandler.BedHandler
	Plantings *gardenhandler.PlantingHandler
	Plants    *gardenhandler.PlantHandler
	Import    *usecase.ImportUsecase
}

// NewGarden wires repositories, usecases and handlers of the garden feature.
func NewGarden(db *gorm.DB, rdb *redis.Client, plantCacheTTL time.Duration) Garden {
	gardenRepo := gardenadapters.NewGardenRepository(db)
	bedRepo := gardenadapters.NewBedRepository(db)
	plantingRepo := gardenadapters.NewPlantingRepository(db)
	plantRepo := NewPlantRepository(rdb, db, plantCacheTTL)

	return Garden{
		Gardens:   gardenhandler.NewGardenHandler(usecase.NewGardenUsecase(gardenRepo)),
		Beds:      gardenhandler.NewBedHandler(usecase.NewBedUsecase(bedRepo, gardenRepo)),
		Plantings: gardenhandler.NewPlantingHandler(usecase.NewPlantingUsecase(plantingRepo, bedRepo, plantRepo)),
		Plants:    gardenhandler.NewPlantHandler(usecase.NewPlantUsecase(plantRepo)),
		Import:    usecase.NewImportUsecase(plantRepo, bedRepo),
	}
}
