// Command seed imports plants into the catalog and optionally creates demo data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"garden_backend/internal/app/di"
	"garden_backend/internal/feature/garden/adapters/catalog"
	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/platform/config"
	infradb "garden_backend/internal/platform/db"
	"garden_backend/internal/platform/logging"
)

func main() {
	file := flag.String("file", "", "JSON plant catalog to import (defaults to the bundled catalog)")
	demo := flag.Bool("demo", false, "also create the demo bed and planting")
	flag.Parse()

	_ = godotenv.Load()
	logging.Setup(config.String("LOG_LEVEL", "info"))

	var (
		plants []entity.Plant
		err    error
	)
	if *file != "" {
		plants, err = catalog.LoadFile(*file)
	} else {
		plants, err = catalog.DefaultPlants()
	}
	if err != nil {
		log.Fatal("failed to load plants:", err)
	}

	dbCfg := infradb.LoadConfigFromEnv()
	db, err := infradb.Open(dbCfg, 30*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	defer infradb.Close(db)
	if err := infradb.Migrate(db, di.Models()...); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// The seed tool runs without the plant cache.
	garden := di.NewGarden(db, nil, 0)
	res, err := garden.Import.ImportPlants(ctx, plants)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("plants: created=%d skipped=%d failed=%d", res.Created, res.Skipped, res.Failed)

	if *demo {
		created, err := garden.Import.SeedDemo(ctx)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("demo created=%t", created)
	}
	log.Println("seed ok")
}
