// Command import loads the raw check-in dataset (tab-separated, headerless)
// and the category taxonomy CSV into the sqlite database the server reads
// from.
package main

import (
	"flag"
	"log"

	"github.com/kaa44111/Location-Recommendation-System/internal/config"
	"github.com/kaa44111/Location-Recommendation-System/internal/database"
	"github.com/kaa44111/Location-Recommendation-System/internal/repository"
)

func main() {
	cfg := config.Load()

	datasetPath := flag.String("dataset", cfg.DatasetPath, "path to the check-in TSV file")
	categoriesPath := flag.String("categories", cfg.CategoriesPath, "path to the taxonomy CSV file")
	flag.Parse()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	categories, err := repository.NewCategoryRepository(db).ImportCSV(*categoriesPath)
	if err != nil {
		log.Fatal("Failed to import taxonomy:", err)
	}
	log.Printf("Imported %d categories", categories)

	checkins, err := repository.NewCheckinRepository(db).ImportTSV(*datasetPath)
	if err != nil {
		log.Fatal("Failed to import check-ins:", err)
	}
	log.Printf("Imported %d check-ins", checkins)
}
