package main

import (
	"log"

	"github.com/kaa44111/Location-Recommendation-System/internal/api"
	"github.com/kaa44111/Location-Recommendation-System/internal/config"
	"github.com/kaa44111/Location-Recommendation-System/internal/database"
	"github.com/kaa44111/Location-Recommendation-System/internal/repository"
	"github.com/kaa44111/Location-Recommendation-System/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	raw, err := repository.NewCheckinRepository(db).LoadAll()
	if err != nil {
		log.Fatal("Failed to load check-ins:", err)
	}
	taxonomy, err := repository.NewCategoryRepository(db).LoadAll()
	if err != nil {
		log.Fatal("Failed to load taxonomy:", err)
	}

	// Enrichment, profiles, and the similarity matrix are built once here;
	// everything downstream reads them without locking.
	log.Printf("Building enriched dataset from %d raw check-ins", len(raw))
	svc, err := service.NewRecommendService(raw, taxonomy)
	if err != nil {
		log.Fatal("Failed to build dataset:", err)
	}
	stats := svc.Stats()
	log.Printf("Dataset ready: %d check-ins, %d users, %d venues",
		stats.Checkins, stats.Users, stats.Venues)

	router := api.SetupRouter(cfg, svc)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
