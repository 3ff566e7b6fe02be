package main

import (
	"log"

	"newsroom-be/internal/config"
	"newsroom-be/internal/model"
	"newsroom-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// Category first so the news FK has a target.
	if err := db.AutoMigrate(&model.Category{}, &model.News{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
