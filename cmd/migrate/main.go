package main

import (
	"context"
	"log"
	"os"
	"strings"

	"photo-backend/internal/shared/storage/db"
)

func main() {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("migrations applied")
}
