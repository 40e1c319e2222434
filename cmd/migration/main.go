package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations applied successfully")
}
