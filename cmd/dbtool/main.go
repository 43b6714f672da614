package main

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/adapters/repositories"
	"delivery-time-service/internal/config"
	"delivery-time-service/internal/platform/db"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}
}

func initSchema(ctx context.Context, conn *sql.DB) error {
	log.Println("Initializing prediction log schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	return nil
}
