package main

import (
	"context"
	"log"
	"os"

	"cafecart/internal/config"
	"cafecart/internal/db"
	"cafecart/internal/repository/catalog"
	"cafecart/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, catalog.NewPostgres(pool, logger)); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	logger.Println("catalog seeded")
}
