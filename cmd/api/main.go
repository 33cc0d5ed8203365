package main

import (
	"log"
	"os"

	_ "printshop/docs"
	"printshop/internal/adapter/http/routes"
	"printshop/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Printshop Back-office API
// @version         1.0
// @description     Order book, colour and filament catalogs, and dashboard analytics for a 3D-print workshop, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := logger.Initialize(level, os.Getenv("APP_ENV")); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	routes.Run()
}
