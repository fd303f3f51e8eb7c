package main

import (
	"log"

	"hanlex/internal/app"
	"hanlex/internal/logger"
)

const configPath = "hanlex.yaml"

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
