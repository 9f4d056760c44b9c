package main

import (
	"log"

	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	logger.Init(c.Config.App.Environment)
	logger.Info("Starting "+c.Config.App.Name, map[string]interface{}{
		"version":     c.Config.App.Version,
		"environment": c.Config.App.Environment,
		"port":        c.Config.App.Port,
	})

	if err := Serve(c); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
