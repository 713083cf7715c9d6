package main

import (
	"log"

	"github.com/joho/godotenv"

	"imobigest/cmd"
	"imobigest/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// The logger starts with defaults; commands that load the full
	// configuration re-apply the configured level and format.
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}
