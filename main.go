package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/ai-readiness/cmd"
)

func main() {
	// A missing .env is fine, a broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading .env: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
