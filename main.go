package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/orderdesk/orderdesk/internal/adapters/inbound/cli"
)

func main() {
	// Load .env if present; environment overrides are optional.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
