package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/jobfit/cmd"
)

func main() {
	// .env is optional. It usually carries GEMINI_API_KEY or GEMINI_API_KEY_FILE.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
