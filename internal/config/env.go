package config

import (
	"github.com/joho/godotenv"
)

func init() {
	// Load launcher.env silently if it exists
	// This runs before any other init functions and only feeds the
	// launcher's own LOGSHORT_* defaults, never scanner credentials
	_ = godotenv.Load("launcher.env")
}
