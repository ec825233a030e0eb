package config

import "github.com/joho/godotenv"

// LoadEnv loads variables from local .env files into the process
// environment before New reads it. Variables already set in the
// environment are never overwritten, and missing files are ignored.
// With no arguments it loads "./.env".
//
// Calling LoadEnv is the application's responsibility, not New's: the
// aggregator itself only reads the process environment.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
