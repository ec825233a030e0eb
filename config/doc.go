// Package config is the centralized configuration surface for the trading
// system. It aggregates strongly typed parameter groups for data ingestion,
// model training, trade execution, Firebase persistence, and monitoring,
// resolves environment overrides, and fails fast at construction when
// required environment variables are missing.
//
// Construction happens once, at process startup:
//
//	config.LoadEnv()
//	cfg, err := config.New()
//
// A successfully constructed Config is read-only reference data for the
// process lifetime and is safe for concurrent readers.
package config
