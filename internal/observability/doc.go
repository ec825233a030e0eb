// Package observability builds the structured logging surface for the
// trading system from its monitoring configuration. Every subsystem
// (ingestion, models, execution, persistence) receives the *zap.Logger
// constructed here via dependency injection.
package observability
