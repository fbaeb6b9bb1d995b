// Package config defines environment variable keys for configuration.
package config

const (
	// Server
	EnvPort            = "COURSEBOT_PORT"
	EnvLogLevel        = "COURSEBOT_LOG_LEVEL"
	EnvShutdownTimeout = "COURSEBOT_SHUTDOWN_TIMEOUT"
	EnvStaticDir       = "COURSEBOT_STATIC_DIR"

	// Data
	EnvDataPath = "COURSEBOT_DATA_PATH"

	// Neo4j knowledge graph
	EnvNeo4jEnabled  = "COURSEBOT_NEO4J_ENABLED"
	EnvNeo4jURI      = "COURSEBOT_NEO4J_URI"
	EnvNeo4jUser     = "COURSEBOT_NEO4J_USER"
	EnvNeo4jPassword = "COURSEBOT_NEO4J_PASSWORD" //nolint:gosec // Env var key, not a credential.
	EnvNeo4jDatabase = "COURSEBOT_NEO4J_DATABASE"

	// Seeding
	EnvSeedWorkers = "COURSEBOT_SEED_WORKERS"

	// Sentry Feature
	EnvSentryDSN         = "COURSEBOT_SENTRY_DSN"
	EnvSentryEnvironment = "COURSEBOT_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "COURSEBOT_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "COURSEBOT_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "COURSEBOT_BETTERSTACK_ENDPOINT"
)
