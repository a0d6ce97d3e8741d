// Package config provides 12-factor configuration management for the
// blueprint engine.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Ephemeris: upstream ephemeris provider selection and credentials
//   - Engine: calculation engine settings (life-path method)
//   - Logging: log level and output format
//   - RateLimit: per-IP rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - EPHEMERIS_PROVIDER, EPHEMERIS_BASE_URL, EPHEMERIS_TOKEN_URL,
//     EPHEMERIS_CLIENT_ID, EPHEMERIS_CLIENT_SECRET, EPHEMERIS_TIMEOUT,
//     EPHEMERIS_RPS, EPHEMERIS_TOKEN_SKEW
//   - LIFE_PATH_METHOD
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
