// Package main is the entry point for the blueprint engine server.
//
// The server converts birth data (date, local time, coordinates with
// timezone, full name) into a symbolic blueprint: tropical astrology
// longitudes from a pluggable ephemeris provider, a 64-gate body-graph
// overlay with center and channel definition, and a Pythagorean numerology
// profile.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	EPHEMERIS_BASE_URL=... EPHEMERIS_TOKEN_URL=... \
//	EPHEMERIS_CLIENT_ID=... EPHEMERIS_CLIENT_SECRET=... ./server
//
//	# Offline mode with built-in reference readings
//	EPHEMERIS_PROVIDER=static ./server
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
