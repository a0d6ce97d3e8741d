// Package server provides HTTP server setup and initialization for the
// blueprint engine.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (CORS, rate limiting, recovery, metrics)
//   - Ephemeris provider selection (remote HTTP or static readings)
//   - Calculation engine wiring
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Initialize logger (production or development)
//  3. Build the ephemeris provider from configuration
//  4. Wire the calculation engine and handlers
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server
//  7. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg, nil)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
