package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/soulatlas/blueprint/internal/api/http"
	"github.com/soulatlas/blueprint/internal/api/middleware"
	"github.com/soulatlas/blueprint/internal/blueprint"
	"github.com/soulatlas/blueprint/internal/config"
	"github.com/soulatlas/blueprint/internal/ephemeris"
	"github.com/soulatlas/blueprint/internal/logging"
	"github.com/soulatlas/blueprint/internal/monitoring"
	"github.com/soulatlas/blueprint/internal/numerology"
	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Server hosts the blueprint API.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	logger  *logging.Logger
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewDefault()
	}

	metrics := monitoring.New()

	provider, err := newProvider(cfg.Ephemeris, logger, metrics)
	if err != nil {
		return nil, err
	}

	method, err := lifePathMethod(cfg.Engine.LifePathMethod)
	if err != nil {
		return nil, err
	}

	engine := blueprint.NewAssembler(provider,
		blueprint.WithLifePathMethod(method),
		blueprint.WithLogger(logger.Named("engine")),
		blueprint.WithMetrics(metrics),
	)
	handlers := apihttp.NewHandlers(engine, logger.Named("api"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(middleware.BodyLimit(middleware.MaxBodySize))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	router.POST("/v1/blueprints", handlers.CreateBlueprint)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Router exposes the gin engine. Used in tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpSrv.Shutdown(ctx)
}

// newProvider selects the ephemeris provider. "http" requires the full
// credential set; "static" serves the built-in reference readings and is
// meant for offline operation and demos.
func newProvider(cfg config.EphemerisConfig, logger *logging.Logger, metrics *monitoring.Metrics) (ephemeris.Provider, error) {
	switch cfg.Provider {
	case "http":
		client, err := ephemeris.NewClient(ephemeris.Config{
			BaseURL:           cfg.BaseURL,
			TokenURL:          cfg.TokenURL,
			ClientID:          cfg.ClientID,
			ClientSecret:      cfg.ClientSecret,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
			TokenSkew:         cfg.TokenSkew,
		}, logger.Named("ephemeris"))
		if err != nil {
			return nil, err
		}
		return client.WithMetrics(metrics), nil
	case "static":
		return &ephemeris.Static{Readings: referenceReadings()}, nil
	default:
		return nil, errs.Configuration("unknown ephemeris provider %q", cfg.Provider)
	}
}

// lifePathMethod parses the configured method name.
func lifePathMethod(name string) (numerology.LifePathMethod, error) {
	switch numerology.LifePathMethod(name) {
	case numerology.MethodComponent:
		return numerology.MethodComponent, nil
	case numerology.MethodFullDigit:
		return numerology.MethodFullDigit, nil
	default:
		return "", errs.Configuration("unknown life-path method %q", name)
	}
}

// referenceReadings are mean ecliptic longitudes at the J2000.0 epoch. The
// static provider returns them for every instant, which keeps the whole
// pipeline runnable without upstream credentials.
func referenceReadings() map[ephemeris.Body]ephemeris.Reading {
	return map[ephemeris.Body]ephemeris.Reading{
		ephemeris.BodySun:       {Longitude: 280.460},
		ephemeris.BodyEarth:     {Longitude: 100.460},
		ephemeris.BodyMoon:      {Longitude: 218.316},
		ephemeris.BodyMercury:   {Longitude: 252.251},
		ephemeris.BodyVenus:     {Longitude: 181.980},
		ephemeris.BodyMars:      {Longitude: 355.433},
		ephemeris.BodyJupiter:   {Longitude: 34.351},
		ephemeris.BodySaturn:    {Longitude: 50.077},
		ephemeris.BodyUranus:    {Longitude: 314.055},
		ephemeris.BodyNeptune:   {Longitude: 304.349},
		ephemeris.BodyPluto:     {Longitude: 238.929},
		ephemeris.BodyNorthNode: {Longitude: 125.080},
		ephemeris.BodySouthNode: {Longitude: 305.080},
	}
}
