package ephemeris

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/soulatlas/blueprint/internal/logging"
	"github.com/soulatlas/blueprint/internal/monitoring"
	"github.com/soulatlas/blueprint/internal/resilience"
	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Config configures the HTTP ephemeris client.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	// Timeout bounds every upstream call. Zero means 10s.
	Timeout time.Duration
	// RequestsPerSecond limits the upstream call rate. Zero means unlimited.
	RequestsPerSecond float64
	// TokenSkew is how long before expiry the token refreshes. Zero means 30s.
	TokenSkew time.Duration
}

// Client talks to a remote ephemeris service over HTTP. Requests always ask
// for the tropical frame (ayanamsa 0) and authenticate with a bearer token
// obtained through a client-credentials exchange.
type Client struct {
	http    *resty.Client
	tokens  *TokenCache
	limiter *rate.Limiter
	breaker *resilience.Breaker
	logger  *logging.Logger
	metrics *monitoring.Metrics
	cfg     Config
}

// NewClient creates the HTTP client. Missing credentials are a
// configuration error: there is no anonymous mode.
func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	if cfg.BaseURL == "" || cfg.TokenURL == "" {
		return nil, errs.Configuration("ephemeris base and token URLs are required")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errs.Configuration("ephemeris client credentials are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	// Transient upstream failures (connection resets, 5xx, 429) retry at
	// the transport level; auth handling stays in this client.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil

	httpClient := resty.NewWithClient(retryClient.StandardClient()).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "blueprint-engine/1.0")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1)
	}

	c := &Client{
		http:    httpClient,
		limiter: limiter,
		breaker: resilience.New("ephemeris", resilience.Settings{
			FailureThreshold: 5,
			Cooldown:         30 * time.Second,
		}),
		logger: logger,
		cfg:    cfg,
	}
	c.tokens = NewTokenCache(c.exchangeToken, cfg.TokenSkew)
	return c, nil
}

// WithMetrics attaches upstream metrics collection.
func (c *Client) WithMetrics(m *monitoring.Metrics) *Client {
	c.metrics = m
	return c
}

// tokenResponse is the client-credentials exchange payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// exchangeToken performs the client-credentials grant.
func (c *Client) exchangeToken(ctx context.Context) (string, time.Duration, error) {
	var body tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		SetResult(&body).
		Post(c.cfg.TokenURL)

	if err != nil {
		c.observeToken("error")
		return "", 0, errs.Upstream(err, "token exchange failed")
	}
	if resp.StatusCode() != http.StatusOK {
		c.observeToken("error")
		return "", 0, errs.Upstream(nil, "token exchange returned %d", resp.StatusCode())
	}
	if body.AccessToken == "" || body.ExpiresIn <= 0 {
		c.observeToken("error")
		return "", 0, errs.Upstream(nil, "token exchange returned an unusable token")
	}

	c.observeToken("ok")
	return body.AccessToken, time.Duration(body.ExpiresIn) * time.Second, nil
}

// positionEntry is one body in the upstream payload.
type positionEntry struct {
	ID           *int    `json:"id"`
	Name         string  `json:"name"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Speed        float64 `json:"speed"`
	IsRetrograde bool    `json:"is_retrograde"`
}

// positionsResponse is the upstream payload envelope.
type positionsResponse struct {
	Data struct {
		Positions []positionEntry `json:"planet_position"`
	} `json:"data"`
}

// Positions fetches the snapshot for one instant. Individual bodies missing
// from the payload become unresolved entries; only transport-level failures
// abort the snapshot.
func (c *Client) Positions(ctx context.Context, instant time.Time, loc Location) (*Snapshot, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := c.fetch(ctx, instant, loc, true)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (c *Client) fetch(ctx context.Context, instant time.Time, loc Location, retryAuth bool) (*Snapshot, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.Upstream(err, "rate limiter interrupted")
	}

	var body positionsResponse
	var resp *resty.Response
	start := time.Now()
	err = c.breaker.Do(func() error {
		var reqErr error
		resp, reqErr = c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParams(map[string]string{
				"datetime":    instant.UTC().Format(time.RFC3339),
				"coordinates": formatCoordinates(loc),
				"ayanamsa":    "0", // tropical frame, always
			}).
			SetResult(&body).
			Get(c.cfg.BaseURL)
		if reqErr != nil {
			return reqErr
		}
		if resp.IsError() {
			return errs.Upstream(nil, "ephemeris returned %d", resp.StatusCode())
		}
		return nil
	})

	if err != nil {
		c.observeEphemeris("error", time.Since(start))
		if resp != nil && resp.StatusCode() == http.StatusUnauthorized && retryAuth {
			// The cached token was revoked upstream: refresh once and retry.
			c.tokens.Invalidate()
			return c.fetch(ctx, instant, loc, false)
		}
		if kindOf := errs.KindOf(err); kindOf == errs.KindUpstream {
			return nil, err
		}
		return nil, errs.Upstream(err, "ephemeris request failed")
	}
	c.observeEphemeris("ok", time.Since(start))

	return c.assemble(instant, body.Data.Positions), nil
}

// assemble matches payload entries to canonical bodies. A body with no
// matching entry is recorded as unresolved, never defaulted. Earth is not
// served by ephemeris providers; it is derived as the point opposite the
// Sun, and is unresolved whenever the Sun is.
func (c *Client) assemble(instant time.Time, entries []positionEntry) *Snapshot {
	snapshot := &Snapshot{
		Instant: instant.UTC(),
		Source:  "ephemeris-http",
		Bodies:  make(map[Body]Reading, len(Bodies)),
	}

	for _, b := range Bodies {
		if b == BodyEarth {
			continue
		}
		entry, ok := matchEntry(b, entries)
		if !ok {
			snapshot.Unresolved = append(snapshot.Unresolved, b)
			c.logger.Warn("ephemeris body unresolved",
				zap.String("body", string(b)),
				zap.Time("instant", instant),
			)
			continue
		}
		snapshot.Bodies[b] = Reading{
			Longitude:  normalizeLongitude(entry.Longitude),
			Latitude:   entry.Latitude,
			Speed:      entry.Speed,
			Retrograde: entry.IsRetrograde,
		}
	}

	if sun, ok := snapshot.Bodies[BodySun]; ok {
		snapshot.Bodies[BodyEarth] = Reading{
			Longitude:  normalizeLongitude(sun.Longitude + 180),
			Latitude:   -sun.Latitude,
			Speed:      sun.Speed,
			Retrograde: sun.Retrograde,
		}
	} else {
		snapshot.Unresolved = append(snapshot.Unresolved, BodyEarth)
	}

	return snapshot
}

// bodyIDs are the numeric ids upstream services use for each body. North
// and south node appear under both plain and Vedic numbering.
var bodyIDs = map[Body][]int{
	BodySun:       {0},
	BodyMoon:      {1},
	BodyMercury:   {2},
	BodyVenus:     {3},
	BodyMars:      {4},
	BodyJupiter:   {5},
	BodySaturn:    {6},
	BodyUranus:    {7},
	BodyNeptune:   {8},
	BodyPluto:     {9},
	BodyNorthNode: {10, 100},
	BodySouthNode: {11, 101},
}

// bodyAliases are lowercase name fragments accepted for each body.
var bodyAliases = map[Body][]string{
	BodySun:       {"sun"},
	BodyMoon:      {"moon"},
	BodyMercury:   {"mercury"},
	BodyVenus:     {"venus"},
	BodyMars:      {"mars"},
	BodyJupiter:   {"jupiter"},
	BodySaturn:    {"saturn"},
	BodyUranus:    {"uranus"},
	BodyNeptune:   {"neptune"},
	BodyPluto:     {"pluto"},
	BodyNorthNode: {"north node", "rahu", "true node", "mean node"},
	BodySouthNode: {"south node", "ketu"},
}

// matchEntry finds the payload entry for a canonical body by numeric id or
// name fragment.
func matchEntry(b Body, entries []positionEntry) (positionEntry, bool) {
	for _, e := range entries {
		if e.ID != nil {
			for _, id := range bodyIDs[b] {
				if *e.ID == id {
					return e, true
				}
			}
		}
		name := strings.ToLower(e.Name)
		for _, alias := range bodyAliases[b] {
			if name == alias || strings.Contains(name, alias) {
				return e, true
			}
		}
	}
	return positionEntry{}, false
}

func formatCoordinates(loc Location) string {
	return fmt.Sprintf("%.6f,%.6f", loc.Latitude, loc.Longitude)
}

// normalizeLongitude brings a longitude into [0,360).
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

func (c *Client) observeToken(status string) {
	if c.metrics != nil {
		c.metrics.ObserveTokenRefresh(status)
	}
}

func (c *Client) observeEphemeris(status string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveEphemeris(status, d)
	}
}
