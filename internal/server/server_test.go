package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulatlas/blueprint/internal/config"
	"github.com/soulatlas/blueprint/internal/logging"
	"github.com/soulatlas/blueprint/internal/shared/errs"
)

func staticConfig() *config.Config {
	cfg := config.Default()
	cfg.Ephemeris.Provider = "static"
	return cfg
}

func TestNewRequiresCredentialsForHTTPProvider(t *testing.T) {
	cfg := config.Default() // provider "http", no credentials

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Ephemeris.Provider = "oracle"

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
}

func TestNewRejectsUnknownLifePathMethod(t *testing.T) {
	cfg := staticConfig()
	cfg.Engine.LifePathMethod = "chaldean"

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
}

func TestServerRoutes(t *testing.T) {
	srv, err := New(staticConfig(), logging.NewNop())
	require.NoError(t, err)

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp["status"])
	})

	t.Run("blueprint via static provider", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"full_name":  "Ada Lovelace",
			"birth_date": "1990-03-29",
			"birth_time": "08:15",
			"timezone":   "Europe/London",
			"location":   map[string]float64{"latitude": 51.5074, "longitude": -0.1278},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/blueprints", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success   bool `json:"success"`
			Blueprint struct {
				Gates    []json.RawMessage `json:"gates"`
				Metadata struct {
					EphemerisSource string `json:"ephemeris_source"`
				} `json:"calculation_metadata"`
			} `json:"blueprint"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Blueprint.Gates, 13)
		assert.Equal(t, "static", resp.Blueprint.Metadata.EphemerisSource)
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "blueprint_computations_total")
	})
}
