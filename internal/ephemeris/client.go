// Package ephemeris is the HTTP boundary to the Swiss Ephemeris sidecar
// service that performs the raw astronomical computations. The core engine
// only sees the provider interfaces; this package owns transport concerns
// (bounded timeouts, retry on transient failures, response decoding).
package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/astrointeract/astropulse/config"
	"github.com/astrointeract/astropulse/internal/astro"
	"github.com/astrointeract/astropulse/internal/logger"
)

// Client calls the ephemeris sidecar. It implements astro.PositionProvider
// and astro.HouseProvider.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
}

var (
	_ astro.PositionProvider = (*Client)(nil)
	_ astro.HouseProvider    = (*Client)(nil)
)

// NewClient builds a Client from configuration.
//
// Parameters:
//   - cfg (config.EphemerisConfig): base URL, per-call timeout and retry count.
//
// Returns:
//   - *Client: ready to serve provider calls.
func NewClient(cfg config.EphemerisConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
		retries: cfg.Retries,
	}
}

// positionResponse is the sidecar payload for a single body computation.
// Speed is the longitudinal speed in degrees per day; negative means the
// body appears to move backward.
type positionResponse struct {
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
}

// housesResponse is the sidecar payload for a Placidus house computation.
type housesResponse struct {
	Cusps     []float64 `json:"cusps"`
	Ascendant float64   `json:"ascendant"`
}

// solarReturnResponse is the sidecar payload for a solar-return solve.
type solarReturnResponse struct {
	JulianDay float64 `json:"jd"`
}

// Position resolves one body's ecliptic longitude and retrograde state at a
// Julian day. The retrograde flag is derived from the reported speed.
func (c *Client) Position(ctx context.Context, jd float64, body int, helio bool) (astro.Position, error) {
	q := url.Values{}
	q.Set("jd", formatJD(jd))
	q.Set("body", strconv.Itoa(body))
	if helio {
		q.Set("helio", "1")
	}

	var out positionResponse
	if err := c.getJSON(ctx, "/v1/position", q, &out); err != nil {
		return astro.Position{}, fmt.Errorf("ephemeris position body=%d: %w", body, err)
	}
	return astro.Position{Longitude: out.Longitude, Retrograde: out.Speed < 0}, nil
}

// Houses resolves the 12 Placidus cusps and ascendant for a moment and
// place. The sidecar answers 422 when the house system yields no meaningful
// result (e.g. polar latitudes); that surfaces as an error the engine treats
// as non-fatal.
func (c *Client) Houses(ctx context.Context, jd, lat, lon float64) (astro.Houses, error) {
	q := url.Values{}
	q.Set("jd", formatJD(jd))
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("system", "P")

	var out housesResponse
	if err := c.getJSON(ctx, "/v1/houses", q, &out); err != nil {
		return astro.Houses{}, fmt.Errorf("ephemeris houses: %w", err)
	}
	if len(out.Cusps) != 12 {
		return astro.Houses{}, fmt.Errorf("ephemeris houses: got %d cusps, want 12", len(out.Cusps))
	}
	return astro.Houses{Cusps: out.Cusps, Ascendant: out.Ascendant}, nil
}

// SolarReturn locates the Julian day in the given year when the transiting
// Sun returns to its natal longitude. A solve failure is an error; the
// engine degrades that one chart rather than the request.
func (c *Client) SolarReturn(ctx context.Context, natalJD float64, year int) (float64, error) {
	q := url.Values{}
	q.Set("jd", formatJD(natalJD))
	q.Set("year", strconv.Itoa(year))

	var out solarReturnResponse
	if err := c.getJSON(ctx, "/v1/solar-return", q, &out); err != nil {
		return 0, fmt.Errorf("ephemeris solar return year=%d: %w", year, err)
	}
	return out.JulianDay, nil
}

// Ping checks the sidecar's health endpoint. Used by the readiness probe.
func (c *Client) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ephemeris health: status %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET with retry on transient failures (network errors
// and 5xx responses), decoding a 200 body into out. 4xx responses are
// permanent and returned immediately.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	fullURL := c.baseURL + path + "?" + q.Encode()

	var lastErr error
	delay := 100 * time.Millisecond
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			logger.L().Debug().Str("url", path).Int("attempt", attempt).Err(lastErr).Msg("ephemeris retry")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}

		retryable, err := c.attempt(ctx, fullURL, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// attempt runs a single request. The first return reports whether the
// failure is worth retrying.
func (c *Client) attempt(ctx context.Context, fullURL string, out any) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return true, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return true, fmt.Errorf("status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

// formatJD renders a Julian day with full float precision.
func formatJD(jd float64) string {
	return strconv.FormatFloat(jd, 'f', -1, 64)
}
