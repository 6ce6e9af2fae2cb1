// Package geo resolves free-text locations into coordinates through a
// Nominatim-compatible endpoint, with caching by location string and
// deduplication of concurrent lookups.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/astrointeract/astropulse/config"
)

// Nominatim queries a Nominatim-compatible search endpoint.
type Nominatim struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewNominatim builds the geocoder from configuration.
func NewNominatim(cfg config.GeocoderConfig) *Nominatim {
	return &Nominatim{
		baseURL:   cfg.URL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// searchResult is one entry of a Nominatim search response. Nominatim
// serializes coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves a location to coordinates. found is false when the
// geocoder answered but knows no such place; transport and decode problems
// are returned as errors.
func (n *Nominatim) Lookup(ctx context.Context, location string) (c Coordinates, found bool, err error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.http.Do(req)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, false, fmt.Errorf("geocode: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, false, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("geocode: parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("geocode: parse lon %q: %w", results[0].Lon, err)
	}
	return Coordinates{Lat: lat, Lon: lon}, true, nil
}
