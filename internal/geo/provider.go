package geo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/astrointeract/astropulse/internal/astro"
	"github.com/astrointeract/astropulse/internal/logger"
)

// Lookuper is the raw geocoding call Provider wraps. Satisfied by Nominatim.
type Lookuper interface {
	Lookup(ctx context.Context, location string) (Coordinates, bool, error)
}

// Provider implements astro.GeoProvider on top of a raw geocoder:
// results are cached by location string, concurrent lookups for the same
// string are collapsed into one upstream call, and any failure (miss or
// transport error) degrades to the (0, 0) sentinel instead of an error.
type Provider struct {
	geocoder Lookuper
	cache    Cache
	ttl      time.Duration
	flight   singleflight.Group
}

var _ astro.GeoProvider = (*Provider)(nil)

// NewProvider wires the cached geocode provider.
func NewProvider(geocoder Lookuper, cache Cache, ttl time.Duration) *Provider {
	return &Provider{geocoder: geocoder, cache: cache, ttl: ttl}
}

// Geocode resolves a location, consulting the cache first. Lookup failures
// are logged and fall back to (0, 0); only successful resolutions are
// cached, so a transient outage never pins the sentinel.
func (p *Provider) Geocode(ctx context.Context, location string) (lat, lon float64) {
	if c, err := p.cache.Get(ctx, location); err == nil {
		return c.Lat, c.Lon
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.L().Warn().Str("location", location).Err(err).Msg("geocode cache read failed")
	}

	v, err, _ := p.flight.Do(location, func() (any, error) {
		c, found, err := p.geocoder.Lookup(ctx, location)
		if err != nil {
			return Coordinates{}, err
		}
		if !found {
			return Coordinates{}, errors.New("no match")
		}
		if err := p.cache.Set(ctx, location, c, p.ttl); err != nil {
			logger.L().Warn().Str("location", location).Err(err).Msg("geocode cache write failed")
		}
		return c, nil
	})
	if err != nil {
		logger.L().Warn().Str("location", location).Err(err).Msg("geocoding failed, falling back to (0,0)")
		return 0, 0
	}

	c := v.(Coordinates)
	logger.L().Info().Str("location", location).Float64("lat", c.Lat).Float64("lon", c.Lon).Msg("geocoded")
	return c.Lat, c.Lon
}
