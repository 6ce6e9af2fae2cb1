package ephemeris

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/astrointeract/astropulse/config"
	"github.com/astrointeract/astropulse/internal/logger"
)

func init() {
	logger.Init()
}

func newTestClient(url string, retries int) *Client {
	return NewClient(config.EphemerisConfig{
		URL:     url,
		Timeout: 2 * time.Second,
		Retries: retries,
	})
}

func TestPosition_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/position" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("jd") != "2451545" || q.Get("body") != "4" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("helio") != "" {
			t.Errorf("helio flag set on a geocentric call")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"longitude": 123.45, "speed": 0.52}`))
	}))
	defer srv.Close()

	pos, err := newTestClient(srv.URL, 0).Position(context.Background(), 2451545.0, 4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Longitude != 123.45 || pos.Retrograde {
		t.Fatalf("unexpected position: %+v", pos)
	}
}

func TestPosition_RetrogradeFromNegativeSpeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"longitude": 10.0, "speed": -0.1}`))
	}))
	defer srv.Close()

	pos, err := newTestClient(srv.URL, 0).Position(context.Background(), 2451545.0, 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pos.Retrograde {
		t.Fatalf("expected retrograde for negative speed")
	}
}

func TestPosition_HelioFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("helio") != "1" {
			t.Errorf("expected helio=1, got %q", r.URL.Query().Get("helio"))
		}
		_, _ = w.Write([]byte(`{"longitude": 200.0, "speed": 1.0}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, 0).Position(context.Background(), 2451545.0, 14, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"longitude": 42.0, "speed": 1.0}`))
	}))
	defer srv.Close()

	pos, err := newTestClient(srv.URL, 3).Position(context.Background(), 2451545.0, 0, false)
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if pos.Longitude != 42 {
		t.Fatalf("unexpected longitude %v", pos.Longitude)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestGetJSON_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 2).Position(context.Background(), 2451545.0, 0, false)
	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", got)
	}
}

func TestGetJSON_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`house system failed`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 3).Houses(context.Background(), 2451545.0, 89.9, 0)
	if err == nil {
		t.Fatalf("expected error for 422")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Fatalf("error should carry the status: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", got)
	}
}

func TestHouses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("system") != "P" {
			t.Errorf("expected Placidus system, got %q", q.Get("system"))
		}
		if q.Get("lat") != "51.5" || q.Get("lon") != "-0.12" {
			t.Errorf("unexpected coordinates: %v", q)
		}
		_, _ = w.Write([]byte(`{"cusps": [10,40,70,100,130,160,190,220,250,280,310,340], "ascendant": 10}`))
	}))
	defer srv.Close()

	houses, err := newTestClient(srv.URL, 0).Houses(context.Background(), 2451545.0, 51.5, -0.12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(houses.Cusps) != 12 || houses.Cusps[0] != 10 || houses.Ascendant != 10 {
		t.Fatalf("unexpected houses: %+v", houses)
	}
}

func TestHouses_RejectsWrongCuspCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cusps": [10, 40, 70], "ascendant": 10}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, 0).Houses(context.Background(), 2451545.0, 0, 0); err == nil {
		t.Fatalf("expected error for truncated cusp list")
	}
}

func TestSolarReturn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("year") != "2026" {
			t.Errorf("unexpected year %q", q.Get("year"))
		}
		_, _ = w.Write([]byte(`{"jd": 2461200.25}`))
	}))
	defer srv.Close()

	jd, err := newTestClient(srv.URL, 0).SolarReturn(context.Background(), 2451545.0, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jd != 2461200.25 {
		t.Fatalf("unexpected jd %v", jd)
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, 0).Position(context.Background(), 2451545.0, 0, false); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGetJSON_ContextCancelDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL, 5).Position(ctx, 2451545.0, 0, false)
	if err == nil {
		t.Fatalf("expected error when the context expires mid-retry")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL, 0).Ping(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	if err := newTestClient(down.URL, 0).Ping(); err == nil {
		t.Fatalf("expected error for unhealthy sidecar")
	}
}
