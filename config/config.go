package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the external ephemeris/geocoder boundaries.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	EPHEMERIS_URL=http://localhost:8088
//	EPHEMERIS_TIMEOUT_MS=5000
//	EPHEMERIS_RETRIES=2
//	GEOCODER_URL=https://nominatim.openstreetmap.org
//	GEOCODER_USER_AGENT=astropulse
//	GEOCODE_CACHE_TTL_MIN=1440
//	REDIS_ADDR=
//	CORS_ORIGINS=http://localhost,http://localhost:8080
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Ephemeris EphemerisConfig // Swiss Ephemeris sidecar settings
	Geocoder  GeocoderConfig  // Geocoding provider settings
	Redis     RedisConfig     // Optional Redis cache settings
	CORS      CORSConfig      // Cross-origin settings for browser clients
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// EphemerisConfig defines how to reach the ephemeris sidecar service that
// performs the raw astronomical computations (planet positions, house cusps,
// solar-return solves).
//
// Fields:
//   - URL: base URL of the sidecar (no trailing slash).
//   - Timeout: per-call timeout; boundary calls are bounded, never open-ended.
//   - Retries: additional attempts on transient (network / 5xx) failures.
type EphemerisConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
}

// GeocoderConfig defines the Nominatim-compatible geocoding endpoint used to
// resolve free-text birth locations into coordinates.
type GeocoderConfig struct {
	URL       string        // Base URL of the geocoder (e.g., https://nominatim.openstreetmap.org)
	UserAgent string        // User-Agent header required by Nominatim's usage policy
	Timeout   time.Duration // Per-lookup timeout
	CacheTTL  time.Duration // How long a resolved location stays cached
}

// RedisConfig holds the optional Redis connection used for the geocode cache.
// An empty Addr selects the in-process cache instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	Origins []string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("EPHEMERIS_URL", "http://localhost:8088")
	viper.SetDefault("EPHEMERIS_TIMEOUT_MS", 5000)
	viper.SetDefault("EPHEMERIS_RETRIES", 2)

	viper.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "astropulse")
	viper.SetDefault("GEOCODER_TIMEOUT_MS", 5000)
	viper.SetDefault("GEOCODE_CACHE_TTL_MIN", 1440)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("CORS_ORIGINS", "http://localhost,http://localhost:8080")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Ephemeris: EphemerisConfig{
			URL:     strings.TrimRight(viper.GetString("EPHEMERIS_URL"), "/"),
			Timeout: time.Duration(viper.GetInt("EPHEMERIS_TIMEOUT_MS")) * time.Millisecond,
			Retries: viper.GetInt("EPHEMERIS_RETRIES"),
		},
		Geocoder: GeocoderConfig{
			URL:       strings.TrimRight(viper.GetString("GEOCODER_URL"), "/"),
			UserAgent: viper.GetString("GEOCODER_USER_AGENT"),
			Timeout:   time.Duration(viper.GetInt("GEOCODER_TIMEOUT_MS")) * time.Millisecond,
			CacheTTL:  time.Duration(viper.GetInt("GEOCODE_CACHE_TTL_MIN")) * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	// Validate critical fields
	validateConfig()
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Ephemeris.URL == "" {
		missing = append(missing, "EPHEMERIS_URL")
	}
	if AppConfig.Ephemeris.Timeout <= 0 {
		missing = append(missing, "EPHEMERIS_TIMEOUT_MS")
	}
	if AppConfig.Geocoder.URL == "" {
		missing = append(missing, "GEOCODER_URL")
	}
	if AppConfig.Geocoder.UserAgent == "" {
		missing = append(missing, "GEOCODER_USER_AGENT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
