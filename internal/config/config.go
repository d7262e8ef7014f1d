package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ErrMissingAPIKey is returned when no OpenWeatherMap credential is configured.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY (or API_KEY) is not set")

type AppConfig struct {
	OpenWeatherAPIKey string
	OpenWeatherURL    string

	// DefaultUnits applies when a submission does not pick a unit system.
	DefaultUnits weather.Units

	// HTTPTimeout bounds outbound calls; 0 leaves the client without a timeout.
	HTTPTimeout time.Duration

	Port string

	// Terminal watcher.
	WatchLocations []string
	WatchInterval  time.Duration
	WatchRange     string
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	Port        string `yaml:"port"`
	Units       string `yaml:"units"`
	BaseURL     string `yaml:"base_url"`
	HTTPTimeout string `yaml:"http_timeout"`
	Watch       struct {
		Locations []string `yaml:"locations"`
		Interval  string   `yaml:"interval"`
		Range     string   `yaml:"range"`
	} `yaml:"watch"`
}

// Load reads configuration from .env, the optional YAML file and the
// environment, in increasing order of precedence.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	var fc fileConfig
	path := getenvDefault("WEATHER_CONFIG_FILE", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("INFO: No config file at %s; using environment only", path)
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		cfg.OpenWeatherAPIKey = os.Getenv("API_KEY")
	}
	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.OpenWeatherURL = getenvDefault("OPENWEATHER_BASE_URL", fc.BaseURL)

	units, err := weather.ParseUnits(getenvDefault("WEATHER_UNITS", fc.Units))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_UNITS: %w", err)
	}
	cfg.DefaultUnits = units

	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", fc.HTTPTimeout, 0); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", fc.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.WatchLocations = fc.Watch.Locations
	if v := os.Getenv("WATCH_LOCATIONS"); v != "" {
		cfg.WatchLocations = splitList(v)
	}
	if cfg.WatchInterval, err = getenvDuration("WATCH_INTERVAL", fc.Watch.Interval, 15*time.Minute); err != nil {
		return nil, err
	}
	cfg.WatchRange = getenvDefault("WATCH_RANGE", fc.Watch.Range)
	if cfg.WatchRange == "" {
		cfg.WatchRange = "today"
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvDuration parses the environment value, then the file value, then falls back to def.
func getenvDuration(key, fileValue string, def time.Duration) (time.Duration, error) {
	s := getenvDefault(key, fileValue)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
