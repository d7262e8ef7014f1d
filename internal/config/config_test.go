package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// isolate points the loader at an empty working directory and clears every
// variable Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range []string{
		"OPENWEATHER_API_KEY", "API_KEY", "OPENWEATHER_BASE_URL", "WEATHER_UNITS",
		"HTTP_TIMEOUT", "PORT", "WATCH_LOCATIONS", "WATCH_INTERVAL", "WATCH_RANGE",
		"WEATHER_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoadMissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.DefaultUnits != weather.UnitsMetric {
		t.Fatalf("expected metric default, got %q", cfg.DefaultUnits)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected no timeout by default, got %v", cfg.HTTPTimeout)
	}
	if cfg.Port != "8080" || cfg.WatchInterval != 15*time.Minute || cfg.WatchRange != "today" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENWEATHER_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv does not override variables that already exist, even when empty.
	if err := os.Unsetenv("OPENWEATHER_API_KEY"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("OPENWEATHER_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "from-dotenv" {
		t.Fatalf("expected key from .env, got %q", cfg.OpenWeatherAPIKey)
	}
}

func TestLoadYAMLWithEnvOverrides(t *testing.T) {
	dir := isolate(t)
	yamlBody := `
port: "9090"
units: imperial
http_timeout: 5s
watch:
  locations: ["Belgrade", "Paris"]
  interval: 30m
  range: 3d
`
	path := filepath.Join(dir, "weather.yaml")
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("WEATHER_CONFIG_FILE", path)
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("PORT", "7070")
	t.Setenv("WATCH_LOCATIONS", "Tokyo; Oslo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected env to override port, got %q", cfg.Port)
	}
	if cfg.DefaultUnits != weather.UnitsImperial {
		t.Fatalf("expected imperial from file, got %q", cfg.DefaultUnits)
	}
	if cfg.HTTPTimeout != 5*time.Second || cfg.WatchInterval != 30*time.Minute || cfg.WatchRange != "3d" {
		t.Fatalf("unexpected durations/range %+v", cfg)
	}
	if len(cfg.WatchLocations) != 2 || cfg.WatchLocations[0] != "Tokyo" || cfg.WatchLocations[1] != "Oslo" {
		t.Fatalf("unexpected watch locations %v", cfg.WatchLocations)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")

	t.Setenv("WEATHER_UNITS", "kelvin")
	if _, err := Load(); err == nil {
		t.Fatalf("expected units error")
	}

	t.Setenv("WEATHER_UNITS", "")
	t.Setenv("HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected timeout error")
	}
}
