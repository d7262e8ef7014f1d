package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/console"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	filter := flag.String("filter", "", "show only places containing this text")
	coords := flag.String("coords", "", "watch a coordinate pair \"lat, lon\" in addition to the configured places")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := providers.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL)
	service := weather.NewService(client, cfg.DefaultUnits)

	var queries []weather.Query
	for _, place := range cfg.WatchLocations {
		queries = append(queries, weather.Query{Place: place, Range: cfg.WatchRange})
	}
	if c := strings.TrimSpace(*coords); c != "" {
		if _, ok := weather.ParseCoordinates(c); !ok {
			log.Fatalf("invalid -coords %q: expected \"lat, lon\"", c)
		}
		queries = append(queries, weather.Query{Coords: c, Range: cfg.WatchRange})
	}
	if len(queries) == 0 {
		log.Fatalf("nothing to watch: set WATCH_LOCATIONS or pass -coords")
	}

	sched := scheduler.New(queries, cfg.WatchInterval, service, func(_ weather.Query, report weather.Report) {
		console.WriteReport(os.Stdout, report, *filter)
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	log.Printf("INFO: watching %d location(s) every %s", len(queries), cfg.WatchInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
