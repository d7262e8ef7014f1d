package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Service runs dashboard submissions against the upstream client.
type Service struct {
	client       Client
	defaultUnits Units
}

// NewService creates a new Service. An empty defaultUnits means metric.
func NewService(client Client, defaultUnits Units) *Service {
	if defaultUnits == "" {
		defaultUnits = UnitsMetric
	}
	return &Service{
		client:       client,
		defaultUnits: defaultUnits,
	}
}

// DefaultUnits returns the unit system used when a query does not pick one.
func (s *Service) DefaultUnits() Units {
	return s.defaultUnits
}

// Run executes one submission: current conditions for every location and,
// when the range asks for it, the forecast. Calls are made one after another.
//
// Upstream failures become warnings scoped to the failing location. A
// malformed upstream response aborts the submission.
func (s *Service) Run(ctx context.Context, q Query) (Report, error) {
	locs, err := q.Locations()
	if err != nil {
		return Report{}, err
	}
	days, err := q.Days()
	if err != nil {
		return Report{}, err
	}
	units := s.defaultUnits
	if q.Units != "" {
		if units, err = ParseUnits(q.Units); err != nil {
			return Report{}, err
		}
	}

	report := Report{
		ID:    uuid.NewString(),
		Units: units,
		Days:  days,
	}
	log.Printf("INFO: query %s: %d location(s), %d day(s), units %s", report.ID, len(locs), days, units)

	for _, loc := range locs {
		rec, err := s.client.Current(ctx, loc, units)
		if err != nil {
			if errors.Is(err, ErrMalformedResponse) {
				return Report{}, fmt.Errorf("current weather for %s: %w", loc, err)
			}
			log.Printf("ERROR: query %s: current weather for %s: %v", report.ID, loc, err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("no data for %s", loc))
			continue
		}
		report.Records = append(report.Records, rec)
	}

	if days == 0 {
		return report, nil
	}

	for _, loc := range locs {
		entries, err := s.client.Forecast(ctx, loc, units)
		if err != nil {
			if errors.Is(err, ErrMalformedResponse) {
				return Report{}, fmt.Errorf("forecast for %s: %w", loc, err)
			}
			log.Printf("ERROR: query %s: forecast for %s: %v", report.ID, loc, err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("no forecast for %s", loc))
			continue
		}
		if limit := days * slotsPerDay; len(entries) > limit {
			entries = entries[:limit]
		}
		report.Forecasts = append(report.Forecasts, ForecastSeries{
			Location: loc,
			Entries:  entries,
		})
	}

	return report, nil
}
