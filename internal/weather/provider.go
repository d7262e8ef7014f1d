package weather

import (
	"context"
)

// Client abstracts the upstream weather service (OpenWeatherMap).
// Implementations make a single attempt per call and wrap failures in ErrUpstream.
type Client interface {
	Current(ctx context.Context, loc Location, units Units) (Record, error)
	Forecast(ctx context.Context, loc Location, units Units) ([]ForecastEntry, error)
}
