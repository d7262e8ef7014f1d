package weather

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNoLocation is returned when a query carries neither a place name nor valid coordinates.
	ErrNoLocation = errors.New("enter a place name or coordinates as \"lat, lon\"")

	// ErrUpstream marks a transport failure or a non-success status from the weather API.
	ErrUpstream = errors.New("weather api request failed")

	// ErrMalformedResponse marks an upstream body that does not have the expected shape.
	ErrMalformedResponse = errors.New("unexpected weather api response")
)

// Units selects the unit system the upstream service reports values in.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// ParseUnits maps free text to a unit system. Empty input yields metric.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case "":
		return UnitsMetric, nil
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return Units(s), nil
	default:
		return "", fmt.Errorf("unknown unit system %q", s)
	}
}

// TemperatureLabel returns the symbol used for temperatures in this unit system.
func (u Units) TemperatureLabel() string {
	switch u {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	default:
		return "°C"
	}
}

// WindLabel returns the symbol used for wind speed in this unit system.
func (u Units) WindLabel() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// TemperatureRange returns the physically plausible temperature bounds in this unit system.
func (u Units) TemperatureRange() (lo, hi float64) {
	switch u {
	case UnitsImperial:
		return -130, 140
	case UnitsStandard:
		return 180, 335
	default:
		return -90, 60
	}
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location identifies where weather is requested for.
// Exactly one of Name or Coords is set.
type Location struct {
	Name   string       `json:"name,omitempty"`
	Coords *Coordinates `json:"coords,omitempty"`
}

// String renders the location the way users typed it.
func (l Location) String() string {
	if l.Coords != nil {
		return strconv.FormatFloat(l.Coords.Lat, 'f', -1, 64) + ", " +
			strconv.FormatFloat(l.Coords.Lon, 'f', -1, 64)
	}
	return l.Name
}

// Record is a snapshot of current conditions for one location.
type Record struct {
	Place       string  `json:"place"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	Clouds      float64 `json:"clouds"` // percent, used as a sunlight proxy
}

// ForecastEntry is one time slot of a forecast (typically 3 hours wide).
type ForecastEntry struct {
	Record
	Time          string  `json:"time"`
	Precipitation float64 `json:"precipitation"` // mm over the slot
}

// ForecastSeries holds the ordered forecast entries for a single location.
type ForecastSeries struct {
	Location Location        `json:"location"`
	Entries  []ForecastEntry `json:"entries"`
}

// Place returns the place name reported upstream, falling back to the requested location.
func (s ForecastSeries) Place() string {
	if len(s.Entries) > 0 && s.Entries[0].Place != "" {
		return s.Entries[0].Place
	}
	return s.Location.String()
}

// Report is everything one submission produced.
type Report struct {
	ID        string           `json:"id"`
	Units     Units            `json:"units"`
	Days      int              `json:"days"`
	Records   []Record         `json:"records"`
	Forecasts []ForecastSeries `json:"forecasts,omitempty"`
	Warnings  []string         `json:"warnings,omitempty"`
}
