package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxForecastDays is the longest range the upstream forecast covers.
const MaxForecastDays = 5

// slotsPerDay is the number of 3-hour forecast slots in a day.
const slotsPerDay = 8

// Query is the raw form input of one dashboard submission.
type Query struct {
	Place  string `json:"place"`
	Coords string `json:"coords"`
	Range  string `json:"range"`
	Units  string `json:"units"`
	Filter string `json:"filter"`
}

// ParseCoordinates parses "lat, lon". Empty parts are dropped; the input is
// accepted only when exactly two numeric parts remain.
func ParseCoordinates(s string) (Coordinates, bool) {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinates{}, false
	}
	return Coordinates{Lat: lat, Lon: lon}, true
}

// Locations resolves the query into the locations to fetch.
// A place name takes precedence over coordinates; several place names may be
// separated by ";".
func (q Query) Locations() ([]Location, error) {
	var locs []Location
	for _, name := range strings.Split(q.Place, ";") {
		if name = strings.TrimSpace(name); name != "" {
			locs = append(locs, Location{Name: name})
		}
	}
	if len(locs) > 0 {
		return locs, nil
	}

	if c, ok := ParseCoordinates(q.Coords); ok {
		return []Location{{Coords: &c}}, nil
	}
	return nil, ErrNoLocation
}

// Days returns how many forecast days the range asks for; 0 means today only.
func (q Query) Days() (int, error) {
	r := strings.ToLower(strings.TrimSpace(q.Range))
	if r == "" || r == "today" {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSuffix(r, "d"))
	if err != nil || n < 1 || n > MaxForecastDays {
		return 0, fmt.Errorf("range must be \"today\" or 1d..%dd, got %q", MaxForecastDays, q.Range)
	}
	return n, nil
}
