package weather

import (
	"errors"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	valid := map[string]Coordinates{
		"44.8176, 20.4633":   {Lat: 44.8176, Lon: 20.4633},
		"  -33.9,151.2 ":     {Lat: -33.9, Lon: 151.2},
		"10, 20,":            {Lat: 10, Lon: 20},
		"0,0":                {Lat: 0, Lon: 0},
	}
	for in, want := range valid {
		got, ok := ParseCoordinates(in)
		if !ok {
			t.Fatalf("%q: expected coordinates to parse", in)
		}
		if got != want {
			t.Fatalf("%q: expected %+v, got %+v", in, want, got)
		}
	}

	invalid := []string{"", "44.8", "44.8, 20.4, 1", "abc, 20", "44.8, north", ", ,", "NaN, 1", "1, Inf"}
	for _, in := range invalid {
		if _, ok := ParseCoordinates(in); ok {
			t.Fatalf("%q: expected coordinates to be treated as unset", in)
		}
	}
}

func TestLocationsPrecedence(t *testing.T) {
	q := Query{Place: "Paris", Coords: "44.8176, 20.4633"}
	locs, err := q.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 1 || locs[0].Name != "Paris" || locs[0].Coords != nil {
		t.Fatalf("expected place name to win, got %+v", locs)
	}

	q = Query{Coords: "44.8176, 20.4633"}
	locs, err = q.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 1 || locs[0].Coords == nil || locs[0].Coords.Lat != 44.8176 {
		t.Fatalf("expected coordinate location, got %+v", locs)
	}

	q = Query{Place: "Belgrade; Paris ;; New York"}
	locs, err = q.Locations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 3 || locs[2].Name != "New York" {
		t.Fatalf("expected three named locations, got %+v", locs)
	}
}

func TestLocationsMissing(t *testing.T) {
	for _, q := range []Query{{}, {Place: "  ", Coords: "44.8"}, {Coords: "a, b"}} {
		if _, err := q.Locations(); !errors.Is(err, ErrNoLocation) {
			t.Fatalf("%+v: expected ErrNoLocation, got %v", q, err)
		}
	}
}

func TestDays(t *testing.T) {
	cases := map[string]int{"": 0, "today": 0, "TODAY": 0, "1d": 1, "3d": 3, "5": 5}
	for in, want := range cases {
		got, err := Query{Range: in}.Days()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
	}

	for _, in := range []string{"0d", "6d", "week", "-1d"} {
		if _, err := (Query{Range: in}).Days(); err == nil {
			t.Fatalf("%q: expected an error", in)
		}
	}
}

func TestParseUnits(t *testing.T) {
	if u, err := ParseUnits(""); err != nil || u != UnitsMetric {
		t.Fatalf("expected metric default, got %q (%v)", u, err)
	}
	if _, err := ParseUnits("kelvin"); err == nil {
		t.Fatalf("expected an error for unknown units")
	}
	if UnitsImperial.TemperatureLabel() != "°F" || UnitsImperial.WindLabel() != "mph" {
		t.Fatalf("unexpected imperial labels")
	}
	if UnitsStandard.TemperatureLabel() != "K" {
		t.Fatalf("unexpected standard label")
	}
}
