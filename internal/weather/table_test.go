package weather

import (
	"testing"
)

func TestFilterTableByPlace(t *testing.T) {
	records := []Record{
		{Place: "Belgrade", Temperature: 21.5},
		{Place: "Paris", Temperature: 18},
		{Place: "New York", Temperature: 25},
	}
	table := CurrentTable(records, UnitsMetric)

	got := FilterTable(table, "par")
	if len(got.Rows) != 1 || got.Rows[0].Place != "Paris" {
		t.Fatalf("expected only Paris, got %+v", got.Rows)
	}
	if len(got.Headers) != len(table.Headers) {
		t.Fatalf("filter must keep headers")
	}

	if got := FilterTable(table, "NEW"); len(got.Rows) != 1 || got.Rows[0].Place != "New York" {
		t.Fatalf("expected case-insensitive match on New York, got %+v", got.Rows)
	}
	if got := FilterTable(table, ""); len(got.Rows) != 3 {
		t.Fatalf("empty filter should keep all rows, got %d", len(got.Rows))
	}
	if got := FilterTable(table, "tokyo"); len(got.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(got.Rows))
	}
}

func TestCurrentTableLayout(t *testing.T) {
	rec := Record{Place: "Belgrade", Temperature: 21.5, Humidity: 40, Pressure: 1012, WindSpeed: 3.1, Description: "Clear sky"}
	table := CurrentTable([]Record{rec}, UnitsImperial)

	if table.Headers[0] != "Grad" || table.Headers[1] != "Temperatura (°F)" || table.Headers[4] != "Vetar (mph)" {
		t.Fatalf("unexpected headers %v", table.Headers)
	}
	want := []string{"Belgrade", "21.5", "40", "1012", "3.1", "Clear sky", "0"}
	for i, v := range want {
		if table.Rows[0].Values[i] != v {
			t.Fatalf("column %d: expected %q, got %q", i, v, table.Rows[0].Values[i])
		}
	}
}

func TestForecastTableUsesUpstreamPlace(t *testing.T) {
	series := []ForecastSeries{{
		Location: Location{Coords: &Coordinates{Lat: 44.8, Lon: 20.4}},
		Entries: []ForecastEntry{
			{Record: Record{Place: "Belgrade", Temperature: 20}, Time: "2024-05-01 12:00:00"},
			{Record: Record{Place: "Belgrade", Temperature: 22}, Time: "2024-05-01 15:00:00", Precipitation: 1.2},
		},
	}}

	table := ForecastTable(series, UnitsMetric)
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1].Place != "Belgrade" || table.Rows[1].Values[1] != "2024-05-01 15:00:00" || table.Rows[1].Values[5] != "1.2" {
		t.Fatalf("unexpected row %+v", table.Rows[1])
	}

	empty := ForecastSeries{Location: Location{Name: "Paris"}}
	if empty.Place() != "Paris" {
		t.Fatalf("expected fallback to requested location, got %q", empty.Place())
	}
}

func TestFilterRecordsAndSeries(t *testing.T) {
	records := []Record{{Place: "Belgrade"}, {Place: "Paris"}}
	if got := FilterRecords(records, "BEL"); len(got) != 1 || got[0].Place != "Belgrade" {
		t.Fatalf("unexpected records %+v", got)
	}

	series := []ForecastSeries{
		{Location: Location{Name: "Belgrade"}},
		{Location: Location{Name: "Paris"}},
	}
	if got := FilterSeries(series, "ari"); len(got) != 1 || got[0].Place() != "Paris" {
		t.Fatalf("unexpected series %+v", got)
	}
}
