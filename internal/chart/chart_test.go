package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var testRecords = []weather.Record{
	{Place: "Belgrade", Temperature: 21.5, Humidity: 40, WindSpeed: 3.1, Clouds: 10},
	{Place: "Paris", Temperature: 18, Humidity: 70, WindSpeed: 5, Clouds: 90},
}

var testSeries = []weather.ForecastSeries{{
	Location: weather.Location{Name: "Belgrade"},
	Entries: []weather.ForecastEntry{
		{Record: weather.Record{Place: "Belgrade", Temperature: 20}, Time: "2024-05-01 12:00:00", Precipitation: 0.4},
		{Record: weather.Record{Place: "Belgrade", Temperature: 23}, Time: "2024-05-01 15:00:00"},
		{Record: weather.Record{Place: "Belgrade", Temperature: 15}, Time: "2024-05-02 00:00:00"},
	},
}}

func TestForReportCurrentOnly(t *testing.T) {
	list := ForReport(testRecords, nil, weather.UnitsMetric)
	if len(list) != 4 {
		t.Fatalf("expected 4 snapshot charts, got %d", len(list))
	}
}

func TestForReportWithForecast(t *testing.T) {
	list := ForReport(testRecords, testSeries, weather.UnitsMetric)
	// 4 snapshot charts, 1 shared line, 2 per forecast series.
	if len(list) != 7 {
		t.Fatalf("expected 7 charts, got %d", len(list))
	}

	if got := ForReport(nil, nil, weather.UnitsMetric); len(got) != 0 {
		t.Fatalf("expected no charts for an empty report, got %d", len(got))
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "Vremenska prognoza", ForReport(testRecords, testSeries, weather.UnitsMetric)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Belgrade", "Paris", "2024-05-01 15:00:00", "echarts"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered page is missing %q", want)
		}
	}
}

func TestTimeLabelsUseLongestSeries(t *testing.T) {
	short := weather.ForecastSeries{Entries: testSeries[0].Entries[:1]}
	labels := timeLabels([]weather.ForecastSeries{short, testSeries[0]})
	if len(labels) != 3 || labels[2] != "2024-05-02 00:00:00" {
		t.Fatalf("unexpected labels %v", labels)
	}
}
