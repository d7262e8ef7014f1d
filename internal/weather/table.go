package weather

import (
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// Row is one table line; Place is the column the filter matches against.
type Row struct {
	Place  string
	Values []string
}

// Table is the textual rendering of records, shared by the web and console views.
type Table struct {
	Headers []string
	Rows    []Row
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CurrentTable lays out current-condition records, one row per place.
func CurrentTable(records []Record, units Units) Table {
	t := Table{
		Headers: []string{
			"Grad",
			"Temperatura (" + units.TemperatureLabel() + ")",
			"Vlažnost (%)",
			"Pritisak (hPa)",
			"Vetar (" + units.WindLabel() + ")",
			"Opis",
			"Oblačnost (%)",
		},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, Row{
			Place: r.Place,
			Values: []string{
				r.Place,
				formatNumber(r.Temperature),
				formatNumber(r.Humidity),
				formatNumber(r.Pressure),
				formatNumber(r.WindSpeed),
				r.Description,
				formatNumber(r.Clouds),
			},
		})
	}
	return t
}

// ForecastTable lays out every forecast slot of every series.
func ForecastTable(series []ForecastSeries, units Units) Table {
	t := Table{
		Headers: []string{
			"Grad",
			"Vreme",
			"Temperatura (" + units.TemperatureLabel() + ")",
			"Vlažnost (%)",
			"Vetar (" + units.WindLabel() + ")",
			"Padavine (mm)",
			"Opis",
		},
	}
	for _, s := range series {
		place := s.Place()
		for _, e := range s.Entries {
			t.Rows = append(t.Rows, Row{
				Place: place,
				Values: []string{
					place,
					e.Time,
					formatNumber(e.Temperature),
					formatNumber(e.Humidity),
					formatNumber(e.WindSpeed),
					formatNumber(e.Precipitation),
					e.Description,
				},
			})
		}
	}
	return t
}

// SummaryTable lays out the per-day summaries of every series.
func SummaryTable(series []ForecastSeries, units Units) Table {
	temp := units.TemperatureLabel()
	t := Table{
		Headers: []string{
			"Grad",
			"Datum",
			"Min (" + temp + ")",
			"Max (" + temp + ")",
			"Prosek (" + temp + ")",
			"Vlažnost (%)",
			"Padavine (mm)",
			"Opis",
		},
	}
	for _, s := range series {
		place := s.Place()
		for _, d := range SummarizeDays(s.Entries) {
			t.Rows = append(t.Rows, Row{
				Place: place,
				Values: []string{
					place,
					d.Date,
					formatNumber(d.MinTemp),
					formatNumber(d.MaxTemp),
					strconv.FormatFloat(d.AvgTemp, 'f', 1, 64),
					strconv.FormatFloat(d.AvgHumidity, 'f', 0, 64),
					strconv.FormatFloat(d.Precipitation, 'f', 2, 64),
					d.Description,
				},
			})
		}
	}
	return t
}

// FilterTable keeps the rows whose place contains filter, ignoring case.
// An empty filter keeps every row.
func FilterTable(t Table, filter string) Table {
	if filter == "" {
		return t
	}
	out := Table{Headers: t.Headers}
	for _, r := range t.Rows {
		if common.ContainsFold(r.Place, filter) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// FilterRecords applies the same place match to records, so charts follow the table.
func FilterRecords(records []Record, filter string) []Record {
	if filter == "" {
		return records
	}
	var out []Record
	for _, r := range records {
		if common.ContainsFold(r.Place, filter) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSeries keeps the forecast series whose place matches filter.
func FilterSeries(series []ForecastSeries, filter string) []ForecastSeries {
	if filter == "" {
		return series
	}
	var out []ForecastSeries
	for _, s := range series {
		if common.ContainsFold(s.Place(), filter) {
			out = append(out, s)
		}
	}
	return out
}
