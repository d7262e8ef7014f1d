package weather

import (
	"strings"
	"time"
)

// DailySummary condenses the forecast slots of one calendar day.
type DailySummary struct {
	Date          string  `json:"date"`
	MinTemp       float64 `json:"minTemp"`
	MaxTemp       float64 `json:"maxTemp"`
	AvgTemp       float64 `json:"avgTemp"`
	AvgHumidity   float64 `json:"avgHumidity"`
	Precipitation float64 `json:"precipitation"`
	Description   string  `json:"description"`
}

const forecastTimeLayout = "2006-01-02 15:04:05"

// dayOf extracts the calendar day from an upstream time label.
func dayOf(label string) string {
	if ts, err := time.Parse(forecastTimeLayout, label); err == nil {
		return ts.Format("2006-01-02")
	}
	if i := strings.IndexByte(label, ' '); i > 0 {
		return label[:i]
	}
	return label
}

// SummarizeDays groups forecast entries by calendar day.
// Temperatures and humidity are averaged, precipitation is summed and the
// description is the most frequent one (first seen wins a tie). Days keep the
// order in which they appear in entries.
func SummarizeDays(entries []ForecastEntry) []DailySummary {
	type bucket struct {
		summary DailySummary
		count   int
		counts  map[string]int
		order   []string
	}

	var (
		days    []string
		buckets = make(map[string]*bucket)
	)

	for _, e := range entries {
		d := dayOf(e.Time)
		b, ok := buckets[d]
		if !ok {
			b = &bucket{
				summary: DailySummary{Date: d, MinTemp: e.Temperature, MaxTemp: e.Temperature},
				counts:  make(map[string]int),
			}
			buckets[d] = b
			days = append(days, d)
		}

		if e.Temperature < b.summary.MinTemp {
			b.summary.MinTemp = e.Temperature
		}
		if e.Temperature > b.summary.MaxTemp {
			b.summary.MaxTemp = e.Temperature
		}
		b.summary.AvgTemp += e.Temperature
		b.summary.AvgHumidity += e.Humidity
		b.summary.Precipitation += e.Precipitation
		b.count++

		if _, seen := b.counts[e.Description]; !seen {
			b.order = append(b.order, e.Description)
		}
		b.counts[e.Description]++
	}

	out := make([]DailySummary, 0, len(days))
	for _, d := range days {
		b := buckets[d]
		n := float64(b.count)
		b.summary.AvgTemp /= n
		b.summary.AvgHumidity /= n

		best := 0
		for _, desc := range b.order {
			if c := b.counts[desc]; c > best {
				best = c
				b.summary.Description = desc
			}
		}
		out = append(out, b.summary)
	}
	return out
}
