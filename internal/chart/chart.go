// Package chart builds the dashboard charts with go-echarts. Every builder only
// decides which record fields go on which axis; values are never transformed.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	chartWidth  = "900px"
	chartHeight = "420px"
)

func baseOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	}
}

func places(records []weather.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Place)
	}
	return out
}

func barData(records []weather.Record, field func(weather.Record) float64) []opts.BarData {
	out := make([]opts.BarData, 0, len(records))
	for _, r := range records {
		out = append(out, opts.BarData{Value: field(r)})
	}
	return out
}

func temperature(r weather.Record) float64 { return r.Temperature }
func humidity(r weather.Record) float64    { return r.Humidity }
func wind(r weather.Record) float64        { return r.WindSpeed }
func clouds(r weather.Record) float64      { return r.Clouds }

// singleBar plots one field per place.
func singleBar(title, series string, records []weather.Record, field func(weather.Record) float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(title)...)
	bar.SetXAxis(places(records)).
		AddSeries(series, barData(records, field))
	return bar
}

// TemperatureBar plots the current temperature per place.
func TemperatureBar(records []weather.Record, units weather.Units) *charts.Bar {
	return singleBar("Temperature po gradovima", "Temperatura ("+units.TemperatureLabel()+")", records, temperature)
}

// HumidityBar plots the current humidity per place.
func HumidityBar(records []weather.Record) *charts.Bar {
	return singleBar("Vlažnost po gradovima", "Vlažnost (%)", records, humidity)
}

// CloudBar plots cloud cover per place, the dashboard's sunlight proxy.
func CloudBar(records []weather.Record) *charts.Bar {
	return singleBar("Oblačnost po gradovima", "Oblačnost (%)", records, clouds)
}

// ComparisonBar groups temperature, humidity and wind side by side per place.
func ComparisonBar(records []weather.Record, units weather.Units) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions("Poređenje gradova")...)
	bar.SetXAxis(places(records)).
		AddSeries("Temperatura ("+units.TemperatureLabel()+")", barData(records, temperature)).
		AddSeries("Vlažnost (%)", barData(records, humidity)).
		AddSeries("Vetar ("+units.WindLabel()+")", barData(records, wind))
	return bar
}

// timeLabels returns the slot labels of the longest series, used as the shared x axis.
func timeLabels(series []weather.ForecastSeries) []string {
	var longest []weather.ForecastEntry
	for _, s := range series {
		if len(s.Entries) > len(longest) {
			longest = s.Entries
		}
	}
	out := make([]string, 0, len(longest))
	for _, e := range longest {
		out = append(out, e.Time)
	}
	return out
}

// ForecastLine plots the forecast temperature of every place over time.
func ForecastLine(series []weather.ForecastSeries, units weather.Units) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(baseOptions("Prognoza temperature"),
		charts.WithYAxisOpts(opts.YAxis{Name: units.TemperatureLabel()}),
	)...)
	line.SetXAxis(timeLabels(series))
	for _, s := range series {
		data := make([]opts.LineData, 0, len(s.Entries))
		for _, e := range s.Entries {
			data = append(data, opts.LineData{Value: e.Temperature})
		}
		line.AddSeries(s.Place(), data, charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	}
	return line
}

// PrecipitationCombo overlays precipitation bars (right axis) with the
// temperature line (left axis) for one place.
func PrecipitationCombo(s weather.ForecastSeries, units weather.Units) *charts.Bar {
	labels := make([]string, 0, len(s.Entries))
	rain := make([]opts.BarData, 0, len(s.Entries))
	temps := make([]opts.LineData, 0, len(s.Entries))
	for _, e := range s.Entries {
		labels = append(labels, e.Time)
		rain = append(rain, opts.BarData{Value: e.Precipitation})
		temps = append(temps, opts.LineData{Value: e.Temperature})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOptions(s.Place()+": temperatura i padavine"),
		charts.WithYAxisOpts(opts.YAxis{Name: units.TemperatureLabel(), Type: "value"}),
	)...)
	bar.ExtendYAxis(opts.YAxis{Name: "mm", Type: "value"})
	bar.SetXAxis(labels).
		AddSeries("Padavine (mm)", rain, charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1}))

	line := charts.NewLine()
	line.SetXAxis(labels).
		AddSeries("Temperatura ("+units.TemperatureLabel()+")", temps,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true, YAxisIndex: 0}))

	bar.Overlap(line)
	return bar
}

// DailyRangeBar shows the daily minimum and maximum temperature of one place.
func DailyRangeBar(s weather.ForecastSeries, units weather.Units) *charts.Bar {
	days := weather.SummarizeDays(s.Entries)
	labels := make([]string, 0, len(days))
	lows := make([]opts.BarData, 0, len(days))
	highs := make([]opts.BarData, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Date)
		lows = append(lows, opts.BarData{Value: d.MinTemp})
		highs = append(highs, opts.BarData{Value: d.MaxTemp})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(s.Place() + ": dnevni raspon")...)
	bar.SetXAxis(labels).
		AddSeries("Min ("+units.TemperatureLabel()+")", lows).
		AddSeries("Max ("+units.TemperatureLabel()+")", highs)
	return bar
}

// ForReport picks the charts that fit a report: snapshot bars for current
// records, time-series charts when a forecast was requested.
func ForReport(records []weather.Record, series []weather.ForecastSeries, units weather.Units) []components.Charter {
	var out []components.Charter
	if len(records) > 0 {
		out = append(out,
			TemperatureBar(records, units),
			HumidityBar(records),
			ComparisonBar(records, units),
			CloudBar(records),
		)
	}
	if len(series) > 0 {
		out = append(out, ForecastLine(series, units))
		for _, s := range series {
			out = append(out, PrecipitationCombo(s, units), DailyRangeBar(s, units))
		}
	}
	return out
}

// Render writes every chart into a single HTML page.
func Render(w io.Writer, title string, list ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(list...)
	return page.Render(w)
}
