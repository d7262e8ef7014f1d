// Package console renders reports as plain-text tables for the terminal watcher.
package console

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// WriteTable renders one table with a title line.
func WriteTable(w io.Writer, title string, t weather.Table) {
	fmt.Fprintf(w, "%s\n", title)

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for _, r := range t.Rows {
		tw.Append(r.Values)
	}
	tw.Render()
}

// WriteReport renders every table of a report, followed by its warnings.
func WriteReport(w io.Writer, report weather.Report, filter string) {
	fmt.Fprintf(w, "query %s (%s)\n", report.ID, report.Units)

	if len(report.Records) > 0 {
		WriteTable(w, "Trenutno vreme", weather.FilterTable(weather.CurrentTable(report.Records, report.Units), filter))
	}
	if len(report.Forecasts) > 0 {
		WriteTable(w, "Dnevni pregled", weather.FilterTable(weather.SummaryTable(report.Forecasts, report.Units), filter))
		WriteTable(w, "Prognoza po terminima", weather.FilterTable(weather.ForecastTable(report.Forecasts, report.Units), filter))
	}
	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warn)
	}
}
