package httpapi

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type rangeOption struct {
	Value string
	Label string
}

var rangeOptions = []rangeOption{
	{"today", "Danas"},
	{"1d", "1 dan"},
	{"2d", "2 dana"},
	{"3d", "3 dana"},
	{"4d", "4 dana"},
	{"5d", "5 dana"},
}

var unitOptions = []string{
	string(weather.UnitsMetric),
	string(weather.UnitsImperial),
	string(weather.UnitsStandard),
}

type tableView struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func newTableView(title string, t weather.Table) tableView {
	v := tableView{Title: title, Headers: t.Headers}
	for _, r := range t.Rows {
		v.Rows = append(v.Rows, r.Values)
	}
	return v
}

type dashboardView struct {
	Form       submission
	Ranges     []rangeOption
	Units      []string
	Submitted  bool
	QueryID    string
	Error      string
	Warnings   []string
	Tables     []tableView
	ChartsHTML string
}

func newDashboardView(form submission) dashboardView {
	return dashboardView{
		Form:   form,
		Ranges: rangeOptions,
		Units:  unitOptions,
	}
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="sr">
<head>
<meta charset="utf-8">
<title>Vremenska aplikacija</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
form { display: flex; flex-wrap: wrap; gap: .75rem; align-items: end; }
label { display: flex; flex-direction: column; font-size: .9rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: .3rem .6rem; text-align: left; }
.error { color: #b00020; }
.warning { color: #a15c00; }
iframe { border: 0; width: 100%; height: 1800px; }
</style>
</head>
<body>
<h1>Vremenska prognoza u realnom vremenu</h1>
<form method="get" action="/dashboard">
  <label>Grad (više gradova odvojiti sa ;)
    <input type="text" name="place" value="{{.Form.Place}}" placeholder="Belgrade; Paris">
  </label>
  <label>Koordinate (lat, lon)
    <input type="text" name="coords" value="{{.Form.Coords}}" placeholder="44.8176, 20.4633">
  </label>
  <label>Period
    <select name="range">
    {{- range .Ranges}}
      <option value="{{.Value}}"{{if eq .Value $.Form.Range}} selected{{end}}>{{.Label}}</option>
    {{- end}}
    </select>
  </label>
  <label>Jedinice
    <select name="units">
    {{- range .Units}}
      <option value="{{.}}"{{if eq . $.Form.Units}} selected{{end}}>{{.}}</option>
    {{- end}}
    </select>
  </label>
  <label>Filter po gradu
    <input type="text" name="filter" value="{{.Form.Filter}}">
  </label>
  <button type="submit">Prikaži podatke</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{range .Warnings}}<p class="warning">{{.}}</p>{{end}}
{{if .Submitted}}
<p><small>upit {{.QueryID}}</small></p>
{{range .Tables}}
<h2>{{.Title}}</h2>
<table>
  <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
  {{- range .Rows}}
    <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{- else}}
    <tr><td colspan="{{len .Headers}}">Nema redova za zadati filter.</td></tr>
  {{- end}}
  </tbody>
</table>
{{end}}
{{if .ChartsHTML}}<iframe title="grafikoni" srcdoc="{{.ChartsHTML}}"></iframe>{{end}}
{{end}}
</body>
</html>
`))

// renderDashboard writes the dashboard page with the given status code.
func renderDashboard(c *fiber.Ctx, status int, view dashboardView) error {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
