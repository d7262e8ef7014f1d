package httpapi

import (
	"bytes"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/chart"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the dashboard and JSON handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		form := submission{Units: string(service.DefaultUnits()), Range: "today"}
		return renderDashboard(c, fiber.StatusOK, newDashboardView(form))
	})

	app.Get("/dashboard", func(c *fiber.Ctx) error {
		var form submission
		if err := c.QueryParser(&form); err != nil {
			return renderDashboard(c, fiber.StatusBadRequest, withError(form, "invalid form input"))
		}
		form.normalize()
		if err := validate.Struct(form); err != nil {
			return renderDashboard(c, fiber.StatusBadRequest, withError(form, err.Error()))
		}

		report, err := service.Run(c.UserContext(), form.toQuery())
		if err != nil {
			return renderDashboard(c, statusFor(err), withError(form, err.Error()))
		}

		view := newDashboardView(form)
		view.Submitted = true
		view.QueryID = report.ID
		view.Warnings = report.Warnings

		records := weather.FilterRecords(report.Records, form.Filter)
		series := weather.FilterSeries(report.Forecasts, form.Filter)

		view.Tables = append(view.Tables, newTableView("Trenutno vreme",
			weather.FilterTable(weather.CurrentTable(report.Records, report.Units), form.Filter)))
		if report.Days > 0 {
			view.Tables = append(view.Tables,
				newTableView("Dnevni pregled",
					weather.FilterTable(weather.SummaryTable(report.Forecasts, report.Units), form.Filter)),
				newTableView("Prognoza po terminima",
					weather.FilterTable(weather.ForecastTable(report.Forecasts, report.Units), form.Filter)),
			)
		}

		if list := chart.ForReport(records, series, report.Units); len(list) > 0 {
			var buf bytes.Buffer
			if err := chart.Render(&buf, "Vremenska prognoza", list...); err != nil {
				log.Printf("ERROR: query %s: render charts: %v", report.ID, err)
			} else {
				view.ChartsHTML = buf.String()
			}
		}

		return renderDashboard(c, fiber.StatusOK, view)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		var form submission
		if err := c.QueryParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		form.normalize()
		form.Range = "today"
		if err := validate.Struct(form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return respondReport(c, service, form)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := c.QueryParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.normalize()
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return respondReport(c, service, req.toSubmission())
	})
}

func respondReport(c *fiber.Ctx, service *weather.Service, form submission) error {
	report, err := service.Run(c.UserContext(), form.toQuery())
	if err != nil {
		return fiber.NewError(statusFor(err), err.Error())
	}
	if len(report.Records) == 0 && len(report.Forecasts) == 0 {
		return fiber.NewError(fiber.StatusBadGateway, "no weather data for requested location")
	}
	return c.JSON(report)
}

func withError(form submission, msg string) dashboardView {
	view := newDashboardView(form)
	view.Error = msg
	return view
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, weather.ErrMalformedResponse) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusBadRequest
}

// submission holds the dashboard form fields.
type submission struct {
	Place  string `query:"place" validate:"max=200"`
	Coords string `query:"coords" validate:"max=100"`
	Range  string `query:"range" validate:"omitempty,oneof=today 1d 2d 3d 4d 5d"`
	Units  string `query:"units" validate:"omitempty,oneof=metric imperial standard"`
	Filter string `query:"filter" validate:"max=100"`
}

func (s *submission) normalize() {
	s.Place = strings.TrimSpace(s.Place)
	s.Coords = strings.TrimSpace(s.Coords)
	s.Range = strings.ToLower(strings.TrimSpace(s.Range))
	s.Units = strings.ToLower(strings.TrimSpace(s.Units))
	s.Filter = strings.TrimSpace(s.Filter)
}

func (s submission) toQuery() weather.Query {
	return weather.Query{
		Place:  s.Place,
		Coords: s.Coords,
		Range:  s.Range,
		Units:  s.Units,
		Filter: s.Filter,
	}
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Place  string `query:"place" validate:"max=200"`
	Coords string `query:"coords" validate:"max=100"`
	Units  string `query:"units" validate:"omitempty,oneof=metric imperial standard"`
	Days   int    `query:"days" validate:"required,min=1,max=5"`
}

func (q *forecastQuery) normalize() {
	q.Place = strings.TrimSpace(q.Place)
	q.Coords = strings.TrimSpace(q.Coords)
	q.Units = strings.ToLower(strings.TrimSpace(q.Units))
}

func (q forecastQuery) toSubmission() submission {
	return submission{
		Place:  q.Place,
		Coords: q.Coords,
		Units:  q.Units,
		Range:  strconv.Itoa(q.Days) + "d",
	}
}
