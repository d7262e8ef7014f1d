package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultOpenWeatherURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherClient implements weather.Client for OpenWeatherMap.
type OpenWeatherClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherClient creates a client authenticated with apiKey.
// An empty baseURL selects DefaultOpenWeatherURL.
func NewOpenWeatherClient(client *http.Client, apiKey, baseURL string) *OpenWeatherClient {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherClient{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openweathermap"),
	}
}

func (p *OpenWeatherClient) Name() string {
	return p.name
}

// owmConditions is the subset of fields shared by the current-weather body and
// every forecast list element.
type owmConditions struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c owmConditions) record(place string) (weather.Record, error) {
	if len(c.Weather) == 0 {
		return weather.Record{}, fmt.Errorf("%w: missing weather description", weather.ErrMalformedResponse)
	}
	return weather.Record{
		Place:       place,
		Temperature: c.Main.Temp,
		Humidity:    c.Main.Humidity,
		Pressure:    c.Main.Pressure,
		WindSpeed:   c.Wind.Speed,
		Description: common.Capitalize(c.Weather[0].Description),
		Clouds:      c.Clouds.All,
	}, nil
}

// Current fetches current conditions for loc.
func (p *OpenWeatherClient) Current(ctx context.Context, loc weather.Location, units weather.Units) (weather.Record, error) {
	var payload struct {
		owmConditions
		Name string `json:"name"`
	}
	if err := p.get(ctx, "weather", loc, units, &payload); err != nil {
		return weather.Record{}, err
	}
	return payload.record(payload.Name)
}

// Forecast fetches the 3-hour forecast for loc, one entry per upstream slot in upstream order.
func (p *OpenWeatherClient) Forecast(ctx context.Context, loc weather.Location, units weather.Units) ([]weather.ForecastEntry, error) {
	var payload struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		List []struct {
			owmConditions
			DtTxt string `json:"dt_txt"`
			Rain  struct {
				ThreeH float64 `json:"3h"`
			} `json:"rain"`
		} `json:"list"`
	}
	if err := p.get(ctx, "forecast", loc, units, &payload); err != nil {
		return nil, err
	}

	entries := make([]weather.ForecastEntry, 0, len(payload.List))
	for i, item := range payload.List {
		rec, err := item.record(payload.City.Name)
		if err != nil {
			return nil, fmt.Errorf("forecast slot %d: %w", i, err)
		}
		entries = append(entries, weather.ForecastEntry{
			Record:        rec,
			Time:          item.DtTxt,
			Precipitation: item.Rain.ThreeH,
		})
	}
	return entries, nil
}

// get issues one GET against endpoint and decodes the body into out.
func (p *OpenWeatherClient) get(ctx context.Context, endpoint string, loc weather.Location, units weather.Units, out interface{}) error {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	if units != "" {
		values.Set("units", string(units))
	}
	if loc.Name != "" {
		values.Set("q", loc.Name)
	} else if loc.Coords != nil {
		values.Set("lat", strconv.FormatFloat(loc.Coords.Lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(loc.Coords.Lon, 'f', -1, 64))
	} else {
		return weather.ErrNoLocation
	}

	u := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
	}
	return nil
}

var _ weather.Client = (*OpenWeatherClient)(nil)
