package api

import (
	"context"
	"net/url"
	"strconv"

	"city-explorer/internal/domain"
	"city-explorer/internal/platform/obs"
)

// WeatherByCity calls GET /api/v1/weather/{city}.
func (c *Client) WeatherByCity(
	ctx context.Context,
	city string,
) (_ domain.WeatherRecord, err error) {
	defer obs.Time(ctx, "api.WeatherByCity")(&err)

	const op = "weather by city"

	v, err := c.getJSON(ctx, op, "/api/v1/weather/"+url.PathEscape(city), nil)
	if err != nil {
		return domain.WeatherRecord{}, err
	}

	w, err := decodeWeather(v)
	if err != nil {
		return domain.WeatherRecord{}, &ParseError{Op: op, Err: err}
	}
	return w, nil
}

// WeatherByCoordinates calls GET /api/v1/weather/coordinates?lat=&lon=.
func (c *Client) WeatherByCoordinates(
	ctx context.Context,
	coords domain.Coordinates,
) (_ domain.WeatherRecord, err error) {
	defer obs.Time(ctx, "api.WeatherByCoordinates")(&err)

	const op = "weather by coordinates"

	v, err := c.getJSON(ctx, op, "/api/v1/weather/coordinates", coordinateParams(coords))
	if err != nil {
		return domain.WeatherRecord{}, err
	}

	w, err := decodeWeather(v)
	if err != nil {
		return domain.WeatherRecord{}, &ParseError{Op: op, Err: err}
	}
	return w, nil
}

func coordinateParams(c domain.Coordinates) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(c.Lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(c.Lon, 'f', -1, 64),
	}
}
