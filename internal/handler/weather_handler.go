package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/weather"
)

type WeatherHandler struct {
	weatherService weather.Service
}

func NewWeatherHandler(weatherService weather.Service) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	lat, lon, err := parseLatLon(c)
	if err != nil {
		return err
	}

	data, err := h.weatherService.Current(c.Context(), lat, lon)
	if err != nil {
		return middleware.NewError(fiber.StatusBadGateway, "Weather provider is unavailable")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *WeatherHandler) Forecast(c *fiber.Ctx) error {
	lat, lon, err := parseLatLon(c)
	if err != nil {
		return err
	}

	data, err := h.weatherService.Forecast(c.Context(), lat, lon)
	if err != nil {
		return middleware.NewError(fiber.StatusBadGateway, "Weather provider is unavailable")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(data)
}

func parseLatLon(c *fiber.Ctx) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, middleware.BadRequest("Query parameter lat must be a latitude")
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, middleware.BadRequest("Query parameter lon must be a longitude")
	}
	return lat, lon, nil
}
