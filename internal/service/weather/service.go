package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"

	"alerto-backend/internal/config"
)

var ErrUpstream = errors.New("weather provider request failed")

const cacheTTL = 10 * time.Minute

type Service interface {
	Current(ctx context.Context, lat, lon float64) (json.RawMessage, error)
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

type service struct {
	client *resty.Client
	apiKey string
	redis  *redis.Client
}

func NewService(cfg *config.Config, redisClient *redis.Client) Service {
	client := resty.New().
		SetBaseURL(cfg.OpenWeatherBaseURL).
		SetTimeout(10 * time.Second)

	return &service{
		client: client,
		apiKey: cfg.OpenWeatherAPIKey,
		redis:  redisClient,
	}
}

func (s *service) Current(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return s.fetch(ctx, "/weather", lat, lon)
}

func (s *service) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return s.fetch(ctx, "/forecast", lat, lon)
}

// fetch proxies the provider response as-is. Coordinates are rounded
// to two decimals for the cache key so nearby requests share entries.
func (s *service) fetch(ctx context.Context, path string, lat, lon float64) (json.RawMessage, error) {
	cacheKey := fmt.Sprintf("weather:%s:%.2f:%.2f", path, lat, lon)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			return json.RawMessage(cached), nil
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"units": "metric",
			"appid": s.apiKey,
		}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	body := resp.Body()
	if s.redis != nil {
		_ = s.redis.Set(ctx, cacheKey, body, cacheTTL).Err()
	}

	return json.RawMessage(body), nil
}
