package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

const statsCacheKey = "dashboard:stats"

// Stats is the admin dashboard summary.
type Stats struct {
	ActiveZones       int64                         `json:"active_zones"`
	ResolvedZones     int64                         `json:"resolved_zones"`
	ZonesByType       map[domain.DisasterType]int64 `json:"zones_by_type"`
	TotalLocations    int64                         `json:"total_locations"`
	AffectedLocations int64                         `json:"affected_locations"`
	TotalUsers        int64                         `json:"total_users"`
	TotalFacilities   int64                         `json:"total_facilities"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	zoneRepo     repository.ZoneRepository
	locationRepo repository.LocationRepository
	affectedRepo repository.AffectedRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	redis        *redis.Client
}

func NewService(
	zoneRepo repository.ZoneRepository,
	locationRepo repository.LocationRepository,
	affectedRepo repository.AffectedRepository,
	userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository,
	redis *redis.Client,
) Service {
	return &service{
		zoneRepo:     zoneRepo,
		locationRepo: locationRepo,
		affectedRepo: affectedRepo,
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		redis:        redis,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats := &Stats{}

	var err error
	if stats.ActiveZones, err = s.zoneRepo.CountByStatus(ctx, domain.ZoneActive); err != nil {
		return nil, err
	}
	if stats.ResolvedZones, err = s.zoneRepo.CountByStatus(ctx, domain.ZoneResolved); err != nil {
		return nil, err
	}
	if stats.ZonesByType, err = s.zoneRepo.CountByDisasterType(ctx); err != nil {
		return nil, err
	}
	if stats.TotalLocations, err = s.locationRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.AffectedLocations, err = s.affectedRepo.CountInActiveZones(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalFacilities, err = s.facilityRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, statsCacheKey, statsJSON, time.Minute).Err()
		}
	}

	return stats, nil
}
