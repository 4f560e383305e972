package zone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/geo"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service/matcher"
)

var (
	ErrNotFound        = errors.New("zone not found")
	ErrInvalidGeometry = errors.New("zone geometry is invalid")
	ErrInvalidStatus   = errors.New("invalid zone status")
	ErrInvalidHazard   = errors.New("invalid disaster type or danger level")
)

const activeZonesCacheKey = "zones:active"

type Service interface {
	Create(ctx context.Context, input domain.CreateZoneInput) (*domain.Zone, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	ListAll(ctx context.Context) ([]domain.Zone, error)
	ListActive(ctx context.Context) ([]domain.Zone, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateZoneInput) (*domain.Zone, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.ZoneStatus) (*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AffectedLocations(ctx context.Context, id uuid.UUID) ([]domain.AffectedLocationDetail, error)
}

type service struct {
	zoneRepo       repository.ZoneRepository
	affectedRepo   repository.AffectedRepository
	discussionRepo repository.DiscussionRepository
	matcher        matcher.Service
	redis          *redis.Client
}

func NewService(
	zoneRepo repository.ZoneRepository,
	affectedRepo repository.AffectedRepository,
	discussionRepo repository.DiscussionRepository,
	matcherService matcher.Service,
	redis *redis.Client,
) Service {
	return &service{
		zoneRepo:       zoneRepo,
		affectedRepo:   affectedRepo,
		discussionRepo: discussionRepo,
		matcher:        matcherService,
		redis:          redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateZoneInput) (*domain.Zone, error) {
	if !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !input.DisasterType.IsValid() || !input.DangerLevel.IsValid() {
		return nil, ErrInvalidHazard
	}

	// Reject unusable geometry before anything is written.
	if _, err := geo.Decode([]byte(input.GeoJSON)); err != nil {
		return nil, ErrInvalidGeometry
	}

	zone := &domain.Zone{
		ID:           uuid.New(),
		Name:         input.Name,
		Description:  input.Description,
		Status:       input.Status,
		DisasterType: input.DisasterType,
		DangerLevel:  input.DangerLevel,
		GeoJSON:      json.RawMessage(input.GeoJSON),
	}

	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", err)
	}

	// Every zone gets a discussion thread seeded with its description.
	discussion := &domain.Discussion{
		ID:      uuid.New(),
		ZoneID:  zone.ID,
		Content: zone.Description,
	}
	if err := s.discussionRepo.Create(ctx, discussion); err != nil {
		return nil, fmt.Errorf("failed to create zone discussion: %w", err)
	}

	if err := s.matcher.ProcessNewZone(ctx, zone); err != nil {
		return nil, err
	}

	s.invalidateActiveCache(ctx)
	return zone, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, ErrNotFound
	}
	return zone, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Zone, error) {
	return s.zoneRepo.ListAll(ctx)
}

func (s *service) ListActive(ctx context.Context) ([]domain.Zone, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, activeZonesCacheKey).Result(); err == nil {
			var zones []domain.Zone
			if json.Unmarshal([]byte(cached), &zones) == nil {
				return zones, nil
			}
		}
	}

	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if zonesJSON, err := json.Marshal(zones); err == nil {
			_ = s.redis.Set(ctx, activeZonesCacheKey, zonesJSON, 5*time.Minute).Err()
		}
	}

	return zones, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateZoneInput) (*domain.Zone, error) {
	zone, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		zone.Name = *input.Name
	}
	if input.Description != nil {
		zone.Description = *input.Description
	}

	// Geometry is immutable after creation, so no re-match happens
	// here.
	if err := s.zoneRepo.UpdateDetails(ctx, zone); err != nil {
		return nil, err
	}

	s.invalidateActiveCache(ctx)
	return zone, nil
}

func (s *service) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.ZoneStatus) (*domain.Zone, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	zone, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if status == domain.ZoneResolved {
		now := time.Now()
		resolvedAt = &now
	}

	// Associations are kept when a zone resolves; the history views
	// rely on them. Live warnings filter on ACTIVE at read time.
	if err := s.zoneRepo.UpdateStatus(ctx, id, status, resolvedAt); err != nil {
		return nil, err
	}

	zone.Status = status
	zone.ResolvedAt = resolvedAt

	s.invalidateActiveCache(ctx)
	return zone, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.affectedRepo.DeleteForZone(ctx, id); err != nil {
		return err
	}
	if err := s.discussionRepo.DeleteForZone(ctx, id); err != nil {
		return err
	}
	if err := s.zoneRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateActiveCache(ctx)
	return nil
}

func (s *service) AffectedLocations(ctx context.Context, id uuid.UUID) ([]domain.AffectedLocationDetail, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.affectedRepo.ListForZone(ctx, id)
}

func (s *service) invalidateActiveCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, activeZonesCacheKey).Err()
	}
}
