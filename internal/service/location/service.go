package location

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service/matcher"
)

var (
	ErrNotFound           = errors.New("location not found")
	ErrNotOwner           = errors.New("insufficient permissions for this location")
	ErrInvalidCoordinates = errors.New("coordinates are invalid or out of range")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateLocationInput) (*domain.Location, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Location, error)
	Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateLocationInput) (*domain.Location, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Location, error)
	// History returns every association the location has ever had,
	// including zones that have since been resolved.
	History(ctx context.Context, userID, id uuid.UUID) ([]domain.AffectedZone, error)
}

type service struct {
	locationRepo repository.LocationRepository
	affectedRepo repository.AffectedRepository
	matcher      matcher.Service
}

func NewService(locationRepo repository.LocationRepository, affectedRepo repository.AffectedRepository, matcherService matcher.Service) Service {
	return &service{
		locationRepo: locationRepo,
		affectedRepo: affectedRepo,
		matcher:      matcherService,
	}
}

// parseCoordinates converts the form's decimal-degree strings and
// enforces the WGS84 ranges.
func parseCoordinates(latStr, lonStr string) (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, ErrInvalidCoordinates
	}
	return lat, lon, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateLocationInput) (*domain.Location, error) {
	lat, lon, err := parseCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	location := &domain.Location{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Latitude:    lat,
		Longitude:   lon,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	matched, err := s.matcher.MatchLocation(ctx, location)
	if err != nil {
		return nil, err
	}

	pairs := make([]domain.AffectedPair, 0, len(matched))
	for _, zoneID := range matched {
		pairs = append(pairs, domain.AffectedPair{ZoneID: zoneID, LocationID: location.ID})
	}
	if err := s.affectedRepo.InsertBatch(ctx, pairs); err != nil {
		return nil, err
	}

	return location, nil
}

func (s *service) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	if location.UserID != userID {
		return nil, ErrNotOwner
	}
	return location, nil
}

func (s *service) Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateLocationInput) (*domain.Location, error) {
	location, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Description != nil {
		location.Description = *input.Description
	}

	coordinatesChanged := false
	if input.Latitude != nil || input.Longitude != nil {
		latStr := strconv.FormatFloat(location.Latitude, 'f', -1, 64)
		lonStr := strconv.FormatFloat(location.Longitude, 'f', -1, 64)
		if input.Latitude != nil {
			latStr = *input.Latitude
		}
		if input.Longitude != nil {
			lonStr = *input.Longitude
		}

		lat, lon, err := parseCoordinates(latStr, lonStr)
		if err != nil {
			return nil, err
		}
		coordinatesChanged = lat != location.Latitude || lon != location.Longitude
		location.Latitude = lat
		location.Longitude = lon
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	// A moved point invalidates every prior association; the matcher
	// rebuilds the set from scratch.
	if coordinatesChanged {
		if err := s.matcher.RecomputeForLocation(ctx, location); err != nil {
			return nil, err
		}
	}

	return location, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}

	if err := s.affectedRepo.DeleteForLocation(ctx, id); err != nil {
		return err
	}

	return s.locationRepo.Delete(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Live warnings: attach only associations with currently ACTIVE
	// zones. Historical ones stay reachable through History.
	for i := range locations {
		zones, err := s.affectedRepo.ListForLocation(ctx, locations[i].ID, true)
		if err != nil {
			return nil, err
		}
		locations[i].ActiveZones = zones
	}

	return locations, nil
}

func (s *service) History(ctx context.Context, userID, id uuid.UUID) ([]domain.AffectedZone, error) {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	return s.affectedRepo.ListForLocation(ctx, id, false)
}
