package facility

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

var (
	ErrNotFound           = errors.New("facility not found")
	ErrInvalidType        = errors.New("invalid facility type")
	ErrInvalidCoordinates = errors.New("invalid facility coordinates")
)

type Service interface {
	Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	ListAll(ctx context.Context) ([]domain.Facility, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateFacilityInput) (*domain.Facility, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	facilityRepo repository.FacilityRepository
}

func NewService(facilityRepo repository.FacilityRepository) Service {
	return &service{facilityRepo: facilityRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error) {
	if !input.Type.IsValid() {
		return nil, ErrInvalidType
	}

	lat, lon, err := parseCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	facility := &domain.Facility{
		ID:        uuid.New(),
		Name:      input.Name,
		Type:      input.Type,
		Latitude:  lat,
		Longitude: lon,
	}

	if err := s.facilityRepo.Create(ctx, facility); err != nil {
		return nil, err
	}

	return facility, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrNotFound
	}
	return facility, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Facility, error) {
	return s.facilityRepo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateFacilityInput) (*domain.Facility, error) {
	facility, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		facility.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, ErrInvalidType
		}
		facility.Type = *input.Type
	}

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		return nil, err
	}

	return facility, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.facilityRepo.Delete(ctx, id)
}

func parseCoordinates(latStr, lonStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, ErrInvalidCoordinates
	}
	return lat, lon, nil
}
