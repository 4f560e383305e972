package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type ZoneRepository struct {
	mock.Mock
}

func (m *ZoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *ZoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *ZoneRepository) ListAll(ctx context.Context) ([]domain.Zone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Zone), args.Error(1)
}

func (m *ZoneRepository) ListActive(ctx context.Context) ([]domain.Zone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Zone), args.Error(1)
}

func (m *ZoneRepository) UpdateDetails(ctx context.Context, zone *domain.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *ZoneRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ZoneStatus, resolvedAt *time.Time) error {
	args := m.Called(ctx, id, status, resolvedAt)
	return args.Error(0)
}

func (m *ZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ZoneRepository) CountByStatus(ctx context.Context, status domain.ZoneStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ZoneRepository) CountByDisasterType(ctx context.Context) (map[domain.DisasterType]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.DisasterType]int64), args.Error(1)
}
