package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) Create(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *LocationRepository) Update(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Location, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *LocationRepository) ListAllWithOwners(ctx context.Context) ([]domain.OwnedLocation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OwnedLocation), args.Error(1)
}

func (m *LocationRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
