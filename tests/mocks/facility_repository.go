package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type FacilityRepository struct {
	mock.Mock
}

func (m *FacilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	args := m.Called(ctx, facility)
	return args.Error(0)
}

func (m *FacilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facility), args.Error(1)
}

func (m *FacilityRepository) Update(ctx context.Context, facility *domain.Facility) error {
	args := m.Called(ctx, facility)
	return args.Error(0)
}

func (m *FacilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FacilityRepository) ListAll(ctx context.Context) ([]domain.Facility, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Facility), args.Error(1)
}

func (m *FacilityRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
