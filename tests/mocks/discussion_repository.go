package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type DiscussionRepository struct {
	mock.Mock
}

func (m *DiscussionRepository) Create(ctx context.Context, discussion *domain.Discussion) error {
	args := m.Called(ctx, discussion)
	return args.Error(0)
}

func (m *DiscussionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discussion), args.Error(1)
}

func (m *DiscussionRepository) GetByZoneID(ctx context.Context, zoneID uuid.UUID) (*domain.Discussion, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discussion), args.Error(1)
}

func (m *DiscussionRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.Discussion, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Discussion), args.Get(1).(int64), args.Error(2)
}

func (m *DiscussionRepository) DeleteForZone(ctx context.Context, zoneID uuid.UUID) error {
	args := m.Called(ctx, zoneID)
	return args.Error(0)
}
