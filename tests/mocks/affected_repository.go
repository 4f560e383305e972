package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type AffectedRepository struct {
	mock.Mock
}

func (m *AffectedRepository) InsertBatch(ctx context.Context, pairs []domain.AffectedPair) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

func (m *AffectedRepository) ReplaceForLocation(ctx context.Context, locationID uuid.UUID, zoneIDs []uuid.UUID) error {
	args := m.Called(ctx, locationID, zoneIDs)
	return args.Error(0)
}

func (m *AffectedRepository) DeleteForLocation(ctx context.Context, locationID uuid.UUID) error {
	args := m.Called(ctx, locationID)
	return args.Error(0)
}

func (m *AffectedRepository) DeleteForZone(ctx context.Context, zoneID uuid.UUID) error {
	args := m.Called(ctx, zoneID)
	return args.Error(0)
}

func (m *AffectedRepository) MarkNotified(ctx context.Context, zoneID, locationID uuid.UUID) error {
	args := m.Called(ctx, zoneID, locationID)
	return args.Error(0)
}

func (m *AffectedRepository) ListForLocation(ctx context.Context, locationID uuid.UUID, activeOnly bool) ([]domain.AffectedZone, error) {
	args := m.Called(ctx, locationID, activeOnly)
	return args.Get(0).([]domain.AffectedZone), args.Error(1)
}

func (m *AffectedRepository) ListForZone(ctx context.Context, zoneID uuid.UUID) ([]domain.AffectedLocationDetail, error) {
	args := m.Called(ctx, zoneID)
	return args.Get(0).([]domain.AffectedLocationDetail), args.Error(1)
}

func (m *AffectedRepository) CountInActiveZones(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
