package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/dashboard"
	"alerto-backend/tests/mocks"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	zoneRepo := new(mocks.ZoneRepository)
	locationRepo := new(mocks.LocationRepository)
	affectedRepo := new(mocks.AffectedRepository)
	userRepo := new(mocks.UserRepository)
	facilityRepo := new(mocks.FacilityRepository)

	zoneRepo.On("CountByStatus", ctx, domain.ZoneActive).Return(int64(3), nil).Once()
	zoneRepo.On("CountByStatus", ctx, domain.ZoneResolved).Return(int64(7), nil).Once()
	zoneRepo.On("CountByDisasterType", ctx).Return(map[domain.DisasterType]int64{
		domain.DisasterFlood: 6,
		domain.DisasterFire:  4,
	}, nil).Once()
	locationRepo.On("CountAll", ctx).Return(int64(120), nil).Once()
	affectedRepo.On("CountInActiveZones", ctx).Return(int64(14), nil).Once()
	userRepo.On("CountAll", ctx).Return(int64(80), nil).Once()
	facilityRepo.On("CountAll", ctx).Return(int64(9), nil).Once()

	svc := dashboard.NewService(zoneRepo, locationRepo, affectedRepo, userRepo, facilityRepo, nil)

	stats, err := svc.GetStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.ActiveZones)
	assert.Equal(t, int64(7), stats.ResolvedZones)
	assert.Equal(t, int64(6), stats.ZonesByType[domain.DisasterFlood])
	assert.Equal(t, int64(120), stats.TotalLocations)
	assert.Equal(t, int64(14), stats.AffectedLocations)
	assert.Equal(t, int64(80), stats.TotalUsers)
	assert.Equal(t, int64(9), stats.TotalFacilities)
}
