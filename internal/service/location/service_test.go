package location_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/location"
	"alerto-backend/tests/mocks"
)

func strPtr(s string) *string { return &s }

func newService(locationRepo *mocks.LocationRepository, affectedRepo *mocks.AffectedRepository, matcherService *mocks.MatcherService) location.Service {
	return location.NewService(locationRepo, affectedRepo, matcherService)
}

func TestLocationService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		affectedRepo := new(mocks.AffectedRepository)
		matcherService := new(mocks.MatcherService)

		zoneID := uuid.New()
		locationRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.Location) bool {
			return l.UserID == userID && l.Latitude == 14.5995 && l.Longitude == 120.9842
		})).Return(nil).Once()
		matcherService.On("MatchLocation", ctx, mock.AnythingOfType("*domain.Location")).Return([]uuid.UUID{zoneID}, nil).Once()
		affectedRepo.On("InsertBatch", ctx, mock.MatchedBy(func(pairs []domain.AffectedPair) bool {
			return len(pairs) == 1 && pairs[0].ZoneID == zoneID
		})).Return(nil).Once()

		svc := newService(locationRepo, affectedRepo, matcherService)

		created, err := svc.Create(ctx, userID, domain.CreateLocationInput{
			Name:      "Home",
			Latitude:  "14.5995",
			Longitude: "120.9842",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		locationRepo.AssertExpectations(t)
		affectedRepo.AssertExpectations(t)
	})

	t.Run("InvalidCoordinates", func(t *testing.T) {
		svc := newService(new(mocks.LocationRepository), new(mocks.AffectedRepository), new(mocks.MatcherService))

		_, err := svc.Create(ctx, userID, domain.CreateLocationInput{
			Name:      "Nowhere",
			Latitude:  "not-a-number",
			Longitude: "10",
		})

		assert.ErrorIs(t, err, location.ErrInvalidCoordinates)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		svc := newService(new(mocks.LocationRepository), new(mocks.AffectedRepository), new(mocks.MatcherService))

		_, err := svc.Create(ctx, userID, domain.CreateLocationInput{
			Name:      "Nowhere",
			Latitude:  "91",
			Longitude: "10",
		})

		assert.ErrorIs(t, err, location.ErrInvalidCoordinates)
	})
}

func TestLocationService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	existing := func() *domain.Location {
		return &domain.Location{
			ID:        locationID,
			UserID:    userID,
			Name:      "Home",
			Latitude:  10,
			Longitude: 10,
		}
	}

	t.Run("MoveTriggersRecompute", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		affectedRepo := new(mocks.AffectedRepository)
		matcherService := new(mocks.MatcherService)

		locationRepo.On("GetByID", ctx, locationID).Return(existing(), nil).Once()
		locationRepo.On("Update", ctx, mock.MatchedBy(func(l *domain.Location) bool {
			return l.Latitude == 20 && l.Longitude == 30
		})).Return(nil).Once()
		matcherService.On("RecomputeForLocation", ctx, mock.AnythingOfType("*domain.Location")).Return(nil).Once()

		svc := newService(locationRepo, affectedRepo, matcherService)

		updated, err := svc.Update(ctx, userID, locationID, domain.UpdateLocationInput{
			Latitude:  strPtr("20"),
			Longitude: strPtr("30"),
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(20), updated.Latitude)
		matcherService.AssertExpectations(t)
	})

	t.Run("RenameOnlySkipsRecompute", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		matcherService := new(mocks.MatcherService)

		locationRepo.On("GetByID", ctx, locationID).Return(existing(), nil).Once()
		locationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Location")).Return(nil).Once()

		svc := newService(locationRepo, new(mocks.AffectedRepository), matcherService)

		_, err := svc.Update(ctx, userID, locationID, domain.UpdateLocationInput{
			Name: strPtr("Office"),
		})

		assert.NoError(t, err)
		matcherService.AssertNotCalled(t, "RecomputeForLocation", mock.Anything, mock.Anything)
	})

	t.Run("SameCoordinatesSkipsRecompute", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		matcherService := new(mocks.MatcherService)

		locationRepo.On("GetByID", ctx, locationID).Return(existing(), nil).Once()
		locationRepo.On("Update", ctx, mock.AnythingOfType("*domain.Location")).Return(nil).Once()

		svc := newService(locationRepo, new(mocks.AffectedRepository), matcherService)

		_, err := svc.Update(ctx, userID, locationID, domain.UpdateLocationInput{
			Latitude:  strPtr("10"),
			Longitude: strPtr("10"),
		})

		assert.NoError(t, err)
		matcherService.AssertNotCalled(t, "RecomputeForLocation", mock.Anything, mock.Anything)
	})

	t.Run("NotOwner", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		locationRepo.On("GetByID", ctx, locationID).Return(existing(), nil).Once()

		svc := newService(locationRepo, new(mocks.AffectedRepository), new(mocks.MatcherService))

		_, err := svc.Update(ctx, uuid.New(), locationID, domain.UpdateLocationInput{Name: strPtr("X")})
		assert.ErrorIs(t, err, location.ErrNotOwner)
	})
}

func TestLocationService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	t.Run("CascadesAssociations", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		affectedRepo := new(mocks.AffectedRepository)

		locationRepo.On("GetByID", ctx, locationID).Return(&domain.Location{ID: locationID, UserID: userID}, nil).Once()
		affectedRepo.On("DeleteForLocation", ctx, locationID).Return(nil).Once()
		locationRepo.On("Delete", ctx, locationID).Return(nil).Once()

		svc := newService(locationRepo, affectedRepo, new(mocks.MatcherService))

		assert.NoError(t, svc.Delete(ctx, userID, locationID))
		affectedRepo.AssertExpectations(t)
		locationRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		locationRepo.On("GetByID", ctx, locationID).Return(nil, nil).Once()

		svc := newService(locationRepo, new(mocks.AffectedRepository), new(mocks.MatcherService))

		assert.ErrorIs(t, svc.Delete(ctx, userID, locationID), location.ErrNotFound)
	})
}

func TestLocationService_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	locationRepo := new(mocks.LocationRepository)
	affectedRepo := new(mocks.AffectedRepository)

	locationRepo.On("ListByUser", ctx, userID).Return([]domain.Location{{ID: locationID, UserID: userID}}, nil).Once()
	affectedRepo.On("ListForLocation", ctx, locationID, true).Return([]domain.AffectedZone{{ZoneID: uuid.New()}}, nil).Once()

	svc := newService(locationRepo, affectedRepo, new(mocks.MatcherService))

	locations, err := svc.ListByUser(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Len(t, locations[0].ActiveZones, 1)
}
