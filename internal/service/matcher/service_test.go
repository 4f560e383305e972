package matcher_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/matcher"
	"alerto-backend/tests/mocks"
)

const squareGeoJSON = `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`

func phone(s string) *string { return &s }

func ownedLocation(lon, lat float64, ownerPhone *string) domain.OwnedLocation {
	return domain.OwnedLocation{
		Location: domain.Location{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			Name:      "Home",
			Latitude:  lat,
			Longitude: lon,
		},
		OwnerPhone: ownerPhone,
	}
}

func TestMatchLocation(t *testing.T) {
	ctx := context.Background()

	insideZone := domain.Zone{ID: uuid.New(), Status: domain.ZoneActive, GeoJSON: json.RawMessage(squareGeoJSON)}
	farZone := domain.Zone{ID: uuid.New(), Status: domain.ZoneActive, GeoJSON: json.RawMessage(`{"type":"Polygon","coordinates":[[[100,100],[110,100],[110,110],[100,110],[100,100]]]}`)}
	brokenZone := domain.Zone{ID: uuid.New(), Status: domain.ZoneActive, GeoJSON: json.RawMessage(`"not geojson"`)}

	t.Run("MatchesOnlyContainingZones", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("ListActive", ctx).Return([]domain.Zone{insideZone, farZone, brokenZone}, nil).Once()

		svc := matcher.NewService(zoneRepo, new(mocks.LocationRepository), new(mocks.AffectedRepository), new(mocks.SmsService), new(mocks.NotificationService))

		loc := &domain.Location{ID: uuid.New(), Latitude: 5, Longitude: 5}
		matched, err := svc.MatchLocation(ctx, loc)

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{insideZone.ID}, matched)
		zoneRepo.AssertExpectations(t)
	})

	t.Run("BoundaryPointMatches", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("ListActive", ctx).Return([]domain.Zone{insideZone}, nil).Once()

		svc := matcher.NewService(zoneRepo, new(mocks.LocationRepository), new(mocks.AffectedRepository), new(mocks.SmsService), new(mocks.NotificationService))

		loc := &domain.Location{ID: uuid.New(), Latitude: 5, Longitude: 0}
		matched, err := svc.MatchLocation(ctx, loc)

		assert.NoError(t, err)
		assert.Len(t, matched, 1)
	})

	t.Run("RepoError", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("ListActive", ctx).Return([]domain.Zone(nil), errors.New("db down")).Once()

		svc := matcher.NewService(zoneRepo, new(mocks.LocationRepository), new(mocks.AffectedRepository), new(mocks.SmsService), new(mocks.NotificationService))

		_, err := svc.MatchLocation(ctx, &domain.Location{})
		assert.Error(t, err)
	})
}

func TestRecomputeForLocation(t *testing.T) {
	ctx := context.Background()

	zone := domain.Zone{ID: uuid.New(), Status: domain.ZoneActive, GeoJSON: json.RawMessage(squareGeoJSON)}

	t.Run("ReplacesAssociations", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		affectedRepo := new(mocks.AffectedRepository)
		zoneRepo.On("ListActive", ctx).Return([]domain.Zone{zone}, nil).Once()

		loc := &domain.Location{ID: uuid.New(), Latitude: 5, Longitude: 5}
		affectedRepo.On("ReplaceForLocation", ctx, loc.ID, []uuid.UUID{zone.ID}).Return(nil).Once()

		svc := matcher.NewService(zoneRepo, new(mocks.LocationRepository), affectedRepo, new(mocks.SmsService), new(mocks.NotificationService))

		assert.NoError(t, svc.RecomputeForLocation(ctx, loc))
		affectedRepo.AssertExpectations(t)
	})

	t.Run("MovedOutsideClearsAssociations", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		affectedRepo := new(mocks.AffectedRepository)
		zoneRepo.On("ListActive", ctx).Return([]domain.Zone{zone}, nil).Once()

		loc := &domain.Location{ID: uuid.New(), Latitude: 50, Longitude: 50}
		affectedRepo.On("ReplaceForLocation", ctx, loc.ID, []uuid.UUID(nil)).Return(nil).Once()

		svc := matcher.NewService(zoneRepo, new(mocks.LocationRepository), affectedRepo, new(mocks.SmsService), new(mocks.NotificationService))

		assert.NoError(t, svc.RecomputeForLocation(ctx, loc))
		affectedRepo.AssertExpectations(t)
	})
}

func TestProcessNewZone(t *testing.T) {
	ctx := context.Background()

	zone := &domain.Zone{
		ID:           uuid.New(),
		Name:         "Riverside Flooding",
		Status:       domain.ZoneActive,
		DisasterType: domain.DisasterFlood,
		DangerLevel:  domain.DangerHigh,
		GeoJSON:      json.RawMessage(squareGeoJSON),
	}

	t.Run("NotifiesAffectedOwnersOnce", func(t *testing.T) {
		inside := ownedLocation(5, 5, phone("+639171234567"))
		outside := ownedLocation(50, 50, phone("+639179999999"))
		noPhone := ownedLocation(2, 2, nil)

		locationRepo := new(mocks.LocationRepository)
		locationRepo.On("ListAllWithOwners", ctx).Return([]domain.OwnedLocation{inside, outside, noPhone}, nil).Once()

		affectedRepo := new(mocks.AffectedRepository)
		affectedRepo.On("InsertBatch", ctx, []domain.AffectedPair{
			{ZoneID: zone.ID, LocationID: inside.ID},
			{ZoneID: zone.ID, LocationID: noPhone.ID},
		}).Return(nil).Once()
		affectedRepo.On("MarkNotified", ctx, zone.ID, inside.ID).Return(nil).Once()

		smsService := new(mocks.SmsService)
		smsService.On("Send", ctx, "+639171234567", "Update: Home is a high risk area for flood. Stay cautious and follow local news.").Return(nil).Once()

		notifService := new(mocks.NotificationService)
		notifService.On("NotifyZoneAlert", ctx, inside.UserID, zone, inside.Name).Return(nil).Once()

		svc := matcher.NewService(new(mocks.ZoneRepository), locationRepo, affectedRepo, smsService, notifService)

		assert.NoError(t, svc.ProcessNewZone(ctx, zone))
		locationRepo.AssertExpectations(t)
		affectedRepo.AssertExpectations(t)
		smsService.AssertExpectations(t)
		notifService.AssertExpectations(t)
	})

	t.Run("SendFailureSkipsMarkNotified", func(t *testing.T) {
		first := ownedLocation(1, 1, phone("+639170000001"))
		second := ownedLocation(2, 2, phone("+639170000002"))

		locationRepo := new(mocks.LocationRepository)
		locationRepo.On("ListAllWithOwners", ctx).Return([]domain.OwnedLocation{first, second}, nil).Once()

		affectedRepo := new(mocks.AffectedRepository)
		affectedRepo.On("InsertBatch", ctx, mock.Anything).Return(nil).Once()
		affectedRepo.On("MarkNotified", ctx, zone.ID, second.ID).Return(nil).Once()

		smsService := new(mocks.SmsService)
		smsService.On("Send", ctx, "+639170000001", mock.Anything).Return(errors.New("gateway timeout")).Once()
		smsService.On("Send", ctx, "+639170000002", mock.Anything).Return(nil).Once()

		notifService := new(mocks.NotificationService)
		notifService.On("NotifyZoneAlert", ctx, second.UserID, zone, second.Name).Return(nil).Once()

		svc := matcher.NewService(new(mocks.ZoneRepository), locationRepo, affectedRepo, smsService, notifService)

		// One owner's gateway failure never aborts the rest.
		assert.NoError(t, svc.ProcessNewZone(ctx, zone))
		affectedRepo.AssertNotCalled(t, "MarkNotified", ctx, zone.ID, first.ID)
		smsService.AssertExpectations(t)
	})

	t.Run("UndecodableGeometryMatchesNothing", func(t *testing.T) {
		locationRepo := new(mocks.LocationRepository)
		affectedRepo := new(mocks.AffectedRepository)
		smsService := new(mocks.SmsService)

		broken := &domain.Zone{ID: uuid.New(), GeoJSON: json.RawMessage(`"oops"`)}
		svc := matcher.NewService(new(mocks.ZoneRepository), locationRepo, affectedRepo, smsService, new(mocks.NotificationService))

		assert.NoError(t, svc.ProcessNewZone(ctx, broken))
		locationRepo.AssertNotCalled(t, "ListAllWithOwners", ctx)
		smsService.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}
