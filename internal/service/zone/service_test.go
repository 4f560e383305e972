package zone_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/zone"
	"alerto-backend/tests/mocks"
)

const squareGeoJSON = `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`

func validInput() domain.CreateZoneInput {
	return domain.CreateZoneInput{
		Name:         "Riverside Flooding",
		Description:  "Heavy rainfall expected along the river.",
		Status:       domain.ZoneActive,
		DisasterType: domain.DisasterFlood,
		DangerLevel:  domain.DangerHigh,
		GeoJSON:      squareGeoJSON,
	}
}

func TestZoneService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		discussionRepo := new(mocks.DiscussionRepository)
		matcherService := new(mocks.MatcherService)

		zoneRepo.On("Create", ctx, mock.MatchedBy(func(z *domain.Zone) bool {
			return z.Name == "Riverside Flooding" && z.Status == domain.ZoneActive
		})).Return(nil).Once()
		discussionRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Discussion) bool {
			return d.Content == "Heavy rainfall expected along the river."
		})).Return(nil).Once()
		matcherService.On("ProcessNewZone", ctx, mock.AnythingOfType("*domain.Zone")).Return(nil).Once()

		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), discussionRepo, matcherService, nil)

		created, err := svc.Create(ctx, validInput())

		assert.NoError(t, err)
		assert.NotNil(t, created)
		zoneRepo.AssertExpectations(t)
		discussionRepo.AssertExpectations(t)
		matcherService.AssertExpectations(t)
	})

	t.Run("InvalidGeometryRejectedBeforeInsert", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		input := validInput()
		input.GeoJSON = `{"not":"geojson"}`

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, zone.ErrInvalidGeometry)
		zoneRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidHazardEnums", func(t *testing.T) {
		svc := zone.NewService(new(mocks.ZoneRepository), new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		input := validInput()
		input.DisasterType = "METEOR"

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, zone.ErrInvalidHazard)
	})
}

func TestZoneService_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()

	existing := &domain.Zone{
		ID:      zoneID,
		Name:    "Riverside Flooding",
		Status:  domain.ZoneActive,
		GeoJSON: json.RawMessage(squareGeoJSON),
	}

	t.Run("ResolveSetsTimestamp", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("GetByID", ctx, zoneID).Return(existing, nil).Once()
		zoneRepo.On("UpdateStatus", ctx, zoneID, domain.ZoneResolved, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil
		})).Return(nil).Once()

		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		updated, err := svc.ChangeStatus(ctx, zoneID, domain.ZoneResolved)

		assert.NoError(t, err)
		assert.Equal(t, domain.ZoneResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
	})

	t.Run("ReactivateClearsTimestamp", func(t *testing.T) {
		resolved := *existing
		resolved.Status = domain.ZoneResolved
		now := time.Now()
		resolved.ResolvedAt = &now

		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("GetByID", ctx, zoneID).Return(&resolved, nil).Once()
		zoneRepo.On("UpdateStatus", ctx, zoneID, domain.ZoneActive, (*time.Time)(nil)).Return(nil).Once()

		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		updated, err := svc.ChangeStatus(ctx, zoneID, domain.ZoneActive)

		assert.NoError(t, err)
		assert.Equal(t, domain.ZoneActive, updated.Status)
		assert.Nil(t, updated.ResolvedAt)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := zone.NewService(new(mocks.ZoneRepository), new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		_, err := svc.ChangeStatus(ctx, zoneID, "ARCHIVED")
		assert.ErrorIs(t, err, zone.ErrInvalidStatus)
	})
}

func TestZoneService_Delete(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()

	t.Run("CascadesAssociationsAndDiscussion", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		affectedRepo := new(mocks.AffectedRepository)
		discussionRepo := new(mocks.DiscussionRepository)

		zoneRepo.On("GetByID", ctx, zoneID).Return(&domain.Zone{ID: zoneID}, nil).Once()
		affectedRepo.On("DeleteForZone", ctx, zoneID).Return(nil).Once()
		discussionRepo.On("DeleteForZone", ctx, zoneID).Return(nil).Once()
		zoneRepo.On("Delete", ctx, zoneID).Return(nil).Once()

		svc := zone.NewService(zoneRepo, affectedRepo, discussionRepo, new(mocks.MatcherService), nil)

		assert.NoError(t, svc.Delete(ctx, zoneID))
		affectedRepo.AssertExpectations(t)
		discussionRepo.AssertExpectations(t)
		zoneRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		zoneRepo.On("GetByID", ctx, zoneID).Return(nil, nil).Once()

		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), new(mocks.DiscussionRepository), new(mocks.MatcherService), nil)

		assert.ErrorIs(t, svc.Delete(ctx, zoneID), zone.ErrNotFound)
	})
}

func TestZoneService_Update(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()

	t.Run("DetailsOnly", func(t *testing.T) {
		zoneRepo := new(mocks.ZoneRepository)
		matcherService := new(mocks.MatcherService)

		zoneRepo.On("GetByID", ctx, zoneID).Return(&domain.Zone{ID: zoneID, Name: "Old"}, nil).Once()
		zoneRepo.On("UpdateDetails", ctx, mock.MatchedBy(func(z *domain.Zone) bool {
			return z.Name == "New name"
		})).Return(nil).Once()

		svc := zone.NewService(zoneRepo, new(mocks.AffectedRepository), new(mocks.DiscussionRepository), matcherService, nil)

		name := "New name"
		updated, err := svc.Update(ctx, zoneID, domain.UpdateZoneInput{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "New name", updated.Name)
		// Geometry never changes on update, so no re-match happens.
		matcherService.AssertNotCalled(t, "ProcessNewZone", mock.Anything, mock.Anything)
	})
}
