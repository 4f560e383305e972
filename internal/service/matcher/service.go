// Package matcher computes point-in-polygon containment between
// registered locations and hazard zones, maintains the affected
// associations, and drives SMS dispatch for newly created zones.
// Every lifecycle hook (location create/update, zone create) goes
// through this one service.
package matcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/geo"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service/notification"
	"alerto-backend/internal/service/sms"
)

type Service interface {
	// MatchLocation returns the ids of ACTIVE zones whose geometry
	// contains the location.
	MatchLocation(ctx context.Context, location *domain.Location) ([]uuid.UUID, error)
	// MatchZone returns the ids of all locations contained by the
	// zone's geometry, regardless of prior associations.
	MatchZone(ctx context.Context, zone *domain.Zone) ([]uuid.UUID, error)
	// RecomputeForLocation wipes the location's associations and
	// rebuilds them from the current set of ACTIVE zones. Fresh rows
	// start unnotified; prior notification history for the location
	// is not preserved.
	RecomputeForLocation(ctx context.Context, location *domain.Location) error
	// ProcessNewZone matches a newly created zone against every
	// location, records the associations, and attempts one SMS per
	// matched location whose owner has a phone number. Dispatch
	// failures are logged and skipped; they never fail the zone
	// creation or roll back the association rows.
	ProcessNewZone(ctx context.Context, zone *domain.Zone) error
}

type service struct {
	zoneRepo     repository.ZoneRepository
	locationRepo repository.LocationRepository
	affectedRepo repository.AffectedRepository
	smsService   sms.Service
	notifService notification.Service
}

func NewService(
	zoneRepo repository.ZoneRepository,
	locationRepo repository.LocationRepository,
	affectedRepo repository.AffectedRepository,
	smsService sms.Service,
	notifService notification.Service,
) Service {
	return &service{
		zoneRepo:     zoneRepo,
		locationRepo: locationRepo,
		affectedRepo: affectedRepo,
		smsService:   smsService,
		notifService: notifService,
	}
}

func (s *service) MatchLocation(ctx context.Context, location *domain.Location) ([]uuid.UUID, error) {
	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active zones: %w", err)
	}

	var matched []uuid.UUID
	for i := range zones {
		g, err := geo.Decode(zones[i].GeoJSON)
		if err != nil {
			// Zones with unusable geometry match nothing.
			continue
		}
		if geo.Contains(g, location.Longitude, location.Latitude) {
			matched = append(matched, zones[i].ID)
		}
	}

	return matched, nil
}

func (s *service) MatchZone(ctx context.Context, zone *domain.Zone) ([]uuid.UUID, error) {
	g, err := geo.Decode(zone.GeoJSON)
	if err != nil {
		return nil, nil
	}

	locations, err := s.locationRepo.ListAllWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	var matched []uuid.UUID
	for i := range locations {
		if geo.Contains(g, locations[i].Longitude, locations[i].Latitude) {
			matched = append(matched, locations[i].ID)
		}
	}

	return matched, nil
}

func (s *service) RecomputeForLocation(ctx context.Context, location *domain.Location) error {
	matched, err := s.MatchLocation(ctx, location)
	if err != nil {
		return err
	}

	if err := s.affectedRepo.ReplaceForLocation(ctx, location.ID, matched); err != nil {
		return fmt.Errorf("failed to rewrite associations: %w", err)
	}

	return nil
}

func (s *service) ProcessNewZone(ctx context.Context, zone *domain.Zone) error {
	g, err := geo.Decode(zone.GeoJSON)
	if err != nil {
		return nil
	}

	locations, err := s.locationRepo.ListAllWithOwners(ctx)
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}

	var affected []domain.OwnedLocation
	var pairs []domain.AffectedPair
	for i := range locations {
		if geo.Contains(g, locations[i].Longitude, locations[i].Latitude) {
			affected = append(affected, locations[i])
			pairs = append(pairs, domain.AffectedPair{ZoneID: zone.ID, LocationID: locations[i].ID})
		}
	}

	if err := s.affectedRepo.InsertBatch(ctx, pairs); err != nil {
		return fmt.Errorf("failed to insert associations: %w", err)
	}

	for i := range affected {
		loc := &affected[i]
		if loc.OwnerPhone == nil || *loc.OwnerPhone == "" {
			continue
		}

		message := composeAlert(zone, loc.Name)
		if err := s.smsService.Send(ctx, *loc.OwnerPhone, message); err != nil {
			log.Printf("Failed to notify %s for zone %s: %v", loc.ID, zone.ID, err)
			continue
		}

		if err := s.affectedRepo.MarkNotified(ctx, zone.ID, loc.ID); err != nil {
			log.Printf("Failed to mark association (%s, %s) notified: %v", zone.ID, loc.ID, err)
		}

		if err := s.notifService.NotifyZoneAlert(ctx, loc.UserID, zone, loc.Name); err != nil {
			log.Printf("Failed to create in-app notification for %s: %v", loc.UserID, err)
		}
	}

	return nil
}

func composeAlert(zone *domain.Zone, locationName string) string {
	return fmt.Sprintf("Update: %s is a %s risk area for %s. Stay cautious and follow local news.",
		locationName,
		strings.ToLower(string(zone.DangerLevel)),
		strings.ToLower(string(zone.DisasterType)),
	)
}
