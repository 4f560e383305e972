package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

// AffectedRepository persists zone/location containment associations.
// The affected_locations table carries a unique constraint on
// (zone_id, location_id); inserts use ON CONFLICT DO NOTHING so two
// concurrent matching passes detecting the same pair never error.
type AffectedRepository interface {
	InsertBatch(ctx context.Context, pairs []domain.AffectedPair) error
	// ReplaceForLocation deletes every association for the location
	// and inserts the given zone ids in one transaction, so a
	// recompute never leaves a partially rewritten set. Fresh rows
	// start with is_notified = false.
	ReplaceForLocation(ctx context.Context, locationID uuid.UUID, zoneIDs []uuid.UUID) error
	DeleteForLocation(ctx context.Context, locationID uuid.UUID) error
	DeleteForZone(ctx context.Context, zoneID uuid.UUID) error
	MarkNotified(ctx context.Context, zoneID, locationID uuid.UUID) error
	ListForLocation(ctx context.Context, locationID uuid.UUID, activeOnly bool) ([]domain.AffectedZone, error)
	ListForZone(ctx context.Context, zoneID uuid.UUID) ([]domain.AffectedLocationDetail, error)
	CountInActiveZones(ctx context.Context) (int64, error)
}

type affectedRepository struct {
	db *sqlx.DB
}

func NewAffectedRepository(db *sqlx.DB) AffectedRepository {
	return &affectedRepository{db: db}
}

const insertAffectedQuery = `
	INSERT INTO affected_locations (zone_id, location_id)
	VALUES ($1, $2)
	ON CONFLICT (zone_id, location_id) DO NOTHING`

func (r *affectedRepository) InsertBatch(ctx context.Context, pairs []domain.AffectedPair) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, pair := range pairs {
		if _, err := tx.ExecContext(ctx, insertAffectedQuery, pair.ZoneID, pair.LocationID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *affectedRepository) ReplaceForLocation(ctx context.Context, locationID uuid.UUID, zoneIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM affected_locations WHERE location_id = $1`, locationID); err != nil {
		return err
	}

	for _, zoneID := range zoneIDs {
		if _, err := tx.ExecContext(ctx, insertAffectedQuery, zoneID, locationID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *affectedRepository) DeleteForLocation(ctx context.Context, locationID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM affected_locations WHERE location_id = $1`, locationID)
	return err
}

func (r *affectedRepository) DeleteForZone(ctx context.Context, zoneID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM affected_locations WHERE zone_id = $1`, zoneID)
	return err
}

func (r *affectedRepository) MarkNotified(ctx context.Context, zoneID, locationID uuid.UUID) error {
	query := `UPDATE affected_locations SET is_notified = TRUE WHERE zone_id = $1 AND location_id = $2`
	_, err := r.db.ExecContext(ctx, query, zoneID, locationID)
	return err
}

func (r *affectedRepository) ListForLocation(ctx context.Context, locationID uuid.UUID, activeOnly bool) ([]domain.AffectedZone, error) {
	query := `
		SELECT a.zone_id, a.location_id, a.is_notified, a.created_at,
			z.name AS zone_name, z.status AS zone_status,
			z.disaster_type, z.danger_level
		FROM affected_locations a
		INNER JOIN zones z ON a.zone_id = z.id
		WHERE a.location_id = $1`
	if activeOnly {
		query += ` AND z.status = 'ACTIVE'`
	}
	query += ` ORDER BY a.created_at DESC`

	var zones []domain.AffectedZone
	err := r.db.SelectContext(ctx, &zones, query, locationID)
	return zones, err
}

func (r *affectedRepository) ListForZone(ctx context.Context, zoneID uuid.UUID) ([]domain.AffectedLocationDetail, error) {
	query := `
		SELECT a.zone_id, a.location_id, a.is_notified, a.created_at,
			l.name AS location_name, l.latitude, l.longitude
		FROM affected_locations a
		INNER JOIN locations l ON a.location_id = l.id
		WHERE a.zone_id = $1 AND l.deleted_at IS NULL
		ORDER BY a.created_at DESC`

	var locations []domain.AffectedLocationDetail
	err := r.db.SelectContext(ctx, &locations, query, zoneID)
	return locations, err
}

func (r *affectedRepository) CountInActiveZones(ctx context.Context) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM affected_locations a
		INNER JOIN zones z ON a.zone_id = z.id
		WHERE z.status = 'ACTIVE'`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
