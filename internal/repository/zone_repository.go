package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	ListAll(ctx context.Context) ([]domain.Zone, error)
	ListActive(ctx context.Context) ([]domain.Zone, error)
	UpdateDetails(ctx context.Context, zone *domain.Zone) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ZoneStatus, resolvedAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status domain.ZoneStatus) (int64, error)
	CountByDisasterType(ctx context.Context) (map[domain.DisasterType]int64, error)
}

type zoneRepository struct {
	db *sqlx.DB
}

func NewZoneRepository(db *sqlx.DB) ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	query := `
		INSERT INTO zones (id, name, description, status, disaster_type, danger_level, geo_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		zone.ID, zone.Name, zone.Description, zone.Status,
		zone.DisasterType, zone.DangerLevel, zone.GeoJSON,
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)
}

func (r *zoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	var zone domain.Zone
	query := `SELECT * FROM zones WHERE id = $1`

	err := r.db.GetContext(ctx, &zone, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepository) ListAll(ctx context.Context) ([]domain.Zone, error) {
	var zones []domain.Zone
	query := `
		SELECT z.*, COUNT(a.location_id) AS affected_count
		FROM zones z
		LEFT JOIN affected_locations a ON a.zone_id = z.id
		GROUP BY z.id
		ORDER BY z.created_at DESC`

	err := r.db.SelectContext(ctx, &zones, query)
	return zones, err
}

func (r *zoneRepository) ListActive(ctx context.Context) ([]domain.Zone, error) {
	var zones []domain.Zone
	query := `SELECT * FROM zones WHERE status = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &zones, query, domain.ZoneActive)
	return zones, err
}

func (r *zoneRepository) UpdateDetails(ctx context.Context, zone *domain.Zone) error {
	query := `
		UPDATE zones
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		zone.ID, zone.Name, zone.Description,
	).Scan(&zone.UpdatedAt)
}

func (r *zoneRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ZoneStatus, resolvedAt *time.Time) error {
	query := `UPDATE zones SET status = $2, resolved_at = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status, resolvedAt)
	return err
}

func (r *zoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM zones WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *zoneRepository) CountByStatus(ctx context.Context, status domain.ZoneStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM zones WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	return count, err
}

func (r *zoneRepository) CountByDisasterType(ctx context.Context) (map[domain.DisasterType]int64, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT disaster_type, COUNT(*) FROM zones GROUP BY disaster_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.DisasterType]int64)
	for rows.Next() {
		var disasterType domain.DisasterType
		var count int64
		if err := rows.Scan(&disasterType, &count); err != nil {
			return nil, err
		}
		counts[disasterType] = count
	}

	return counts, rows.Err()
}
