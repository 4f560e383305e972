package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Location, error)
	ListAllWithOwners(ctx context.Context) ([]domain.OwnedLocation, error)
	CountAll(ctx context.Context) (int64, error)
}

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (id, user_id, name, description, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		location.ID, location.UserID, location.Name, location.Description,
		location.Latitude, location.Longitude,
	).Scan(&location.CreatedAt, &location.UpdatedAt)
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	query := `SELECT * FROM locations WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &location, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations
		SET name = $2, description = $3, latitude = $4, longitude = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		location.ID, location.Name, location.Description, location.Latitude, location.Longitude,
	).Scan(&location.UpdatedAt)
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE locations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *locationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Location, error) {
	var locations []domain.Location
	query := `
		SELECT * FROM locations
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &locations, query, userID)
	return locations, err
}

func (r *locationRepository) ListAllWithOwners(ctx context.Context) ([]domain.OwnedLocation, error) {
	var locations []domain.OwnedLocation
	query := `
		SELECT l.*, u.phone_number AS owner_phone
		FROM locations l
		INNER JOIN users u ON l.user_id = u.id
		WHERE l.deleted_at IS NULL AND u.deleted_at IS NULL
		ORDER BY l.created_at`

	err := r.db.SelectContext(ctx, &locations, query)
	return locations, err
}

func (r *locationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM locations WHERE deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
