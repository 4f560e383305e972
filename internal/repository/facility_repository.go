package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	Update(ctx context.Context, facility *domain.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Facility, error)
	CountAll(ctx context.Context) (int64, error)
}

type facilityRepository struct {
	db *sqlx.DB
}

func NewFacilityRepository(db *sqlx.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	query := `
		INSERT INTO facilities (id, name, type, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		facility.ID, facility.Name, facility.Type, facility.Latitude, facility.Longitude,
	).Scan(&facility.CreatedAt, &facility.UpdatedAt)
}

func (r *facilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	var facility domain.Facility
	query := `SELECT * FROM facilities WHERE id = $1`

	err := r.db.GetContext(ctx, &facility, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *domain.Facility) error {
	query := `
		UPDATE facilities
		SET name = $2, type = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		facility.ID, facility.Name, facility.Type,
	).Scan(&facility.UpdatedAt)
}

func (r *facilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	return err
}

func (r *facilityRepository) ListAll(ctx context.Context) ([]domain.Facility, error) {
	var facilities []domain.Facility
	query := `SELECT * FROM facilities ORDER BY name`

	err := r.db.SelectContext(ctx, &facilities, query)
	return facilities, err
}

func (r *facilityRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM facilities`)
	return count, err
}
