package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type DiscussionRepository interface {
	Create(ctx context.Context, discussion *domain.Discussion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	GetByZoneID(ctx context.Context, zoneID uuid.UUID) (*domain.Discussion, error)
	ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.Discussion, int64, error)
	DeleteForZone(ctx context.Context, zoneID uuid.UUID) error
}

type discussionRepository struct {
	db *sqlx.DB
}

func NewDiscussionRepository(db *sqlx.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(ctx context.Context, discussion *domain.Discussion) error {
	query := `
		INSERT INTO discussions (id, zone_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		discussion.ID, discussion.ZoneID, discussion.Content,
	).Scan(&discussion.CreatedAt)
}

func (r *discussionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	var discussion domain.Discussion
	query := `SELECT * FROM discussions WHERE id = $1`

	err := r.db.GetContext(ctx, &discussion, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (r *discussionRepository) GetByZoneID(ctx context.Context, zoneID uuid.UUID) (*domain.Discussion, error) {
	var discussion domain.Discussion
	query := `SELECT * FROM discussions WHERE zone_id = $1`

	err := r.db.GetContext(ctx, &discussion, query, zoneID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (r *discussionRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.Discussion, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM discussions`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT d.id, d.zone_id, d.content, d.created_at,
			COUNT(DISTINCT c.id) AS comment_count,
			COUNT(DISTINCT a.location_id) AS affected_count
		FROM discussions d
		LEFT JOIN comments c ON c.discussion_id = d.id AND c.deleted_at IS NULL
		LEFT JOIN affected_locations a ON a.zone_id = d.zone_id
		GROUP BY d.id
		ORDER BY d.created_at DESC
		LIMIT $1 OFFSET $2`

	var discussions []domain.Discussion
	err := r.db.SelectContext(ctx, &discussions, query, params.PageSize, params.Offset())
	return discussions, total, err
}

func (r *discussionRepository) DeleteForZone(ctx context.Context, zoneID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM discussions WHERE zone_id = $1`, zoneID)
	return err
}
