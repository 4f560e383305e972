package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	Update(ctx context.Context, announcement *domain.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.Announcement, int64, error)
}

type announcementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	query := `
		INSERT INTO announcements (id, author_id, title, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		announcement.ID, announcement.AuthorID, announcement.Title, announcement.Body,
	).Scan(&announcement.CreatedAt, &announcement.UpdatedAt)
}

func (r *announcementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	var announcement domain.Announcement
	query := `SELECT * FROM announcements WHERE id = $1`

	err := r.db.GetContext(ctx, &announcement, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, body = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		announcement.ID, announcement.Title, announcement.Body,
	).Scan(&announcement.UpdatedAt)
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}

func (r *announcementRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.Announcement, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM announcements`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM announcements
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var announcements []domain.Announcement
	err := r.db.SelectContext(ctx, &announcements, query, params.PageSize, params.Offset())
	return announcements, total, err
}
