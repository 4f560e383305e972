package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Attachment, error)
	ListByComments(ctx context.Context, commentIDs []uuid.UUID) ([]domain.Attachment, error)
}

type attachmentRepository struct {
	db *sqlx.DB
}

func NewAttachmentRepository(db *sqlx.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	query := `
		INSERT INTO attachments (id, comment_id, uploaded_by, file_name, file_size, mime_type, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		attachment.ID, attachment.CommentID, attachment.UploadedBy,
		attachment.FileName, attachment.FileSize, attachment.MimeType, attachment.StoragePath,
	).Scan(&attachment.CreatedAt)
}

func (r *attachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	query := `SELECT * FROM attachments WHERE id = $1`

	err := r.db.GetContext(ctx, &attachment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	return err
}

func (r *attachmentRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	query := `SELECT * FROM attachments WHERE comment_id = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &attachments, query, commentID)
	return attachments, err
}

func (r *attachmentRepository) ListByComments(ctx context.Context, commentIDs []uuid.UUID) ([]domain.Attachment, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM attachments WHERE comment_id IN (?) ORDER BY created_at`, commentIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var attachments []domain.Attachment
	err = r.db.SelectContext(ctx, &attachments, query, args...)
	return attachments, err
}
