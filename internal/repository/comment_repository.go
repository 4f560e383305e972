package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"alerto-backend/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByDiscussion returns top-level comments with their replies
	// attached, both ordered oldest first.
	ListByDiscussion(ctx context.Context, discussionID uuid.UUID) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, discussion_id, user_id, parent_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.DiscussionID, comment.UserID, comment.ParentID, comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT * FROM comments WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.Content,
	).Scan(&comment.UpdatedAt)
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE comments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *commentRepository) ListByDiscussion(ctx context.Context, discussionID uuid.UUID) ([]domain.Comment, error) {
	query := `
		SELECT
			c.id, c.discussion_id, c.user_id, c.parent_id, c.content, c.created_at, c.updated_at,
			u.id AS author_id, u.first_name AS author_first_name, u.last_name AS author_last_name
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.discussion_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at`

	rows, err := r.db.QueryxContext(ctx, query, discussionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var author domain.CommentAuthor
		err := rows.Scan(
			&c.ID, &c.DiscussionID, &c.UserID, &c.ParentID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&author.ID, &author.FirstName, &author.LastName,
		)
		if err != nil {
			return nil, err
		}
		c.Author = &author
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Thread replies under their parents.
	var topLevel []domain.Comment
	for i := range all {
		if all[i].ParentID == nil {
			topLevel = append(topLevel, all[i])
		}
	}
	for i := range all {
		if all[i].ParentID == nil {
			continue
		}
		for j := range topLevel {
			if topLevel[j].ID == *all[i].ParentID {
				topLevel[j].Replies = append(topLevel[j].Replies, all[i])
				break
			}
		}
	}

	return topLevel, nil
}
