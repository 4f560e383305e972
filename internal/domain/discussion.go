package domain

import (
	"time"

	"github.com/google/uuid"
)

// Discussion is a thread opened for a zone when the zone is created.
// It is deleted together with its zone.
type Discussion struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ZoneID    uuid.UUID `json:"zone_id" db:"zone_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Zone          *Zone        `json:"zone,omitempty"`
	CommentCount  int64        `json:"comment_count,omitempty" db:"comment_count"`
	AffectedCount int64        `json:"affected_count,omitempty" db:"affected_count"`
	Comments      []Comment    `json:"comments,omitempty"`
}

// Comment is a discussion message; top-level when ParentID is nil,
// otherwise a reply.
type Comment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	DiscussionID uuid.UUID  `json:"discussion_id" db:"discussion_id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	ParentID     *uuid.UUID `json:"parent_id" db:"parent_id"`
	Content      string     `json:"content" db:"content"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`

	Author      *CommentAuthor `json:"author,omitempty"`
	Replies     []Comment      `json:"replies,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
}

type CommentAuthor struct {
	ID        uuid.UUID `json:"id" db:"author_id"`
	FirstName string    `json:"first_name" db:"author_first_name"`
	LastName  string    `json:"last_name" db:"author_last_name"`
}

// Attachment is a photo uploaded with a comment, stored in object
// storage and served by public URL.
type Attachment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CommentID   uuid.UUID `json:"comment_id" db:"comment_id"`
	UploadedBy  uuid.UUID `json:"uploaded_by" db:"uploaded_by"`
	FileName    string    `json:"file_name" db:"file_name"`
	FileSize    int64     `json:"file_size" db:"file_size"`
	MimeType    string    `json:"mime_type" db:"mime_type"`
	StoragePath string    `json:"-" db:"storage_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	URL string `json:"url,omitempty" db:"-"`
}

type CreateCommentInput struct {
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Content  string     `json:"content" validate:"required,min=1,max=2000"`
}
