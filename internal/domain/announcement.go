package domain

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateAnnouncementInput struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	Body  string `json:"body" validate:"required,min=1,max=5000"`
}

type UpdateAnnouncementInput struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Body  *string `json:"body,omitempty" validate:"omitempty,min=1,max=5000"`
}
