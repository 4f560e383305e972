package announcement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

var ErrNotFound = errors.New("announcement not found")

type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Announcement], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	announcementRepo repository.AnnouncementRepository
}

func NewService(announcementRepo repository.AnnouncementRepository) Service {
	return &service{announcementRepo: announcementRepo}
}

func (s *service) Create(ctx context.Context, authorID uuid.UUID, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	announcement := &domain.Announcement{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    input.Title,
		Body:     input.Body,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrNotFound
	}
	return announcement, nil
}

func (s *service) ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Announcement], error) {
	announcements, total, err := s.announcementRepo.ListAll(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Announcement]{}, err
	}

	return domain.NewPaginatedResponse(announcements, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateAnnouncementInput) (*domain.Announcement, error) {
	announcement, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		announcement.Title = *input.Title
	}
	if input.Body != nil {
		announcement.Body = *input.Body
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.announcementRepo.Delete(ctx, id)
}
