package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type AttachmentRepository struct {
	mock.Mock
}

func (m *AttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AttachmentRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Attachment, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *AttachmentRepository) ListByComments(ctx context.Context, commentIDs []uuid.UUID) ([]domain.Attachment, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).([]domain.Attachment), args.Error(1)
}
