package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
)

type MediaService struct {
	mock.Mock
}

func (m *MediaService) Upload(ctx context.Context, userID, commentID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Attachment, error) {
	args := m.Called(ctx, userID, commentID, fileName, fileSize, mimeType, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MediaService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MediaService) PublicURL(storagePath string) string {
	args := m.Called(storagePath)
	return args.String(0)
}
