package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"alerto-backend/internal/config"
	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

var (
	ErrNotFound        = errors.New("attachment not found")
	ErrUnsupportedType = errors.New("unsupported attachment type")
	ErrTooLarge        = errors.New("attachment exceeds the size limit")
)

// maxAttachmentSize caps uploads at 10 MB.
const maxAttachmentSize = 10 << 20

type Service interface {
	Upload(ctx context.Context, userID, commentID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Attachment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PublicURL(storagePath string) string
}

type service struct {
	attachmentRepo repository.AttachmentRepository
	minioClient    *minio.Client
	cfg            *config.Config
}

func NewService(attachmentRepo repository.AttachmentRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		attachmentRepo: attachmentRepo,
		minioClient:    minioClient,
		cfg:            cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID, commentID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Attachment, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrUnsupportedType
	}
	if fileSize > maxAttachmentSize {
		return nil, ErrTooLarge
	}

	attachmentID := uuid.New()
	storagePath := fmt.Sprintf("attachments/%s/%s", time.Now().Format("2006/01"), attachmentID.String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	attachment := &domain.Attachment{
		ID:          attachmentID,
		CommentID:   commentID,
		UploadedBy:  userID,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	attachment.URL = s.PublicURL(storagePath)
	return attachment, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, ErrNotFound
	}

	attachment.URL = s.PublicURL(attachment.StoragePath)
	return attachment, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if attachment == nil {
		return ErrNotFound
	}

	if err := s.attachmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, attachment.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) PublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
