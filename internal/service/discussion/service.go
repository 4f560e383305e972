package discussion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service/media"
)

var (
	ErrNotFound        = errors.New("discussion not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidParent   = errors.New("parent comment does not belong to this discussion")
	ErrEmptyContent    = errors.New("comment content must not be empty")
	ErrNotAuthor       = errors.New("comment belongs to another user")
)

type Service interface {
	ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Discussion], error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	GetByZoneID(ctx context.Context, zoneID uuid.UUID) (*domain.Discussion, error)
	AddComment(ctx context.Context, discussionID, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uuid.UUID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID, isAdmin bool) error
}

type service struct {
	discussionRepo repository.DiscussionRepository
	commentRepo    repository.CommentRepository
	attachmentRepo repository.AttachmentRepository
	mediaService   media.Service
	redis          *redis.Client
}

func NewService(
	discussionRepo repository.DiscussionRepository,
	commentRepo repository.CommentRepository,
	attachmentRepo repository.AttachmentRepository,
	mediaService media.Service,
	redis *redis.Client,
) Service {
	return &service{
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		mediaService:   mediaService,
		redis:          redis,
	}
}

func (s *service) ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Discussion], error) {
	cacheKey := fmt.Sprintf("discussions:list:%d:%d", params.Page, params.PageSize)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var response domain.PaginatedResponse[domain.Discussion]
			if json.Unmarshal([]byte(cached), &response) == nil {
				return response, nil
			}
		}
	}

	discussions, total, err := s.discussionRepo.ListAll(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Discussion]{}, err
	}

	response := domain.NewPaginatedResponse(discussions, params.Page, params.PageSize, total)

	if s.redis != nil {
		if responseJSON, err := json.Marshal(response); err == nil {
			_ = s.redis.Set(ctx, cacheKey, responseJSON, 2*time.Minute).Err()
		}
	}

	return response, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, err := s.redis.Keys(ctx, "discussions:list:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	_ = s.redis.Del(ctx, keys...).Err()
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrNotFound
	}

	if err := s.attachComments(ctx, discussion); err != nil {
		return nil, err
	}

	return discussion, nil
}

func (s *service) GetByZoneID(ctx context.Context, zoneID uuid.UUID) (*domain.Discussion, error) {
	discussion, err := s.discussionRepo.GetByZoneID(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrNotFound
	}

	if err := s.attachComments(ctx, discussion); err != nil {
		return nil, err
	}

	return discussion, nil
}

// attachComments loads the comment tree and resolves attachment URLs
// for every comment and reply in one pass.
func (s *service) attachComments(ctx context.Context, discussion *domain.Discussion) error {
	comments, err := s.commentRepo.ListByDiscussion(ctx, discussion.ID)
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	commentIDs := make([]uuid.UUID, 0, len(comments))
	for i := range comments {
		commentIDs = append(commentIDs, comments[i].ID)
		for j := range comments[i].Replies {
			commentIDs = append(commentIDs, comments[i].Replies[j].ID)
		}
	}

	if len(commentIDs) > 0 {
		attachments, err := s.attachmentRepo.ListByComments(ctx, commentIDs)
		if err != nil {
			return fmt.Errorf("failed to load attachments: %w", err)
		}

		byComment := make(map[uuid.UUID][]domain.Attachment)
		for _, a := range attachments {
			a.URL = s.mediaService.PublicURL(a.StoragePath)
			byComment[a.CommentID] = append(byComment[a.CommentID], a)
		}

		for i := range comments {
			comments[i].Attachments = byComment[comments[i].ID]
			for j := range comments[i].Replies {
				comments[i].Replies[j].Attachments = byComment[comments[i].Replies[j].ID]
			}
		}
	}

	discussion.Comments = comments
	return nil
}

func (s *service) AddComment(ctx context.Context, discussionID, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}

	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrNotFound
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.DiscussionID != discussionID {
			return nil, ErrInvalidParent
		}
		// Replies stay one level deep; replying to a reply attaches
		// to its top-level parent.
		if parent.ParentID != nil {
			input.ParentID = parent.ParentID
		}
	}

	comment := &domain.Comment{
		ID:           uuid.New(),
		DiscussionID: discussionID,
		UserID:       userID,
		ParentID:     input.ParentID,
		Content:      strings.TrimSpace(input.Content),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.invalidateListCache(ctx)
	return comment, nil
}

func (s *service) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrNotAuthor
	}

	comment.Content = strings.TrimSpace(content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *service) DeleteComment(ctx context.Context, commentID, userID uuid.UUID, isAdmin bool) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return ErrNotAuthor
	}

	attachments, err := s.attachmentRepo.ListByComment(ctx, commentID)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if err := s.mediaService.Delete(ctx, a.ID); err != nil {
			return err
		}
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}
