package discussion_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/service/discussion"
	"alerto-backend/tests/mocks"
)

func newService(discussionRepo *mocks.DiscussionRepository, commentRepo *mocks.CommentRepository, attachmentRepo *mocks.AttachmentRepository, mediaService *mocks.MediaService) discussion.Service {
	return discussion.NewService(discussionRepo, commentRepo, attachmentRepo, mediaService, nil)
}

func TestDiscussionService_AddComment(t *testing.T) {
	ctx := context.Background()
	discussionID := uuid.New()
	userID := uuid.New()

	existing := &domain.Discussion{ID: discussionID, ZoneID: uuid.New()}

	t.Run("TopLevel", func(t *testing.T) {
		discussionRepo := new(mocks.DiscussionRepository)
		commentRepo := new(mocks.CommentRepository)

		discussionRepo.On("GetByID", ctx, discussionID).Return(existing, nil).Once()
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.DiscussionID == discussionID && c.UserID == userID && c.ParentID == nil
		})).Return(nil).Once()

		svc := newService(discussionRepo, commentRepo, new(mocks.AttachmentRepository), new(mocks.MediaService))

		comment, err := svc.AddComment(ctx, discussionID, userID, domain.CreateCommentInput{Content: "Stay safe everyone"})

		assert.NoError(t, err)
		assert.Equal(t, "Stay safe everyone", comment.Content)
		commentRepo.AssertExpectations(t)
	})

	t.Run("EmptyContent", func(t *testing.T) {
		svc := newService(new(mocks.DiscussionRepository), new(mocks.CommentRepository), new(mocks.AttachmentRepository), new(mocks.MediaService))

		_, err := svc.AddComment(ctx, discussionID, userID, domain.CreateCommentInput{Content: "   "})
		assert.ErrorIs(t, err, discussion.ErrEmptyContent)
	})

	t.Run("ReplyToReplyFlattens", func(t *testing.T) {
		topLevelID := uuid.New()
		replyID := uuid.New()

		discussionRepo := new(mocks.DiscussionRepository)
		commentRepo := new(mocks.CommentRepository)

		discussionRepo.On("GetByID", ctx, discussionID).Return(existing, nil).Once()
		commentRepo.On("GetByID", ctx, replyID).Return(&domain.Comment{
			ID:           replyID,
			DiscussionID: discussionID,
			ParentID:     &topLevelID,
		}, nil).Once()
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ParentID != nil && *c.ParentID == topLevelID
		})).Return(nil).Once()

		svc := newService(discussionRepo, commentRepo, new(mocks.AttachmentRepository), new(mocks.MediaService))

		_, err := svc.AddComment(ctx, discussionID, userID, domain.CreateCommentInput{
			ParentID: &replyID,
			Content:  "Replying to a reply",
		})

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("ParentFromOtherDiscussion", func(t *testing.T) {
		parentID := uuid.New()

		discussionRepo := new(mocks.DiscussionRepository)
		commentRepo := new(mocks.CommentRepository)

		discussionRepo.On("GetByID", ctx, discussionID).Return(existing, nil).Once()
		commentRepo.On("GetByID", ctx, parentID).Return(&domain.Comment{
			ID:           parentID,
			DiscussionID: uuid.New(),
		}, nil).Once()

		svc := newService(discussionRepo, commentRepo, new(mocks.AttachmentRepository), new(mocks.MediaService))

		_, err := svc.AddComment(ctx, discussionID, userID, domain.CreateCommentInput{
			ParentID: &parentID,
			Content:  "Hello",
		})

		assert.ErrorIs(t, err, discussion.ErrInvalidParent)
	})
}

func TestDiscussionService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.New()
	authorID := uuid.New()

	existing := &domain.Comment{ID: commentID, UserID: authorID}

	t.Run("AuthorDeletesWithAttachments", func(t *testing.T) {
		attachmentID := uuid.New()

		commentRepo := new(mocks.CommentRepository)
		attachmentRepo := new(mocks.AttachmentRepository)
		mediaService := new(mocks.MediaService)

		commentRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		attachmentRepo.On("ListByComment", ctx, commentID).Return([]domain.Attachment{{ID: attachmentID}}, nil).Once()
		mediaService.On("Delete", ctx, attachmentID).Return(nil).Once()
		commentRepo.On("Delete", ctx, commentID).Return(nil).Once()

		svc := newService(new(mocks.DiscussionRepository), commentRepo, attachmentRepo, mediaService)

		assert.NoError(t, svc.DeleteComment(ctx, commentID, authorID, false))
		mediaService.AssertExpectations(t)
		commentRepo.AssertExpectations(t)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		commentRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()

		svc := newService(new(mocks.DiscussionRepository), commentRepo, new(mocks.AttachmentRepository), new(mocks.MediaService))

		err := svc.DeleteComment(ctx, commentID, uuid.New(), false)
		assert.ErrorIs(t, err, discussion.ErrNotAuthor)
	})

	t.Run("AdminOverride", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		attachmentRepo := new(mocks.AttachmentRepository)

		commentRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		attachmentRepo.On("ListByComment", ctx, commentID).Return([]domain.Attachment{}, nil).Once()
		commentRepo.On("Delete", ctx, commentID).Return(nil).Once()

		svc := newService(new(mocks.DiscussionRepository), commentRepo, attachmentRepo, new(mocks.MediaService))

		assert.NoError(t, svc.DeleteComment(ctx, commentID, uuid.New(), true))
	})
}

func TestDiscussionService_GetByID(t *testing.T) {
	ctx := context.Background()
	discussionID := uuid.New()
	commentID := uuid.New()

	t.Run("AttachesCommentsAndURLs", func(t *testing.T) {
		discussionRepo := new(mocks.DiscussionRepository)
		commentRepo := new(mocks.CommentRepository)
		attachmentRepo := new(mocks.AttachmentRepository)
		mediaService := new(mocks.MediaService)

		discussionRepo.On("GetByID", ctx, discussionID).Return(&domain.Discussion{ID: discussionID}, nil).Once()
		commentRepo.On("ListByDiscussion", ctx, discussionID).Return([]domain.Comment{{ID: commentID}}, nil).Once()
		attachmentRepo.On("ListByComments", ctx, []uuid.UUID{commentID}).Return([]domain.Attachment{
			{ID: uuid.New(), CommentID: commentID, StoragePath: "attachments/2026/01/abc"},
		}, nil).Once()
		mediaService.On("PublicURL", "attachments/2026/01/abc").Return("https://cdn.example.com/abc").Once()

		svc := newService(discussionRepo, commentRepo, attachmentRepo, mediaService)

		d, err := svc.GetByID(ctx, discussionID)

		assert.NoError(t, err)
		assert.Len(t, d.Comments, 1)
		assert.Len(t, d.Comments[0].Attachments, 1)
		assert.Equal(t, "https://cdn.example.com/abc", d.Comments[0].Attachments[0].URL)
	})

	t.Run("NotFound", func(t *testing.T) {
		discussionRepo := new(mocks.DiscussionRepository)
		discussionRepo.On("GetByID", ctx, discussionID).Return(nil, nil).Once()

		svc := newService(discussionRepo, new(mocks.CommentRepository), new(mocks.AttachmentRepository), new(mocks.MediaService))

		_, err := svc.GetByID(ctx, discussionID)
		assert.ErrorIs(t, err, discussion.ErrNotFound)
	})
}
