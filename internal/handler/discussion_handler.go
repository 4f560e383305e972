package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/discussion"
	"alerto-backend/internal/service/media"
)

type DiscussionHandler struct {
	discussionService discussion.Service
	mediaService      media.Service
}

func NewDiscussionHandler(discussionService discussion.Service, mediaService media.Service) *DiscussionHandler {
	return &DiscussionHandler{
		discussionService: discussionService,
		mediaService:      mediaService,
	}
}

func (h *DiscussionHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.discussionService.ListAll(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DiscussionHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	d, err := h.discussionService.GetByID(c.Context(), id)
	if err != nil {
		return discussionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(d)
}

func (h *DiscussionHandler) GetByZone(c *fiber.Ctx) error {
	zoneID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	d, err := h.discussionService.GetByZoneID(c.Context(), zoneID)
	if err != nil {
		return discussionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(d)
}

func (h *DiscussionHandler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.discussionService.AddComment(c.Context(), id, middleware.GetCurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, discussion.ErrEmptyContent) {
			return middleware.UnprocessableEntity("Comment content must not be empty")
		}
		if errors.Is(err, discussion.ErrInvalidParent) {
			return middleware.BadRequest("Parent comment does not belong to this discussion")
		}
		return discussionError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *DiscussionHandler) UpdateComment(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input struct {
		Content string `json:"content" validate:"required,min=1,max=2000"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.discussionService.UpdateComment(c.Context(), commentID, middleware.GetCurrentUserID(c), input.Content)
	if err != nil {
		if errors.Is(err, discussion.ErrEmptyContent) {
			return middleware.UnprocessableEntity("Comment content must not be empty")
		}
		return discussionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(comment)
}

func (h *DiscussionHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	err = h.discussionService.DeleteComment(c.Context(), commentID, middleware.GetCurrentUserID(c), middleware.IsAdmin(c))
	if err != nil {
		return discussionError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *DiscussionHandler) UploadAttachment(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Attachment file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read attachment file")
	}
	defer file.Close()

	attachment, err := h.mediaService.Upload(
		c.Context(),
		middleware.GetCurrentUserID(c),
		commentID,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			return middleware.UnprocessableEntity("Only image attachments are supported")
		}
		if errors.Is(err, media.ErrTooLarge) {
			return middleware.UnprocessableEntity("Attachment exceeds the size limit")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(attachment)
}

func discussionError(err error) error {
	if errors.Is(err, discussion.ErrNotFound) {
		return middleware.NotFound("Discussion not found")
	}
	if errors.Is(err, discussion.ErrCommentNotFound) {
		return middleware.NotFound("Comment not found")
	}
	if errors.Is(err, discussion.ErrNotAuthor) {
		return middleware.Forbidden("Comment belongs to another user")
	}
	return err
}
