package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/announcement"
)

type AnnouncementHandler struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.announcementService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.announcementService.ListAll(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AnnouncementHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid announcement ID")
	}

	a, err := h.announcementService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			return middleware.NotFound("Announcement not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(a)
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid announcement ID")
	}

	var input domain.UpdateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.announcementService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			return middleware.NotFound("Announcement not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid announcement ID")
	}

	if err := h.announcementService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			return middleware.NotFound("Announcement not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
