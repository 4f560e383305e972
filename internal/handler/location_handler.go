package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/location"
)

type LocationHandler struct {
	locationService location.Service
}

func NewLocationHandler(locationService location.Service) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateLocationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.locationService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, location.ErrInvalidCoordinates) {
			return middleware.UnprocessableEntity("Coordinates are invalid or out of range")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.locationService.ListByUser(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(locations)
}

func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid location ID")
	}

	loc, err := h.locationService.GetByID(c.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		return locationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(loc)
}

func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid location ID")
	}

	var input domain.UpdateLocationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.locationService.Update(c.Context(), middleware.GetCurrentUserID(c), id, input)
	if err != nil {
		if errors.Is(err, location.ErrInvalidCoordinates) {
			return middleware.UnprocessableEntity("Coordinates are invalid or out of range")
		}
		return locationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid location ID")
	}

	if err := h.locationService.Delete(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return locationError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *LocationHandler) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid location ID")
	}

	history, err := h.locationService.History(c.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		return locationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func locationError(err error) error {
	if errors.Is(err, location.ErrNotFound) {
		return middleware.NotFound("Location not found")
	}
	if errors.Is(err, location.ErrNotOwner) {
		return middleware.Forbidden("Location belongs to another user")
	}
	return err
}
