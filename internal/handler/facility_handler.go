package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/facility"
)

type FacilityHandler struct {
	facilityService facility.Service
}

func NewFacilityHandler(facilityService facility.Service) *FacilityHandler {
	return &FacilityHandler{facilityService: facilityService}
}

func (h *FacilityHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateFacilityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.facilityService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, facility.ErrInvalidType) {
			return middleware.UnprocessableEntity("Invalid facility type")
		}
		if errors.Is(err, facility.ErrInvalidCoordinates) {
			return middleware.UnprocessableEntity("Coordinates are invalid or out of range")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *FacilityHandler) List(c *fiber.Ctx) error {
	facilities, err := h.facilityService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(facilities)
}

func (h *FacilityHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid facility ID")
	}

	f, err := h.facilityService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return middleware.NotFound("Facility not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(f)
}

func (h *FacilityHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid facility ID")
	}

	var input domain.UpdateFacilityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.facilityService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return middleware.NotFound("Facility not found")
		}
		if errors.Is(err, facility.ErrInvalidType) {
			return middleware.UnprocessableEntity("Invalid facility type")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *FacilityHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid facility ID")
	}

	if err := h.facilityService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return middleware.NotFound("Facility not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
