package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/zone"
)

type ZoneHandler struct {
	zoneService zone.Service
}

func NewZoneHandler(zoneService zone.Service) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateZoneInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.zoneService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, zone.ErrInvalidGeometry) {
			return middleware.UnprocessableEntity("Zone geometry is not valid GeoJSON")
		}
		if errors.Is(err, zone.ErrInvalidStatus) || errors.Is(err, zone.ErrInvalidHazard) {
			return middleware.UnprocessableEntity("Invalid zone status, disaster type or danger level")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ZoneHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("active", false) {
		zones, err := h.zoneService.ListActive(c.Context())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(zones)
	}

	zones, err := h.zoneService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(zones)
}

func (h *ZoneHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	z, err := h.zoneService.GetByID(c.Context(), id)
	if err != nil {
		return zoneError(err)
	}

	return c.Status(fiber.StatusOK).JSON(z)
}

func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	var input domain.UpdateZoneInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.zoneService.Update(c.Context(), id, input)
	if err != nil {
		return zoneError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ZoneHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	var input domain.ChangeZoneStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.zoneService.ChangeStatus(c.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, zone.ErrInvalidStatus) {
			return middleware.UnprocessableEntity("Invalid zone status")
		}
		return zoneError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	if err := h.zoneService.Delete(c.Context(), id); err != nil {
		return zoneError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ZoneHandler) AffectedLocations(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid zone ID")
	}

	affected, err := h.zoneService.AffectedLocations(c.Context(), id)
	if err != nil {
		return zoneError(err)
	}

	return c.Status(fiber.StatusOK).JSON(affected)
}

func zoneError(err error) error {
	if errors.Is(err, zone.ErrNotFound) {
		return middleware.NotFound("Zone not found")
	}
	return err
}
