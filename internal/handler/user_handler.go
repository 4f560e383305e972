package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.UpdateProfile(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) UpdatePhoneNumber(c *fiber.Ctx) error {
	var input domain.UpdatePhoneNumberInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.UpdatePhoneNumber(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidPhoneNumber) {
			return middleware.UnprocessableEntity("Invalid phone number format")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	var input domain.UpdatePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.userService.UpdatePassword(c.Context(), middleware.GetCurrentUserID(c), input); err != nil {
		if errors.Is(err, user.ErrWrongPassword) {
			return middleware.BadRequest("Current password is incorrect")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), middleware.GetCurrentUserID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
