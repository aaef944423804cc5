package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lemlem-pharmacy/backend/internal/application/auth"
	"github.com/lemlem-pharmacy/backend/internal/application/dto"
)

// AuthHandler serves login and credential maintenance.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "malformed request body",
		})
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdatePassword PUT /api/auth/password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "malformed request body",
		})
	}
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "missing authenticated user",
		})
	}
	if err := h.uc.UpdatePassword(c.Context(), userID, req); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
