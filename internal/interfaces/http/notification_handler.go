package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/application/notification"
)

// NotificationHandler manages customer refill reminders.
type NotificationHandler struct {
	uc *notification.UseCase
}

func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// GetByID GET /api/notifications/:id
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// ListByBatchNo GET /api/notifications/batch/:batchNo
func (h *NotificationHandler) ListByBatchNo(c *fiber.Ctx) error {
	items, err := h.uc.ListByBatchNo(c.Context(), c.Params("batchNo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// ListByPhoneNo GET /api/notifications/phone/:phoneNo
func (h *NotificationHandler) ListByPhoneNo(c *fiber.Ctx) error {
	items, err := h.uc.ListByPhoneNo(c.Context(), c.Params("phoneNo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// Search GET /api/notifications/search?phrase=
func (h *NotificationHandler) Search(c *fiber.Ctx) error {
	items, err := h.uc.Search(c.Context(), c.Query("phrase"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// Add POST /api/notifications
func (h *NotificationHandler) Add(c *fiber.Ctx) error {
	var req dto.AddNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "malformed request body",
		})
	}
	item, err := h.uc.Add(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update PUT /api/notifications/:id
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "malformed request body",
		})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// Delete DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DispatchDue POST /api/notifications/dispatch
func (h *NotificationHandler) DispatchDue(c *fiber.Ctx) error {
	result, err := h.uc.DispatchDue(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}
