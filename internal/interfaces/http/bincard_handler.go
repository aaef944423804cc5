package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lemlem-pharmacy/backend/internal/application/bincard"
	"github.com/lemlem-pharmacy/backend/internal/application/dto"
)

// BinCardHandler exposes the bin card ledger.
type BinCardHandler struct {
	uc *bincard.UseCase
}

func NewBinCardHandler(uc *bincard.UseCase) *BinCardHandler {
	return &BinCardHandler{uc: uc}
}

// List GET /api/bincards
func (h *BinCardHandler) List(c *fiber.Ctx) error {
	cards, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cards)
}

// GetByID GET /api/bincards/:id
func (h *BinCardHandler) GetByID(c *fiber.Ctx) error {
	card, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(card)
}

// ListByBatchNo GET /api/bincards/batch/:batchNo
func (h *BinCardHandler) ListByBatchNo(c *fiber.Ctx) error {
	cards, err := h.uc.ListByBatchNo(c.Context(), c.Params("batchNo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cards)
}

// Search GET /api/bincards/search?phrase=
func (h *BinCardHandler) Search(c *fiber.Ctx) error {
	cards, err := h.uc.Search(c.Context(), c.Query("phrase"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cards)
}

// ListByDateRange GET /api/bincards/range?start_date=&end_date=
func (h *BinCardHandler) ListByDateRange(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	cards, err := h.uc.ListByDateRange(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cards)
}
