package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/application/reporting"
)

// ReportHandler serves the decision-support reports (manager only).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// FullDamagedReport GET /api/dss/damaged
func (h *ReportHandler) FullDamagedReport(c *fiber.Ctx) error {
	rows, err := h.uc.FullDamagedReport(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// DamagedByCategory GET /api/dss/damaged-by-category
func (h *ReportHandler) DamagedByCategory(c *fiber.Ctx) error {
	rows, err := h.uc.DamagedByCategory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// SoldByCategory GET /api/dss/sold-by-category
func (h *ReportHandler) SoldByCategory(c *fiber.Ctx) error {
	rows, err := h.uc.SoldByCategory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// InStockByCategory GET /api/dss/in-stock-by-category
func (h *ReportHandler) InStockByCategory(c *fiber.Ctx) error {
	rows, err := h.uc.InStockByCategory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// ProfitLoss GET /api/dss/profit-loss
func (h *ReportHandler) ProfitLoss(c *fiber.Ctx) error {
	rows, err := h.uc.ProfitLoss(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// ProfitLossByDate GET /api/dss/profit-loss-by-date?start_date=&end_date=
func (h *ReportHandler) ProfitLossByDate(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	rows, err := h.uc.ProfitLossByDate(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// ProfitLossPDF GET /api/dss/profit-loss/pdf?start_date=&end_date=
func (h *ReportHandler) ProfitLossPDF(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	pdfBytes, err := h.uc.ProfitLossPDF(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="profit-loss.pdf"`)
	return c.Send(pdfBytes)
}

// MostSold GET /api/dss/most-sold?start_date=&end_date=
func (h *ReportHandler) MostSold(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	rows, err := h.uc.MostSold(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// SalesByDate GET /api/dss/sales-by-date?start_date=&end_date=
func (h *ReportHandler) SalesByDate(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	rows, err := h.uc.SalesByDate(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// StockCard GET /api/dss/stock-card?batch_no=&start_date=&end_date=
func (h *ReportHandler) StockCard(c *fiber.Ctx) error {
	var req dto.StockCardRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	row, err := h.uc.StockCard(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(row)
}

// Forecast GET /api/dss/forecast?horizon=
func (h *ReportHandler) Forecast(c *fiber.Ctx) error {
	var req dto.ForecastRequest
	if err := c.QueryParser(&req); err != nil {
		return writeError(c, err)
	}
	horizon := req.Horizon
	if horizon == 0 {
		horizon = reporting.DefaultForecastHorizon
	}
	points, err := h.uc.Forecast(c.Context(), horizon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(points)
}

// BatchInfo GET /api/dss/batch/:batchNo
func (h *ReportHandler) BatchInfo(c *fiber.Ctx) error {
	info, err := h.uc.BatchInfo(c.Context(), c.Params("batchNo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(info)
}
