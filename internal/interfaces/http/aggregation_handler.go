package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/aggregation"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
)

// AggregationHandler expone los resúmenes recalculados (disponibilidad, ingresos).
// Un fallo del recálculo responde error y no entrega resultados parciales:
// la UI conserva lo último que mostró.
type AggregationHandler struct {
	engine    *aggregation.Engine
	stockRepo repository.StockRepository
	reportGen *pdf.MarotoReportGenerator
}

// NewAggregationHandler construye el handler.
func NewAggregationHandler(engine *aggregation.Engine, stockRepo repository.StockRepository, reportGen *pdf.MarotoReportGenerator) *AggregationHandler {
	return &AggregationHandler{engine: engine, stockRepo: stockRepo, reportGen: reportGen}
}

// GetAvailability godoc
// @Summary      Disponibilidad por producto y ubicación
// @Description  Rescan completo del historial más la cifra incremental del
// @Description  ledger para contraste (deben coincidir en historiales con ubicación).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product   query  string  true  "nombre del producto"
// @Param        location  query  string  true  "ubicación"
// @Success      200  {object}  dto.AvailabilityReconciliationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/availability [get]
func (h *AggregationHandler) GetAvailability(c *fiber.Ctx) error {
	product := c.Query("product")
	location := c.Query("location")
	if product == "" || location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product y location son obligatorios"})
	}
	availability, err := h.engine.ComputeAvailability(c.Context(), product, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	rec, err := h.stockRepo.Get(product, location)
	if err != nil {
		// Sin la cifra del ledger la conciliación no tiene sentido: se aborta
		// en lugar de responder un cero indistinguible de una divergencia real.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var ledgerQty int64
	if rec != nil {
		ledgerQty = rec.AvailableQuantity
	}
	return c.JSON(dto.AvailabilityReconciliationResponse{
		AvailabilityDTO: *availability,
		LedgerQuantity:  ledgerQty,
	})
}

// GetRevenueSummary godoc
// @Summary      Resumen de ingresos por cuenta
// @Tags         revenue
// @Security     Bearer
// @Produce      json
// @Param        account  query  string  false  "filtro por cuenta exacta (vacío = todas)"
// @Param        month    query  string  false  "mes de dos dígitos, ej. 03 (vacío = todos)"
// @Success      200  {object}  dto.RevenueSummaryDTO
// @Router       /api/revenue/summary [get]
func (h *AggregationHandler) GetRevenueSummary(c *fiber.Ctx) error {
	summary, err := h.engine.ComputeRevenueSummary(c.Context(), c.Query("account"), c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetRevenueSummaryPDF godoc
// @Summary      Resumen de ingresos en PDF
// @Tags         revenue
// @Security     Bearer
// @Produce      application/pdf
// @Param        account  query  string  false  "filtro por cuenta exacta"
// @Param        month    query  string  false  "mes de dos dígitos"
// @Success      200  {file}  binary
// @Router       /api/revenue/summary/pdf [get]
func (h *AggregationHandler) GetRevenueSummaryPDF(c *fiber.Ctx) error {
	account := c.Query("account")
	month := c.Query("month")
	summary, err := h.engine.ComputeRevenueSummary(c.Context(), account, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.reportGen.GenerateRevenueReport(summary, account, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="resumen-ingresos.pdf"`)
	return c.Send(pdfBytes)
}
