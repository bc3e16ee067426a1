package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/orderstatus"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OrderHandler maneja listados de órdenes y su ciclo de estados (protegido).
type OrderHandler struct {
	workflow  *orderstatus.Workflow
	orderRepo repository.OrderRepository
}

// NewOrderHandler construye el handler.
func NewOrderHandler(workflow *orderstatus.Workflow, orderRepo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{workflow: workflow, orderRepo: orderRepo}
}

// List godoc
// @Summary      Listar órdenes de salida
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/outbound [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orderRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponse{
			ID:              o.ID,
			OrderID:         o.OrderID,
			Date:            o.Date,
			AccountName:     o.AccountName,
			ProductName:     o.ProductName,
			StorageLocation: o.StorageLocation,
			Quantity:        o.Quantity,
			Status:          o.Status,
			LabelCost:       o.LabelCost,
			ThreePLCost:     o.ThreePLCost,
			UpdatedAt:       o.UpdatedAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "orders": out})
}

// SetStatus godoc
// @Summary      Preparar cambio de estado de una orden
// @Description  Deja el cambio pendiente; se persiste con el commit.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id u order_id de la orden"
// @Param        body  body  dto.SetStatusRequest  true  "status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outbound/{id}/status [put]
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.workflow.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return orderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cambio de estado preparado", "status": in.Status})
}

// CommitStatus godoc
// @Summary      Confirmar el cambio de estado preparado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id u order_id de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/outbound/{id}/status/commit [post]
func (h *OrderHandler) CommitStatus(c *fiber.Ctx) error {
	if err := h.workflow.CommitStatus(c.Context(), c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado actualizado"})
}

func orderError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	if err == domain.ErrNoStagedChange {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_STAGED_CHANGE", Message: "no hay cambio de estado pendiente para la orden"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
