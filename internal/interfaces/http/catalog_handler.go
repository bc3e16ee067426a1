package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// CatalogHandler maneja las peticiones del catálogo maestro (protegido).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar valores de un conjunto del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        set  path  string  true  "suppliers | products | locations | accounts"
// @Success      200  {object}  dto.CatalogSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{set} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	snapshot, err := h.uc.ListValues(c.Context(), c.Params("set"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(snapshot)
}

// Add godoc
// @Summary      Agregar un valor a un conjunto del catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        set   path  string                      true  "conjunto"
// @Param        body  body  dto.AddCatalogValueRequest  true  "value"
// @Success      201   {object}  dto.CatalogSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalog/{set} [post]
func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCatalogValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snapshot, err := h.uc.AddValue(c.Context(), c.Params("set"), in.Value)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snapshot)
}

// Remove godoc
// @Summary      Eliminar un valor de un conjunto del catálogo
// @Description  Requiere confirm=true: la UI debe obtener la confirmación del
// @Description  usuario antes de llamar; sin ella la petición se rechaza.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        set      path   string  true  "conjunto"
// @Param        value    query  string  true  "valor a eliminar"
// @Param        confirm  query  bool    true  "confirmación explícita"
// @Success      200  {object}  dto.CatalogSnapshotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{set} [delete]
func (h *CatalogHandler) Remove(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm")
	snapshot, err := h.uc.RemoveValue(c.Context(), c.Params("set"), c.Query("value"), confirmed)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(snapshot)
}

func catalogError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conjunto o valor no encontrado"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el valor ya existe en el conjunto"})
	}
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos o falta confirmación"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
