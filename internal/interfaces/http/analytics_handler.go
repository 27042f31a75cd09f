package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epify/inventory-api/internal/application/analytics"
	"github.com/epify/inventory-api/internal/application/dto"
)

// AnalyticsHandler maneja las rutas administrativas de analítica.
// Solo se monta detrás de AuthMiddleware + AdminMiddleware.
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// MostAdded godoc
// @Summary      Ranking de productos con más unidades añadidas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de productos"  default(5)
// @Success      200    {array}  dto.MostAddedProductResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/admin/analytics/most-added [get]
func (h *AnalyticsHandler) MostAdded(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", analytics.DefaultMostAddedLimit)
	items, err := h.uc.MostAdded(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar la analítica"})
	}
	return c.JSON(items)
}

// ProductHistory godoc
// @Summary      Historial de auditoría de un producto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.HistoryEntryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/analytics/product/{id}/history [get]
func (h *AnalyticsHandler) ProductHistory(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	items, err := h.uc.ProductHistory(c.UserContext(), int64(productID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar el historial"})
	}
	return c.JSON(items)
}

// GlobalStats godoc
// @Summary      Estadísticas globales del inventario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/analytics/stats [get]
func (h *AnalyticsHandler) GlobalStats(c *fiber.Ctx) error {
	out, err := h.uc.GlobalStats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron calcular las estadísticas"})
	}
	return c.JSON(out)
}
