package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/epify/inventory-api/internal/application/dto"
	"github.com/epify/inventory-api/internal/application/inventory"
	"github.com/epify/inventory-api/internal/domain"
	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/infrastructure/metrics"
)

// ProductHandler maneja las peticiones HTTP del inventario propio (protegido).
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	id, err := h.uc.CreateProduct(c.UserContext(), ownerID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear el producto"})
		}
	}
	metrics.ProductsCreatedTotal.Inc()
	metrics.AuditEventsTotal.WithLabelValues(entity.ActionAdd).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{ProductID: id})
}

// List godoc
// @Summary      Listar productos propios (paginado, más recientes primero)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página (1-based)"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(10)
// @Success      200    {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	page := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 10),
	}
	items, err := h.uc.ListProducts(c.UserContext(), ownerID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los productos"})
	}
	return c.JSON(items)
}

// UpdateQuantity godoc
// @Summary      Fijar la cantidad de un producto propio
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quantity [put]
func (h *ProductHandler) UpdateQuantity(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad requerida"})
	}
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), int64(productID), in.Quantity, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
		}
		metrics.QuantityUpdatesTotal.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo actualizar la cantidad"})
	}
	if out == nil {
		// id inexistente o producto de otro dueño: mismo 404, sin filtrar cuál
		metrics.QuantityUpdatesTotal.WithLabelValues("not_found").Inc()
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	metrics.QuantityUpdatesTotal.WithLabelValues("updated").Inc()
	metrics.AuditEventsTotal.WithLabelValues(entity.ActionUpdate).Inc()
	return c.JSON(out)
}
