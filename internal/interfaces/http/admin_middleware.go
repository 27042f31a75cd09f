package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epify/inventory-api/internal/application/dto"
	"github.com/epify/inventory-api/internal/domain/repository"
	"github.com/epify/inventory-api/internal/infrastructure/metrics"
)

// AdminMiddleware consulta admin_users por el user id autenticado. Sin grant la
// petición se rechaza con 403 antes de ejecutar cualquier use case; con grant el
// rol queda en c.Locals. Es siempre el último gate antes del agregador de analítica.
func AdminMiddleware(grants repository.AdminGrantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad no verificada"})
		}
		grant, err := grants.GetByUserID(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error verificando privilegios"})
		}
		if grant == nil {
			metrics.AdminDeniedTotal.Inc()
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requieren privilegios de administrador"})
		}
		c.Locals(LocalRole, grant.Role)
		return c.Next()
	}
}
