package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/analytics"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// DashboardHandler expone los KPIs de inventario (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs devuelve el resumen del tablero: totales de stock, stock bajo,
// agotados y documentos pendientes por tipo. Filtros opcionales por bodega,
// ubicación y categoría.
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	filter := repository.DashboardFilter{
		WarehouseID: c.Query("warehouse_id"),
		LocationID:  c.Query("location_id"),
		CategoryID:  c.Query("category_id"),
	}
	kpis, err := h.uc.GetKPIs(c.Context(), filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(kpis)
}
