package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// AdjustmentHandler maneja las peticiones HTTP de ajustes de stock (protegido).
type AdjustmentHandler struct {
	uc *inventory.AdjustmentUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *inventory.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Create registra y aplica un ajuste por conteo físico en una sola operación.
// El documento resultante nace en Done.
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.CreateAdjustmentInput{
		WarehouseID: in.WarehouseID,
		Reason:      in.Reason,
		UserID:      userID,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, inventory.AdjustmentItemInput{
			ProductID:       item.ProductID,
			CountedQuantity: item.CountedQuantity,
			LocationID:      item.LocationID,
		})
	}

	adjustment, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdjustmentResponse(adjustment))
}

// GetByID devuelve un ajuste con sus líneas procesadas.
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	adjustment, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toAdjustmentResponse(adjustment))
}

// List lista ajustes paginados.
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	adjustments, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.AdjustmentResponse, 0, len(adjustments))
	for _, adjustment := range adjustments {
		out = append(out, toAdjustmentResponse(adjustment))
	}
	return c.JSON(fiber.Map{"total": len(out), "adjustments": out})
}

func toAdjustmentResponse(a *entity.StockAdjustment) *dto.AdjustmentResponse {
	resp := &dto.AdjustmentResponse{
		ID:          a.ID,
		WarehouseID: a.WarehouseID,
		Status:      string(a.Status),
		Reason:      a.Reason,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
	}
	for _, item := range a.Items {
		resp.Items = append(resp.Items, dto.AdjustmentItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			CountedQuantity: item.CountedQuantity,
			SystemQuantity:  item.SystemQuantity,
			LocationID:      item.LocationID,
		})
	}
	return resp
}
