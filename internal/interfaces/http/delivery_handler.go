package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// DeliveryHandler maneja las peticiones HTTP de órdenes de entrega (protegido).
type DeliveryHandler struct {
	uc *inventory.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *inventory.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create registra una orden de entrega en borrador (o el estado abierto indicado).
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.CreateDeliveryInput{
		WarehouseID: in.WarehouseID,
		Status:      entity.DocumentStatus(in.Status),
		UserID:      userID,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, inventory.DeliveryItemInput{
			ProductID: item.ProductID,
			Quantity:  item.QuantityDelivered,
		})
	}

	delivery, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDeliveryResponse(delivery))
}

// Validate completa la entrega: verifica disponibilidad de todas las líneas
// y solo entonces descuenta. Responde 409 con detalle si falta stock.
func (h *DeliveryHandler) Validate(c *fiber.Ctx) error {
	delivery, err := h.uc.Validate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toDeliveryResponse(delivery))
}

// GetByID devuelve una orden de entrega con sus líneas.
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	delivery, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toDeliveryResponse(delivery))
}

// List lista órdenes de entrega paginadas.
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	deliveries, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.DeliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		out = append(out, toDeliveryResponse(delivery))
	}
	return c.JSON(fiber.Map{"total": len(out), "deliveries": out})
}

func toDeliveryResponse(d *entity.DeliveryOrder) *dto.DeliveryResponse {
	resp := &dto.DeliveryResponse{
		ID:          d.ID,
		WarehouseID: d.WarehouseID,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		ValidatedAt: d.ValidatedAt,
		CreatedBy:   d.CreatedBy,
	}
	for _, item := range d.Items {
		resp.Items = append(resp.Items, dto.DeliveryItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			QuantityDelivered: item.QuantityDelivered,
		})
	}
	return resp
}
