package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ReceiptHandler maneja las peticiones HTTP de recepciones (protegido).
type ReceiptHandler struct {
	uc *inventory.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *inventory.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create registra una recepción en borrador (o el estado abierto indicado).
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.CreateReceiptInput{
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Status:      entity.DocumentStatus(in.Status),
		UserID:      userID,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, inventory.ReceiptItemInput{
			ProductID: item.ProductID,
			Quantity:  item.QuantityReceived,
		})
	}

	receipt, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReceiptResponse(receipt))
}

// Validate completa la recepción: suma el stock y asienta en el libro.
func (h *ReceiptHandler) Validate(c *fiber.Ctx) error {
	receipt, err := h.uc.Validate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toReceiptResponse(receipt))
}

// GetByID devuelve una recepción con sus líneas.
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	receipt, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toReceiptResponse(receipt))
}

// List lista recepciones paginadas.
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	receipts, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		out = append(out, toReceiptResponse(receipt))
	}
	return c.JSON(fiber.Map{"total": len(out), "receipts": out})
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	resp := &dto.ReceiptResponse{
		ID:          r.ID,
		SupplierID:  r.SupplierID,
		WarehouseID: r.WarehouseID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ValidatedAt: r.ValidatedAt,
		CreatedBy:   r.CreatedBy,
	}
	for _, item := range r.Items {
		resp.Items = append(resp.Items, dto.ReceiptItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			QuantityReceived: item.QuantityReceived,
		})
	}
	return resp
}
