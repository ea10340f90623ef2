package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// TransferHandler maneja las peticiones HTTP de traslados internos (protegido).
type TransferHandler struct {
	uc *inventory.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create registra un traslado. Origen y destino deben ser bodegas distintas.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.CreateTransferInput{
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Status:          entity.DocumentStatus(in.Status),
		UserID:          userID,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, inventory.TransferItemInput{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			FromLocationID: item.FromLocationID,
			ToLocationID:   item.ToLocationID,
		})
	}

	transfer, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(transfer))
}

// Complete ejecuta el traslado: descuenta en origen y suma en destino,
// conservando la cantidad total.
func (h *TransferHandler) Complete(c *fiber.Ctx) error {
	transfer, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toTransferResponse(transfer))
}

// GetByID devuelve un traslado con sus líneas.
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	transfer, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toTransferResponse(transfer))
}

// List lista traslados paginados.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	transfers, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		out = append(out, toTransferResponse(transfer))
	}
	return c.JSON(fiber.Map{"total": len(out), "transfers": out})
}

func toTransferResponse(t *entity.InternalTransfer) *dto.TransferResponse {
	resp := &dto.TransferResponse{
		ID:              t.ID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
		CreatedBy:       t.CreatedBy,
	}
	for _, item := range t.Items {
		resp.Items = append(resp.Items, dto.TransferItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			FromLocationID: item.FromLocationID,
			ToLocationID:   item.ToLocationID,
		})
	}
	return resp
}
