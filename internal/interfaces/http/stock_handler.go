package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// StockHandler maneja las consultas de niveles de stock y libro mayor (protegido).
type StockHandler struct {
	uc *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetQuantity devuelve la cantidad actual de un producto en una bodega.
// Producto sin fila de stock responde 0.
func (h *StockHandler) GetQuantity(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	quantity, err := h.uc.GetQuantity(c.Context(), productID, warehouseID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{
		"product_id":   productID,
		"warehouse_id": warehouseID,
		"quantity":     quantity,
	})
}

// ListStockLevels lista niveles de stock con filtros opcionales.
func (h *StockHandler) ListStockLevels(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	filter := repository.StockLevelFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		LocationID:  c.Query("location_id"),
		CategoryID:  c.Query("category_id"),
	}
	levels, err := h.uc.ListStockLevels(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, toStockLevelResponse(level))
	}
	return c.JSON(fiber.Map{"total": len(out), "stock_levels": out})
}

// ListLedger lista asientos del libro mayor, del más reciente al más antiguo.
func (h *StockHandler) ListLedger(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	filter := repository.LedgerFilter{
		ProductID:    c.Query("product_id"),
		WarehouseID:  c.Query("warehouse_id"),
		LocationID:   c.Query("location_id"),
		DocumentType: c.Query("document_type"),
		DocumentID:   c.Query("document_id"),
	}
	entries, err := h.uc.ListLedger(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toLedgerEntryResponse(entry))
	}
	return c.JSON(fiber.Map{"total": len(out), "entries": out})
}

func toStockLevelResponse(sl *entity.StockLevel) *dto.StockLevelResponse {
	return &dto.StockLevelResponse{
		ProductID:    sl.ProductID,
		WarehouseID:  sl.WarehouseID,
		LocationID:   sl.LocationID,
		Quantity:     sl.Quantity,
		ReorderPoint: sl.ReorderPoint,
		UpdatedAt:    sl.UpdatedAt,
	}
}

func toLedgerEntryResponse(e *entity.StockLedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:             e.ID,
		ProductID:      e.ProductID,
		WarehouseID:    e.WarehouseID,
		LocationID:     e.LocationID,
		ChangeQuantity: e.ChangeQuantity,
		NewStockLevel:  e.NewStockLevel,
		DocumentType:   string(e.DocumentType),
		DocumentID:     e.DocumentID,
		Timestamp:      e.Timestamp,
		CreatedBy:      e.CreatedBy,
	}
}
