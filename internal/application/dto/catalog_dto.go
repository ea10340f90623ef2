package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	CategoryID    string `json:"category_id"`
	UnitOfMeasure string `json:"unit_of_measure"`
}

// UpdateProductRequest body para PUT /api/products/:id (ediciones administrativas).
type UpdateProductRequest struct {
	Name       string `json:"name,omitempty"`
	SKU        string `json:"sku,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	CategoryID    string    `json:"category_id"`
	UnitOfMeasure string    `json:"unit_of_measure"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name string `json:"name"`
}

// WarehouseResponse representación de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLocationRequest body para POST /api/warehouses/:id/locations.
type CreateLocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse ubicación dentro de una bodega.
type LocationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WarehouseID string `json:"warehouse_id"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name string `json:"name"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
