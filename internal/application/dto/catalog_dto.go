package dto

import "github.com/shopspring/decimal"

// NewProductRequest alta de producto (mismo body que espera el backend).
type NewProductRequest struct {
	ProductName     string          `json:"product_name" validate:"notblank,max=100"`
	Price           decimal.Decimal `json:"price" validate:"gt=0"`
	CategoryName    string          `json:"category_name" validate:"notblank"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"gte=0"`
	Location        string          `json:"location,omitempty" validate:"max=100"`
}

// UpdateProductRequest edición de producto; punteros nil y strings vacíos no se envían.
type UpdateProductRequest struct {
	ProductName     string           `json:"product_name" validate:"notblank"`
	NewProductName  string           `json:"new_product_name,omitempty" validate:"max=100"`
	Price           *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryName    string           `json:"category_name,omitempty"`
	QuantityInStock *int             `json:"quantity_in_stock,omitempty" validate:"omitempty,gte=0"`
	Location        string           `json:"location,omitempty" validate:"max=100"`
}

// NewCategoryRequest alta de categoría.
type NewCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"notblank,max=100"`
	Description  string `json:"description,omitempty" validate:"max=500"`
	Location     string `json:"location,omitempty" validate:"max=100"`
}

// UpdateCategoryRequest edición de categoría. El backend sobrescribe description siempre.
type UpdateCategoryRequest struct {
	CategoryName    string `json:"category_name" validate:"notblank"`
	NewCategoryName string `json:"new_category_name" validate:"notblank,max=100"`
	Description     string `json:"description"`
	NewLocation     string `json:"new_location,omitempty" validate:"max=100"`
}

// ProductDTO producto con su estado de stock para las vistas.
type ProductDTO struct {
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Location        string          `json:"location"`
	StockStatus     string          `json:"stock_status"`
}

// CategoryDTO categoría con el número de productos que la usan.
type CategoryDTO struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ProductCount int    `json:"product_count"`
}
