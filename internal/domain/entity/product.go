package entity

import "github.com/shopspring/decimal"

// LowStockThreshold existencias a partir de las cuales un producto se marca "Low Stock".
const LowStockThreshold = 5

// Product producto del catálogo tal como lo devuelve el backend.
// ProductName es la clave natural (el backend no expone ids numéricos).
type Product struct {
	ProductName     string
	Price           decimal.Decimal
	Category        string // vacío si el producto no tiene categoría
	QuantityInStock int
	Location        string
}

// StockStatus clasificación de existencias para las vistas.
type StockStatus string

const (
	StockOut StockStatus = "Out of Stock"
	StockLow StockStatus = "Low Stock"
	StockIn  StockStatus = "In Stock"
)

// StockStatusFor clasifica una cantidad.
func StockStatusFor(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// StockStatus del producto.
func (p Product) StockStatus() StockStatus {
	return StockStatusFor(p.QuantityInStock)
}
