package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem línea enviada al backend al confirmar una venta.
type TransactionItem struct {
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// AddToCartRequest body de POST /cashier/cart/items.
type AddToCartRequest struct {
	ProductName string `json:"product_name" validate:"notblank"`
}

// SetQuantityRequest body de PUT /cashier/cart/items/:name.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineDTO línea del carrito.
type CartLineDTO struct {
	ProductName    string          `json:"product_name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	AvailableAtAdd int             `json:"available_at_add"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// CartDTO carrito del cajero.
type CartDTO struct {
	Lines     []CartLineDTO   `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// CartResponse carrito + aviso tras una mutación.
type CartResponse struct {
	Cart   CartDTO `json:"cart"`
	Notice *Notice `json:"notice,omitempty"`
}

// ReceiptLineDTO línea de un recibo.
type ReceiptLineDTO struct {
	ProductName    string          `json:"product_name"`
	SoldQuantity   int             `json:"sold_quantity"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
	ItemTotal      decimal.Decimal `json:"item_total"`
	RemainingStock int             `json:"remaining_stock"`
}

// ReceiptDTO venta confirmada por el backend.
type ReceiptDTO struct {
	SaleID         string           `json:"sale_id"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	ItemCount      int              `json:"item_count"`
	Lines          []ReceiptLineDTO `json:"lines"`
	TransactionIDs []string         `json:"transaction_ids"`
	Timestamp      time.Time        `json:"timestamp"`
	Employee       string           `json:"employee"`
}

// ProductStockDTO stock conocido de un producto. Tras un checkout viene de remaining_stock.
type ProductStockDTO struct {
	ProductName     string `json:"product_name"`
	QuantityInStock int    `json:"quantity_in_stock"`
}

// CheckoutResponse resultado de POST /cashier/checkout.
type CheckoutResponse struct {
	Receipt  *ReceiptDTO       `json:"receipt,omitempty"`
	Cart     CartDTO           `json:"cart"`
	Products []ProductStockDTO `json:"products"`
	Notice   *Notice           `json:"notice"`
}

// ManualSaleRequest venta registrada solo por total (sin líneas).
type ManualSaleRequest struct {
	EmployeeUsername string          `json:"employee_username" validate:"notblank"`
	TotalAmount      decimal.Decimal `json:"total_amount" validate:"gt=0"`
}

// ManualSaleResponse id asignado por el backend.
type ManualSaleResponse struct {
	SaleID string  `json:"sale_id"`
	Notice *Notice `json:"notice"`
}
