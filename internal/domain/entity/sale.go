package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord venta registrada en el backend (GET /api/sale/list).
type SaleRecord struct {
	SaleID           string
	EmployeeUsername string
	TotalAmount      decimal.Decimal
	SaleDate         time.Time // cero si el backend no la informa
}

// TransactionRecord línea de venta registrada (GET /api/transaction/list).
type TransactionRecord struct {
	TransactionID string
	SaleID        string
	Employee      string
	ProductID     string
	ProductName   string
	QuantitySold  int
	PriceAtSale   decimal.Decimal
}

// Amount importe de la línea (precio × cantidad).
func (t TransactionRecord) Amount() decimal.Decimal {
	return t.PriceAtSale.Mul(decimal.NewFromInt(int64(t.QuantitySold)))
}

// SaleLine línea de una venta recién confirmada, con el stock autoritativo restante.
type SaleLine struct {
	ProductName    string
	SoldQuantity   int
	PricePerUnit   decimal.Decimal
	ItemTotal      decimal.Decimal
	RemainingStock int
}

// Sale resultado inmutable de un checkout aceptado por el backend.
type Sale struct {
	SaleID         string
	TotalAmount    decimal.Decimal
	Lines          []SaleLine
	TransactionIDs []string
	Timestamp      time.Time
	EmployeeLabel  string
}

// ItemCount unidades vendidas.
func (s Sale) ItemCount() int {
	n := 0
	for _, l := range s.Lines {
		n += l.SoldQuantity
	}
	return n
}

// PeriodSales ventas de un período móvil (semana, mes o año en curso).
type PeriodSales struct {
	SalesCount  int
	TotalAmount decimal.Decimal
	Sales       []SaleRecord
}

// SalesBucket agregado histórico por semana ISO, mes o año.
// Month y Week quedan en cero cuando no aplican.
type SalesBucket struct {
	Year        int
	Month       int
	Week        int
	SalesCount  int
	TotalAmount decimal.Decimal
}

// Period ventana de los reportes de ventas (semana, mes o año).
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods orden de presentación en los reportes.
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodYear}
