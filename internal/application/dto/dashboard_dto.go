package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatsDTO resumen de existencias.
// LowStockItems cuenta cantidad <= 5 (incluye los agotados).
type InventoryStatsDTO struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	LowStockItems   int `json:"low_stock_items"`
	OutOfStockItems int `json:"out_of_stock_items"`
}

// RecentSaleDTO venta reciente con las unidades tomadas de sus transacciones.
type RecentSaleDTO struct {
	SaleID   string          `json:"sale_id"`
	Employee string          `json:"employee"`
	Amount   decimal.Decimal `json:"amount"`
	SaleDate *time.Time      `json:"sale_date,omitempty"`
	Items    int             `json:"items"`
	Status   string          `json:"status"`
}

// SalesStatsDTO métricas de ventas acumuladas.
type SalesStatsDTO struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int             `json:"total_transactions"`
	AverageTicket     decimal.Decimal `json:"average_ticket"`
	ItemsSold         int             `json:"items_sold"`
	RecentSales       []RecentSaleDTO `json:"recent_sales"`
}

// TopProductDTO producto del ranking por existencias.
type TopProductDTO struct {
	ProductName     string          `json:"product_name"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Price           decimal.Decimal `json:"price"`
}

// PeriodReportDTO ventas de la semana/mes/año en curso.
type PeriodReportDTO struct {
	SalesCount  int             `json:"sales_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Sales       []RecentSaleDTO `json:"sales"`
	Error       string          `json:"error,omitempty"`
}

// SalesBucketDTO agregado histórico (Week o Month en 0 cuando no aplica).
type SalesBucketDTO struct {
	Label       string          `json:"label"`
	Year        int             `json:"year"`
	Month       int             `json:"month,omitempty"`
	Week        int             `json:"week,omitempty"`
	SalesCount  int             `json:"sales_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SalesReportsDTO los seis reportes del panel de administración.
type SalesReportsDTO struct {
	ThisWeek  PeriodReportDTO  `json:"this_week"`
	ThisMonth PeriodReportDTO  `json:"this_month"`
	ThisYear  PeriodReportDTO  `json:"this_year"`
	PerWeek   []SalesBucketDTO `json:"per_week"`
	PerMonth  []SalesBucketDTO `json:"per_month"`
	PerYear   []SalesBucketDTO `json:"per_year"`
	Errors    []string         `json:"errors,omitempty"`
}

// AdminDashboardDTO vista /admin.
type AdminDashboardDTO struct {
	DisplayName string            `json:"display_name"`
	Inventory   InventoryStatsDTO `json:"inventory"`
	Sales       SalesStatsDTO     `json:"sales"`
	TopProducts []TopProductDTO   `json:"top_products"`
	Staff       []StaffMemberDTO  `json:"staff"`
	StaffError  string            `json:"staff_error,omitempty"`
	Reports     SalesReportsDTO   `json:"reports"`
}

// AlertDTO tarea pendiente derivada del inventario.
type AlertDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
}

// SalesTrendsDTO promedios simples sobre el total acumulado.
type SalesTrendsDTO struct {
	WeeklyAverage  decimal.Decimal `json:"weekly_average"`
	MonthlyAverage decimal.Decimal `json:"monthly_average"`
	DailyAverage   decimal.Decimal `json:"daily_average"`
}

// ManagerDashboardDTO vista /manager.
type ManagerDashboardDTO struct {
	DisplayName string            `json:"display_name"`
	Inventory   InventoryStatsDTO `json:"inventory"`
	Sales       SalesStatsDTO     `json:"sales"`
	Alerts      []AlertDTO        `json:"alerts"`
	Trends      SalesTrendsDTO    `json:"trends"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// InventoryDashboardDTO vista /inventory.
type InventoryDashboardDTO struct {
	DisplayName string            `json:"display_name"`
	Stats       InventoryStatsDTO `json:"stats"`
	Query       string            `json:"query,omitempty"`
	Products    []ProductDTO      `json:"products"`
	Categories  []CategoryDTO     `json:"categories"`
}

// TransactionRowDTO transacción reciente para el cajero.
type TransactionRowDTO struct {
	TransactionID string          `json:"transaction_id"`
	SaleID        string          `json:"sale_id"`
	Employee      string          `json:"employee"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
}

// DailyStatsDTO métricas del turno.
type DailyStatsDTO struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int             `json:"total_transactions"`
	AverageTicket     decimal.Decimal `json:"average_ticket"`
	ItemsSold         int             `json:"items_sold"`
}

// CashierDashboardDTO vista /cashier.
type CashierDashboardDTO struct {
	DisplayName        string              `json:"display_name"`
	Query              string              `json:"query,omitempty"`
	Products           []ProductDTO        `json:"products"`
	RecentTransactions []TransactionRowDTO `json:"recent_transactions"`
	DailyStats         DailyStatsDTO       `json:"daily_stats"`
	Cart               CartDTO             `json:"cart"`
	LastReceipt        *ReceiptDTO         `json:"last_receipt,omitempty"`
	Notices            []*Notice           `json:"notices,omitempty"`
}

// HistoryLineDTO línea vendida dentro de una venta del historial.
type HistoryLineDTO struct {
	TransactionID string          `json:"transaction_id"`
	ProductName   string          `json:"product_name"`
	QuantitySold  int             `json:"quantity_sold"`
	PriceAtSale   decimal.Decimal `json:"price_at_sale"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// SaleHistoryDTO venta con sus líneas agrupadas por sale_id.
type SaleHistoryDTO struct {
	SaleID   string           `json:"sale_id"`
	Employee string           `json:"employee"`
	Amount   decimal.Decimal  `json:"amount"`
	SaleDate *time.Time       `json:"sale_date,omitempty"`
	Items    int              `json:"items"`
	Lines    []HistoryLineDTO `json:"lines"`
}

// HistoryDTO historial de transacciones. TotalSales cuenta todas las ventas,
// no solo las que pasan el filtro.
type HistoryDTO struct {
	Query      string           `json:"query"`
	TotalSales int              `json:"total_sales"`
	Sales      []SaleHistoryDTO `json:"sales"`
	Notices    []*Notice        `json:"notices,omitempty"`
}
