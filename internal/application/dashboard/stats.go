package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

const (
	recentSalesLimit        = 10
	recentTransactionsLimit = 10
	topProductsLimit        = 4
	statusCompleted         = "Completed"
)

// InventoryStats conteos de existencias. Low stock incluye los agotados.
func InventoryStats(products []entity.Product, categories []entity.Category) dto.InventoryStatsDTO {
	out := dto.InventoryStatsDTO{TotalProducts: len(products), TotalCategories: len(categories)}
	for _, p := range products {
		if p.QuantityInStock <= entity.LowStockThreshold {
			out.LowStockItems++
		}
		if p.QuantityInStock <= 0 {
			out.OutOfStockItems++
		}
	}
	return out
}

// SalesStats métricas acumuladas más las ventas más recientes.
func SalesStats(sales []entity.SaleRecord, txs []entity.TransactionRecord) dto.SalesStatsDTO {
	daily := DailyStats(sales, txs)
	return dto.SalesStatsDTO{
		TotalSales:        daily.TotalSales,
		TotalTransactions: daily.TotalTransactions,
		AverageTicket:     daily.AverageTicket,
		ItemsSold:         daily.ItemsSold,
		RecentSales:       RecentSales(sales, txs, recentSalesLimit),
	}
}

// DailyStats totales sin la lista de ventas recientes.
func DailyStats(sales []entity.SaleRecord, txs []entity.TransactionRecord) dto.DailyStatsDTO {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount)
	}
	items := 0
	for _, t := range txs {
		items += t.QuantitySold
	}
	avg := decimal.Zero
	if len(sales) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}
	return dto.DailyStatsDTO{
		TotalSales:        total,
		TotalTransactions: len(sales),
		AverageTicket:     avg,
		ItemsSold:         items,
	}
}

// RecentSales ventas ordenadas por fecha descendente (sin fecha al final) con
// las unidades de sus transacciones.
func RecentSales(sales []entity.SaleRecord, txs []entity.TransactionRecord, limit int) []dto.RecentSaleDTO {
	itemsBySale := make(map[string]int, len(sales))
	for _, t := range txs {
		itemsBySale[t.SaleID] += t.QuantitySold
	}

	sorted := make([]entity.SaleRecord, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].SaleDate, sorted[j].SaleDate
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.After(b)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]dto.RecentSaleDTO, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, recentSale(s, itemsBySale[s.SaleID]))
	}
	return out
}

func recentSale(s entity.SaleRecord, items int) dto.RecentSaleDTO {
	r := dto.RecentSaleDTO{
		SaleID:   s.SaleID,
		Employee: s.EmployeeUsername,
		Amount:   s.TotalAmount,
		Items:    items,
		Status:   statusCompleted,
	}
	if !s.SaleDate.IsZero() {
		d := s.SaleDate
		r.SaleDate = &d
	}
	return r
}

// TopProducts los n productos con más existencias.
func TopProducts(products []entity.Product, n int) []dto.TopProductDTO {
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QuantityInStock > sorted[j].QuantityInStock
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]dto.TopProductDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.TopProductDTO{ProductName: p.ProductName, QuantityInStock: p.QuantityInStock, Price: p.Price})
	}
	return out
}

// Alerts tareas pendientes del gerente.
func Alerts(stats dto.InventoryStatsDTO) []dto.AlertDTO {
	alerts := make([]dto.AlertDTO, 0, 3)
	if stats.LowStockItems > 0 {
		alerts = append(alerts, dto.AlertDTO{
			Title:       "Low Stock Alert",
			Description: fmt.Sprintf("%d items need restocking", stats.LowStockItems),
			Priority:    "high",
			Type:        "inventory",
		})
	}
	if stats.OutOfStockItems > 0 {
		alerts = append(alerts, dto.AlertDTO{
			Title:       "Out of Stock Items",
			Description: fmt.Sprintf("%d items are completely out of stock", stats.OutOfStockItems),
			Priority:    "urgent",
			Type:        "inventory",
		})
	}
	if stats.TotalProducts == 0 {
		alerts = append(alerts, dto.AlertDTO{
			Title:       "No Products Available",
			Description: "Add products to start selling",
			Priority:    "high",
			Type:        "setup",
		})
	}
	return alerts
}

// Trends promedios simples: total/4, total/12 y total/30, a dos decimales.
func Trends(total decimal.Decimal) dto.SalesTrendsDTO {
	avg := func(n int64) decimal.Decimal {
		if total.IsZero() {
			return decimal.Zero
		}
		return total.Div(decimal.NewFromInt(n)).Round(2)
	}
	return dto.SalesTrendsDTO{
		WeeklyAverage:  avg(4),
		MonthlyAverage: avg(12),
		DailyAverage:   avg(30),
	}
}

// ProductDTOs convierte productos y agrega el estado de stock.
func ProductDTOs(products []entity.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductDTO{
			ProductName:     p.ProductName,
			Price:           p.Price,
			Category:        p.Category,
			QuantityInStock: p.QuantityInStock,
			Location:        p.Location,
			StockStatus:     string(p.StockStatus()),
		})
	}
	return out
}

// CategoryDTOs convierte categorías con el conteo de productos que las usan.
func CategoryDTOs(categories []entity.Category, products []entity.Product) []dto.CategoryDTO {
	count := make(map[string]int, len(categories))
	for _, p := range products {
		count[p.Category]++
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryDTO{
			CategoryName: c.CategoryName,
			Description:  c.Description,
			Location:     c.Location,
			ProductCount: count[c.CategoryName],
		})
	}
	return out
}

// FilterProducts búsqueda sin distinguir mayúsculas por nombre o categoría.
func FilterProducts(products []entity.Product, query string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.ProductName), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCategories búsqueda por nombre o descripción.
func FilterCategories(categories []entity.Category, query string) []entity.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return categories
	}
	out := make([]entity.Category, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.CategoryName), q) || strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

// TransactionRows primeras n transacciones en el orden del backend.
func TransactionRows(txs []entity.TransactionRecord, n int) []dto.TransactionRowDTO {
	if len(txs) > n {
		txs = txs[:n]
	}
	out := make([]dto.TransactionRowDTO, 0, len(txs))
	for _, t := range txs {
		employee := t.Employee
		if employee == "" {
			employee = "Unknown"
		}
		out = append(out, dto.TransactionRowDTO{
			TransactionID: t.TransactionID,
			SaleID:        t.SaleID,
			Employee:      employee,
			ProductName:   t.ProductName,
			Quantity:      t.QuantitySold,
			Amount:        t.Amount(),
		})
	}
	return out
}

// History agrupa las transacciones bajo su venta y filtra, sin distinguir
// mayúsculas, por empleado o id de venta. Conserva el orden del backend.
func History(sales []entity.SaleRecord, txs []entity.TransactionRecord, query string) []dto.SaleHistoryDTO {
	bySale := make(map[string][]entity.TransactionRecord, len(sales))
	for _, t := range txs {
		bySale[t.SaleID] = append(bySale[t.SaleID], t)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]dto.SaleHistoryDTO, 0, len(sales))
	for _, s := range sales {
		if q != "" && !strings.Contains(strings.ToLower(s.EmployeeUsername), q) && !strings.Contains(strings.ToLower(s.SaleID), q) {
			continue
		}
		h := dto.SaleHistoryDTO{
			SaleID:   s.SaleID,
			Employee: s.EmployeeUsername,
			Amount:   s.TotalAmount,
			Lines:    make([]dto.HistoryLineDTO, 0, len(bySale[s.SaleID])),
		}
		if !s.SaleDate.IsZero() {
			d := s.SaleDate
			h.SaleDate = &d
		}
		for _, t := range bySale[s.SaleID] {
			h.Items += t.QuantitySold
			h.Lines = append(h.Lines, dto.HistoryLineDTO{
				TransactionID: t.TransactionID,
				ProductName:   t.ProductName,
				QuantitySold:  t.QuantitySold,
				PriceAtSale:   t.PriceAtSale,
				LineTotal:     t.Amount(),
			})
		}
		out = append(out, h)
	}
	return out
}

// BucketDTOs agregados con etiqueta legible: 2026-W07, 2026-03 o 2026.
func BucketDTOs(p entity.Period, buckets []entity.SalesBucket) []dto.SalesBucketDTO {
	out := make([]dto.SalesBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		var label string
		switch p {
		case entity.PeriodWeek:
			label = fmt.Sprintf("%d-W%02d", b.Year, b.Week)
		case entity.PeriodMonth:
			label = fmt.Sprintf("%d-%02d", b.Year, b.Month)
		default:
			label = fmt.Sprintf("%d", b.Year)
		}
		out = append(out, dto.SalesBucketDTO{
			Label:       label,
			Year:        b.Year,
			Month:       b.Month,
			Week:        b.Week,
			SalesCount:  b.SalesCount,
			TotalAmount: b.TotalAmount,
		})
	}
	return out
}

// PeriodReport ventas de un período móvil con sus recientes.
func PeriodReport(ps *entity.PeriodSales) dto.PeriodReportDTO {
	if ps == nil {
		return dto.PeriodReportDTO{TotalAmount: decimal.Zero, Sales: []dto.RecentSaleDTO{}}
	}
	return dto.PeriodReportDTO{
		SalesCount:  ps.SalesCount,
		TotalAmount: ps.TotalAmount,
		Sales:       RecentSales(ps.Sales, nil, 0),
	}
}
