// Package report exporta el reporte del gerente (CSV y PDF) y los recibos en PDF.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// Title título del reporte del gerente.
const Title = "Store Management System - Manager Report"

// Document archivo listo para descargar.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// UseCase exportaciones.
type UseCase struct {
	dashboards *dashboard.UseCase
	renderer   ports.DocumentRenderer
}

// NewUseCase construye el caso de uso.
func NewUseCase(dashboards *dashboard.UseCase, renderer ports.DocumentRenderer) *UseCase {
	return &UseCase{dashboards: dashboards, renderer: renderer}
}

// ManagerCSV reporte del gerente en CSV.
func (uc *UseCase) ManagerCSV(ctx context.Context, s entity.Session) (*Document, error) {
	view, err := uc.dashboards.Manager(ctx, s)
	if err != nil {
		return nil, err
	}
	body, err := ManagerCSV(view)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    filename(view.GeneratedAt, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Body:        body,
	}, nil
}

// ManagerPDF mismo contenido que el CSV, en PDF.
func (uc *UseCase) ManagerPDF(ctx context.Context, s entity.Session) (*Document, error) {
	view, err := uc.dashboards.Manager(ctx, s)
	if err != nil {
		return nil, err
	}
	body, err := uc.renderer.ManagerReportPDF(view)
	if err != nil {
		return nil, fmt.Errorf("report: pdf del gerente: %w", err)
	}
	return &Document{
		Filename:    filename(view.GeneratedAt, "pdf"),
		ContentType: "application/pdf",
		Body:        body,
	}, nil
}

// ReceiptPDF recibo de una venta confirmada.
func (uc *UseCase) ReceiptPDF(sale entity.Sale) (*Document, error) {
	receipt := pos.ReceiptDTO(sale)
	body, err := uc.renderer.ReceiptPDF(&receipt)
	if err != nil {
		return nil, fmt.Errorf("report: pdf del recibo %s: %w", sale.SaleID, err)
	}
	return &Document{
		Filename:    fmt.Sprintf("receipt_%s.pdf", sale.SaleID),
		ContentType: "application/pdf",
		Body:        body,
	}, nil
}

func filename(t time.Time, ext string) string {
	return fmt.Sprintf("manager_report_%s.%s", t.Format("2006-01-02"), ext)
}

// ManagerCSV serializa el reporte: cabecera, resumen, métricas, tendencias y
// transacciones recientes (sección omitida si no hay).
func ManagerCSV(view *dto.ManagerDashboardDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Manager Dashboard Report"},
		{},
		{"Title", Title},
		{"Generated At", view.GeneratedAt.Format("2006-01-02 15:04:05")},
		{},
		{"OVERVIEW"},
		{"Metric", "Value"},
		{"Total Sales", Money(view.Sales.TotalSales)},
		{"Total Products", Number(view.Inventory.TotalProducts)},
		{"Low Stock Items", Number(view.Inventory.LowStockItems)},
		{"Out of Stock Items", Number(view.Inventory.OutOfStockItems)},
		{},
		{"SALES METRICS"},
		{"Metric", "Value"},
		{"Total Revenue", Money(view.Sales.TotalSales)},
		{"Total Transactions", Number(view.Sales.TotalTransactions)},
		{"Average Ticket", Money(view.Sales.AverageTicket)},
		{"Items Sold", Number(view.Sales.ItemsSold)},
		{},
		{"SALES TRENDS"},
		{"Period", "Average"},
		{"Weekly (4 weeks)", Money(view.Trends.WeeklyAverage)},
		{"Monthly (12 months)", Money(view.Trends.MonthlyAverage)},
		{"Daily (30 days)", Money(view.Trends.DailyAverage)},
	}
	if len(view.Sales.RecentSales) > 0 {
		rows = append(rows,
			[]string{},
			[]string{"RECENT TRANSACTIONS"},
			[]string{"Customer", "Time", "Items", "Amount", "Status"},
		)
		for _, s := range view.Sales.RecentSales {
			customer := s.Employee
			if customer == "" {
				customer = "N/A"
			}
			rows = append(rows, []string{customer, Timestamp(s.SaleDate), Number(s.Items), Money(s.Amount), s.Status})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("report: escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}
