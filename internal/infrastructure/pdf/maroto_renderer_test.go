package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/dto"
)

func TestReceiptPDF(t *testing.T) {
	g := NewMarotoRenderer("")
	body, err := g.ReceiptPDF(&dto.ReceiptDTO{
		SaleID:      "65f0c1",
		TotalAmount: decimal.RequireFromString("19.00"),
		ItemCount:   3,
		Lines: []dto.ReceiptLineDTO{
			{ProductName: "Pen", SoldQuantity: 2, PricePerUnit: decimal.NewFromInt(2), ItemTotal: decimal.NewFromInt(4), RemainingStock: 8},
			{ProductName: "Book", SoldQuantity: 1, PricePerUnit: decimal.NewFromInt(15), ItemTotal: decimal.NewFromInt(15), RemainingStock: 0},
		},
		TransactionIDs: []string{"t1", "t2"},
		Timestamp:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Employee:       "ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestManagerReportPDF(t *testing.T) {
	g := NewMarotoRenderer("StoreMax")
	when := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	body, err := g.ManagerReportPDF(&dto.ManagerDashboardDTO{
		Inventory: dto.InventoryStatsDTO{TotalProducts: 4, LowStockItems: 1},
		Sales: dto.SalesStatsDTO{
			TotalSales:  decimal.NewFromInt(120),
			RecentSales: []dto.RecentSaleDTO{{SaleID: "s1", Employee: "ana", Amount: decimal.NewFromInt(120), SaleDate: &when, Items: 3, Status: "Completed"}},
		},
		Alerts:      []dto.AlertDTO{{Title: "Low Stock Alert", Description: "1 items need restocking", Priority: "high", Type: "inventory"}},
		GeneratedAt: when,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "N/A", nonEmpty("", "N/A"))
	assert.Equal(t, "ana", nonEmpty("ana", "N/A"))
}
