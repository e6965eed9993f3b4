package dashboard_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// ── Fakes ────────────────────────────────────────────────────────────────────

type gwErr struct{ status int }

func (e *gwErr) Error() string         { return "gateway" }
func (e *gwErr) HTTPStatus() int       { return e.status }
func (e *gwErr) ServerMessage() string { return "" }

type fakeBackend struct {
	ports.CatalogGateway
	ports.SalesGateway
	ports.StaffGateway

	products     []entity.Product
	categories   []entity.Category
	sales        []entity.SaleRecord
	transactions []entity.TransactionRecord
	users        []entity.StaffMember

	productsErr error
	usersErr    error
	txErr       error
	failPeriod  entity.Period

	inflight, peak atomic.Int32
}

// track registra la concurrencia máxima observada.
func (f *fakeBackend) track() func() {
	n := f.inflight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return func() { f.inflight.Add(-1) }
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	defer f.track()()
	return f.products, f.productsErr
}

func (f *fakeBackend) ListCategories(context.Context) ([]entity.Category, error) {
	defer f.track()()
	return f.categories, nil
}

func (f *fakeBackend) ListSales(context.Context) ([]entity.SaleRecord, error) {
	defer f.track()()
	return f.sales, nil
}

func (f *fakeBackend) ListTransactions(context.Context) ([]entity.TransactionRecord, error) {
	defer f.track()()
	return f.transactions, f.txErr
}

func (f *fakeBackend) ListUsers(context.Context) ([]entity.StaffMember, error) {
	return f.users, f.usersErr
}

func (f *fakeBackend) SalesThis(_ context.Context, p entity.Period) (*entity.PeriodSales, error) {
	if p == f.failPeriod {
		return nil, &gwErr{status: 500}
	}
	return &entity.PeriodSales{SalesCount: 1, TotalAmount: decimal.NewFromInt(10), Sales: f.sales[:1]}, nil
}

func (f *fakeBackend) SalesPer(_ context.Context, p entity.Period) ([]entity.SalesBucket, error) {
	return []entity.SalesBucket{{Year: 2026, Month: 3, Week: 11, SalesCount: 2, TotalAmount: decimal.NewFromInt(20)}}, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() *fakeBackend {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &fakeBackend{
		products: []entity.Product{
			{ProductName: "Pen", Price: dec("2"), Category: "Office", QuantityInStock: 50},
			{ProductName: "Book", Price: dec("15"), Category: "Office", QuantityInStock: 3},
			{ProductName: "Milk", Price: dec("1.5"), Category: "Dairy", QuantityInStock: 0},
			{ProductName: "Cheese", Price: dec("7"), Category: "Dairy", QuantityInStock: 12},
			{ProductName: "Stapler", Price: dec("9"), Category: "Office", QuantityInStock: 8},
		},
		categories: []entity.Category{
			{CategoryName: "Office", Description: "Paper and pens"},
			{CategoryName: "Dairy", Description: "Fresh milk products"},
		},
		sales: []entity.SaleRecord{
			{SaleID: "s1", EmployeeUsername: "ana", TotalAmount: dec("10"), SaleDate: day},
			{SaleID: "s2", EmployeeUsername: "luis", TotalAmount: dec("20"), SaleDate: day.Add(2 * time.Hour)},
			{SaleID: "s3", EmployeeUsername: "ana", TotalAmount: dec("30")},
		},
		transactions: []entity.TransactionRecord{
			{TransactionID: "t1", SaleID: "s1", Employee: "ana", ProductName: "Pen", QuantitySold: 5, PriceAtSale: dec("2")},
			{TransactionID: "t2", SaleID: "s2", ProductName: "Book", QuantitySold: 1, PriceAtSale: dec("15")},
			{TransactionID: "t3", SaleID: "s2", Employee: "luis", ProductName: "Pen", QuantitySold: 2, PriceAtSale: dec("2.5")},
		},
		users: []entity.StaffMember{{FullName: "Ana", Username: "ana", Role: entity.RoleCashier}},
	}
}

// ── Funciones puras ──────────────────────────────────────────────────────────

func TestInventoryStats_LowStockIncluyeAgotados(t *testing.T) {
	fb := fixture()
	stats := dashboard.InventoryStats(fb.products, fb.categories)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 2, stats.LowStockItems)
	assert.Equal(t, 1, stats.OutOfStockItems)
}

func TestSalesStats(t *testing.T) {
	fb := fixture()
	stats := dashboard.SalesStats(fb.sales, fb.transactions)

	assert.True(t, dec("60").Equal(stats.TotalSales))
	assert.Equal(t, 3, stats.TotalTransactions)
	assert.True(t, dec("20").Equal(stats.AverageTicket))
	assert.Equal(t, 8, stats.ItemsSold)

	require.Len(t, stats.RecentSales, 3)
	assert.Equal(t, "s2", stats.RecentSales[0].SaleID)
	assert.Equal(t, 3, stats.RecentSales[0].Items)
	assert.Equal(t, "s1", stats.RecentSales[1].SaleID)
	assert.Equal(t, "s3", stats.RecentSales[2].SaleID)
	assert.Nil(t, stats.RecentSales[2].SaleDate)
	assert.Equal(t, "Completed", stats.RecentSales[0].Status)
}

func TestSalesStats_SinVentas(t *testing.T) {
	stats := dashboard.SalesStats(nil, nil)
	assert.True(t, stats.TotalSales.IsZero())
	assert.True(t, stats.AverageTicket.IsZero())
	assert.Empty(t, stats.RecentSales)
}

func TestTopProducts(t *testing.T) {
	top := dashboard.TopProducts(fixture().products, 4)
	require.Len(t, top, 4)
	assert.Equal(t, []string{"Pen", "Cheese", "Stapler", "Book"},
		[]string{top[0].ProductName, top[1].ProductName, top[2].ProductName, top[3].ProductName})
}

func TestAlerts(t *testing.T) {
	fb := fixture()
	alerts := dashboard.Alerts(dashboard.InventoryStats(fb.products, fb.categories))
	require.Len(t, alerts, 2)
	assert.Equal(t, "Low Stock Alert", alerts[0].Title)
	assert.Equal(t, "2 items need restocking", alerts[0].Description)
	assert.Equal(t, "high", alerts[0].Priority)
	assert.Equal(t, "Out of Stock Items", alerts[1].Title)
	assert.Equal(t, "urgent", alerts[1].Priority)

	empty := dashboard.Alerts(dashboard.InventoryStats(nil, nil))
	require.Len(t, empty, 1)
	assert.Equal(t, "No Products Available", empty[0].Title)
	assert.Equal(t, "setup", empty[0].Type)
}

func TestTrends(t *testing.T) {
	tr := dashboard.Trends(dec("120"))
	assert.Equal(t, "30.00", tr.WeeklyAverage.StringFixed(2))
	assert.Equal(t, "10.00", tr.MonthlyAverage.StringFixed(2))
	assert.Equal(t, "4.00", tr.DailyAverage.StringFixed(2))

	zero := dashboard.Trends(decimal.Zero)
	assert.Equal(t, "0.00", zero.DailyAverage.StringFixed(2))
}

func TestFiltros(t *testing.T) {
	fb := fixture()
	assert.Len(t, dashboard.FilterProducts(fb.products, "DAIRY"), 2)
	assert.Len(t, dashboard.FilterProducts(fb.products, " pen "), 1)
	assert.Len(t, dashboard.FilterProducts(fb.products, ""), 5)
	assert.Len(t, dashboard.FilterCategories(fb.categories, "milk"), 1)
}

func TestBucketDTOs_Etiquetas(t *testing.T) {
	b := []entity.SalesBucket{{Year: 2026, Month: 3, Week: 7}}
	assert.Equal(t, "2026-W07", dashboard.BucketDTOs(entity.PeriodWeek, b)[0].Label)
	assert.Equal(t, "2026-03", dashboard.BucketDTOs(entity.PeriodMonth, b)[0].Label)
	assert.Equal(t, "2026", dashboard.BucketDTOs(entity.PeriodYear, b)[0].Label)
}

func TestTransactionRows(t *testing.T) {
	rows := dashboard.TransactionRows(fixture().transactions, 2)
	require.Len(t, rows, 2)
	assert.Equal(t, "Unknown", rows[1].Employee)
	assert.True(t, dec("10").Equal(rows[0].Amount))
}

// ── Casos de uso ─────────────────────────────────────────────────────────────

func TestAdmin(t *testing.T) {
	fb := fixture()
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Admin(context.Background(), entity.Session{DisplayName: "Root"})
	require.NoError(t, err)
	assert.Equal(t, "Root", view.DisplayName)
	assert.Len(t, view.TopProducts, 4)
	assert.Len(t, view.Staff, 1)
	assert.Empty(t, view.StaffError)
	assert.Equal(t, 1, view.Reports.ThisWeek.SalesCount)
	assert.Len(t, view.Reports.PerMonth, 1)
	assert.Empty(t, view.Reports.Errors)
	assert.GreaterOrEqual(t, fb.peak.Load(), int32(2), "las lecturas deben ir en paralelo")
}

func TestAdmin_DegradaPersonalYReportes(t *testing.T) {
	fb := fixture()
	fb.usersErr = &gwErr{status: 0}
	fb.failPeriod = entity.PeriodMonth
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Admin(context.Background(), entity.Session{})
	require.NoError(t, err)
	assert.Equal(t, "Network error. Please check your connection.", view.StaffError)
	assert.Empty(t, view.Staff)
	assert.Zero(t, view.Reports.ThisMonth.SalesCount)
	assert.Equal(t, "Server error: 500", view.Reports.ThisMonth.Error)
	assert.Len(t, view.Reports.Errors, 1)
	assert.Equal(t, 1, view.Reports.ThisYear.SalesCount)
}

func TestAdmin_FalloDelCatalogo(t *testing.T) {
	fb := fixture()
	fb.productsErr = errors.New("boom")
	uc := dashboard.NewUseCase(fb, fb, fb)

	_, err := uc.Admin(context.Background(), entity.Session{})
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	fb := fixture()
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Manager(context.Background(), entity.Session{DisplayName: "Mara"})
	require.NoError(t, err)
	assert.Len(t, view.Alerts, 2)
	assert.Equal(t, "15.00", view.Trends.WeeklyAverage.StringFixed(2))
	assert.False(t, view.GeneratedAt.IsZero())
}

func TestInventory(t *testing.T) {
	fb := fixture()
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Inventory(context.Background(), entity.Session{}, "office")
	require.NoError(t, err)
	assert.Len(t, view.Products, 3)
	assert.Len(t, view.Categories, 1)
	assert.Equal(t, 3, view.Categories[0].ProductCount)
	assert.Equal(t, 5, view.Stats.TotalProducts)

	all, err := uc.Inventory(context.Background(), entity.Session{}, "")
	require.NoError(t, err)
	status := map[string]string{}
	for _, p := range all.Products {
		status[p.ProductName] = p.StockStatus
	}
	assert.Equal(t, "Out of Stock", status["Milk"])
	assert.Equal(t, "Low Stock", status["Book"])
	assert.Equal(t, "In Stock", status["Pen"])
}

func TestCashier(t *testing.T) {
	fb := fixture()
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Cashier(context.Background(), entity.Session{DisplayName: "Ana"}, "pen")
	require.NoError(t, err)
	assert.Len(t, view.Products, 1)
	assert.Len(t, view.RecentTransactions, 3)
	assert.Equal(t, 8, view.DailyStats.ItemsSold)
	assert.Equal(t, 3, view.DailyStats.TotalTransactions)
	assert.Empty(t, view.Notices)
}

func TestCashier_TransaccionesCaidas(t *testing.T) {
	fb := fixture()
	fb.txErr = &gwErr{status: 503}
	uc := dashboard.NewUseCase(fb, fb, fb)

	view, err := uc.Cashier(context.Background(), entity.Session{}, "")
	require.NoError(t, err)
	assert.Empty(t, view.RecentTransactions)
	require.Len(t, view.Notices, 1)
	assert.Equal(t, 3, view.DailyStats.TotalTransactions)
}

// ── Historial ────────────────────────────────────────────────────────────────

func TestHistory_AgrupaLineasPorVenta(t *testing.T) {
	f := fixture()
	uc := dashboard.NewUseCase(f, f, f)

	view, err := uc.History(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalSales)
	require.Len(t, view.Sales, 3)

	s2 := view.Sales[1]
	assert.Equal(t, "s2", s2.SaleID)
	assert.Equal(t, 3, s2.Items)
	require.Len(t, s2.Lines, 2)
	assert.Equal(t, "t2", s2.Lines[0].TransactionID)
	assert.True(t, dec("5").Equal(s2.Lines[1].LineTotal))
	require.NotNil(t, s2.SaleDate)

	s3 := view.Sales[2]
	assert.Nil(t, s3.SaleDate)
	assert.Zero(t, s3.Items)
	assert.Empty(t, s3.Lines)
	assert.GreaterOrEqual(t, f.peak.Load(), int32(2), "ventas y transacciones se piden en paralelo")
}

func TestHistory_FiltraPorEmpleadoOIdSinMayusculas(t *testing.T) {
	f := fixture()
	uc := dashboard.NewUseCase(f, f, f)

	tests := []struct {
		query string
		want  []string
	}{
		{"ANA", []string{"s1", "s3"}},
		{" Luis ", []string{"s2"}},
		{"S3", []string{"s3"}},
		{"nadie", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			view, err := uc.History(context.Background(), tt.query)
			require.NoError(t, err)
			ids := []string{}
			for _, s := range view.Sales {
				ids = append(ids, s.SaleID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, 3, view.TotalSales)
			assert.Equal(t, strings.TrimSpace(tt.query), view.Query)
		})
	}
}

func TestHistory_SinTransaccionesAvisaYMuestraVentas(t *testing.T) {
	f := fixture()
	f.txErr = &gwErr{status: 500}
	uc := dashboard.NewUseCase(f, f, f)

	view, err := uc.History(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, view.Sales, 3)
	require.Len(t, view.Notices, 1)
	assert.Contains(t, view.Notices[0].Text, "Transaction details unavailable")
}
