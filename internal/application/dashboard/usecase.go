// Package dashboard arma las vistas de cada rol a partir de varias lecturas al
// backend hechas en paralelo.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// UseCase vistas de administración, gerencia, inventario y caja.
type UseCase struct {
	catalog ports.CatalogGateway
	sales   ports.SalesGateway
	staff   ports.StaffGateway
	now     func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog ports.CatalogGateway, sales ports.SalesGateway, staff ports.StaffGateway) *UseCase {
	return &UseCase{catalog: catalog, sales: sales, staff: staff, now: time.Now}
}

type result[T any] struct {
	val T
	err error
}

// async lanza fn en una goroutine; el canal tiene buffer para no bloquearla.
func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{v, err}
	}()
	return ch
}

// ── Lecturas compartidas ─────────────────────────────────────────────────────

type snapshot struct {
	products     []entity.Product
	categories   []entity.Category
	sales        []entity.SaleRecord
	transactions []entity.TransactionRecord
}

// load trae catálogo y ventas en paralelo.
func (uc *UseCase) load(ctx context.Context) (*snapshot, error) {
	productsCh := async(func() ([]entity.Product, error) { return uc.catalog.ListProducts(ctx) })
	categoriesCh := async(func() ([]entity.Category, error) { return uc.catalog.ListCategories(ctx) })
	salesCh := async(func() ([]entity.SaleRecord, error) { return uc.sales.ListSales(ctx) })
	txCh := async(func() ([]entity.TransactionRecord, error) { return uc.sales.ListTransactions(ctx) })

	products := <-productsCh
	categories := <-categoriesCh
	sales := <-salesCh
	txs := <-txCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", txs.err)
	}
	return &snapshot{products.val, categories.val, sales.val, txs.val}, nil
}

// ── Admin ────────────────────────────────────────────────────────────────────

// Admin vista /admin. Personal y reportes se degradan sin tumbar la vista.
func (uc *UseCase) Admin(ctx context.Context, s entity.Session) (*dto.AdminDashboardDTO, error) {
	usersCh := async(func() ([]entity.StaffMember, error) { return uc.staff.ListUsers(ctx) })
	reportsCh := async(func() (dto.SalesReportsDTO, error) { return uc.Reports(ctx), nil })

	snap, err := uc.load(ctx)
	users := <-usersCh
	reports := <-reportsCh
	if err != nil {
		return nil, err
	}

	out := &dto.AdminDashboardDTO{
		DisplayName: s.DisplayName,
		Inventory:   InventoryStats(snap.products, snap.categories),
		Sales:       SalesStats(snap.sales, snap.transactions),
		TopProducts: TopProducts(snap.products, topProductsLimit),
		Staff:       []dto.StaffMemberDTO{},
		Reports:     reports.val,
	}
	if users.err != nil {
		out.StaffError = feedback.Message(users.err)
	} else {
		out.Staff = StaffDTOs(users.val)
	}
	return out, nil
}

// Reports seis reportes en paralelo; uno fallido queda vacío y anota su error.
func (uc *UseCase) Reports(ctx context.Context) dto.SalesReportsDTO {
	this := make(map[entity.Period]<-chan result[*entity.PeriodSales], len(entity.Periods))
	per := make(map[entity.Period]<-chan result[[]entity.SalesBucket], len(entity.Periods))
	for _, p := range entity.Periods {
		this[p] = async(func() (*entity.PeriodSales, error) { return uc.sales.SalesThis(ctx, p) })
		per[p] = async(func() ([]entity.SalesBucket, error) { return uc.sales.SalesPer(ctx, p) })
	}

	var out dto.SalesReportsDTO
	thisReports := make(map[entity.Period]dto.PeriodReportDTO, len(entity.Periods))
	perReports := make(map[entity.Period][]dto.SalesBucketDTO, len(entity.Periods))
	for _, p := range entity.Periods {
		r := <-this[p]
		if r.err != nil {
			report := PeriodReport(nil)
			report.Error = feedback.Message(r.err)
			thisReports[p] = report
			out.Errors = append(out.Errors, fmt.Sprintf("sales this %s: %s", p, report.Error))
		} else {
			thisReports[p] = PeriodReport(r.val)
		}

		b := <-per[p]
		if b.err != nil {
			perReports[p] = []dto.SalesBucketDTO{}
			out.Errors = append(out.Errors, fmt.Sprintf("sales per %s: %s", p, feedback.Message(b.err)))
		} else {
			perReports[p] = BucketDTOs(p, b.val)
		}
	}

	out.ThisWeek = thisReports[entity.PeriodWeek]
	out.ThisMonth = thisReports[entity.PeriodMonth]
	out.ThisYear = thisReports[entity.PeriodYear]
	out.PerWeek = perReports[entity.PeriodWeek]
	out.PerMonth = perReports[entity.PeriodMonth]
	out.PerYear = perReports[entity.PeriodYear]
	return out
}

// StaffDTOs convierte el listado de usuarios.
func StaffDTOs(users []entity.StaffMember) []dto.StaffMemberDTO {
	out := make([]dto.StaffMemberDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.StaffMemberDTO{FullName: u.FullName, Username: u.Username, Role: string(u.Role)})
	}
	return out
}

// ── Manager ──────────────────────────────────────────────────────────────────

// Manager vista /manager; también alimenta el reporte exportable.
func (uc *UseCase) Manager(ctx context.Context, s entity.Session) (*dto.ManagerDashboardDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	inventory := InventoryStats(snap.products, snap.categories)
	sales := SalesStats(snap.sales, snap.transactions)
	return &dto.ManagerDashboardDTO{
		DisplayName: s.DisplayName,
		Inventory:   inventory,
		Sales:       sales,
		Alerts:      Alerts(inventory),
		Trends:      Trends(sales.TotalSales),
		GeneratedAt: uc.now(),
	}, nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

// Inventory vista /inventory con búsqueda opcional.
func (uc *UseCase) Inventory(ctx context.Context, s entity.Session, query string) (*dto.InventoryDashboardDTO, error) {
	productsCh := async(func() ([]entity.Product, error) { return uc.catalog.ListProducts(ctx) })
	categoriesCh := async(func() ([]entity.Category, error) { return uc.catalog.ListCategories(ctx) })
	products := <-productsCh
	categories := <-categoriesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}

	return &dto.InventoryDashboardDTO{
		DisplayName: s.DisplayName,
		Stats:       InventoryStats(products.val, categories.val),
		Query:       strings.TrimSpace(query),
		Products:    ProductDTOs(FilterProducts(products.val, query)),
		Categories:  CategoryDTOs(FilterCategories(categories.val, query), products.val),
	}, nil
}

// ── Cashier ──────────────────────────────────────────────────────────────────

// Cashier vista /cashier sin carrito ni último recibo (los agrega pos).
func (uc *UseCase) Cashier(ctx context.Context, s entity.Session, query string) (*dto.CashierDashboardDTO, error) {
	productsCh := async(func() ([]entity.Product, error) { return uc.catalog.ListProducts(ctx) })
	salesCh := async(func() ([]entity.SaleRecord, error) { return uc.sales.ListSales(ctx) })
	txCh := async(func() ([]entity.TransactionRecord, error) { return uc.sales.ListTransactions(ctx) })
	products := <-productsCh
	sales := <-salesCh
	txs := <-txCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	out := &dto.CashierDashboardDTO{
		DisplayName:        s.DisplayName,
		Query:              strings.TrimSpace(query),
		Products:           ProductDTOs(FilterProducts(products.val, query)),
		RecentTransactions: []dto.TransactionRowDTO{},
	}
	// Estadísticas y transacciones no bloquean la caja.
	if txs.err == nil {
		out.RecentTransactions = TransactionRows(txs.val, recentTransactionsLimit)
	} else {
		out.Notices = append(out.Notices, dto.NewNotice(dto.NoticeInfo, "Recent transactions unavailable: "+feedback.Message(txs.err)))
	}
	if sales.err == nil {
		out.DailyStats = DailyStats(sales.val, txs.val)
	} else {
		out.Notices = append(out.Notices, dto.NewNotice(dto.NoticeInfo, "Sales stats unavailable: "+feedback.Message(sales.err)))
	}
	return out, nil
}

// ── Historial ────────────────────────────────────────────────────────────────

// History ventas con sus líneas, filtradas por empleado o id de venta. Sin
// transacciones la lista sale igual, con las ventas sin líneas.
func (uc *UseCase) History(ctx context.Context, query string) (*dto.HistoryDTO, error) {
	salesCh := async(func() ([]entity.SaleRecord, error) { return uc.sales.ListSales(ctx) })
	txCh := async(func() ([]entity.TransactionRecord, error) { return uc.sales.ListTransactions(ctx) })
	sales := <-salesCh
	txs := <-txCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	out := &dto.HistoryDTO{Query: strings.TrimSpace(query), TotalSales: len(sales.val)}
	if txs.err != nil {
		out.Notices = append(out.Notices, dto.NewNotice(dto.NoticeInfo, "Transaction details unavailable: "+feedback.Message(txs.err)))
	}
	out.Sales = History(sales.val, txs.val, query)
	return out, nil
}
