package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/assistant"
	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/catalog"
	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/report"
	"github.com/jhoicas/storemax-web/internal/application/staff"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/storemax-web/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/storemax-web/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "storemax-web-test"
	testCookie = "storemax_session"
)

type gwErr struct {
	status int
	msg    string
}

func (e *gwErr) Error() string         { return "gateway" }
func (e *gwErr) HTTPStatus() int       { return e.status }
func (e *gwErr) ServerMessage() string { return e.msg }

// fakeBackend implementa los cinco gateways con respuestas fijas.
type fakeBackend struct {
	mu sync.Mutex

	login    *dto.LoginResult
	loginErr error
	products []entity.Product
	sales    []entity.SaleRecord
	txs      []entity.TransactionRecord
	txCalls  int
	saleID   string
}

func (f *fakeBackend) Login(context.Context, string, string) (*dto.LoginResult, error) {
	return f.login, f.loginErr
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	return f.products, nil
}
func (f *fakeBackend) AddProduct(context.Context, dto.NewProductRequest) (string, error) {
	return "Product added", nil
}
func (f *fakeBackend) UpdateProduct(context.Context, dto.UpdateProductRequest) (string, error) {
	return "Product updated", nil
}
func (f *fakeBackend) DeleteProduct(context.Context, string) (string, error) {
	return "Product deleted", nil
}
func (f *fakeBackend) ListCategories(context.Context) ([]entity.Category, error) {
	return []entity.Category{}, nil
}
func (f *fakeBackend) AddCategory(context.Context, dto.NewCategoryRequest) (string, error) {
	return "", nil
}
func (f *fakeBackend) UpdateCategory(context.Context, dto.UpdateCategoryRequest) (string, error) {
	return "", nil
}
func (f *fakeBackend) DeleteCategory(context.Context, string) (string, error) { return "", nil }

func (f *fakeBackend) ListSales(context.Context) ([]entity.SaleRecord, error) {
	return append([]entity.SaleRecord{}, f.sales...), nil
}
func (f *fakeBackend) AddSale(context.Context, string, decimal.Decimal) (string, error) {
	return "M1", nil
}
func (f *fakeBackend) SalesThis(context.Context, entity.Period) (*entity.PeriodSales, error) {
	return &entity.PeriodSales{}, nil
}
func (f *fakeBackend) SalesPer(context.Context, entity.Period) ([]entity.SalesBucket, error) {
	return []entity.SalesBucket{}, nil
}
func (f *fakeBackend) ListTransactions(context.Context) ([]entity.TransactionRecord, error) {
	return append([]entity.TransactionRecord{}, f.txs...), nil
}

func (f *fakeBackend) AddTransaction(_ context.Context, employee string, items []dto.TransactionItem) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txCalls++
	lines := make([]entity.SaleLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		price := decimal.NewFromInt(10)
		lines = append(lines, entity.SaleLine{
			ProductName:    it.ProductName,
			SoldQuantity:   it.QuantitySold,
			PricePerUnit:   price,
			ItemTotal:      price.Mul(decimal.NewFromInt(int64(it.QuantitySold))),
			RemainingStock: 2,
		})
		total = total.Add(lines[len(lines)-1].ItemTotal)
	}
	return &entity.Sale{SaleID: f.saleID, TotalAmount: total, Lines: lines, EmployeeLabel: employee}, nil
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txCalls
}

func (f *fakeBackend) ListUsers(context.Context) ([]entity.StaffMember, error) {
	return []entity.StaffMember{}, nil
}
func (f *fakeBackend) RegisterStaff(context.Context, dto.RegisterStaffRequest) (string, error) {
	return "", nil
}
func (f *fakeBackend) DeleteUser(context.Context, string) (string, error) { return "", nil }
func (f *fakeBackend) ChangePassword(context.Context, dto.ChangePasswordRequest) (string, error) {
	return "", nil
}

func (f *fakeBackend) AskAssistant(context.Context, string) (*dto.AssistantReply, error) {
	return &dto.AssistantReply{Answer: "42"}, nil
}

type fakeRenderer struct{}

func (fakeRenderer) ManagerReportPDF(*dto.ManagerDashboardDTO) ([]byte, error) {
	return []byte("%PDF-manager"), nil
}
func (fakeRenderer) ReceiptPDF(*dto.ReceiptDTO) ([]byte, error) {
	return []byte("%PDF-receipt"), nil
}

// harness app completa con almacenes en memoria.
type harness struct {
	app      *fiber.App
	backend  *fakeBackend
	sessions *memory.SessionStore
	carts    *pos.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fb := &fakeBackend{
		saleID: "S1",
		products: []entity.Product{
			{ProductName: "Green Tea", Price: decimal.NewFromInt(10), Category: "Drinks", QuantityInStock: 3},
		},
	}
	sessions := memory.NewSessionStore()
	carts := pos.NewRegistry()

	dashboards := dashboard.NewUseCase(fb, fb, fb)
	posUC := pos.NewUseCase(fb, fb, memory.NewReceiptJournal(), carts, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Session: apphttp.SessionConfig{
			Store:      sessions,
			CookieName: testCookie,
			Secret:     testSecret,
			Issuer:     testIssuer,
		},
		AuthUC:      auth.NewUseCase(fb, sessions, 2),
		DashboardUC: dashboards,
		CatalogUC:   catalog.NewUseCase(fb),
		POSUC:       posUC,
		StaffUC:     staff.NewUseCase(fb),
		AssistantUC: assistant.NewUseCase(fb),
		ReportUC:    report.NewUseCase(dashboards, fakeRenderer{}),
	})
	return &harness{app: app, backend: fb, sessions: sessions, carts: carts}
}

// cookieFor firma una cookie de sesión para sid.
func cookieFor(t *testing.T, sid string) *http.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, sid, testIssuer)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: tok}
}

// signIn deja una sesión autenticada con el rol indicado y devuelve su cookie.
func (h *harness) signIn(t *testing.T, sid string, role entity.Role) *http.Cookie {
	t.Helper()
	require.NoError(t, h.sessions.Write(context.Background(), sid, entity.Session{
		AccessToken:          "access-" + sid,
		RefreshToken:         "refresh-" + sid,
		Role:                 role,
		PendingRoleSelection: role,
		DisplayName:          "Ana",
		Username:             "ana",
	}))
	return cookieFor(t, sid)
}

// sessionCookieOf cookie de sesión emitida en la respuesta, o nil.
func sessionCookieOf(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func (h *harness) do(t *testing.T, method, path string, cookie *http.Cookie, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
