package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/infrastructure/memory"
)

type gwErr struct {
	status int
	msg    string
}

func (e *gwErr) Error() string         { return "gateway" }
func (e *gwErr) HTTPStatus() int       { return e.status }
func (e *gwErr) ServerMessage() string { return e.msg }

// fakeBackend implementa los gateways de catálogo y ventas que usa pos.
type fakeBackend struct {
	ports.CatalogGateway
	ports.SalesGateway

	products []entity.Product
	txCalls  int
	employee string
	sale     *entity.Sale
	txErr    error

	manualEmployee string
	manualTotal    decimal.Decimal
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeBackend) AddTransaction(_ context.Context, employee string, _ []dto.TransactionItem) (*entity.Sale, error) {
	f.txCalls++
	f.employee = employee
	return f.sale, f.txErr
}

func (f *fakeBackend) AddSale(_ context.Context, employee string, total decimal.Decimal) (string, error) {
	f.manualEmployee, f.manualTotal = employee, total
	return "m1", nil
}

func newPOS(fb *fakeBackend) (*pos.UseCase, *memory.ReceiptJournal) {
	journal := memory.NewReceiptJournal()
	return pos.NewUseCase(fb, fb, journal, pos.NewRegistry(), nil), journal
}

func TestUseCase_AddToCart(t *testing.T) {
	fb := &fakeBackend{products: []entity.Product{product("Pen", 2, 1)}}
	uc, _ := newPOS(fb)

	resp, err := uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Pen"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cart.ItemCount)
	assert.Equal(t, "Pen added to cart.", resp.Notice.Text)

	_, err = uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Pen"})
	assert.ErrorIs(t, err, domain.ErrStockLimit)

	_, err = uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUseCase_CheckoutVacioNoLlamaAlBackend(t *testing.T) {
	fb := &fakeBackend{}
	uc, _ := newPOS(fb)

	_, err := uc.Checkout(context.Background(), "sid", "ana")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, fb.txCalls)
}

func TestUseCase_CheckoutAnotaElRecibo(t *testing.T) {
	fb := &fakeBackend{
		products: []entity.Product{product("Pen", 2, 5)},
		sale: &entity.Sale{
			SaleID:         "s1",
			TotalAmount:    decimal.NewFromInt(2),
			Lines:          []entity.SaleLine{{ProductName: "Pen", SoldQuantity: 1, PricePerUnit: decimal.NewFromInt(2), ItemTotal: decimal.NewFromInt(2), RemainingStock: 4}},
			TransactionIDs: []string{"t1"},
			Timestamp:      time.Now(),
			EmployeeLabel:  "ana",
		},
	}
	uc, journal := newPOS(fb)
	_, err := uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Pen"})
	require.NoError(t, err)

	resp, err := uc.Checkout(context.Background(), "sid", "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", fb.employee)
	assert.Equal(t, "s1", resp.Receipt.SaleID)
	assert.Equal(t, 1, resp.Receipt.ItemCount)
	assert.Zero(t, resp.Cart.ItemCount)
	assert.Equal(t, "Sale s1 completed. Total: 2.00", resp.Notice.Text)
	assert.Equal(t, []dto.ProductStockDTO{{ProductName: "Pen", QuantityInStock: 4}}, resp.Products)

	stored, err := journal.GetBySaleID(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, stored)

	last, err := uc.LastReceipt(context.Background(), "ana")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "s1", last.SaleID)
}

func TestUseCase_CheckoutFallidoMensajeDelServidor(t *testing.T) {
	fb := &fakeBackend{
		products: []entity.Product{product("Pen", 2, 5)},
		txErr:    &gwErr{status: 400, msg: "Insufficient stock for Pen"},
	}
	uc, _ := newPOS(fb)
	_, err := uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Pen"})
	require.NoError(t, err)

	_, err = uc.Checkout(context.Background(), "sid", "ana")
	require.Error(t, err)
	assert.Equal(t, "Insufficient stock for Pen", feedback.Message(err))
	assert.Equal(t, 1, uc.Cart("sid").ItemCount)
}

func TestUseCase_ReceiptSoloDelPropioCajero(t *testing.T) {
	fb := &fakeBackend{}
	uc, journal := newPOS(fb)
	require.NoError(t, journal.Append(context.Background(), entity.Sale{SaleID: "s1", EmployeeLabel: "ana"}))

	sale, err := uc.Receipt(context.Background(), "s1", entity.Session{Role: entity.RoleCashier, Username: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "s1", sale.SaleID)

	_, err = uc.Receipt(context.Background(), "s1", entity.Session{Role: entity.RoleCashier, Username: "luis"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Receipt(context.Background(), "s1", entity.Session{Role: entity.RoleAdmin, Username: "root"})
	assert.NoError(t, err)

	_, err = uc.Receipt(context.Background(), "nope", entity.Session{Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_ManualSale(t *testing.T) {
	fb := &fakeBackend{}
	uc, _ := newPOS(fb)

	_, err := uc.ManualSale(context.Background(), dto.ManualSaleRequest{EmployeeUsername: "ana", TotalAmount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.ManualSale(context.Background(), dto.ManualSaleRequest{EmployeeUsername: "ana", TotalAmount: decimal.RequireFromString("12.50")})
	require.NoError(t, err)
	assert.Equal(t, "m1", resp.SaleID)
	assert.Equal(t, "ana", fb.manualEmployee)
}

func TestUseCase_CartOperaciones(t *testing.T) {
	fb := &fakeBackend{products: []entity.Product{product("Pen", 2, 5)}}
	uc, _ := newPOS(fb)
	_, err := uc.AddToCart(context.Background(), "sid", dto.AddToCartRequest{ProductName: "Pen"})
	require.NoError(t, err)

	resp, err := uc.SetQuantity("sid", "Pen", dto.SetQuantityRequest{Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Cart.ItemCount)

	_, err = uc.RemoveFromCart("sid", "Pen")
	require.NoError(t, err)
	assert.Zero(t, uc.Cart("sid").ItemCount)

	uc.DropCart("sid")
	assert.Empty(t, uc.ClearCart("sid").Lines)
}
