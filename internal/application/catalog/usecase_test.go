package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/application/catalog"
	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/feedback"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/domain"
)

type gwErr struct {
	status int
	msg    string
}

func (e *gwErr) Error() string         { return "gateway" }
func (e *gwErr) HTTPStatus() int       { return e.status }
func (e *gwErr) ServerMessage() string { return e.msg }

type fakeCatalog struct {
	ports.CatalogGateway

	calls      int
	newProduct dto.NewProductRequest
	update     dto.UpdateProductRequest
	catUpdate  dto.UpdateCategoryRequest
	deleted    string
	msg        string
	err        error
}

func (f *fakeCatalog) AddProduct(_ context.Context, p dto.NewProductRequest) (string, error) {
	f.calls++
	f.newProduct = p
	return f.msg, f.err
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, u dto.UpdateProductRequest) (string, error) {
	f.calls++
	f.update = u
	return f.msg, f.err
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, name string) (string, error) {
	f.calls++
	f.deleted = name
	return f.msg, f.err
}

func (f *fakeCatalog) AddCategory(_ context.Context, _ dto.NewCategoryRequest) (string, error) {
	f.calls++
	return f.msg, f.err
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, u dto.UpdateCategoryRequest) (string, error) {
	f.calls++
	f.catUpdate = u
	return f.msg, f.err
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, name string) (string, error) {
	f.calls++
	f.deleted = name
	return f.msg, f.err
}

func TestAddProduct_ValidaAntesDeEnviar(t *testing.T) {
	tests := []struct {
		name string
		in   dto.NewProductRequest
		msg  string
	}{
		{"sin nombre", dto.NewProductRequest{ProductName: " ", Price: decimal.NewFromInt(1), CategoryName: "Office"}, "Product name is required"},
		{"precio cero", dto.NewProductRequest{ProductName: "Pen", Price: decimal.Zero, CategoryName: "Office"}, "Price must be greater than 0"},
		{"stock negativo", dto.NewProductRequest{ProductName: "Pen", Price: decimal.NewFromInt(1), CategoryName: "Office", QuantityInStock: -1}, "Quantity in stock must be 0 or more"},
		{"sin categoría", dto.NewProductRequest{ProductName: "Pen", Price: decimal.NewFromInt(1)}, "Category name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCatalog{}
			_, err := catalog.NewUseCase(fc).AddProduct(context.Background(), tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.msg, feedback.Message(err))
			assert.Zero(t, fc.calls)
		})
	}
}

func TestAddProduct_RecortaYReenvia(t *testing.T) {
	fc := &fakeCatalog{msg: "Product added"}
	resp, err := catalog.NewUseCase(fc).AddProduct(context.Background(), dto.NewProductRequest{
		ProductName: " Pen ", Price: decimal.NewFromInt(2), CategoryName: " Office ", QuantityInStock: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pen", fc.newProduct.ProductName)
	assert.Equal(t, "Office", fc.newProduct.CategoryName)
	assert.Equal(t, "Product added", resp.Notice.Text)
	assert.Equal(t, dto.NoticeSuccess, resp.Notice.Type)
}

func TestAddProduct_ErrorDelServidor(t *testing.T) {
	fc := &fakeCatalog{err: &gwErr{status: 400, msg: "Product already exists"}}
	_, err := catalog.NewUseCase(fc).AddProduct(context.Background(), dto.NewProductRequest{
		ProductName: "Pen", Price: decimal.NewFromInt(2), CategoryName: "Office",
	})
	assert.Equal(t, "Product already exists", feedback.Message(err))
}

func TestUpdateProduct(t *testing.T) {
	fc := &fakeCatalog{}
	uc := catalog.NewUseCase(fc)

	_, err := uc.UpdateProduct(context.Background(), dto.UpdateProductRequest{ProductName: "Pen"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, fc.calls)

	qty := 0
	resp, err := uc.UpdateProduct(context.Background(), dto.UpdateProductRequest{ProductName: "Pen", QuantityInStock: &qty})
	require.NoError(t, err)
	assert.Equal(t, "Product updated successfully", resp.Notice.Text)
	require.NotNil(t, fc.update.QuantityInStock)
	assert.Zero(t, *fc.update.QuantityInStock)

	neg := decimal.NewFromInt(-1)
	_, err = uc.UpdateProduct(context.Background(), dto.UpdateProductRequest{ProductName: "Pen", Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeletes(t *testing.T) {
	fc := &fakeCatalog{}
	uc := catalog.NewUseCase(fc)

	_, err := uc.DeleteProduct(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.DeleteProduct(context.Background(), " Pen ")
	require.NoError(t, err)
	assert.Equal(t, "Pen", fc.deleted)

	_, err = uc.DeleteCategory(context.Background(), "Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", fc.deleted)
}

func TestCategorias(t *testing.T) {
	fc := &fakeCatalog{}
	uc := catalog.NewUseCase(fc)

	_, err := uc.AddCategory(context.Background(), dto.NewCategoryRequest{CategoryName: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddCategory(context.Background(), dto.NewCategoryRequest{CategoryName: "Office"})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(context.Background(), dto.UpdateCategoryRequest{CategoryName: "Office"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateCategory(context.Background(), dto.UpdateCategoryRequest{CategoryName: "Office", NewCategoryName: "Stationery", Description: " Paper "})
	require.NoError(t, err)
	assert.Equal(t, "Paper", fc.catUpdate.Description)
	assert.Equal(t, 2, fc.calls)
}
