package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// AuthGateway autenticación contra el backend de la tienda.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResult, error)
}

// CatalogGateway productos y categorías.
// Las mutaciones devuelven el mensaje del servidor.
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	AddProduct(ctx context.Context, p dto.NewProductRequest) (string, error)
	UpdateProduct(ctx context.Context, u dto.UpdateProductRequest) (string, error)
	DeleteProduct(ctx context.Context, productName string) (string, error)

	ListCategories(ctx context.Context) ([]entity.Category, error)
	AddCategory(ctx context.Context, c dto.NewCategoryRequest) (string, error)
	UpdateCategory(ctx context.Context, u dto.UpdateCategoryRequest) (string, error)
	DeleteCategory(ctx context.Context, categoryName string) (string, error)
}

// SalesGateway ventas, transacciones y reportes por período.
type SalesGateway interface {
	ListSales(ctx context.Context) ([]entity.SaleRecord, error)
	AddSale(ctx context.Context, employee string, total decimal.Decimal) (string, error)
	SalesThis(ctx context.Context, p entity.Period) (*entity.PeriodSales, error)
	SalesPer(ctx context.Context, p entity.Period) ([]entity.SalesBucket, error)
	ListTransactions(ctx context.Context) ([]entity.TransactionRecord, error)
	AddTransaction(ctx context.Context, employee string, items []dto.TransactionItem) (*entity.Sale, error)
}

// StaffGateway gestión de usuarios.
type StaffGateway interface {
	ListUsers(ctx context.Context) ([]entity.StaffMember, error)
	RegisterStaff(ctx context.Context, reg dto.RegisterStaffRequest) (string, error)
	DeleteUser(ctx context.Context, username string) (string, error)
	ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) (string, error)
}

// AssistantGateway asistente de lenguaje natural del backend.
type AssistantGateway interface {
	AskAssistant(ctx context.Context, query string) (*dto.AssistantReply, error)
}
