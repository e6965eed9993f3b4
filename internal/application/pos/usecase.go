// Package pos carrito del cajero, checkout contra el backend y recibos.
package pos

import (
	"context"
	"fmt"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/application/validation"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
	"github.com/jhoicas/storemax-web/pkg/logger"
)

// UseCase operaciones del punto de venta.
type UseCase struct {
	catalog  ports.CatalogGateway
	sales    ports.SalesGateway
	receipts repository.ReceiptRepository
	carts    *Registry
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. log puede ser nil.
func NewUseCase(catalog ports.CatalogGateway, sales ports.SalesGateway, receipts repository.ReceiptRepository, carts *Registry, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{catalog: catalog, sales: sales, receipts: receipts, carts: carts, log: log.Component("pos")}
}

// Cart vista del carrito de la sesión.
func (uc *UseCase) Cart(sessionID string) dto.CartDTO {
	return uc.carts.Get(sessionID).DTO()
}

// AddToCart busca el producto en el catálogo vigente y suma una unidad.
func (uc *UseCase) AddToCart(ctx context.Context, sessionID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("pos: listar productos: %w", err)
	}
	var product *entity.Product
	for i := range products {
		if products[i].ProductName == in.ProductName {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, domain.NewUserError(domain.ErrNotFound, "Product not found: %s", in.ProductName)
	}

	cart := uc.carts.Get(sessionID)
	cart.Observe(products)
	if err := cart.Add(*product); err != nil {
		return nil, err
	}
	return &dto.CartResponse{
		Cart:   cart.DTO(),
		Notice: dto.NewNotice(dto.NoticeSuccess, product.ProductName+" added to cart."),
	}, nil
}

// SetQuantity fija la cantidad de una línea (0 o menos la elimina).
func (uc *UseCase) SetQuantity(sessionID, productName string, in dto.SetQuantityRequest) (*dto.CartResponse, error) {
	cart := uc.carts.Get(sessionID)
	if err := cart.SetQuantity(productName, in.Quantity); err != nil {
		return nil, err
	}
	return &dto.CartResponse{Cart: cart.DTO()}, nil
}

// RemoveFromCart quita una línea.
func (uc *UseCase) RemoveFromCart(sessionID, productName string) (*dto.CartResponse, error) {
	cart := uc.carts.Get(sessionID)
	if err := cart.Remove(productName); err != nil {
		return nil, err
	}
	return &dto.CartResponse{
		Cart:   cart.DTO(),
		Notice: dto.NewNotice(dto.NoticeInfo, productName+" removed from cart."),
	}, nil
}

// ClearCart vacía el carrito.
func (uc *UseCase) ClearCart(sessionID string) dto.CartDTO {
	cart := uc.carts.Get(sessionID)
	cart.Clear()
	return cart.DTO()
}

// DropCart descarta el carrito de la sesión.
func (uc *UseCase) DropCart(sessionID string) {
	uc.carts.Drop(sessionID)
}

// Checkout envía el carrito como una transacción multi-línea. Un carrito vacío
// no llama al backend. El recibo se anota en el diario; si el diario falla la
// venta ya está hecha y solo se registra el error.
func (uc *UseCase) Checkout(ctx context.Context, sessionID, employee string) (*dto.CheckoutResponse, error) {
	cart := uc.carts.Get(sessionID)
	sale, err := cart.Checkout(func(items []dto.TransactionItem) (*entity.Sale, error) {
		return uc.sales.AddTransaction(ctx, employee, items)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.receipts.Append(ctx, *sale); err != nil {
		uc.log.Error().Err(err).Str("sale_id", sale.SaleID).Msg("no se pudo anotar el recibo")
	}

	receipt := ReceiptDTO(*sale)
	return &dto.CheckoutResponse{
		Receipt:  &receipt,
		Cart:     cart.DTO(),
		Products: cart.StockDTO(),
		Notice:  dto.NewNotice(dto.NoticeSuccess, fmt.Sprintf("Sale %s completed. Total: %s", sale.SaleID, sale.TotalAmount.StringFixed(2))),
	}, nil
}

// LastReceipt último recibo del empleado; nil si no tiene ninguno.
func (uc *UseCase) LastReceipt(ctx context.Context, employee string) (*dto.ReceiptDTO, error) {
	sales, err := uc.receipts.ListByEmployee(ctx, employee, 1)
	if err != nil {
		return nil, fmt.Errorf("pos: último recibo: %w", err)
	}
	if len(sales) == 0 {
		return nil, nil
	}
	r := ReceiptDTO(sales[0])
	return &r, nil
}

// Receipt recibo por sale_id. Un cajero solo ve los suyos; Admin ve todos.
func (uc *UseCase) Receipt(ctx context.Context, saleID string, viewer entity.Session) (*entity.Sale, error) {
	sale, err := uc.receipts.GetBySaleID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("pos: recibo %s: %w", saleID, err)
	}
	if sale == nil || (viewer.Role != entity.RoleAdmin && sale.EmployeeLabel != viewer.Username) {
		return nil, domain.NewUserError(domain.ErrNotFound, "Receipt %s not found.", saleID)
	}
	return sale, nil
}

// ManualSale registra una venta solo por total, sin líneas ni stock.
func (uc *UseCase) ManualSale(ctx context.Context, in dto.ManualSaleRequest) (*dto.ManualSaleResponse, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	id, err := uc.sales.AddSale(ctx, in.EmployeeUsername, in.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("pos: venta manual: %w", err)
	}
	return &dto.ManualSaleResponse{
		SaleID: id,
		Notice: dto.NewNotice(dto.NoticeSuccess, "Sale recorded."),
	}, nil
}

// ReceiptDTO convierte una venta confirmada a su vista.
func ReceiptDTO(s entity.Sale) dto.ReceiptDTO {
	lines := make([]dto.ReceiptLineDTO, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.ReceiptLineDTO{
			ProductName:    l.ProductName,
			SoldQuantity:   l.SoldQuantity,
			PricePerUnit:   l.PricePerUnit,
			ItemTotal:      l.ItemTotal,
			RemainingStock: l.RemainingStock,
		})
	}
	ids := make([]string, len(s.TransactionIDs))
	copy(ids, s.TransactionIDs)
	return dto.ReceiptDTO{
		SaleID:         s.SaleID,
		TotalAmount:    s.TotalAmount,
		ItemCount:      s.ItemCount(),
		Lines:          lines,
		TransactionIDs: ids,
		Timestamp:      s.Timestamp,
		Employee:       s.EmployeeLabel,
	}
}
