package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// ListSales todas las ventas registradas.
func (c *Client) ListSales(ctx context.Context) ([]entity.SaleRecord, error) {
	var resp salesResponse
	if err := c.do(ctx, "list_sales", http.MethodGet, "/api/sale/list", nil, &resp); err != nil {
		return nil, err
	}
	return c.salesEntities("list_sales", *resp.Sales)
}

// AddSale registra una venta sin líneas (solo total). El checkout usa AddTransaction.
func (c *Client) AddSale(ctx context.Context, employee string, total decimal.Decimal) (string, error) {
	in := struct {
		EmployeeUsername string          `json:"employee_username"`
		TotalAmount      decimal.Decimal `json:"total_amount"`
	}{employee, total}
	var resp struct {
		envelope
		SaleID string `json:"sale_id"`
	}
	if err := c.do(ctx, "add_sale", http.MethodPost, "/api/sale/add", in, &resp); err != nil {
		return "", err
	}
	return resp.SaleID, nil
}

// SalesThis ventas de la semana, mes o año en curso.
func (c *Client) SalesThis(ctx context.Context, p entity.Period) (*entity.PeriodSales, error) {
	op := "sales_this_" + string(p)
	var resp periodResponse
	if err := c.do(ctx, op, http.MethodGet, "/api/sale/sell_this_"+string(p), nil, &resp); err != nil {
		return nil, err
	}
	sales, err := c.salesEntities(op, resp.Sales)
	if err != nil {
		return nil, err
	}
	return &entity.PeriodSales{SalesCount: *resp.SalesCount, TotalAmount: resp.TotalAmount, Sales: sales}, nil
}

// SalesPer agregado histórico por semana ISO, mes o año.
func (c *Client) SalesPer(ctx context.Context, p entity.Period) ([]entity.SalesBucket, error) {
	var resp bucketsResponse
	if err := c.do(ctx, "sales_per_"+string(p), http.MethodGet, "/api/sale/sell_per_"+string(p), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]entity.SalesBucket, 0, len(*resp.Data))
	for _, b := range *resp.Data {
		out = append(out, entity.SalesBucket{
			Year:        b.Year,
			Month:       b.Month,
			Week:        b.Week,
			SalesCount:  b.SalesCount,
			TotalAmount: b.TotalAmount,
		})
	}
	return out, nil
}

// AddTransaction confirma una venta multi-línea. El backend descuenta stock y devuelve
// el stock restante por línea.
func (c *Client) AddTransaction(ctx context.Context, employee string, items []dto.TransactionItem) (*entity.Sale, error) {
	in := struct {
		Employee string                `json:"employee"`
		Items    []dto.TransactionItem `json:"items"`
	}{employee, items}

	var resp transactionAddResponse
	if err := c.do(ctx, "add_transaction", http.MethodPost, "/api/transaction/add", in, &resp); err != nil {
		return nil, err
	}

	lines := make([]entity.SaleLine, 0, len(resp.Items))
	for _, it := range resp.Items {
		lines = append(lines, entity.SaleLine{
			ProductName:    it.Product,
			SoldQuantity:   it.SoldQuantity,
			PricePerUnit:   it.PricePerUnit,
			ItemTotal:      it.ItemTotal,
			RemainingStock: *it.RemainingStock,
		})
	}
	return &entity.Sale{
		SaleID:         resp.SaleID,
		TotalAmount:    resp.TotalAmount,
		Lines:          lines,
		TransactionIDs: resp.TransactionIDs,
		Timestamp:      time.Now(),
		EmployeeLabel:  employee,
	}, nil
}

// ListTransactions todas las líneas de venta. El backend responde 404 cuando no hay
// ninguna; se devuelve lista vacía.
func (c *Client) ListTransactions(ctx context.Context) ([]entity.TransactionRecord, error) {
	var resp transactionsResponse
	if err := c.do(ctx, "list_transactions", http.MethodGet, "/api/transaction/list", nil, &resp); err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return []entity.TransactionRecord{}, nil
		}
		return nil, err
	}
	out := make([]entity.TransactionRecord, 0, len(*resp.Transactions))
	for _, t := range *resp.Transactions {
		out = append(out, entity.TransactionRecord{
			TransactionID: t.TransactionID,
			SaleID:        t.SaleID,
			Employee:      t.Employee,
			ProductID:     t.ProductID,
			ProductName:   t.ProductName,
			QuantitySold:  t.QuantitySold,
			PriceAtSale:   t.PriceAtSale,
		})
	}
	return out, nil
}

func (c *Client) salesEntities(op string, in []saleWire) ([]entity.SaleRecord, error) {
	out, err := salesToEntities(in)
	if err != nil {
		return nil, &APIError{Operation: op, StatusCode: http.StatusOK, Err: schemaErr(err)}
	}
	return out, nil
}
