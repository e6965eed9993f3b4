package backend

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// ── Formas fijadas de las respuestas ─────────────────────────────────────────
// decimal.Decimal acepta tanto "12.50" como 12.5 al deserializar.

const statusSuccess = "success"

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *envelope) check() error {
	if e.Status != statusSuccess {
		return fmt.Errorf("status %q", e.Status)
	}
	return nil
}

type loginResponse struct {
	envelope
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

func (r *loginResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Access == "" {
		return fmt.Errorf("falta access")
	}
	return nil
}

type userWire struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type usersResponse struct {
	envelope
	Users *[]userWire `json:"users"`
}

func (r *usersResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Users == nil {
		return fmt.Errorf("falta users")
	}
	return nil
}

type productWire struct {
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Location        string          `json:"location"`
}

func (p productWire) entity() entity.Product {
	return entity.Product{
		ProductName:     p.ProductName,
		Price:           p.Price,
		Category:        p.Category,
		QuantityInStock: p.QuantityInStock,
		Location:        p.Location,
	}
}

type productsResponse struct {
	envelope
	Products *[]productWire `json:"products"`
}

func (r *productsResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Products == nil {
		return fmt.Errorf("falta products")
	}
	return nil
}

type categoryWire struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
}

// categoriesResponse la lista de categorías viene como arreglo desnudo.
type categoriesResponse []categoryWire

func (r *categoriesResponse) check() error {
	if *r == nil {
		return fmt.Errorf("se esperaba un arreglo")
	}
	for i, c := range *r {
		if c.CategoryName == "" {
			return fmt.Errorf("categoría %d sin category_name", i)
		}
	}
	return nil
}

type saleWire struct {
	SaleID           string          `json:"sale_id"`
	EmployeeUsername string          `json:"employee_username"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	SaleDate         *string         `json:"sale_date"`
}

func (s saleWire) entity() (entity.SaleRecord, error) {
	rec := entity.SaleRecord{
		SaleID:           s.SaleID,
		EmployeeUsername: s.EmployeeUsername,
		TotalAmount:      s.TotalAmount,
	}
	if s.SaleDate != nil && *s.SaleDate != "" {
		t, err := parseTimestamp(*s.SaleDate)
		if err != nil {
			return rec, err
		}
		rec.SaleDate = t
	}
	return rec, nil
}

func salesToEntities(in []saleWire) ([]entity.SaleRecord, error) {
	out := make([]entity.SaleRecord, 0, len(in))
	for _, s := range in {
		rec, err := s.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

type salesResponse struct {
	envelope
	Sales *[]saleWire `json:"sales"`
}

func (r *salesResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Sales == nil {
		return fmt.Errorf("falta sales")
	}
	return nil
}

type periodResponse struct {
	envelope
	SalesCount  *int            `json:"sales_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Sales       []saleWire      `json:"sales"`
}

func (r *periodResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.SalesCount == nil {
		return fmt.Errorf("falta sales_count")
	}
	return nil
}

type bucketWire struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Week        int             `json:"week"`
	SalesCount  int             `json:"sales_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type bucketsResponse struct {
	envelope
	Data *[]bucketWire `json:"data"`
}

func (r *bucketsResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Data == nil {
		return fmt.Errorf("falta data")
	}
	return nil
}

type transactionWire struct {
	TransactionID string          `json:"transaction_id"`
	SaleID        string          `json:"sale_id"`
	Employee      string          `json:"employee"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	QuantitySold  int             `json:"quantity_sold"`
	PriceAtSale   decimal.Decimal `json:"price_at_sale"`
}

type transactionsResponse struct {
	envelope
	Transactions *[]transactionWire `json:"transactions"`
}

func (r *transactionsResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.Transactions == nil {
		return fmt.Errorf("falta transactions")
	}
	return nil
}

type saleLineWire struct {
	Product        string          `json:"product"`
	SoldQuantity   int             `json:"sold_quantity"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
	ItemTotal      decimal.Decimal `json:"item_total"`
	RemainingStock *int            `json:"remaining_stock"`
}

type transactionAddResponse struct {
	envelope
	SaleID         string          `json:"sale_id"`
	TransactionIDs []string        `json:"transaction_ids"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Items          []saleLineWire  `json:"items"`
}

func (r *transactionAddResponse) check() error {
	if err := r.envelope.check(); err != nil {
		return err
	}
	if r.SaleID == "" {
		return fmt.Errorf("falta sale_id")
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("falta items")
	}
	for i, it := range r.Items {
		if it.Product == "" || it.RemainingStock == nil {
			return fmt.Errorf("item %d incompleto", i)
		}
	}
	return nil
}

// assistantResponse {answer} o {error}; exactamente uno de los dos.
type assistantResponse struct {
	Answer *string `json:"answer"`
	Error  *string `json:"error"`
}

func (r *assistantResponse) check() error {
	if r.Answer == nil && r.Error == nil {
		return fmt.Errorf("falta answer o error")
	}
	return nil
}

// timestampLayouts formatos ISO-8601 que emite el backend (con y sin zona).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q con formato desconocido", s)
}
