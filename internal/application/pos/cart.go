package pos

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// Line línea del carrito. ProductName es la clave.
type Line struct {
	ProductName    string
	UnitPrice      decimal.Decimal
	Quantity       int
	AvailableAtAdd int
}

// Subtotal precio × cantidad.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart carrito de un cajero. Seguro para uso concurrente; el mismo lock
// serializa el checkout para que un doble envío no duplique la venta.
type Cart struct {
	mu    sync.Mutex
	lines []Line
	stock map[string]int // último stock conocido por producto
}

// NewCart carrito vacío.
func NewCart() *Cart {
	return &Cart{stock: make(map[string]int)}
}

func (c *Cart) find(name string) int {
	for i := range c.lines {
		if c.lines[i].ProductName == name {
			return i
		}
	}
	return -1
}

// Add suma una unidad de p respetando su stock.
func (c *Cart) Add(p entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stock := p.QuantityInStock
	c.stock[p.ProductName] = stock
	if stock <= 0 {
		return domain.NewUserError(domain.ErrOutOfStock, "%s is out of stock.", p.ProductName)
	}
	if i := c.find(p.ProductName); i >= 0 {
		if c.lines[i].Quantity >= stock {
			// El stock pudo bajar desde el último alta: la línea no lo supera.
			c.lines[i].Quantity = stock
			c.lines[i].AvailableAtAdd = stock
			return stockLimit(p.ProductName, stock)
		}
		c.lines[i].Quantity++
		c.lines[i].AvailableAtAdd = stock
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductName:    p.ProductName,
		UnitPrice:      p.Price,
		Quantity:       1,
		AvailableAtAdd: stock,
	})
	return nil
}

// Observe registra el stock vigente de un listado del catálogo.
func (c *Cart) Observe(products []entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range products {
		c.stock[p.ProductName] = p.QuantityInStock
	}
}

// SetQuantity fija la cantidad de una línea; q <= 0 la elimina. El tope es el
// menor entre el stock al agregar y el último stock conocido.
func (c *Cart) SetQuantity(name string, q int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(name)
	if i < 0 {
		return lineNotFound(name)
	}
	if q <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	limit := c.lines[i].AvailableAtAdd
	if known, ok := c.stock[name]; ok && known < limit {
		limit = known
	}
	if q > limit {
		return stockLimit(name, limit)
	}
	c.lines[i].Quantity = q
	return nil
}

// Remove quita la línea.
func (c *Cart) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(name)
	if i < 0 {
		return lineNotFound(name)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Lines copia de las líneas en orden de alta.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total Σ subtotales.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.lines)
}

// ItemCount Σ cantidades.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return itemCount(c.lines)
}

// Clear vacía el carrito. El stock conocido se conserva.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// StockDTO vista local del stock, ordenada por nombre.
func (c *Cart) StockDTO() []dto.ProductStockDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]dto.ProductStockDTO, 0, len(c.stock))
	for name, n := range c.stock {
		out = append(out, dto.ProductStockDTO{ProductName: name, QuantityInStock: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}

// SubmitFunc envía las líneas al backend.
type SubmitFunc func(items []dto.TransactionItem) (*entity.Sale, error)

// Checkout valida y envía el carrito con el lock tomado. Si submit falla el
// carrito queda intacto; si no, el stock conocido se sobrescribe con
// remaining_stock y el carrito se vacía.
func (c *Cart) Checkout(submit SubmitFunc) (*entity.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, domain.NewUserError(domain.ErrEmptyCart, "Cart is empty. Add products before checkout.")
	}
	items := make([]dto.TransactionItem, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Quantity < 1 {
			return nil, domain.NewUserError(domain.ErrInvalidAmount, "Invalid quantity for %s.", l.ProductName)
		}
		items = append(items, dto.TransactionItem{ProductName: l.ProductName, QuantitySold: l.Quantity})
	}

	sale, err := submit(items)
	if err != nil {
		return nil, err
	}
	for _, l := range sale.Lines {
		c.stock[l.ProductName] = l.RemainingStock
	}
	c.lines = nil
	return sale, nil
}

// DTO vista del carrito.
func (c *Cart) DTO() dto.CartDTO {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]dto.CartLineDTO, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, dto.CartLineDTO{
			ProductName:    l.ProductName,
			UnitPrice:      l.UnitPrice,
			Quantity:       l.Quantity,
			AvailableAtAdd: l.AvailableAtAdd,
			Subtotal:       l.Subtotal(),
		})
	}
	return dto.CartDTO{Lines: lines, ItemCount: itemCount(c.lines), Total: total(c.lines)}
}

func total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func itemCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func stockLimit(name string, stock int) error {
	return domain.NewUserError(domain.ErrStockLimit, "Cannot add more %s. Only %d in stock.", name, stock)
}

func lineNotFound(name string) error {
	return domain.NewUserError(domain.ErrLineNotFound, "%s is not in the cart.", name)
}

// ── Registro por sesión ──────────────────────────────────────────────────────

// Registry carritos por id de sesión, en memoria del proceso.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry registro vacío.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get carrito de la sesión; lo crea si no existe.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = NewCart()
		r.carts[sessionID] = c
	}
	return c
}

// Drop descarta el carrito (logout).
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// Len carritos activos.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
