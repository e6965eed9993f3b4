package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptJournal)(nil)

// ReceiptJournal diario de ventas en memoria, en orden de llegada.
type ReceiptJournal struct {
	mu    sync.RWMutex
	sales []entity.Sale
	index map[string]int
}

// NewReceiptJournal crea un diario vacío.
func NewReceiptJournal() *ReceiptJournal {
	return &ReceiptJournal{index: make(map[string]int)}
}

// Append agrega la venta; un sale_id repetido reemplaza la entrada anterior.
func (j *ReceiptJournal) Append(_ context.Context, sale entity.Sale) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	sale = cloneSale(sale)
	if i, ok := j.index[sale.SaleID]; ok {
		j.sales[i] = sale
		return nil
	}
	j.index[sale.SaleID] = len(j.sales)
	j.sales = append(j.sales, sale)
	return nil
}

func (j *ReceiptJournal) GetBySaleID(_ context.Context, saleID string) (*entity.Sale, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	i, ok := j.index[saleID]
	if !ok {
		return nil, nil
	}
	sale := cloneSale(j.sales[i])
	return &sale, nil
}

// ListByEmployee últimas ventas del empleado, la más reciente primero. limit <= 0 = todas.
func (j *ReceiptJournal) ListByEmployee(_ context.Context, employee string, limit int) ([]entity.Sale, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]entity.Sale, 0)
	for i := len(j.sales) - 1; i >= 0; i-- {
		if j.sales[i].EmployeeLabel != employee {
			continue
		}
		out = append(out, cloneSale(j.sales[i]))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// cloneSale copia los slices para que el llamador no mute el diario.
func cloneSale(s entity.Sale) entity.Sale {
	s.Lines = append([]entity.SaleLine(nil), s.Lines...)
	s.TransactionIDs = append([]string(nil), s.TransactionIDs...)
	return s
}
