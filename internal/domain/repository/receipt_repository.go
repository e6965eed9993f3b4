package repository

import (
	"context"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// ReceiptRepository diario de ventas confirmadas por el backend (solo append).
type ReceiptRepository interface {
	Append(ctx context.Context, sale entity.Sale) error
	GetBySaleID(ctx context.Context, saleID string) (*entity.Sale, error) // nil, nil si no existe
	ListByEmployee(ctx context.Context, employee string, limit int) ([]entity.Sale, error)
}
