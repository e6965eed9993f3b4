package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo diario de recibos: receipts + receipt_lines.
type ReceiptRepo struct {
	q  Querier
	tx *TxRunner
}

// NewReceiptRepository construye el adaptador sobre el pool.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepo {
	return &ReceiptRepo{q: pool, tx: NewTxRunner(pool)}
}

// Append guarda la venta y sus líneas en una transacción. Un sale_id repetido reemplaza el anterior.
func (r *ReceiptRepo) Append(ctx context.Context, sale entity.Sale) error {
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM receipts WHERE sale_id = $1`, sale.SaleID); err != nil {
			return fmt.Errorf("append receipt: %w", err)
		}
		ids := sale.TransactionIDs
		if ids == nil {
			ids = []string{}
		}
		_, err := q.Exec(ctx, `
			INSERT INTO receipts (sale_id, employee, total_amount, transaction_ids, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			sale.SaleID, sale.EmployeeLabel, sale.TotalAmount, ids, sale.Timestamp,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("append receipt: sale_id %s duplicado: %w", sale.SaleID, err)
			}
			return fmt.Errorf("append receipt: %w", err)
		}
		for i, l := range sale.Lines {
			_, err := q.Exec(ctx, `
				INSERT INTO receipt_lines (sale_id, line_no, product_name, sold_quantity, price_per_unit, item_total, remaining_stock)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				sale.SaleID, i, l.ProductName, l.SoldQuantity, l.PricePerUnit, l.ItemTotal, l.RemainingStock,
			)
			if err != nil {
				return fmt.Errorf("append receipt line %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetBySaleID nil, nil si no existe.
func (r *ReceiptRepo) GetBySaleID(ctx context.Context, saleID string) (*entity.Sale, error) {
	query := `
		SELECT sale_id, employee, total_amount, transaction_ids, created_at
		FROM receipts WHERE sale_id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, saleID).Scan(&s.SaleID, &s.EmployeeLabel, &s.TotalAmount, &s.TransactionIDs, &s.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	lines, err := r.linesFor(ctx, []string{s.SaleID})
	if err != nil {
		return nil, err
	}
	s.Lines = lines[s.SaleID]
	return &s, nil
}

// ListByEmployee más recientes primero; limit <= 0 = todas.
func (r *ReceiptRepo) ListByEmployee(ctx context.Context, employee string, limit int) ([]entity.Sale, error) {
	if limit < 0 {
		limit = 0
	}
	query := `
		SELECT sale_id, employee, total_amount, transaction_ids, created_at
		FROM receipts WHERE employee = $1
		ORDER BY created_at DESC
		LIMIT NULLIF($2::int, 0)`
	rows, err := r.q.Query(ctx, query, employee, limit)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	sales := []entity.Sale{}
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.SaleID, &s.EmployeeLabel, &s.TotalAmount, &s.TransactionIDs, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("list receipts scan: %w", err)
		}
		sales = append(sales, s)
		ids = append(ids, s.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list receipts rows: %w", err)
	}
	if len(ids) == 0 {
		return sales, nil
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Lines = lines[sales[i].SaleID]
	}
	return sales, nil
}

func (r *ReceiptRepo) linesFor(ctx context.Context, saleIDs []string) (map[string][]entity.SaleLine, error) {
	query := `
		SELECT sale_id, product_name, sold_quantity, price_per_unit, item_total, remaining_stock
		FROM receipt_lines WHERE sale_id = ANY($1)
		ORDER BY sale_id, line_no`
	rows, err := r.q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("receipt lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleLine, len(saleIDs))
	for rows.Next() {
		var (
			saleID string
			l      entity.SaleLine
		)
		if err := rows.Scan(&saleID, &l.ProductName, &l.SoldQuantity, &l.PricePerUnit, &l.ItemTotal, &l.RemainingStock); err != nil {
			return nil, fmt.Errorf("receipt lines scan: %w", err)
		}
		out[saleID] = append(out[saleID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("receipt lines rows: %w", err)
	}
	return out, nil
}
