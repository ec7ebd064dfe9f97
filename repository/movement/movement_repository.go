package movement

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/retailmax/inventario/model"
)

// MovementRepository appends to and reads from the stock_movement ledger.
// The table is append-only; no update or delete statements exist here.
type MovementRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, mv *model.StockMovement) (uint64, error)
	ListBySKU(ctx context.Context, req *model.MovementHistoryRequest) ([]model.StockMovement, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

const (
	insertMovementQuery = `INSERT INTO stock_movement
(stock_item_id, sku, movement_type, quantity_delta, resulting_available, external_reference, reason, occurred_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	listMovementsBase = `SELECT id, stock_item_id, sku, movement_type, quantity_delta, resulting_available, external_reference, reason, occurred_at
FROM stock_movement WHERE sku = ?`
)

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, mv *model.StockMovement) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertMovementQuery,
		mv.StockItemID, mv.SKU, mv.MovementType.String(), mv.QuantityDelta,
		mv.ResultingAvailable, mv.ExternalReference, mv.Reason)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) ListBySKU(ctx context.Context, req *model.MovementHistoryRequest) ([]model.StockMovement, error) {
	query := listMovementsBase
	args := []any{req.SKU}

	if req.From != nil {
		query += " AND occurred_at >= ?"
		args = append(args, *req.From)
	}
	if req.To != nil {
		query += " AND occurred_at <= ?"
		args = append(args, *req.To)
	}
	query += " ORDER BY occurred_at DESC, id DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0)
	for rows.Next() {
		var mv model.StockMovement
		if err := rows.StructScan(&mv); err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, rows.Err()
}
