package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/retailmax/inventario/model"
)

type StockRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.StockItem) (uint64, error)
	GetBySKU(ctx context.Context, sku string) (*model.StockItem, error)
	GetBySKUForUpdateTx(ctx context.Context, tx *sqlx.Tx, sku string) (*model.StockItem, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, item *model.StockItem) error
	UpdateMetadata(ctx context.Context, item *model.StockItem) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, sku string) error
	ListAll(ctx context.Context) ([]model.StockItem, error)
	ListByLocation(ctx context.Context, location string) ([]model.StockItem, error)
	ListAvailableBelow(ctx context.Context, threshold int64) ([]model.StockItem, error)
	ListAvailableAbove(ctx context.Context, threshold int64) ([]model.StockItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	stockColumns = `id, sku, quantity_on_hand, quantity_reserved, quantity_in_transit, minimum_threshold, location, active, base_sku, size, color, created_at, updated_at`

	// available quantity is derived, never stored
	availableExpr = `(quantity_on_hand - quantity_reserved - quantity_in_transit)`

	insertStockQuery = `INSERT INTO inventory_stock
(sku, quantity_on_hand, quantity_reserved, quantity_in_transit, minimum_threshold, location, active, base_sku, size, color, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	getStockBySKUQuery = `SELECT ` + stockColumns + ` FROM inventory_stock WHERE sku = ?`

	// row lock held until the surrounding transaction commits
	getStockBySKUForUpdateQuery = getStockBySKUQuery + ` FOR UPDATE`

	existsBySKUQuery = `SELECT COUNT(1) FROM inventory_stock WHERE sku = ?`

	updateQuantitiesQuery = `UPDATE inventory_stock
SET quantity_on_hand = ?, quantity_reserved = ?, quantity_in_transit = ?, updated_at = NOW()
WHERE sku = ?`

	updateMetadataQuery = `UPDATE inventory_stock
SET minimum_threshold = ?, location = ?, active = ?, updated_at = NOW()
WHERE sku = ?`

	deleteStockQuery = `DELETE FROM inventory_stock WHERE sku = ?`

	listAllStockQuery = `SELECT ` + stockColumns + ` FROM inventory_stock`

	listByLocationQuery = `SELECT ` + stockColumns + ` FROM inventory_stock WHERE LOWER(location) = LOWER(?)`

	listAvailableBelowQuery = `SELECT ` + stockColumns + ` FROM inventory_stock WHERE ` + availableExpr + ` < ?`

	listAvailableAboveQuery = `SELECT ` + stockColumns + ` FROM inventory_stock WHERE ` + availableExpr + ` > ?`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.StockItem) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertStockQuery,
		item.SKU, item.QuantityOnHand, item.QuantityReserved, item.QuantityInTransit,
		item.MinimumThreshold, item.Location, item.Active, item.BaseSKU, item.Size, item.Color)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetBySKU(ctx context.Context, sku string) (*model.StockItem, error) {
	var item model.StockItem
	if err := s.conn.GetContext(ctx, &item, getStockBySKUQuery, sku); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) GetBySKUForUpdateTx(ctx context.Context, tx *sqlx.Tx, sku string) (*model.StockItem, error) {
	var item model.StockItem
	if err := tx.GetContext(ctx, &item, getStockBySKUForUpdateQuery, sku); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, existsBySKUQuery, sku); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, item *model.StockItem) error {
	_, err := tx.ExecContext(ctx, updateQuantitiesQuery,
		item.QuantityOnHand, item.QuantityReserved, item.QuantityInTransit, item.SKU)
	return err
}

func (s *SQL) UpdateMetadata(ctx context.Context, item *model.StockItem) error {
	_, err := s.conn.ExecContext(ctx, updateMetadataQuery,
		item.MinimumThreshold, item.Location, item.Active, item.SKU)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, sku string) error {
	_, err := tx.ExecContext(ctx, deleteStockQuery, sku)
	return err
}

func (s *SQL) ListAll(ctx context.Context) ([]model.StockItem, error) {
	return s.queryItems(ctx, listAllStockQuery)
}

func (s *SQL) ListByLocation(ctx context.Context, location string) ([]model.StockItem, error) {
	return s.queryItems(ctx, listByLocationQuery, location)
}

func (s *SQL) ListAvailableBelow(ctx context.Context, threshold int64) ([]model.StockItem, error) {
	return s.queryItems(ctx, listAvailableBelowQuery, threshold)
}

func (s *SQL) ListAvailableAbove(ctx context.Context, threshold int64) ([]model.StockItem, error) {
	return s.queryItems(ctx, listAvailableAboveQuery, threshold)
}

func (s *SQL) queryItems(ctx context.Context, query string, args ...any) ([]model.StockItem, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StockItem, 0)
	for rows.Next() {
		var it model.StockItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
