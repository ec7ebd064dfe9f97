package variant

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/retailmax/inventario/model"
)

type VariantRepository interface {
	Create(ctx context.Context, v *model.ProductVariant) (uint64, error)
	GetBySKU(ctx context.Context, sku string) (*model.ProductVariant, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductVariant, error)
	ListByBaseSKU(ctx context.Context, baseSKU string) ([]model.ProductVariant, error)
	ListBySizeColor(ctx context.Context, size, color string) ([]model.ProductVariant, error)
	UpdateStock(ctx context.Context, id uint64, stock int64) error
	Delete(ctx context.Context, id uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewVariantRepository(conn *sqlx.DB) VariantRepository {
	return &SQL{conn: conn}
}

const (
	variantColumns = `id, sku, base_sku, size, color, stock, description, location, created_at, updated_at`

	insertVariantQuery = `INSERT INTO product_variant (sku, base_sku, size, color, stock, description, location, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	getVariantBySKUQuery = `SELECT ` + variantColumns + ` FROM product_variant WHERE sku = ?`
	getVariantByIDQuery  = `SELECT ` + variantColumns + ` FROM product_variant WHERE id = ?`

	listByBaseSKUQuery   = `SELECT ` + variantColumns + ` FROM product_variant WHERE base_sku = ?`
	listBySizeColorQuery = `SELECT ` + variantColumns + ` FROM product_variant WHERE size = ? AND color = ?`

	updateVariantStockQuery = `UPDATE product_variant SET stock = ?, updated_at = NOW() WHERE id = ?`

	deleteVariantQuery = `DELETE FROM product_variant WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, v *model.ProductVariant) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertVariantQuery,
		v.SKU, v.BaseSKU, v.Size, v.Color, v.Stock, v.Description, v.Location)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetBySKU(ctx context.Context, sku string) (*model.ProductVariant, error) {
	return s.getOne(ctx, getVariantBySKUQuery, sku)
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductVariant, error) {
	return s.getOne(ctx, getVariantByIDQuery, id)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.ProductVariant, error) {
	var v model.ProductVariant
	if err := s.conn.GetContext(ctx, &v, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *SQL) ListByBaseSKU(ctx context.Context, baseSKU string) ([]model.ProductVariant, error) {
	return s.queryVariants(ctx, listByBaseSKUQuery, baseSKU)
}

func (s *SQL) ListBySizeColor(ctx context.Context, size, color string) ([]model.ProductVariant, error) {
	return s.queryVariants(ctx, listBySizeColorQuery, size, color)
}

func (s *SQL) UpdateStock(ctx context.Context, id uint64, stock int64) error {
	_, err := s.conn.ExecContext(ctx, updateVariantStockQuery, stock, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteVariantQuery, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) queryVariants(ctx context.Context, query string, args ...any) ([]model.ProductVariant, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := make([]model.ProductVariant, 0)
	for rows.Next() {
		var v model.ProductVariant
		if err := rows.StructScan(&v); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}
