package threshold

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
)

type ThresholdRepository interface {
	Create(ctx context.Context, th *model.AlertThreshold) (uint64, error)
	GetBySKU(ctx context.Context, sku string) (*model.AlertThreshold, error)
	Update(ctx context.Context, th *model.AlertThreshold) error
	Delete(ctx context.Context, sku string) (int64, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, sku string) error
	ListAll(ctx context.Context) ([]model.AlertThreshold, error)
	ListActiveByType(ctx context.Context, alertType constant.AlertType) ([]model.AlertThreshold, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewThresholdRepository(conn *sqlx.DB) ThresholdRepository {
	return &SQL{conn: conn}
}

const (
	thresholdColumns = `id, sku, alert_type, threshold_quantity, active, created_at, updated_at`

	insertThresholdQuery = `INSERT INTO alert_threshold (sku, alert_type, threshold_quantity, active, created_at, updated_at)
VALUES (?, ?, ?, ?, NOW(), NOW())`

	getThresholdBySKUQuery = `SELECT ` + thresholdColumns + ` FROM alert_threshold WHERE sku = ?`

	updateThresholdQuery = `UPDATE alert_threshold SET alert_type = ?, threshold_quantity = ?, active = ?, updated_at = NOW() WHERE sku = ?`

	deleteThresholdQuery = `DELETE FROM alert_threshold WHERE sku = ?`

	listAllThresholdsQuery = `SELECT ` + thresholdColumns + ` FROM alert_threshold`

	// filter pushed to the database to avoid a full-table scan in process
	listActiveByTypeQuery = `SELECT ` + thresholdColumns + ` FROM alert_threshold WHERE active = TRUE AND alert_type = ?`
)

func (s *SQL) Create(ctx context.Context, th *model.AlertThreshold) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertThresholdQuery,
		th.SKU, th.AlertType.String(), th.ThresholdQuantity, th.Active)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetBySKU(ctx context.Context, sku string) (*model.AlertThreshold, error) {
	var th model.AlertThreshold
	if err := s.conn.GetContext(ctx, &th, getThresholdBySKUQuery, sku); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &th, nil
}

func (s *SQL) Update(ctx context.Context, th *model.AlertThreshold) error {
	_, err := s.conn.ExecContext(ctx, updateThresholdQuery,
		th.AlertType.String(), th.ThresholdQuantity, th.Active, th.SKU)
	return err
}

func (s *SQL) Delete(ctx context.Context, sku string) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteThresholdQuery, sku)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, sku string) error {
	_, err := tx.ExecContext(ctx, deleteThresholdQuery, sku)
	return err
}

func (s *SQL) ListAll(ctx context.Context) ([]model.AlertThreshold, error) {
	return s.queryThresholds(ctx, listAllThresholdsQuery)
}

func (s *SQL) ListActiveByType(ctx context.Context, alertType constant.AlertType) ([]model.AlertThreshold, error) {
	return s.queryThresholds(ctx, listActiveByTypeQuery, alertType.String())
}

func (s *SQL) queryThresholds(ctx context.Context, query string, args ...any) ([]model.AlertThreshold, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	thresholds := make([]model.AlertThreshold, 0)
	for rows.Next() {
		var th model.AlertThreshold
		if err := rows.StructScan(&th); err != nil {
			return nil, err
		}
		thresholds = append(thresholds, th)
	}
	return thresholds, rows.Err()
}
