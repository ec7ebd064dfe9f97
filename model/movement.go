package model

import (
	"time"

	"github.com/retailmax/inventario/constant"
)

// StockMovement represents one row of the append-only stock_movement ledger.
// Rows are never updated or deleted; they are the audit trail of record.
// ResultingAvailable snapshots the stock item's available quantity right
// after the movement was applied.
type StockMovement struct {
	ID                uint64                `db:"id" json:"id"`
	StockItemID       uint64                `db:"stock_item_id" json:"stock_item_id"`
	SKU               string                `db:"sku" json:"sku"`
	MovementType      constant.MovementType `db:"movement_type" json:"movement_type"`
	QuantityDelta     int64                 `db:"quantity_delta" json:"quantity_delta"`
	ResultingAvailable int64                `db:"resulting_available" json:"resulting_available"`
	ExternalReference string                `db:"external_reference" json:"external_reference,omitempty"`
	Reason            string                `db:"reason" json:"reason,omitempty"`
	OccurredAt        time.Time             `db:"occurred_at" json:"occurred_at"`
}

// MovementHistoryRequest filters the ledger query; nil bounds mean unbounded
type MovementHistoryRequest struct {
	SKU  string
	From *time.Time
	To   *time.Time
}
