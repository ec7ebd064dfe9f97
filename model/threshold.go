package model

import (
	"time"

	"github.com/retailmax/inventario/constant"
)

// AlertThreshold represents the alert_threshold table entity, one per SKU.
// Its lifecycle follows the stock item: deleting a product cascades here.
type AlertThreshold struct {
	ID                uint64             `db:"id" json:"id"`
	SKU               string             `db:"sku" json:"sku"`
	AlertType         constant.AlertType `db:"alert_type" json:"alert_type"`
	ThresholdQuantity int64              `db:"threshold_quantity" json:"threshold_quantity"`
	Active            bool               `db:"active" json:"active"`
	CreatedAt         time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updated_at"`
}

// CreateThresholdRequest creates a threshold; every field is required
type CreateThresholdRequest struct {
	SKU               string `json:"sku" validate:"required"`
	AlertType         string `json:"alert_type" validate:"required"`
	ThresholdQuantity *int64 `json:"threshold_quantity" validate:"required"`
	Active            *bool  `json:"active" validate:"required"`
}

// UpdateThresholdRequest applies partial updates; absent fields are no-ops, not resets
type UpdateThresholdRequest struct {
	AlertType         string `json:"alert_type,omitempty"`
	ThresholdQuantity *int64 `json:"threshold_quantity,omitempty"`
	Active            *bool  `json:"active,omitempty"`
}
