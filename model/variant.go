package model

import "time"

// ProductVariant represents the product_variant table entity. The SKU is
// generated from base SKU, size and color at registration time.
type ProductVariant struct {
	ID          uint64    `db:"id" json:"id"`
	SKU         string    `db:"sku" json:"sku"`
	BaseSKU     string    `db:"base_sku" json:"base_sku"`
	Size        string    `db:"size" json:"size"`
	Color       string    `db:"color" json:"color"`
	Stock       int64     `db:"stock" json:"stock"`
	Description string    `db:"description" json:"description,omitempty"`
	Location    string    `db:"location" json:"location,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterVariantRequest registers a size/color variation of a base product
type RegisterVariantRequest struct {
	BaseSKU     string `json:"base_sku" validate:"required"`
	Size        string `json:"size" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Stock       int64  `json:"stock" validate:"gte=0"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// AdjustVariantStockRequest applies a signed delta to a variant's stock
type AdjustVariantStockRequest struct {
	Quantity int64 `json:"quantity" validate:"required"`
}
