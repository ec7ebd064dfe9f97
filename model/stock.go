package model

import (
	"time"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/utils/errors"
)

// StockItem represents the inventory_stock table entity, one row per SKU.
// QuantityOnHand is the only independently mutated quantity for plain stock
// changes; reserved and in-transit are carved out of it, so the sellable
// quantity is always derived (see Available). This keeps the
// onHand = available + reserved + inTransit invariant structural instead of
// letting the fields drift apart.
type StockItem struct {
	ID                uint64    `db:"id" json:"id"`
	SKU               string    `db:"sku" json:"sku"`
	QuantityOnHand    int64     `db:"quantity_on_hand" json:"quantity_on_hand"`
	QuantityReserved  int64     `db:"quantity_reserved" json:"quantity_reserved"`
	QuantityInTransit int64     `db:"quantity_in_transit" json:"quantity_in_transit"`
	MinimumThreshold  int64     `db:"minimum_threshold" json:"minimum_threshold"`
	Location          string    `db:"location" json:"location"`
	Active            bool      `db:"active" json:"active"`
	BaseSKU           string    `db:"base_sku" json:"base_sku,omitempty"`
	Size              string    `db:"size" json:"size,omitempty"`
	Color             string    `db:"color" json:"color,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Available returns the quantity sellable right now.
func (s *StockItem) Available() int64 {
	return s.QuantityOnHand - s.QuantityReserved - s.QuantityInTransit
}

// CheckConsistency verifies the cross-field invariant after a mutation.
func (s *StockItem) CheckConsistency() error {
	if s.QuantityOnHand < 0 || s.QuantityReserved < 0 || s.QuantityInTransit < 0 {
		return errors.SetCustomError(constant.ErrStockInconsistent)
	}
	if s.QuantityReserved+s.QuantityInTransit > s.QuantityOnHand {
		return errors.SetCustomError(constant.ErrStockInconsistent)
	}
	return nil
}

// RegisterProductRequest registers a new SKU in the inventory
type RegisterProductRequest struct {
	SKU              string `json:"sku" validate:"required"`
	InitialQuantity  int64  `json:"initial_quantity" validate:"gte=0"`
	Location         string `json:"location" validate:"required"`
	MinimumThreshold int64  `json:"minimum_threshold" validate:"gte=0"`
	BaseSKU          string `json:"base_sku,omitempty"`
	Size             string `json:"size,omitempty"`
	Color            string `json:"color,omitempty"`
}

// StockMovementRequest applies one quantity-changing movement to a SKU.
// Quantity is always positive; the movement type supplies the direction.
type StockMovementRequest struct {
	SKU               string `json:"sku" validate:"required"`
	MovementType      string `json:"movement_type" validate:"required"`
	Quantity          int64  `json:"quantity" validate:"required,gt=0"`
	ExternalReference string `json:"external_reference,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

// ManualAdjustmentRequest takes a signed delta directly
type ManualAdjustmentRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

// ConfirmedOrderRequest decrements stock for an already confirmed order
type ConfirmedOrderRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	OrderID  string `json:"order_id" validate:"required"`
}

// SupplierReceptionRequest records stock received from a supplier
type SupplierReceptionRequest struct {
	SKU       string `json:"sku" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reference string `json:"reference,omitempty"`
}

// UpdateProductRequest carries metadata-only changes; nil fields are no-ops
type UpdateProductRequest struct {
	Location         *string `json:"location,omitempty"`
	MinimumThreshold *int64  `json:"minimum_threshold,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

// UpdateLocationRequest moves a SKU to a different warehouse label
type UpdateLocationRequest struct {
	SKU         string `json:"sku" validate:"required"`
	NewLocation string `json:"new_location" validate:"required"`
}

// StockItemView is the response shape for stock queries and mutations
type StockItemView struct {
	ID                uint64    `json:"id"`
	SKU               string    `json:"sku"`
	QuantityAvailable int64     `json:"quantity_available"`
	QuantityReserved  int64     `json:"quantity_reserved"`
	QuantityInTransit int64     `json:"quantity_in_transit"`
	QuantityOnHand    int64     `json:"quantity_on_hand"`
	MinimumThreshold  int64     `json:"minimum_threshold"`
	Location          string    `json:"location"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewStockItemView maps a StockItem entity to its response view
func NewStockItemView(item *StockItem) *StockItemView {
	return &StockItemView{
		ID:                item.ID,
		SKU:               item.SKU,
		QuantityAvailable: item.Available(),
		QuantityReserved:  item.QuantityReserved,
		QuantityInTransit: item.QuantityInTransit,
		QuantityOnHand:    item.QuantityOnHand,
		MinimumThreshold:  item.MinimumThreshold,
		Location:          item.Location,
		Active:            item.Active,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

// AvailabilityResponse answers a CheckAvailability call
type AvailabilityResponse struct {
	SKU       string `json:"sku"`
	Requested int64  `json:"requested"`
	Available bool   `json:"available"`
}
