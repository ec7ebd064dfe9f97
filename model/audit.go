package model

// PhysicalCountRequest maps each counted SKU to its observed quantity
type PhysicalCountRequest struct {
	Counts map[string]int64 `json:"counts" validate:"required"`
}

// StockDiscrepancy reports one mismatch between system and physical stock.
// Query-result only; never persisted.
type StockDiscrepancy struct {
	SKU              string `json:"sku"`
	SystemQuantity   int64  `json:"system_quantity"`
	PhysicalQuantity int64  `json:"physical_quantity"`
	Difference       int64  `json:"difference"`
	Reason           string `json:"reason"`
}
