package model

// CatalogProduct is descriptive metadata owned by the external catalog
// service; the ledger references it by SKU only.
type CatalogProduct struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
