package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	alertapp "github.com/retailmax/inventario/application/alert"
	auditapp "github.com/retailmax/inventario/application/audit"
	catalogapp "github.com/retailmax/inventario/application/catalog"
	inventoryapp "github.com/retailmax/inventario/application/inventory"
	variantapp "github.com/retailmax/inventario/application/variant"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	InventoryApp inventoryapp.InventoryApp
	AlertApp     alertapp.AlertApp
	AuditApp     auditapp.AuditApp
	VariantApp   variantapp.VariantApp
	CatalogApp   catalogapp.CatalogApp
}

func NewTransport(inventoryApp inventoryapp.InventoryApp, alertApp alertapp.AlertApp, auditApp auditapp.AuditApp, variantApp variantapp.VariantApp, catalogApp catalogapp.CatalogApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		InventoryApp: inventoryApp,
		AlertApp:     alertApp,
		AuditApp:     auditApp,
		VariantApp:   variantApp,
		CatalogApp:   catalogApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Inventory routes
	router.HandleFunc("/api/inventory/products", rh.RegisterProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/inventory/products/{sku}", rh.UpdateProduct).Methods(http.MethodPatch)
	router.HandleFunc("/api/inventory/products/{sku}", rh.DeleteProduct).Methods(http.MethodDelete)
	router.HandleFunc("/api/inventory/stock", rh.ListStock).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/stock", rh.ApplyMovement).Methods(http.MethodPut)
	router.HandleFunc("/api/inventory/stock/{sku}", rh.GetStock).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/stock/{sku}/movements", rh.GetMovementHistory).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/adjustments", rh.AdjustManually).Methods(http.MethodPost)
	router.HandleFunc("/api/inventory/receptions", rh.ReceiveFromSupplier).Methods(http.MethodPost)
	router.HandleFunc("/api/inventory/availability/{sku}", rh.CheckAvailability).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/location", rh.UpdateLocation).Methods(http.MethodPut)
	router.HandleFunc("/api/inventory/location/{location}", rh.FindByLocation).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/reports/low-stock", rh.QueryLowStock).Methods(http.MethodGet)
	router.HandleFunc("/api/inventory/reports/excess-stock", rh.QueryExcessStock).Methods(http.MethodGet)

	// Alert threshold routes
	router.HandleFunc("/api/alerts/thresholds", rh.CreateThreshold).Methods(http.MethodPost)
	router.HandleFunc("/api/alerts/thresholds", rh.ListThresholds).Methods(http.MethodGet)
	router.HandleFunc("/api/alerts/thresholds/active", rh.ListActiveThresholdsByType).Methods(http.MethodGet)
	router.HandleFunc("/api/alerts/thresholds/{sku}", rh.GetThreshold).Methods(http.MethodGet)
	router.HandleFunc("/api/alerts/thresholds/{sku}", rh.UpdateThreshold).Methods(http.MethodPut)
	router.HandleFunc("/api/alerts/thresholds/{sku}", rh.DeleteThreshold).Methods(http.MethodDelete)

	// Audit routes
	router.HandleFunc("/api/audit/reconcile", rh.Reconcile).Methods(http.MethodPost)

	// Variant routes
	router.HandleFunc("/api/variants", rh.RegisterVariant).Methods(http.MethodPost)
	router.HandleFunc("/api/variants/search", rh.SearchVariants).Methods(http.MethodGet)
	router.HandleFunc("/api/variants/base/{baseSku}", rh.ListVariantsByBase).Methods(http.MethodGet)
	router.HandleFunc("/api/variants/{sku}", rh.GetVariant).Methods(http.MethodGet)
	router.HandleFunc("/api/variants/{id:[0-9]+}/adjust", rh.AdjustVariantStock).Methods(http.MethodPost)
	router.HandleFunc("/api/variants/{id:[0-9]+}", rh.DeleteVariant).Methods(http.MethodDelete)

	// Catalog routes
	router.HandleFunc("/api/catalog/products/{sku}", rh.GetCatalogProduct).Methods(http.MethodGet)

	// Internal service-to-service routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/confirm", rh.ConfirmOrder).Methods(http.MethodPost)

	// middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())

	return router
}
