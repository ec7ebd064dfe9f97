package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	"github.com/retailmax/inventario/utils/errors"
	validatorx "github.com/retailmax/inventario/utils/validator"
)

// RegisterProduct handler
// @Summary Register a product in the inventory
// @Description Creates a stock record for a new SKU and writes the initial ledger entry
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.RegisterProductRequest true "Register Product Request"
// @Success 200 {object} model.StockItemView
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /api/inventory/products [post]
func (s *RestHandler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.RegisterProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApplyMovement handler
// @Summary Apply a stock movement
// @Description Applies one quantity-changing movement (entry, exit, adjustment, reserve, release, return) to a SKU
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.StockMovementRequest true "Stock Movement Request"
// @Success 200 {object} model.StockItemView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/inventory/stock [put]
func (s *RestHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.StockMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ApplyMovement(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) AdjustManually(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ManualAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.AdjustManually(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ReceiveFromSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SupplierReceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ReceiveFromSupplier(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmOrder handles the internal decrement call for confirmed orders
func (s *RestHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ConfirmedOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.DecrementForConfirmedOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckAvailability handler
// @Summary Check stock availability
// @Tags Inventory
// @Produce json
// @Param sku path string true "SKU"
// @Param quantity query int true "Required quantity"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 404 {object} errorResponse
// @Router /api/inventory/availability/{sku} [get]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := mux.Vars(r)["sku"]

	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CheckAvailability(ctx, sku, quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.GetStock(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.ListStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) FindByLocation(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.FindByLocation(r.Context(), mux.Vars(r)["location"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetMovementHistory returns the ledger for a SKU, newest first. Optional
// from/to query params are RFC3339 timestamps.
func (s *RestHandler) GetMovementHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := mux.Vars(r)["sku"]

	from, ok := parseTimeParam(r, "from")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	to, ok := parseTimeParam(r, "to")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.GetMovementHistory(ctx, sku, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) QueryLowStock(w http.ResponseWriter, r *http.Request) {
	s.queryByThreshold(w, r, s.InventoryApp.QueryLowStock)
}

func (s *RestHandler) QueryExcessStock(w http.ResponseWriter, r *http.Request) {
	s.queryByThreshold(w, r, s.InventoryApp.QueryExcessStock)
}

func (s *RestHandler) queryByThreshold(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, threshold int64) ([]model.StockItemView, error)) {
	threshold, err := strconv.ParseInt(r.URL.Query().Get("threshold"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := query(r.Context(), threshold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := mux.Vars(r)["sku"]

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.UpdateProduct(ctx, sku, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.UpdateLocation(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.InventoryApp.DeleteProduct(r.Context(), mux.Vars(r)["sku"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "deleted"})
}

func parseTimeParam(r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
