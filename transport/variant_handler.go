package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	"github.com/retailmax/inventario/utils/errors"
	validatorx "github.com/retailmax/inventario/utils/validator"
)

// RegisterVariant handler
// @Summary Register a product variant
// @Tags Variants
// @Accept json
// @Produce json
// @Param request body model.RegisterVariantRequest true "Register Variant Request"
// @Success 200 {object} model.ProductVariant
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /api/variants [post]
func (s *RestHandler) RegisterVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VariantApp.RegisterVariant(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	res, err := s.VariantApp.GetBySKU(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListVariantsByBase(w http.ResponseWriter, r *http.Request) {
	res, err := s.VariantApp.ListByBaseSKU(r.Context(), mux.Vars(r)["baseSku"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SearchVariants filters variants by size and color query params.
func (s *RestHandler) SearchVariants(w http.ResponseWriter, r *http.Request) {
	size := r.URL.Query().Get("size")
	color := r.URL.Query().Get("color")
	if size == "" && color == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VariantApp.ListBySizeColor(r.Context(), size, color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) AdjustVariantStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AdjustVariantStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VariantApp.AdjustStock(ctx, id, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.VariantApp.DeleteVariant(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "deleted"})
}
