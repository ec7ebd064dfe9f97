package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	"github.com/retailmax/inventario/utils/errors"
	validatorx "github.com/retailmax/inventario/utils/validator"
)

// CreateThreshold handler
// @Summary Create an alert threshold
// @Description Registers a threshold rule for a SKU so stock checks can flag it
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body model.CreateThresholdRequest true "Create Threshold Request"
// @Success 200 {object} model.AlertThreshold
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /api/alerts/thresholds [post]
func (s *RestHandler) CreateThreshold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AlertApp.CreateThreshold(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListThresholds(w http.ResponseWriter, r *http.Request) {
	res, err := s.AlertApp.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListActiveThresholdsByType(w http.ResponseWriter, r *http.Request) {
	res, err := s.AlertApp.ListActiveByType(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetThreshold(w http.ResponseWriter, r *http.Request) {
	res, err := s.AlertApp.GetThreshold(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := mux.Vars(r)["sku"]

	var req model.UpdateThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AlertApp.UpdateThreshold(ctx, sku, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteThreshold(w http.ResponseWriter, r *http.Request) {
	if err := s.AlertApp.DeleteThreshold(r.Context(), mux.Vars(r)["sku"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "deleted"})
}
