package transport

import (
	"encoding/json"
	"net/http"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	"github.com/retailmax/inventario/utils/errors"
	validatorx "github.com/retailmax/inventario/utils/validator"
)

// Reconcile handler
// @Summary Reconcile physical counts against system stock
// @Description Compares a physical count per SKU with ledger-backed stock and reports discrepancies
// @Tags Audit
// @Accept json
// @Produce json
// @Param request body model.PhysicalCountRequest true "Physical Count Request"
// @Success 200 {array} model.StockDiscrepancy
// @Failure 400 {object} errorResponse
// @Router /api/audit/reconcile [post]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PhysicalCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuditApp.Reconcile(ctx, req.Counts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
