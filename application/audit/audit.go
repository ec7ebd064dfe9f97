package audit

import (
	"context"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	stockrepo "github.com/retailmax/inventario/repository/stock"
	"github.com/retailmax/inventario/utils/errors"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

// Discrepancy reasons reported by Reconcile.
const (
	ReasonQuantityMismatch = "quantity mismatch between system and physical count"
	ReasonNotRegistered    = "sku not registered in system"
)

// AuditApp reconciles externally counted physical stock against the
// system's records. Read-only: it never mutates stock or the ledger.
type AuditApp interface {
	Reconcile(ctx context.Context, physicalCounts map[string]int64) ([]model.StockDiscrepancy, error)
}

type auditAppImpl struct {
	stockRepo stockrepo.StockRepository
}

func NewAuditApp(stockRepo stockrepo.StockRepository) AuditApp {
	return &auditAppImpl{stockRepo: stockRepo}
}

// Reconcile emits one discrepancy per counted SKU whose observed quantity
// differs from the system's available quantity, and one per counted SKU the
// system does not know. Matching SKUs produce nothing. Output order follows
// map iteration and is not guaranteed.
func (s *auditAppImpl) Reconcile(ctx context.Context, physicalCounts map[string]int64) ([]model.StockDiscrepancy, error) {
	discrepancies := make([]model.StockDiscrepancy, 0)

	for sku, physical := range physicalCounts {
		item, err := s.stockRepo.GetBySKU(ctx, sku)
		if err != nil {
			logger.Error("[Reconcile] get stock", zap.String("sku", sku), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if item == nil {
			discrepancies = append(discrepancies, model.StockDiscrepancy{
				SKU:              sku,
				SystemQuantity:   0,
				PhysicalQuantity: physical,
				Difference:       physical,
				Reason:           ReasonNotRegistered,
			})
			continue
		}

		system := item.Available()
		if system == physical {
			continue
		}

		discrepancies = append(discrepancies, model.StockDiscrepancy{
			SKU:              sku,
			SystemQuantity:   system,
			PhysicalQuantity: physical,
			Difference:       physical - system,
			Reason:           ReasonQuantityMismatch,
		})
	}

	return discrepancies, nil
}
