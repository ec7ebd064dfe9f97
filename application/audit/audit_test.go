package audit_test

import (
	"context"
	"testing"

	appaudit "github.com/retailmax/inventario/application/audit"
	stockmocks "github.com/retailmax/inventario/mocks/repository/stock"
	"github.com/retailmax/inventario/model"
	"github.com/stretchr/testify/mock"
)

func TestAuditApp_Reconcile(t *testing.T) {
	t.Run("empty count produces no discrepancies", func(t *testing.T) {
		m := stockmocks.NewStockRepository(t)

		got, err := appaudit.NewAuditApp(m).Reconcile(context.Background(), map[string]int64{})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("len = %d, want 0", len(got))
		}
	})

	t.Run("matching quantity produces no discrepancy", func(t *testing.T) {
		m := stockmocks.NewStockRepository(t)
		m.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
			SKU: "SHIRT-001", QuantityOnHand: 40, QuantityReserved: 10,
		}, nil).Once()

		got, err := appaudit.NewAuditApp(m).Reconcile(context.Background(), map[string]int64{"SHIRT-001": 30})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("len = %d, want 0: %+v", len(got), got)
		}
	})

	t.Run("mismatch reports signed difference against available", func(t *testing.T) {
		m := stockmocks.NewStockRepository(t)
		m.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
			SKU: "SHIRT-001", QuantityOnHand: 40,
		}, nil).Once()

		got, err := appaudit.NewAuditApp(m).Reconcile(context.Background(), map[string]int64{"SHIRT-001": 30})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		d := got[0]
		if d.SystemQuantity != 40 || d.PhysicalQuantity != 30 || d.Difference != -10 {
			t.Fatalf("unexpected discrepancy: %+v", d)
		}
		if d.Reason != appaudit.ReasonQuantityMismatch {
			t.Fatalf("reason = %q, want %q", d.Reason, appaudit.ReasonQuantityMismatch)
		}
	})

	t.Run("unknown sku reported with zero system quantity", func(t *testing.T) {
		m := stockmocks.NewStockRepository(t)
		m.On("GetBySKU", mock.Anything, "GHOST-001").Return(nil, nil).Once()

		got, err := appaudit.NewAuditApp(m).Reconcile(context.Background(), map[string]int64{"GHOST-001": 7})
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		d := got[0]
		if d.SystemQuantity != 0 || d.Difference != 7 {
			t.Fatalf("unexpected discrepancy: %+v", d)
		}
		if d.Reason != appaudit.ReasonNotRegistered {
			t.Fatalf("reason = %q, want %q", d.Reason, appaudit.ReasonNotRegistered)
		}
	})
}
