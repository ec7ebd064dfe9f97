package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/retailmax/inventario/application/inventory"
	"github.com/retailmax/inventario/constant"
	movementmocks "github.com/retailmax/inventario/mocks/repository/movement"
	stockmocks "github.com/retailmax/inventario/mocks/repository/stock"
	thresholdmocks "github.com/retailmax/inventario/mocks/repository/threshold"
	txmocks "github.com/retailmax/inventario/mocks/repository/tx"
	"github.com/retailmax/inventario/model"
	cerr "github.com/retailmax/inventario/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: inventory.go checks if publisher is nil before publishing low stock
// alerts, so tests run with a nil publisher.

type fields struct {
	txRepo        *txmocks.TxRepository
	stockRepo     *stockmocks.StockRepository
	movementRepo  *movementmocks.MovementRepository
	thresholdRepo *thresholdmocks.ThresholdRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		stockRepo:     stockmocks.NewStockRepository(t),
		movementRepo:  movementmocks.NewMovementRepository(t),
		thresholdRepo: thresholdmocks.NewThresholdRepository(t),
	}
}

func newApp(f fields) appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.txRepo, f.stockRepo, f.movementRepo, f.thresholdRepo, nil)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestInventoryApp_RegisterProduct(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.RegisterProductRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantQty  int64
	}{
		{
			name: "success: register product writes initial ledger entry",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterProductRequest{
					SKU:              "SHIRT-001",
					InitialQuantity:  50,
					Location:         "MAIN",
					MinimumThreshold: 5,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.stockRepo.On("ExistsBySKU", mock.Anything, "SHIRT-001").Return(false, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(item *model.StockItem) bool {
					return item.SKU == "SHIRT-001" && item.QuantityOnHand == 50 && item.Active
				})).Return(uint64(1), nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.SKU == "SHIRT-001" &&
						mv.MovementType == constant.MovementEntry &&
						mv.QuantityDelta == 50 &&
						mv.ResultingAvailable == 50
				})).Return(uint64(1), nil).Once()
			},
			wantErr: false,
			wantQty: 50,
		},
		{
			name: "error: sku already registered",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterProductRequest{SKU: "SHIRT-001", Location: "MAIN"},
			},
			mockCall: func(f fields) {
				f.stockRepo.On("ExistsBySKU", mock.Anything, "SHIRT-001").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyExists,
		},
		{
			name: "error: exists check fails",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterProductRequest{SKU: "SHIRT-001", Location: "MAIN"},
			},
			mockCall: func(f fields) {
				f.stockRepo.On("ExistsBySKU", mock.Anything, "SHIRT-001").Return(false, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: ledger insert fails rolls back",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterProductRequest{SKU: "SHIRT-001", InitialQuantity: 10, Location: "MAIN"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.stockRepo.On("ExistsBySKU", mock.Anything, "SHIRT-001").Return(false, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(1), nil).Once()
				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("insert error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.RegisterProduct(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.QuantityAvailable != tt.wantQty {
				t.Fatalf("RegisterProduct() available = %d, want %d", got.QuantityAvailable, tt.wantQty)
			}
		})
	}
}

func TestInventoryApp_ApplyMovement(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.StockMovementRequest
	}
	tests := []struct {
		name          string
		args          args
		mockCall      func(f fields)
		wantErr       bool
		errCode       constant.ErrorType
		wantOnHand    int64
		wantReserved  int64
		wantAvailable int64
	}{
		{
			name: "success: entry increases on hand",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "ENTRY", Quantity: 20},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 10,
				}, nil).Once()
				f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(item *model.StockItem) bool {
					return item.QuantityOnHand == 50 && item.QuantityReserved == 10
				})).Return(nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.MovementType == constant.MovementEntry &&
						mv.QuantityDelta == 20 &&
						mv.ResultingAvailable == 40
				})).Return(uint64(2), nil).Once()
			},
			wantOnHand:    50,
			wantReserved:  10,
			wantAvailable: 40,
		},
		{
			name: "success: exit decreases on hand",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "EXIT", Quantity: 15},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
				}, nil).Once()
				f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.QuantityDelta == -15 && mv.ResultingAvailable == 15
				})).Return(uint64(2), nil).Once()
			},
			wantOnHand:    15,
			wantAvailable: 15,
		},
		{
			name: "success: reserve moves available into reserved",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "RESERVE", Quantity: 5},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
				}, nil).Once()
				f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(item *model.StockItem) bool {
					return item.QuantityOnHand == 30 && item.QuantityReserved == 5
				})).Return(nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.QuantityDelta == -5 && mv.ResultingAvailable == 25
				})).Return(uint64(2), nil).Once()
			},
			wantOnHand:    30,
			wantReserved:  5,
			wantAvailable: 25,
		},
		{
			name: "success: release returns reserved to available",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "RELEASE", Quantity: 5},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 5,
				}, nil).Once()
				f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(item *model.StockItem) bool {
					return item.QuantityOnHand == 30 && item.QuantityReserved == 0
				})).Return(nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.QuantityDelta == 5 && mv.ResultingAvailable == 30
				})).Return(uint64(2), nil).Once()
			},
			wantOnHand:    30,
			wantReserved:  0,
			wantAvailable: 30,
		},
		{
			name: "error: exit exceeding available leaves record untouched",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "EXIT", Quantity: 100},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: reserve exceeding available",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "RESERVE", Quantity: 40},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: release exceeding reserved",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "RELEASE", Quantity: 10},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: unknown movement type",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "TELEPORT", Quantity: 1},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrUnsupportedMovement,
		},
		{
			name: "error: non positive quantity",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "SHIRT-001", MovementType: "ENTRY", Quantity: 0},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown sku",
			args: args{
				ctx: context.Background(),
				req: &model.StockMovementRequest{SKU: "GHOST-001", MovementType: "ENTRY", Quantity: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "GHOST-001").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.ApplyMovement(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyMovement() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.QuantityOnHand != tt.wantOnHand {
				t.Fatalf("on hand = %d, want %d", got.QuantityOnHand, tt.wantOnHand)
			}
			if got.QuantityReserved != tt.wantReserved {
				t.Fatalf("reserved = %d, want %d", got.QuantityReserved, tt.wantReserved)
			}
			if got.QuantityAvailable != tt.wantAvailable {
				t.Fatalf("available = %d, want %d", got.QuantityAvailable, tt.wantAvailable)
			}
		})
	}
}

func TestInventoryApp_AdjustManually(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ManualAdjustmentRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantQty  int64
	}{
		{
			name: "success: negative adjustment",
			req:  &model.ManualAdjustmentRequest{SKU: "SHIRT-001", Quantity: -8, Reason: "damaged goods"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
				}, nil).Once()
				f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.MovementType == constant.MovementAdjustment &&
						mv.QuantityDelta == -8 &&
						mv.Reason == "damaged goods"
				})).Return(uint64(2), nil).Once()
			},
			wantQty: 22,
		},
		{
			name:    "error: zero adjustment",
			req:     &model.ManualAdjustmentRequest{SKU: "SHIRT-001", Quantity: 0, Reason: "noop"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: adjustment below zero available",
			req:  &model.ManualAdjustmentRequest{SKU: "SHIRT-001", Quantity: -50, Reason: "typo"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdjustment,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.AdjustManually(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdjustManually() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.QuantityAvailable != tt.wantQty {
				t.Fatalf("available = %d, want %d", got.QuantityAvailable, tt.wantQty)
			}
		})
	}
}

func TestInventoryApp_ReceiveFromSupplier(t *testing.T) {
	t.Run("success: reception on known sku is an entry", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
			ID: 1, SKU: "SHIRT-001", QuantityOnHand: 10,
		}, nil).Once()
		f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

		f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
			return mv.MovementType == constant.MovementEntry &&
				mv.QuantityDelta == 25 &&
				mv.ExternalReference == "PO-77"
		})).Return(uint64(2), nil).Once()

		got, err := newApp(f).ReceiveFromSupplier(context.Background(), &model.SupplierReceptionRequest{
			SKU: "SHIRT-001", Quantity: 25, Reference: "PO-77",
		})
		if err != nil {
			t.Fatalf("ReceiveFromSupplier() error = %v", err)
		}
		if got.QuantityAvailable != 35 {
			t.Fatalf("available = %d, want 35", got.QuantityAvailable)
		}
	})

	t.Run("success: unknown sku is registered at the default location", func(t *testing.T) {
		f := newFields(t)
		moveTx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(moveTx, nil).Twice()
		f.txRepo.On("RollbackTx", moveTx).Return(nil).Once()
		f.txRepo.On("CommitTx", moveTx).Return(nil).Once()

		f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, moveTx, "NEW-001").Return(nil, nil).Once()
		f.stockRepo.On("ExistsBySKU", mock.Anything, "NEW-001").Return(false, nil).Once()
		f.stockRepo.On("CreateTx", mock.Anything, moveTx, mock.MatchedBy(func(item *model.StockItem) bool {
			return item.SKU == "NEW-001" && item.QuantityOnHand == 25 && item.Location == constant.DefaultLocation
		})).Return(uint64(9), nil).Once()

		f.movementRepo.On("InsertTx", mock.Anything, moveTx, mock.MatchedBy(func(mv *model.StockMovement) bool {
			return mv.MovementType == constant.MovementEntry && mv.QuantityDelta == 25
		})).Return(uint64(3), nil).Once()

		got, err := newApp(f).ReceiveFromSupplier(context.Background(), &model.SupplierReceptionRequest{
			SKU: "NEW-001", Quantity: 25, Reference: "PO-78",
		})
		if err != nil {
			t.Fatalf("ReceiveFromSupplier() error = %v", err)
		}
		if got.Location != constant.DefaultLocation {
			t.Fatalf("location = %s, want %s", got.Location, constant.DefaultLocation)
		}
	})
}

func TestInventoryApp_DecrementForConfirmedOrder(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
		ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30,
	}, nil).Once()
	f.stockRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

	f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
		return mv.MovementType == constant.MovementExit &&
			mv.QuantityDelta == -3 &&
			mv.ExternalReference == "ORD-42"
	})).Return(uint64(2), nil).Once()

	got, err := newApp(f).DecrementForConfirmedOrder(context.Background(), &model.ConfirmedOrderRequest{
		SKU: "SHIRT-001", Quantity: 3, OrderID: "ORD-42",
	})
	if err != nil {
		t.Fatalf("DecrementForConfirmedOrder() error = %v", err)
	}
	if got.QuantityOnHand != 27 {
		t.Fatalf("on hand = %d, want 27", got.QuantityOnHand)
	}
}

func TestInventoryApp_CheckAvailability(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		required int64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		want     bool
	}{
		{
			name:     "success: enough stock",
			sku:      "SHIRT-001",
			required: 10,
			mockCall: func(f fields) {
				f.stockRepo.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
					SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 10,
				}, nil).Once()
			},
			want: true,
		},
		{
			name:     "success: reserved stock does not count",
			sku:      "SHIRT-001",
			required: 25,
			mockCall: func(f fields) {
				f.stockRepo.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
					SKU: "SHIRT-001", QuantityOnHand: 30, QuantityReserved: 10,
				}, nil).Once()
			},
			want: false,
		},
		{
			name:     "error: unknown sku",
			sku:      "GHOST-001",
			required: 1,
			mockCall: func(f fields) {
				f.stockRepo.On("GetBySKU", mock.Anything, "GHOST-001").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: non positive required quantity",
			sku:      "SHIRT-001",
			required: 0,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			got, err := app.CheckAvailability(context.Background(), tt.sku, tt.required)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckAvailability() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Available != tt.want {
				t.Fatalf("available = %v, want %v", got.Available, tt.want)
			}
		})
	}
}

func TestInventoryApp_GetMovementHistory(t *testing.T) {
	t.Run("error: unknown sku", func(t *testing.T) {
		f := newFields(t)
		f.stockRepo.On("ExistsBySKU", mock.Anything, "GHOST-001").Return(false, nil).Once()

		_, err := newApp(f).GetMovementHistory(context.Background(), "GHOST-001", nil, nil)
		if err == nil {
			t.Fatal("GetMovementHistory() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("success: forwards range filter", func(t *testing.T) {
		f := newFields(t)
		f.stockRepo.On("ExistsBySKU", mock.Anything, "SHIRT-001").Return(true, nil).Once()
		f.movementRepo.On("ListBySKU", mock.Anything, mock.MatchedBy(func(req *model.MovementHistoryRequest) bool {
			return req.SKU == "SHIRT-001" && req.From == nil && req.To == nil
		})).Return([]model.StockMovement{{ID: 1, SKU: "SHIRT-001"}}, nil).Once()

		got, err := newApp(f).GetMovementHistory(context.Background(), "SHIRT-001", nil, nil)
		if err != nil {
			t.Fatalf("GetMovementHistory() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
	})
}

func TestInventoryApp_DeleteProduct(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delete removes stock and threshold",
			sku:  "SHIRT-001",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 5,
				}, nil).Once()
				f.stockRepo.On("DeleteTx", mock.Anything, tx, "SHIRT-001").Return(nil).Once()
				f.thresholdRepo.On("DeleteTx", mock.Anything, tx, "SHIRT-001").Return(nil).Once()
			},
		},
		{
			name: "error: outstanding reservations block deletion",
			sku:  "SHIRT-001",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "SHIRT-001").Return(&model.StockItem{
					ID: 1, SKU: "SHIRT-001", QuantityOnHand: 5, QuantityReserved: 2,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrHasReservedStock,
		},
		{
			name: "error: unknown sku",
			sku:  "GHOST-001",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetBySKUForUpdateTx", mock.Anything, tx, "GHOST-001").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newApp(f)

			err := app.DeleteProduct(context.Background(), tt.sku)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestInventoryApp_UpdateProduct(t *testing.T) {
	t.Run("success: partial update keeps unspecified fields", func(t *testing.T) {
		f := newFields(t)
		f.stockRepo.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
			ID: 1, SKU: "SHIRT-001", QuantityOnHand: 30, MinimumThreshold: 5, Location: "MAIN", Active: true,
		}, nil).Once()
		f.stockRepo.On("UpdateMetadata", mock.Anything, mock.MatchedBy(func(item *model.StockItem) bool {
			return item.MinimumThreshold == 12 && item.Location == "MAIN" && item.Active
		})).Return(nil).Once()

		threshold := int64(12)
		got, err := newApp(f).UpdateProduct(context.Background(), "SHIRT-001", &model.UpdateProductRequest{
			MinimumThreshold: &threshold,
		})
		if err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}
		if got.MinimumThreshold != 12 {
			t.Fatalf("threshold = %d, want 12", got.MinimumThreshold)
		}
	})

	t.Run("error: negative minimum threshold", func(t *testing.T) {
		f := newFields(t)
		f.stockRepo.On("GetBySKU", mock.Anything, "SHIRT-001").Return(&model.StockItem{
			ID: 1, SKU: "SHIRT-001",
		}, nil).Once()

		threshold := int64(-1)
		_, err := newApp(f).UpdateProduct(context.Background(), "SHIRT-001", &model.UpdateProductRequest{
			MinimumThreshold: &threshold,
		})
		if err == nil {
			t.Fatal("UpdateProduct() expected error")
		}
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}
