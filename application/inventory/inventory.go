package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	movementrepo "github.com/retailmax/inventario/repository/movement"
	stockrepo "github.com/retailmax/inventario/repository/stock"
	thresholdrepo "github.com/retailmax/inventario/repository/threshold"
	txrepo "github.com/retailmax/inventario/repository/tx"
	"github.com/retailmax/inventario/thirdparty/rabbitmq"
	"github.com/retailmax/inventario/utils/errors"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

const initialEntryReason = "initial entry"

type InventoryApp interface {
	RegisterProduct(ctx context.Context, req *model.RegisterProductRequest) (*model.StockItemView, error)
	ApplyMovement(ctx context.Context, req *model.StockMovementRequest) (*model.StockItemView, error)
	AdjustManually(ctx context.Context, req *model.ManualAdjustmentRequest) (*model.StockItemView, error)
	DecrementForConfirmedOrder(ctx context.Context, req *model.ConfirmedOrderRequest) (*model.StockItemView, error)
	ReceiveFromSupplier(ctx context.Context, req *model.SupplierReceptionRequest) (*model.StockItemView, error)
	CheckAvailability(ctx context.Context, sku string, required int64) (*model.AvailabilityResponse, error)
	GetStock(ctx context.Context, sku string) (*model.StockItemView, error)
	ListStock(ctx context.Context) ([]model.StockItemView, error)
	FindByLocation(ctx context.Context, location string) ([]model.StockItemView, error)
	QueryLowStock(ctx context.Context, threshold int64) ([]model.StockItemView, error)
	QueryExcessStock(ctx context.Context, threshold int64) ([]model.StockItemView, error)
	GetMovementHistory(ctx context.Context, sku string, from, to *time.Time) ([]model.StockMovement, error)
	UpdateProduct(ctx context.Context, sku string, req *model.UpdateProductRequest) (*model.StockItemView, error)
	UpdateLocation(ctx context.Context, req *model.UpdateLocationRequest) (*model.StockItemView, error)
	DeleteProduct(ctx context.Context, sku string) error
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	stockRepo     stockrepo.StockRepository
	movementRepo  movementrepo.MovementRepository
	thresholdRepo thresholdrepo.ThresholdRepository
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, movementRepo movementrepo.MovementRepository, thresholdRepo thresholdrepo.ThresholdRepository, publisher *rabbitmq.Publisher) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		thresholdRepo: thresholdRepo,
		publisher:     publisher,
	}
}

// applyQuantities mutates the stock item per the movement effect table and
// returns the signed effect the movement had on the available quantity.
// quantity is positive except for ADJUSTMENT, where a signed delta is legal.
func applyQuantities(item *model.StockItem, movementType constant.MovementType, quantity int64) (int64, error) {
	switch movementType {
	case constant.MovementEntry, constant.MovementCustomerReturn:
		item.QuantityOnHand += quantity
		return quantity, nil

	case constant.MovementExit, constant.MovementSupplierReturn:
		if item.Available() < quantity {
			return 0, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		item.QuantityOnHand -= quantity
		return -quantity, nil

	case constant.MovementAdjustment:
		if item.Available()+quantity < 0 {
			return 0, errors.SetCustomError(constant.ErrInvalidAdjustment)
		}
		item.QuantityOnHand += quantity
		return quantity, nil

	case constant.MovementReserve:
		if item.Available() < quantity {
			return 0, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		item.QuantityReserved += quantity
		return -quantity, nil

	case constant.MovementRelease:
		if item.QuantityReserved < quantity {
			return 0, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		item.QuantityReserved -= quantity
		return quantity, nil

	default:
		return 0, errors.SetCustomError(constant.ErrUnsupportedMovement)
	}
}

func (s *inventoryAppImpl) RegisterProduct(ctx context.Context, req *model.RegisterProductRequest) (*model.StockItemView, error) {
	exists, err := s.stockRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[RegisterProduct] exists check failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrAlreadyExists)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RegisterProduct] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := time.Now()
	item := &model.StockItem{
		SKU:              req.SKU,
		QuantityOnHand:   req.InitialQuantity,
		MinimumThreshold: req.MinimumThreshold,
		Location:         req.Location,
		Active:           true,
		BaseSKU:          req.BaseSKU,
		Size:             req.Size,
		Color:            req.Color,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.stockRepo.CreateTx(ctx, tx, item)
	if err != nil {
		logger.Error("[RegisterProduct] insert stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	item.ID = id

	if _, err := s.movementRepo.InsertTx(ctx, tx, &model.StockMovement{
		StockItemID:        item.ID,
		SKU:                item.SKU,
		MovementType:       constant.MovementEntry,
		QuantityDelta:      req.InitialQuantity,
		ResultingAvailable: item.Available(),
		Reason:             initialEntryReason,
		OccurredAt:         now,
	}); err != nil {
		logger.Error("[RegisterProduct] insert movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RegisterProduct] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) ApplyMovement(ctx context.Context, req *model.StockMovementRequest) (*model.StockItemView, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	movementType, ok := constant.ParseMovementType(req.MovementType)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrUnsupportedMovement)
	}

	reason := req.Reason
	if reason == "" {
		reason = movementType.Description()
	}

	item, err := s.executeMovement(ctx, req.SKU, movementType, req.Quantity, req.ExternalReference, reason)
	if err != nil {
		return nil, err
	}
	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) AdjustManually(ctx context.Context, req *model.ManualAdjustmentRequest) (*model.StockItemView, error) {
	if req.Quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	item, err := s.executeMovement(ctx, req.SKU, constant.MovementAdjustment, req.Quantity, "", req.Reason)
	if err != nil {
		return nil, err
	}
	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) DecrementForConfirmedOrder(ctx context.Context, req *model.ConfirmedOrderRequest) (*model.StockItemView, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	reason := fmt.Sprintf("confirmed order: %s", req.OrderID)
	item, err := s.executeMovement(ctx, req.SKU, constant.MovementExit, req.Quantity, req.OrderID, reason)
	if err != nil {
		return nil, err
	}
	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) ReceiveFromSupplier(ctx context.Context, req *model.SupplierReceptionRequest) (*model.StockItemView, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	reason := fmt.Sprintf("supplier reception: %s", req.Reference)
	item, err := s.executeMovement(ctx, req.SKU, constant.MovementEntry, req.Quantity, req.Reference, reason)
	if err == nil {
		return model.NewStockItemView(item), nil
	}
	if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}

	// first reception of an unknown SKU registers it at the default location
	return s.RegisterProduct(ctx, &model.RegisterProductRequest{
		SKU:             req.SKU,
		InitialQuantity: req.Quantity,
		Location:        constant.DefaultLocation,
	})
}

// executeMovement runs the read-modify-write cycle for one stock record
// under a row lock, appending exactly one ledger entry in the same
// transaction. Any failure rolls back both writes.
func (s *inventoryAppImpl) executeMovement(ctx context.Context, sku string, movementType constant.MovementType, quantity int64, externalRef, reason string) (*model.StockItem, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExecuteMovement] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	item, err := s.stockRepo.GetBySKUForUpdateTx(ctx, tx, sku)
	if err != nil {
		logger.Error("[ExecuteMovement] get stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	delta, err := applyQuantities(item, movementType, quantity)
	if err != nil {
		return nil, err
	}

	if err := item.CheckConsistency(); err != nil {
		logger.Error("[ExecuteMovement] inconsistent quantities",
			zap.String("sku", sku), zap.String("movement_type", movementType.String()))
		return nil, err
	}

	item.UpdatedAt = time.Now()
	if err := s.stockRepo.UpdateQuantitiesTx(ctx, tx, item); err != nil {
		logger.Error("[ExecuteMovement] update stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.movementRepo.InsertTx(ctx, tx, &model.StockMovement{
		StockItemID:        item.ID,
		SKU:                item.SKU,
		MovementType:       movementType,
		QuantityDelta:      delta,
		ResultingAvailable: item.Available(),
		ExternalReference:  externalRef,
		Reason:             reason,
		OccurredAt:         item.UpdatedAt,
	}); err != nil {
		logger.Error("[ExecuteMovement] insert movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExecuteMovement] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifyLowStock(item)

	return item, nil
}

// notifyLowStock publishes a low stock alert when the movement left the
// available quantity under the record's minimum threshold. Fire and forget.
func (s *inventoryAppImpl) notifyLowStock(item *model.StockItem) {
	if s.publisher == nil {
		return
	}
	if item.MinimumThreshold <= 0 || item.Available() >= item.MinimumThreshold {
		return
	}

	msg := rabbitmq.LowStockAlertMessage{
		SKU:               item.SKU,
		QuantityAvailable: item.Available(),
		MinimumThreshold:  item.MinimumThreshold,
		Location:          item.Location,
		OccurredAt:        time.Now(),
	}
	if err := s.publisher.PublishLowStockAlert(msg); err != nil {
		logger.Error("[NotifyLowStock] publish alert", zap.String("sku", item.SKU), zap.String("error", err.Error()))
	}
}

func (s *inventoryAppImpl) CheckAvailability(ctx context.Context, sku string, required int64) (*model.AvailabilityResponse, error) {
	if required <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	item, err := s.stockRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[CheckAvailability] get stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.AvailabilityResponse{
		SKU:       sku,
		Requested: required,
		Available: item.Available() >= required,
	}, nil
}

func (s *inventoryAppImpl) GetStock(ctx context.Context, sku string) (*model.StockItemView, error) {
	item, err := s.stockRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[GetStock] get stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) ListStock(ctx context.Context) ([]model.StockItemView, error) {
	items, err := s.stockRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListStock] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toViews(items), nil
}

func (s *inventoryAppImpl) FindByLocation(ctx context.Context, location string) ([]model.StockItemView, error) {
	items, err := s.stockRepo.ListByLocation(ctx, location)
	if err != nil {
		logger.Error("[FindByLocation] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toViews(items), nil
}

func (s *inventoryAppImpl) QueryLowStock(ctx context.Context, threshold int64) ([]model.StockItemView, error) {
	items, err := s.stockRepo.ListAvailableBelow(ctx, threshold)
	if err != nil {
		logger.Error("[QueryLowStock] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toViews(items), nil
}

func (s *inventoryAppImpl) QueryExcessStock(ctx context.Context, threshold int64) ([]model.StockItemView, error) {
	items, err := s.stockRepo.ListAvailableAbove(ctx, threshold)
	if err != nil {
		logger.Error("[QueryExcessStock] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toViews(items), nil
}

func (s *inventoryAppImpl) GetMovementHistory(ctx context.Context, sku string, from, to *time.Time) ([]model.StockMovement, error) {
	exists, err := s.stockRepo.ExistsBySKU(ctx, sku)
	if err != nil {
		logger.Error("[GetMovementHistory] exists check", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	movements, err := s.movementRepo.ListBySKU(ctx, &model.MovementHistoryRequest{SKU: sku, From: from, To: to})
	if err != nil {
		logger.Error("[GetMovementHistory] list movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}

func (s *inventoryAppImpl) UpdateProduct(ctx context.Context, sku string, req *model.UpdateProductRequest) (*model.StockItemView, error) {
	item, err := s.stockRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[UpdateProduct] get stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.MinimumThreshold != nil {
		if *req.MinimumThreshold < 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		item.MinimumThreshold = *req.MinimumThreshold
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	item.UpdatedAt = time.Now()
	if err := s.stockRepo.UpdateMetadata(ctx, item); err != nil {
		logger.Error("[UpdateProduct] update metadata", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewStockItemView(item), nil
}

func (s *inventoryAppImpl) UpdateLocation(ctx context.Context, req *model.UpdateLocationRequest) (*model.StockItemView, error) {
	return s.UpdateProduct(ctx, req.SKU, &model.UpdateProductRequest{Location: &req.NewLocation})
}

// DeleteProduct permanently removes a stock record. A record with
// outstanding reservations cannot be deleted; its alert threshold goes with
// it, while ledger entries are kept as the audit trail.
func (s *inventoryAppImpl) DeleteProduct(ctx context.Context, sku string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteProduct] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	item, err := s.stockRepo.GetBySKUForUpdateTx(ctx, tx, sku)
	if err != nil {
		logger.Error("[DeleteProduct] get stock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if item.QuantityReserved > 0 {
		return errors.SetCustomError(constant.ErrHasReservedStock)
	}

	if err := s.stockRepo.DeleteTx(ctx, tx, sku); err != nil {
		logger.Error("[DeleteProduct] delete stock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.thresholdRepo.DeleteTx(ctx, tx, sku); err != nil {
		logger.Error("[DeleteProduct] delete threshold", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteProduct] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func toViews(items []model.StockItem) []model.StockItemView {
	views := make([]model.StockItemView, 0, len(items))
	for i := range items {
		views = append(views, *model.NewStockItemView(&items[i]))
	}
	return views
}
