package alert

import (
	"context"
	"time"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	thresholdrepo "github.com/retailmax/inventario/repository/threshold"
	"github.com/retailmax/inventario/utils/errors"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

// AlertApp manages the per-SKU alert threshold registry consulted by the
// stock-low and stock-excess reporting queries.
type AlertApp interface {
	CreateThreshold(ctx context.Context, req *model.CreateThresholdRequest) (*model.AlertThreshold, error)
	UpdateThreshold(ctx context.Context, sku string, req *model.UpdateThresholdRequest) (*model.AlertThreshold, error)
	GetThreshold(ctx context.Context, sku string) (*model.AlertThreshold, error)
	ListAll(ctx context.Context) ([]model.AlertThreshold, error)
	ListActiveByType(ctx context.Context, alertType string) ([]model.AlertThreshold, error)
	DeleteThreshold(ctx context.Context, sku string) error
}

type alertAppImpl struct {
	thresholdRepo thresholdrepo.ThresholdRepository
}

func NewAlertApp(thresholdRepo thresholdrepo.ThresholdRepository) AlertApp {
	return &alertAppImpl{thresholdRepo: thresholdRepo}
}

func (s *alertAppImpl) CreateThreshold(ctx context.Context, req *model.CreateThresholdRequest) (*model.AlertThreshold, error) {
	if req.SKU == "" || req.ThresholdQuantity == nil || req.Active == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	alertType, ok := constant.ParseAlertType(req.AlertType)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existing, err := s.thresholdRepo.GetBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[CreateThreshold] get threshold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrAlreadyExists)
	}

	now := time.Now()
	th := &model.AlertThreshold{
		SKU:               req.SKU,
		AlertType:         alertType,
		ThresholdQuantity: *req.ThresholdQuantity,
		Active:            *req.Active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.thresholdRepo.Create(ctx, th)
	if err != nil {
		logger.Error("[CreateThreshold] insert threshold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	th.ID = id

	return th, nil
}

// UpdateThreshold applies partial updates; absent or blank fields keep the
// stored value, they never reset it.
func (s *alertAppImpl) UpdateThreshold(ctx context.Context, sku string, req *model.UpdateThresholdRequest) (*model.AlertThreshold, error) {
	existing, err := s.thresholdRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[UpdateThreshold] get threshold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.AlertType != "" {
		alertType, ok := constant.ParseAlertType(req.AlertType)
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		existing.AlertType = alertType
	}
	if req.ThresholdQuantity != nil {
		existing.ThresholdQuantity = *req.ThresholdQuantity
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	existing.UpdatedAt = time.Now()
	if err := s.thresholdRepo.Update(ctx, existing); err != nil {
		logger.Error("[UpdateThreshold] update threshold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return existing, nil
}

func (s *alertAppImpl) GetThreshold(ctx context.Context, sku string) (*model.AlertThreshold, error) {
	th, err := s.thresholdRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[GetThreshold] get threshold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if th == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return th, nil
}

func (s *alertAppImpl) ListAll(ctx context.Context) ([]model.AlertThreshold, error) {
	thresholds, err := s.thresholdRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListAll] list thresholds", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return thresholds, nil
}

func (s *alertAppImpl) ListActiveByType(ctx context.Context, alertType string) ([]model.AlertThreshold, error) {
	at, ok := constant.ParseAlertType(alertType)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	thresholds, err := s.thresholdRepo.ListActiveByType(ctx, at)
	if err != nil {
		logger.Error("[ListActiveByType] list thresholds", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return thresholds, nil
}

func (s *alertAppImpl) DeleteThreshold(ctx context.Context, sku string) error {
	affected, err := s.thresholdRepo.Delete(ctx, sku)
	if err != nil {
		logger.Error("[DeleteThreshold] delete threshold", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
