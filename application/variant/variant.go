package variant

import (
	"context"
	"fmt"
	"time"

	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	variantrepo "github.com/retailmax/inventario/repository/variant"
	"github.com/retailmax/inventario/utils/errors"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

// VariantApp manages size/color variations of base products. Variant SKUs
// are generated from base SKU, size and color at registration.
type VariantApp interface {
	RegisterVariant(ctx context.Context, req *model.RegisterVariantRequest) (*model.ProductVariant, error)
	GetBySKU(ctx context.Context, sku string) (*model.ProductVariant, error)
	ListByBaseSKU(ctx context.Context, baseSKU string) ([]model.ProductVariant, error)
	ListBySizeColor(ctx context.Context, size, color string) ([]model.ProductVariant, error)
	AdjustStock(ctx context.Context, id uint64, quantity int64) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id uint64) error
}

type variantAppImpl struct {
	variantRepo variantrepo.VariantRepository
}

func NewVariantApp(variantRepo variantrepo.VariantRepository) VariantApp {
	return &variantAppImpl{variantRepo: variantRepo}
}

func buildVariantSKU(baseSKU, size, color string) string {
	return fmt.Sprintf("%s-%s-%s", baseSKU, size, color)
}

func (s *variantAppImpl) RegisterVariant(ctx context.Context, req *model.RegisterVariantRequest) (*model.ProductVariant, error) {
	sku := buildVariantSKU(req.BaseSKU, req.Size, req.Color)

	existing, err := s.variantRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[RegisterVariant] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrAlreadyExists)
	}

	now := time.Now()
	v := &model.ProductVariant{
		SKU:         sku,
		BaseSKU:     req.BaseSKU,
		Size:        req.Size,
		Color:       req.Color,
		Stock:       req.Stock,
		Description: req.Description,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.variantRepo.Create(ctx, v)
	if err != nil {
		logger.Error("[RegisterVariant] insert variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	v.ID = id

	return v, nil
}

func (s *variantAppImpl) GetBySKU(ctx context.Context, sku string) (*model.ProductVariant, error) {
	v, err := s.variantRepo.GetBySKU(ctx, sku)
	if err != nil {
		logger.Error("[GetBySKU] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if v == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return v, nil
}

func (s *variantAppImpl) ListByBaseSKU(ctx context.Context, baseSKU string) ([]model.ProductVariant, error) {
	variants, err := s.variantRepo.ListByBaseSKU(ctx, baseSKU)
	if err != nil {
		logger.Error("[ListByBaseSKU] list variants", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return variants, nil
}

func (s *variantAppImpl) ListBySizeColor(ctx context.Context, size, color string) ([]model.ProductVariant, error) {
	variants, err := s.variantRepo.ListBySizeColor(ctx, size, color)
	if err != nil {
		logger.Error("[ListBySizeColor] list variants", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return variants, nil
}

func (s *variantAppImpl) AdjustStock(ctx context.Context, id uint64, quantity int64) (*model.ProductVariant, error) {
	if quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	v, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[AdjustStock] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if v == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	newStock := v.Stock + quantity
	if newStock < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidAdjustment)
	}

	if err := s.variantRepo.UpdateStock(ctx, id, newStock); err != nil {
		logger.Error("[AdjustStock] update variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	v.Stock = newStock
	v.UpdatedAt = time.Now()
	return v, nil
}

func (s *variantAppImpl) DeleteVariant(ctx context.Context, id uint64) error {
	affected, err := s.variantRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteVariant] delete variant", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
