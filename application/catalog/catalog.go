package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/retailmax/inventario/cmd/config"
	"github.com/retailmax/inventario/constant"
	"github.com/retailmax/inventario/model"
	redisrepo "github.com/retailmax/inventario/repository/redis"
	"github.com/retailmax/inventario/utils/errors"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp looks up descriptive product metadata from the external
// catalog service. The ledger never owns this data; it only references
// products by SKU, and responses are cached in redis.
type CatalogApp interface {
	GetProduct(ctx context.Context, sku string) (*model.CatalogProduct, error)
}

type catalogAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
	client    *http.Client
}

func NewCatalogApp(cfg *config.Config, redisRepo redisrepo.Repository) CatalogApp {
	return &catalogAppImpl{
		config:    cfg,
		redisRepo: redisRepo,
		client:    &http.Client{Timeout: cfg.Catalog.Timeout},
	}
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, sku string) (*model.CatalogProduct, error) {
	if sku == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// cache errors are downgraded to misses
	cached, err := s.redisRepo.GetCatalogProduct(ctx, sku)
	if err != nil {
		logger.Warn("[GetProduct] catalog cache read", zap.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.fetchProduct(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err := s.redisRepo.SetCatalogProduct(ctx, product, s.config.Catalog.CacheTTL); err != nil {
		logger.Warn("[GetProduct] catalog cache write", zap.String("error", err.Error()))
	}
	return product, nil
}

func (s *catalogAppImpl) fetchProduct(ctx context.Context, sku string) (*model.CatalogProduct, error) {
	url := fmt.Sprintf("%s/api/products/%s", s.config.Catalog.BaseURL, sku)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Error("[GetProduct] build catalog request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("[GetProduct] call catalog service", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("[GetProduct] catalog service status", zap.Int("status", resp.StatusCode))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var product model.CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		logger.Error("[GetProduct] decode catalog response", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product.SKU == "" {
		product.SKU = sku
	}
	return &product, nil
}
