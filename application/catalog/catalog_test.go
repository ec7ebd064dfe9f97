package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appcatalog "github.com/retailmax/inventario/application/catalog"
	"github.com/retailmax/inventario/cmd/config"
	"github.com/retailmax/inventario/constant"
	redismocks "github.com/retailmax/inventario/mocks/repository/redis"
	"github.com/retailmax/inventario/model"
	cerr "github.com/retailmax/inventario/utils/errors"
	"github.com/stretchr/testify/mock"
)

func newConfig(baseURL string) *config.Config {
	cfg := config.Load()
	cfg.Catalog.BaseURL = baseURL
	return cfg
}

func TestCatalogApp_GetProduct(t *testing.T) {
	t.Run("cache hit skips catalog service", func(t *testing.T) {
		m := redismocks.NewRepository(t)
		m.On("GetCatalogProduct", mock.Anything, "SHIRT-001").Return(&model.CatalogProduct{
			SKU: "SHIRT-001", Name: "Basic Shirt",
		}, nil).Once()

		app := appcatalog.NewCatalogApp(newConfig("http://catalog.invalid"), m)
		got, err := app.GetProduct(context.Background(), "SHIRT-001")
		if err != nil {
			t.Fatalf("GetProduct() error = %v", err)
		}
		if got.Name != "Basic Shirt" {
			t.Fatalf("name = %s, want Basic Shirt", got.Name)
		}
	})

	t.Run("cache miss fetches from catalog service and fills cache", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/products/SHIRT-001" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(model.CatalogProduct{SKU: "SHIRT-001", Name: "Basic Shirt", Category: "apparel"})
		}))
		defer server.Close()

		m := redismocks.NewRepository(t)
		m.On("GetCatalogProduct", mock.Anything, "SHIRT-001").Return(nil, nil).Once()
		m.On("SetCatalogProduct", mock.Anything, mock.MatchedBy(func(p *model.CatalogProduct) bool {
			return p.SKU == "SHIRT-001" && p.Category == "apparel"
		}), mock.Anything).Return(nil).Once()

		app := appcatalog.NewCatalogApp(newConfig(server.URL), m)
		got, err := app.GetProduct(context.Background(), "SHIRT-001")
		if err != nil {
			t.Fatalf("GetProduct() error = %v", err)
		}
		if got.Category != "apparel" {
			t.Fatalf("category = %s, want apparel", got.Category)
		}
	})

	t.Run("cache read error is treated as a miss", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(model.CatalogProduct{SKU: "SHIRT-001", Name: "Basic Shirt"})
		}))
		defer server.Close()

		m := redismocks.NewRepository(t)
		m.On("GetCatalogProduct", mock.Anything, "SHIRT-001").Return(nil, errors.New("redis down")).Once()
		m.On("SetCatalogProduct", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		app := appcatalog.NewCatalogApp(newConfig(server.URL), m)
		if _, err := app.GetProduct(context.Background(), "SHIRT-001"); err != nil {
			t.Fatalf("GetProduct() error = %v", err)
		}
	})

	t.Run("catalog 404 maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		m := redismocks.NewRepository(t)
		m.On("GetCatalogProduct", mock.Anything, "GHOST-001").Return(nil, nil).Once()

		app := appcatalog.NewCatalogApp(newConfig(server.URL), m)
		_, err := app.GetProduct(context.Background(), "GHOST-001")
		if err == nil {
			t.Fatal("GetProduct() expected error")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}
