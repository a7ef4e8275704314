package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamenpro/kamenpro-backend/internal/http/middleware"
	"github.com/kamenpro/kamenpro-backend/internal/models"
	"github.com/kamenpro/kamenpro-backend/internal/repository"
	"github.com/kamenpro/kamenpro-backend/internal/service"
)

type stubCatalogStore struct {
	products   []models.Product
	detail     *models.ProductDetail
	categories []models.Category
	err        error
}

func (s *stubCatalogStore) ListProducts(context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogStore) GetProductByID(_ context.Context, _ uuid.UUID) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.detail == nil {
		return nil, repository.ErrProductNotFound
	}
	return &s.detail.Product, nil
}

func (s *stubCatalogStore) GetProductDetail(_ context.Context, _ uuid.UUID) (*models.ProductDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.detail == nil {
		return nil, repository.ErrProductNotFound
	}
	return s.detail, nil
}

func (s *stubCatalogStore) ListCategories(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func newCatalogRouter(store service.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewCatalogService(store, nil, 0)
	h := NewCatalogHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/products", h.ListProducts)
	r.GET("/api/products/:id", middleware.ValidateUUIDParam("id"), h.GetProduct)
	r.GET("/api/categories", h.ListCategories)
	return r
}

func TestListProducts(t *testing.T) {
	store := &stubCatalogStore{products: []models.Product{
		{ID: uuid.New(), Sifra: "TRV-KREM", Naziv: "Travertin krem", CenaPoM2: 33, Valuta: "BAM"},
	}}
	r := newCatalogRouter(store)

	w := get(r, "/api/products")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Travertin krem", resp.Products[0].Naziv)
}

func TestGetProductInvalidID(t *testing.T) {
	r := newCatalogRouter(&stubCatalogStore{})

	w := get(r, "/api/products/nije-uuid")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identifikator nije ispravan.")
}

func TestGetProductNotFound(t *testing.T) {
	r := newCatalogRouter(&stubCatalogStore{})

	w := get(r, "/api/products/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductDetail(t *testing.T) {
	id := uuid.New()
	store := &stubCatalogStore{detail: &models.ProductDetail{
		Product:  models.Product{ID: id, Sifra: "CIG-RUST", Naziv: "Cigla rustik"},
		Category: models.Category{ID: uuid.New(), Naziv: "Dekorativna cigla"},
	}}
	r := newCatalogRouter(store)

	w := get(r, "/api/products/"+id.String())

	require.Equal(t, http.StatusOK, w.Code)

	var detail models.ProductDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Cigla rustik", detail.Product.Naziv)
	assert.Equal(t, "Dekorativna cigla", detail.Category.Naziv)
}

func TestListProductsStoreFailureIsMasked(t *testing.T) {
	storeErr := errors.New("sql: connection refused na 10.0.0.5:5432")
	r := newCatalogRouter(&stubCatalogStore{err: storeErr})

	w := get(r, "/api/products")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "Dogodila se interna greška servera.")
}

func TestListCategories(t *testing.T) {
	store := &stubCatalogStore{categories: []models.Category{
		{ID: uuid.New(), Naziv: "Prirodni kamen"},
	}}
	r := newCatalogRouter(store)

	w := get(r, "/api/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Prirodni kamen")
}
