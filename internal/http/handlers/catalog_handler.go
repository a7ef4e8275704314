package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kamenpro/kamenpro-backend/internal/repository"
	"github.com/kamenpro/kamenpro-backend/internal/service"
)

// CatalogHandler izlaže javni katalog proizvoda.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts obrađuje GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct obrađuje GET /api/products/:id i vraća proizvod sa slikama,
// karakteristikama i stanjem zaliha.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifikator nije ispravan."})
		return
	}

	detail, err := h.catalog.GetProductDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrProductNotFound.Error()})
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListCategories obrađuje GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
