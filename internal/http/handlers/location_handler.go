package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// LocationHandler izlaže registar gradova.
type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// ListLocations obrađuje GET /api/locations. Redosled je fiksan.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": models.AllLocations()})
}

// GetLocation obrađuje GET /api/locations/:slug.
func (h *LocationHandler) GetLocation(c *gin.Context) {
	loc, ok := models.GetLocationBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokacija nije pronađena."})
		return
	}
	c.JSON(http.StatusOK, loc)
}
