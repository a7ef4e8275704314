package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// EventsHandler prima analitičke događaje sa frontenda i broji ih kao
// Prometheus metrike.
type EventsHandler struct {
	metrics *metrics.Metrics
}

func NewEventsHandler(m *metrics.Metrics) *EventsHandler {
	return &EventsHandler{metrics: m}
}

// PageEvent je telo zahteva POST /api/events.
type PageEvent struct {
	Type     metrics.PageEventType `json:"type"`
	Location string                `json:"location"`
}

// Record obrađuje POST /api/events. Tip mora biti iz zatvorenog skupa;
// nepoznata lokacija se ne odbija, samo se ne beleži kao labela.
func (h *EventsHandler) Record(c *gin.Context) {
	var event PageEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nema podataka u zahtevu."})
		return
	}
	if !event.Type.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nepoznat tip događaja."})
		return
	}

	location := ""
	if _, ok := models.GetLocationBySlug(event.Location); ok {
		location = event.Location
	}

	h.metrics.IncSEOEvent(string(event.Type), location)
	c.Status(http.StatusNoContent)
}
