package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
)

func newEventsRouter() (*gin.Engine, *metrics.Metrics) {
	gin.SetMode(gin.TestMode)

	m := metrics.New(prometheus.NewRegistry())
	h := NewEventsHandler(m)

	r := gin.New()
	r.POST("/api/events", h.Record)
	return r, m
}

func postEvent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordEvent(t *testing.T) {
	r, m := newEventsRouter()

	w := postEvent(r, `{"type":"page_view","location":"bijeljina"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SEOEventsTotal.WithLabelValues("page_view", "bijeljina")))
}

func TestRecordEventUnknownTypeRejected(t *testing.T) {
	r, _ := newEventsRouter()

	w := postEvent(r, `{"type":"seo_spam","location":"bijeljina"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nepoznat tip događaja.")
}

func TestRecordEventUnknownLocationDropsLabel(t *testing.T) {
	r, m := newEventsRouter()

	w := postEvent(r, `{"type":"product_view","location":"banjaluka"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SEOEventsTotal.WithLabelValues("product_view", "")))
}

func TestRecordEventMalformedBody(t *testing.T) {
	r, _ := newEventsRouter()

	w := postEvent(r, `nije json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
