package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
	"github.com/kamenpro/kamenpro-backend/internal/seo"
)

func newSEORouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	sitemap := seo.NewSitemapGenerator("https://kamenpro.net", nil)
	schema := seo.NewSchemaBuilder("https://kamenpro.net")
	h := NewSEOHandler(sitemap, schema, metrics.New(prometheus.NewRegistry()))

	r := gin.New()
	r.GET("/sitemap.xml", h.Sitemap)
	api := r.Group("/api/seo")
	api.GET("/alt-tag", h.AltTagQuery)
	api.POST("/alt-tag", h.AltTag)
	api.GET("/alt-tags", h.PredefinedAltTags)
	api.GET("/schema/organization", h.OrganizationSchema)
	api.GET("/schema/locations/:slug", h.LocationSchema)
	api.GET("/meta/products", h.ProductListMeta)
	api.GET("/meta/locations/:slug", h.LocationMeta)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSitemapEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/sitemap.xml")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, body, "<loc>https://kamenpro.net/</loc>")
	assert.Contains(t, body, "<loc>https://kamenpro.net/lokacije/bijeljina</loc>")
}

func TestAltTagEndpoint(t *testing.T) {
	r := newSEORouter()

	req := httptest.NewRequest(http.MethodPost, "/api/seo/alt-tag",
		strings.NewReader(`{"filename":"travertin-bijela.jpg","context":{"location":"bijeljina"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var tag seo.DetailedAltTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tag))
	assert.Contains(t, tag.Alt, "Travertin")
	assert.Contains(t, tag.Alt, "u Bijeljini")
	assert.NotEmpty(t, tag.Keywords)
}

func TestAltTagQueryEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/alt-tag?filename=travertin-white.jpg&location=tuzla")
	assert.Equal(t, http.StatusOK, w.Code)

	var tag seo.DetailedAltTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tag))
	assert.Contains(t, tag.Alt, "u Tuzli")

	w = get(r, "/api/seo/alt-tag")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAltTagEndpointRequiresFilename(t *testing.T) {
	r := newSEORouter()

	req := httptest.NewRequest(http.MethodPost, "/api/seo/alt-tag", strings.NewReader(`{"context":{}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredefinedAltTagsEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/alt-tags")

	assert.Equal(t, http.StatusOK, w.Code)

	var tags map[string]seo.DetailedAltTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Contains(t, tags, "hero")
	assert.Contains(t, tags, "travertin")
}

func TestOrganizationSchemaEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/schema/organization")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"@type":"Organization"`)
}

func TestLocationSchemaEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/schema/locations/brcko")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"@type":"LocalBusiness"`)
	assert.Contains(t, w.Body.String(), "Brčko")

	w = get(r, "/api/seo/schema/locations/banjaluka")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductListMetaEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/meta/products")
	require.Equal(t, http.StatusOK, w.Code)

	var meta seo.MetaTags
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	assert.Contains(t, meta.Title, "KamenPro")
	assert.Equal(t, "https://kamenpro.net/proizvodi", meta.Canonical)
}

func TestLocationMetaEndpoint(t *testing.T) {
	r := newSEORouter()

	w := get(r, "/api/seo/meta/locations/tuzla")
	require.Equal(t, http.StatusOK, w.Code)

	var meta seo.MetaTags
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	assert.Contains(t, meta.Title, "Tuzl")
	assert.Equal(t, "https://kamenpro.net/lokacije/tuzla", meta.Canonical)
	assert.Contains(t, meta.Keywords, "kamenpro")

	w = get(r, "/api/seo/meta/locations/sarajevo")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
