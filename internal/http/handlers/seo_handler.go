package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
	"github.com/kamenpro/kamenpro-backend/internal/models"
	"github.com/kamenpro/kamenpro-backend/internal/seo"
)

// SEOHandler izlaže sitemap, alt tagove, strukturirane podatke i meta
// tagove. Sitemap se uvek generiše iznova iz baze; nikad se ne kešira.
type SEOHandler struct {
	sitemap *seo.SitemapGenerator
	schema  *seo.SchemaBuilder
	metrics *metrics.Metrics
}

func NewSEOHandler(sitemap *seo.SitemapGenerator, schema *seo.SchemaBuilder, m *metrics.Metrics) *SEOHandler {
	return &SEOHandler{sitemap: sitemap, schema: schema, metrics: m}
}

// Sitemap obrađuje GET /sitemap.xml. Slike proizvoda se izostavljaju
// samo uz ?images=0.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	opts := seo.SitemapOptions{
		IncludeProductImages: c.DefaultQuery("images", "1") != "0",
	}

	xml, err := h.sitemap.Generate(c.Request.Context(), opts)
	if err != nil {
		h.metrics.IncSitemap("error")
		c.String(http.StatusInternalServerError, "sitemap nije dostupan")
		return
	}

	h.metrics.IncSitemap("ok")
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

// AltTagRequest je ulaz za sintezu alt taga jedne slike.
type AltTagRequest struct {
	Filename string           `json:"filename"`
	Context  seo.ImageContext `json:"context"`
}

// AltTag obrađuje POST /api/seo/alt-tag.
func (h *SEOHandler) AltTag(c *gin.Context) {
	var req AltTagRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Naziv fajla je obavezan."})
		return
	}

	tag := seo.GenerateAltTag(req.Filename, req.Context)
	h.metrics.IncSEOEvent("alt_tag", req.Context.Location)
	c.JSON(http.StatusOK, tag)
}

// AltTagQuery obrađuje GET /api/seo/alt-tag?filename=...&location=...
// Jednostavnija varijanta za frontend bez punog konteksta slike.
func (h *SEOHandler) AltTagQuery(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Naziv fajla je obavezan."})
		return
	}

	location := c.Query("location")
	tag := seo.GenerateAltTag(filename, seo.ImageContext{Location: location})
	h.metrics.IncSEOEvent("alt_tag", location)
	c.JSON(http.StatusOK, tag)
}

// PredefinedAltTags obrađuje GET /api/seo/alt-tags.
func (h *SEOHandler) PredefinedAltTags(c *gin.Context) {
	c.JSON(http.StatusOK, seo.PredefinedAltTags())
}

// OrganizationSchema obrađuje GET /api/seo/schema/organization.
func (h *SEOHandler) OrganizationSchema(c *gin.Context) {
	h.metrics.IncSEOEvent("schema_organization", "")
	c.JSON(http.StatusOK, h.schema.Organization())
}

// LocationSchema obrađuje GET /api/seo/schema/locations/:slug i vraća
// LocalBusiness zapis grada.
func (h *SEOHandler) LocationSchema(c *gin.Context) {
	slug := c.Param("slug")
	loc, ok := models.GetLocationBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokacija nije pronađena."})
		return
	}

	h.metrics.IncSEOEvent("schema_local_business", slug)
	c.JSON(http.StatusOK, h.schema.LocalBusiness(loc))
}

// ProductListMeta obrađuje GET /api/seo/meta/products i vraća meta tagove
// kataloške stranice.
func (h *SEOHandler) ProductListMeta(c *gin.Context) {
	meta := seo.ProductListMetaTags()
	h.metrics.IncSEOEvent("meta_tags", "")
	c.JSON(http.StatusOK, seo.MetaTags{
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    seo.Keywords(meta.Keywords, nil),
		Canonical:   h.schema.CanonicalURL("/proizvodi"),
	})
}

// LocationMeta obrađuje GET /api/seo/meta/locations/:slug i vraća gotove
// meta tagove stranice grada.
func (h *SEOHandler) LocationMeta(c *gin.Context) {
	slug := c.Param("slug")
	loc, ok := models.GetLocationBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokacija nije pronađena."})
		return
	}

	meta, _ := seo.LocationMetaTags(slug)
	h.metrics.IncSEOEvent("meta_tags", slug)
	c.JSON(http.StatusOK, seo.MetaTags{
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    seo.Keywords(meta.Keywords, loc.Keywords),
		Canonical:   h.schema.CanonicalURL("/lokacije/" + slug),
		OGImage:     h.schema.CanonicalURL("/images/lokacije/" + slug + "-og.jpg"),
	})
}
