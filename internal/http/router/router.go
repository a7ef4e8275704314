package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kamenpro/kamenpro-backend/internal/config"
	"github.com/kamenpro/kamenpro-backend/internal/http/handlers"
	"github.com/kamenpro/kamenpro-backend/internal/http/middleware"
	"github.com/kamenpro/kamenpro-backend/internal/metrics"
)

// SetupRouter sastavlja kompletan HTTP ruting servisa.
func SetupRouter(
	cfg *config.Config,
	m *metrics.Metrics,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	locationHandler *handlers.LocationHandler,
	seoHandler *handlers.SEOHandler,
	inquiryHandler *handlers.InquiryHandler,
	eventsHandler *handlers.EventsHandler,
	gmbHandler *handlers.GMBHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// Pogrešna metoda na postojećoj ruti mora vratiti 405, ne 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/sitemap.xml", seoHandler.Sitemap)

	api := r.Group("/api")

	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", middleware.ValidateUUIDParam("id"), catalogHandler.GetProduct)
	api.GET("/categories", catalogHandler.ListCategories)

	api.GET("/locations", locationHandler.ListLocations)
	api.GET("/locations/:slug", locationHandler.GetLocation)

	api.POST("/events", eventsHandler.Record)

	seoGroup := api.Group("/seo")
	{
		seoGroup.GET("/alt-tag", seoHandler.AltTagQuery)
		seoGroup.POST("/alt-tag", seoHandler.AltTag)
		seoGroup.GET("/alt-tags", seoHandler.PredefinedAltTags)
		seoGroup.GET("/schema/organization", seoHandler.OrganizationSchema)
		seoGroup.GET("/schema/locations/:slug", seoHandler.LocationSchema)
		seoGroup.GET("/meta/products", seoHandler.ProductListMeta)
		seoGroup.GET("/meta/locations/:slug", seoHandler.LocationMeta)
	}

	formRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/send-inquiry", formRateLimit, inquiryHandler.SendInquiry)
	api.POST("/contact", formRateLimit, inquiryHandler.Contact)

	gmbGroup := api.Group("/gmb")
	{
		gmbGroup.GET("/locations", gmbHandler.ListLocations)
		gmbGroup.GET("/locations/:slug", gmbHandler.GetLocation)
		gmbGroup.POST("/locations/:slug/posts", gmbHandler.CreatePost)
		gmbGroup.GET("/locations/:slug/reviews", gmbHandler.ListReviews)
		gmbGroup.POST("/locations/:slug/reviews/reply", gmbHandler.ReplyToReview)
		gmbGroup.GET("/locations/:slug/insights", gmbHandler.Insights)
	}

	return r
}
