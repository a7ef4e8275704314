package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/kamenpro/kamenpro-backend/internal/cache"
	"github.com/kamenpro/kamenpro-backend/internal/config"
	"github.com/kamenpro/kamenpro-backend/internal/db"
	"github.com/kamenpro/kamenpro-backend/internal/gmb"
	"github.com/kamenpro/kamenpro-backend/internal/goroutine"
	httpHandlers "github.com/kamenpro/kamenpro-backend/internal/http/handlers"
	httpRouter "github.com/kamenpro/kamenpro-backend/internal/http/router"
	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/mailer"
	"github.com/kamenpro/kamenpro-backend/internal/metrics"
	"github.com/kamenpro/kamenpro-backend/internal/repository"
	"github.com/kamenpro/kamenpro-backend/internal/seo"
	"github.com/kamenpro/kamenpro-backend/internal/service"
)

func main() {
	// Kontekst za graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: greška pri učitavanju konfiguracije: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	// Baza i migracije.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: greška pri povezivanju na bazu: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: greška pri migracijama: %v", err)
	}

	// Redis keš je opcion; bez njega katalog čita direktno iz baze.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Log.Warnf("main: redis nije dostupan, keš kataloga je isključen: %v", err)
			redisClient = nil
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Repozitorijumi i servisi.
	catalogRepo := repository.NewCatalogRepository(dbConn)
	catalogService := service.NewCatalogService(catalogRepo, redisClient, cfg.CatalogCacheTTL)

	inquiryService := service.NewInquiryService(newSender(cfg), service.InquiryConfig{
		From:       mailer.Address{Email: cfg.MailFrom, Name: cfg.MailFromName},
		To:         mailer.Address{Email: cfg.MailTo, Name: "KamenPro"},
		FallbackTo: cfg.MailFallbackTo,
	})

	sitemapGen := seo.NewSitemapGenerator(cfg.BaseURL, catalogRepo)
	schemaBuilder := seo.NewSchemaBuilder(cfg.BaseURL)

	// GMB integracija radi samo sa podešenim kredencijalima.
	gmbService, err := gmb.New(gmb.Config{
		APIKey:    cfg.GMBAPIKey,
		AccountID: cfg.GMBAccountID,
		BaseURL:   cfg.BaseURL,
	})
	if err != nil {
		logger.Log.Warnf("main: GMB integracija je isključena: %v", err)
		gmbService = nil
	}

	// HTTP sloj.
	engine := httpRouter.SetupRouter(
		cfg,
		m,
		httpHandlers.NewHealthHandler(dbConn, redisClient),
		httpHandlers.NewCatalogHandler(catalogService),
		httpHandlers.NewLocationHandler(),
		httpHandlers.NewSEOHandler(sitemapGen, schemaBuilder, m),
		httpHandlers.NewInquiryHandler(inquiryService, m),
		httpHandlers.NewEventsHandler(m),
		httpHandlers.NewGMBHandler(gmbService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Gasimo server po prijemu signala.
	goroutine.SafeGoWithContext(ctx, logger.Log, func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: greška pri zaustavljanju http servera: %v", err)
		}
	})

	log.Printf("main: HTTP server pokrenut na portu %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: server se završio greškom: %v", err)
	}
}

// newSender bira transport e-pošte prema konfiguraciji.
func newSender(cfg *config.Config) mailer.Sender {
	if cfg.MailTransport == "smtp" {
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			log.Fatalf("main: SMTP_PORT nije broj: %v", err)
		}
		return mailer.NewSMTPSender(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return mailer.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoAPIURL)
}

// safeClose zatvara konekciju ka bazi.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: greška pri zatvaranju baze: %v", err)
	}
}
