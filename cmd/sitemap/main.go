package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kamenpro/kamenpro-backend/internal/config"
	"github.com/kamenpro/kamenpro-backend/internal/db"
	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/repository"
	"github.com/kamenpro/kamenpro-backend/internal/seo"
)

// Alat za generisanje sitemap.xml fajla van servera, npr. iz CI-ja pri
// objavi sajta. Bez dostupne baze upisuje samo statične i gradske unose.
func main() {
	out := flag.String("out", "public/sitemap.xml", "putanja izlaznog fajla, ili - za stdout")
	images := flag.Bool("images", true, "uključi slike proizvoda u sitemap")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("sitemap: greška pri učitavanju konfiguracije: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var lister seo.ProductLister
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Warnf("sitemap: baza nije dostupna, generišu se samo statični unosi: %v", err)
	} else {
		defer dbConn.Close()
		lister = repository.NewCatalogRepository(dbConn)
	}

	gen := seo.NewSitemapGenerator(cfg.BaseURL, lister)
	xml, err := gen.Generate(ctx, seo.SitemapOptions{IncludeProductImages: *images})
	if err != nil {
		log.Fatalf("sitemap: generisanje nije uspelo: %v", err)
	}

	if *out == "-" {
		fmt.Print(xml)
		return
	}

	if err := os.WriteFile(*out, []byte(xml), 0o644); err != nil {
		log.Fatalf("sitemap: upis u %s nije uspeo: %v", *out, err)
	}
	log.Printf("sitemap: upisan %s", *out)
}
