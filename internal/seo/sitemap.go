package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// ChangeFreq je standardna sitemap učestalost promene.
type ChangeFreq string

const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
	FreqYearly  ChangeFreq = "yearly"
	FreqNever   ChangeFreq = "never"
)

// SitemapImage je slika pridružena jednom sitemap unosu.
type SitemapImage struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title"`
	Caption string `xml:"image:caption,omitempty"`
}

// SitemapURL je jedan unos u sitemap dokumentu.
type SitemapURL struct {
	Loc        string         `xml:"loc"`
	LastMod    string         `xml:"lastmod"`
	ChangeFreq ChangeFreq     `xml:"changefreq"`
	Priority   float64        `xml:"priority"`
	Images     []SitemapImage `xml:"image:image"`
}

type urlSet struct {
	XMLName        xml.Name     `xml:"urlset"`
	Xmlns          string       `xml:"xmlns,attr"`
	XmlnsXSI       string       `xml:"xmlns:xsi,attr"`
	XmlnsImage     string       `xml:"xmlns:image,attr"`
	SchemaLocation string       `xml:"xsi:schemaLocation,attr"`
	URLs           []SitemapURL `xml:"url"`
}

// ProductLister je deo kataloga potreban za sitemap: jedno neograničeno
// čitanje svih proizvoda.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// SitemapOptions parametrizuje generisanje. Ranije su postojale dve skoro
// identične putanje ("sa slikama" i bez); sada je to jedna implementacija
// sa opcijom.
type SitemapOptions struct {
	// IncludeProductImages uključuje reprezentativne slike proizvoda
	// rešene preko tabele kategorija i boja.
	IncludeProductImages bool
}

// SitemapGenerator sastavlja kompletan sitemap: statične stranice, stranice
// lokacija i stranice proizvoda iz kataloga.
type SitemapGenerator struct {
	baseURL  string
	products ProductLister
	now      func() time.Time
}

// NewSitemapGenerator pravi generator za zadati javni URL sajta. products
// sme biti nil; tada se generišu samo statični i lokacijski unosi.
func NewSitemapGenerator(baseURL string, products ProductLister) *SitemapGenerator {
	return &SitemapGenerator{
		baseURL:  strings.TrimRight(baseURL, "/"),
		products: products,
		now:      time.Now,
	}
}

// Generate vraća kompletan sitemap XML dokument. Neuspeh čitanja kataloga
// se loguje i degradira: sitemap se uvek proizvodi, makar bez proizvoda.
func (g *SitemapGenerator) Generate(ctx context.Context, opts SitemapOptions) (string, error) {
	today := g.now().Format("2006-01-02")

	urls := g.staticURLs(today)
	urls = append(urls, g.locationURLs(today)...)
	urls = append(urls, g.productURLs(ctx, today, opts)...)

	return renderSitemap(urls)
}

// staticURLs vraća fiksne stranice sajta.
func (g *SitemapGenerator) staticURLs(today string) []SitemapURL {
	return []SitemapURL{
		{
			Loc:        g.baseURL + "/",
			LastMod:    today,
			ChangeFreq: FreqDaily,
			Priority:   1.0,
			Images: []SitemapImage{{
				Loc:   g.baseURL + "/images/home/hero.png",
				Title: "KamenPro - Kamene obloge za enterijer i eksterijer",
			}},
		},
		{Loc: g.baseURL + "/o-nama", LastMod: today, ChangeFreq: FreqMonthly, Priority: 0.8},
		{Loc: g.baseURL + "/proizvodi", LastMod: today, ChangeFreq: FreqWeekly, Priority: 0.9},
		{Loc: g.baseURL + "/reference", LastMod: today, ChangeFreq: FreqMonthly, Priority: 0.8},
		{Loc: g.baseURL + "/kontakt", LastMod: today, ChangeFreq: FreqMonthly, Priority: 0.7},
	}
}

// locationURLs vraća po jedan unos za svaki grad iz registra.
func (g *SitemapGenerator) locationURLs(today string) []SitemapURL {
	slugs := models.AllLocationSlugs()
	urls := make([]SitemapURL, 0, len(slugs))
	for _, slug := range slugs {
		urls = append(urls, SitemapURL{
			Loc:        g.baseURL + "/lokacije/" + slug,
			LastMod:    today,
			ChangeFreq: FreqWeekly,
			Priority:   0.9,
			Images: []SitemapImage{{
				Loc:   g.baseURL + "/images/lokacije/" + slug + "-og.jpg",
				Title: "Dekorativni kamen " + capitalize(slug) + " - KamenPro",
			}},
		})
	}
	return urls
}

// productURLs čita katalog i pravi unose za proizvode. Čitanje je uvek
// autoritativno; ne koristi se nikakav keš.
func (g *SitemapGenerator) productURLs(ctx context.Context, today string, opts SitemapOptions) []SitemapURL {
	if g.products == nil {
		return nil
	}

	products, err := g.products.ListProducts(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("sitemap: čitanje kataloga nije uspelo, nastavlja se bez proizvoda")
		// products može biti delimična lista; koristimo šta imamo.
	}

	urls := make([]SitemapURL, 0, len(products))
	for _, p := range products {
		lastMod := today
		if p.DatumAzuriranja != nil {
			lastMod = p.DatumAzuriranja.Format("2006-01-02")
		}

		entry := SitemapURL{
			Loc:        g.baseURL + "/proizvodi/" + p.ID.String(),
			LastMod:    lastMod,
			ChangeFreq: FreqWeekly,
			Priority:   0.7,
		}

		if opts.IncludeProductImages {
			entry.Images = []SitemapImage{{
				Loc:   g.qualify(ProductImageURL(p.Naziv)),
				Title: p.Naziv + " - KamenPro",
			}}
		}

		urls = append(urls, entry)
	}
	return urls
}

// qualify pretvara relativnu putanju u apsolutni URL.
func (g *SitemapGenerator) qualify(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return g.baseURL + path
}

// renderSitemap serijalizuje unose u sitemap protokol sa image ekstenzijom.
func renderSitemap(urls []SitemapURL) (string, error) {
	set := urlSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXSI:   "http://www.w3.org/2001/XMLSchema-instance",
		XmlnsImage: "http://www.google.com/schemas/sitemap-image/1.1",
		SchemaLocation: "http://www.sitemaps.org/schemas/sitemap/0.9 " +
			"http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd " +
			"http://www.google.com/schemas/sitemap-image/1.1 " +
			"http://www.google.com/schemas/sitemap-image/1.1/sitemap-image.xsd",
	}
	set.URLs = urls

	body, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return "", fmt.Errorf("sitemap: serijalizacija nije uspela: %w", err)
	}

	return xml.Header + string(body) + "\n", nil
}

// capitalize podiže prvo slovo sluga (samo ASCII; slugovi su ASCII po definiciji).
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
