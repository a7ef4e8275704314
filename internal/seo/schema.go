package seo

import (
	"strings"
	"time"

	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// SchemaBuilder sastavlja schema.org strukture za ugradnju u stranice.
// Sve metode su totalne: opciona polja se izostavljaju, nikad ne greše.
type SchemaBuilder struct {
	baseURL string
	now     func() time.Time
}

func NewSchemaBuilder(baseURL string) *SchemaBuilder {
	return &SchemaBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// qualifyURL pretvara relativnu putanju u apsolutni URL sajta.
func (b *SchemaBuilder) qualifyURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return b.baseURL + path
}

type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  string  `json:"bestRating"`
	WorstRating string  `json:"worstRating"`
}

// regionForSlug vraća administrativni region grada.
func regionForSlug(slug string) string {
	switch slug {
	case "brcko":
		return "Brčko Distrikt"
	case "tuzla":
		return "Federacija Bosne i Hercegovine"
	default:
		return "Republika Srpska"
	}
}

// parseHours deli opseg "08:00 - 17:00" na otvaranje i zatvaranje.
// Vraća false za neradne dane ("Zatvoreno").
func parseHours(rang string) (opens, closes string, ok bool) {
	parts := strings.Split(rang, " - ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// openingHours mapira trodelno radno vreme lokacije na schema.org blokove.
func openingHours(wh models.WorkingHours) []OpeningHoursSpecification {
	var specs []OpeningHoursSpecification

	if opens, closes, ok := parseHours(wh.Weekdays); ok {
		specs = append(specs, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			Opens:     opens,
			Closes:    closes,
		})
	}
	if opens, closes, ok := parseHours(wh.Saturday); ok {
		specs = append(specs, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: []string{"Saturday"},
			Opens:     opens,
			Closes:    closes,
		})
	}
	if opens, closes, ok := parseHours(wh.Sunday); ok {
		specs = append(specs, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: []string{"Sunday"},
			Opens:     opens,
			Closes:    closes,
		})
	}

	return specs
}

// LocalBusiness gradi LocalBusiness zapis za jednu lokaciju.
func (b *SchemaBuilder) LocalBusiness(loc models.LocationData) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"@id":         b.baseURL + "/lokacije/" + loc.CitySlug,
		"name":        "KamenPro " + loc.City,
		"description": "Profesionalni dekorativni kamen i zidne obloge u " + loc.CityGenitive + ". Besplatna dostava i stručna montaža.",
		"url":         b.baseURL + "/lokacije/" + loc.CitySlug,
		"telephone":   loc.ContactInfo.Phone,
		"email":       loc.ContactInfo.Email,
		"address": PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: loc.City,
			AddressRegion:   regionForSlug(loc.CitySlug),
			AddressCountry:  "BA",
		},
		"geo": GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  loc.Coordinates.Lat,
			Longitude: loc.Coordinates.Lng,
		},
		"areaServed": map[string]any{
			"@type": "City",
			"name":  loc.City,
			"containedInPlace": map[string]any{
				"@type": "Country",
				"name":  "Bosnia and Herzegovina",
			},
		},
		"priceRange":                "$$",
		"openingHoursSpecification": openingHours(loc.ContactInfo.WorkingHours),
		"image": []string{
			b.baseURL + "/images/lokacije/" + loc.CitySlug + "-showroom.jpg",
			b.baseURL + "/images/lokacije/" + loc.CitySlug + "-proizvodi.jpg",
			b.baseURL + "/images/lokacije/" + loc.CitySlug + "-projekti.jpg",
		},
	}
}

// Organization gradi zapis celog preduzeća sa svim lokacijama.
func (b *SchemaBuilder) Organization() map[string]any {
	places := make([]map[string]any, 0, 3)
	for _, loc := range models.AllLocations() {
		places = append(places, map[string]any{
			"@type": "Place",
			"name":  "KamenPro " + loc.City,
			"address": PostalAddress{
				Type:            "PostalAddress",
				AddressLocality: loc.City,
				AddressRegion:   regionForSlug(loc.CitySlug),
				AddressCountry:  "BA",
			},
			"geo": GeoCoordinates{
				Type:      "GeoCoordinates",
				Latitude:  loc.Coordinates.Lat,
				Longitude: loc.Coordinates.Lng,
			},
		})
	}

	return map[string]any{
		"@context":     "https://schema.org",
		"@type":        "Organization",
		"@id":          b.baseURL + "/#organization",
		"name":         "KamenPro",
		"url":          b.baseURL,
		"logo":         b.baseURL + "/logo.png",
		"description":  "Proizvođač dekorativnih kamenih obloga u Bosni i Hercegovini",
		"foundingDate": "2014",
		"address": PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: "Bijeljina",
			AddressRegion:   "Republika Srpska",
			AddressCountry:  "BA",
		},
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"telephone":         "+387-65-678-634",
			"contactType":       "customer service",
			"email":             "info@kamenpro.net",
			"areaServed":        []string{"BA"},
			"availableLanguage": []string{"bs", "sr", "hr", "en"},
		},
		"sameAs": []string{
			"https://www.facebook.com/kamenpro",
			"https://www.instagram.com/kamenpro",
		},
		"location": places,
	}
}

// ProductParams su ulazni podaci za Product zapis. SKU, materijal i ocena
// su opcioni i izostavljaju se kada nisu zadati.
type ProductParams struct {
	Name            string
	Description     string
	Image           string
	Price           float64
	Currency        string
	Availability    string
	Category        string
	Brand           string
	SKU             string
	Material        string
	AggregateRating *AggregateRating
}

// Product gradi Product zapis sa ponudom i uslovima isporuke.
func (b *SchemaBuilder) Product(p ProductParams) map[string]any {
	if p.Currency == "" {
		p.Currency = "BAM"
	}
	if p.Availability == "" {
		p.Availability = "https://schema.org/InStock"
	}
	if p.Category == "" {
		p.Category = "Dekorativni kamen"
	}
	if p.Brand == "" {
		p.Brand = "KamenPro"
	}

	schema := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Name,
		"description": p.Description,
		"image":       b.qualifyURL(p.Image),
		"brand": map[string]any{
			"@type": "Brand",
			"name":  p.Brand,
		},
		"category": p.Category,
		"offers": map[string]any{
			"@type":           "Offer",
			"priceCurrency":   p.Currency,
			"price":           p.Price,
			"priceValidUntil": b.now().AddDate(1, 0, 0).Format("2006-01-02"),
			"availability":    p.Availability,
			"seller": map[string]any{
				"@type": "Organization",
				"name":  "KamenPro",
			},
			"shippingDetails": map[string]any{
				"@type": "OfferShippingDetails",
				"shippingRate": map[string]any{
					"@type":    "MonetaryAmount",
					"value":    "0",
					"currency": "BAM",
				},
				"shippingDestination": map[string]any{
					"@type":          "DefinedRegion",
					"addressCountry": "BA",
					"addressRegion":  []string{"Bijeljina", "Brčko", "Tuzla"},
				},
			},
		},
		"additionalProperty": []map[string]any{
			{"@type": "PropertyValue", "name": "Garancija", "value": "5 godina"},
			{"@type": "PropertyValue", "name": "Montaža", "value": "Dostupna profesionalna montaža"},
		},
	}

	if p.SKU != "" {
		schema["sku"] = p.SKU
	}
	if p.Material != "" {
		schema["material"] = p.Material
	}
	if p.AggregateRating != nil {
		rating := *p.AggregateRating
		rating.Type = "AggregateRating"
		rating.BestRating = "5"
		rating.WorstRating = "1"
		schema["aggregateRating"] = rating
	}

	return schema
}

// BreadcrumbItem je jedan segment putanje.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// Breadcrumb gradi BreadcrumbList sa pozicijama od 1.
func (b *SchemaBuilder) Breadcrumb(items []BreadcrumbItem) map[string]any {
	elements := make([]map[string]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     b.qualifyURL(item.URL),
		})
	}

	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// FAQItem je par pitanje/odgovor.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQ gradi FAQPage zapis.
func (b *SchemaBuilder) FAQ(items []FAQItem) map[string]any {
	entities := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}

	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// ServiceParams su ulazni podaci za Service zapis.
type ServiceParams struct {
	Name        string
	Description string
	ServiceType string
	AreaServed  []string
	PriceRange  string
	Image       string
}

// Service gradi Service zapis sa katalogom ponuda.
func (b *SchemaBuilder) Service(p ServiceParams) map[string]any {
	if p.PriceRange == "" {
		p.PriceRange = "$$"
	}

	areas := make([]map[string]any, 0, len(p.AreaServed))
	for _, area := range p.AreaServed {
		areas = append(areas, map[string]any{
			"@type": "City",
			"name":  area,
		})
	}

	schema := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        p.Name,
		"description": p.Description,
		"provider": map[string]any{
			"@type": "Organization",
			"name":  "KamenPro",
			"@id":   b.baseURL + "/#organization",
		},
		"serviceType": p.ServiceType,
		"areaServed":  areas,
		"priceRange":  p.PriceRange,
		"hasOfferCatalog": map[string]any{
			"@type": "OfferCatalog",
			"name":  p.Name,
			"itemListElement": []map[string]any{
				{
					"@type": "Offer",
					"itemOffered": map[string]any{
						"@type":       "Service",
						"name":        "Besplatna procjena",
						"description": "Besplatna procjena projekta na licu mjesta",
					},
				},
				{
					"@type": "Offer",
					"itemOffered": map[string]any{
						"@type":       "Service",
						"name":        "Profesionalna montaža",
						"description": "Stručna ugradnja dekorativnog kamena",
					},
				},
				{
					"@type": "Offer",
					"itemOffered": map[string]any{
						"@type":       "Service",
						"name":        "Garancija",
						"description": "5 godina garancije na proizvode i rad",
					},
				},
			},
		},
	}

	if p.Image != "" {
		schema["image"] = b.qualifyURL(p.Image)
	}

	return schema
}
