// Package seo sadrži generatore SEO metapodataka sajta: alt tekstove za
// slike, sitemap i strukturirane podatke (schema.org).
package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ImageContext su opcioni opisni podaci uz referencu na sliku. Polja koja
// nedostaju izvode se iz imena fajla.
type ImageContext struct {
	ProductName     string
	ProductType     string
	Location        string
	Context         ImagePresentation
	RoomType        string
	Style           string
	Color           string
	Texture         string
	ApplicationArea ApplicationArea
	Keywords        []string
}

// ImagePresentation je zatvoren skup konteksta prikaza slike.
type ImagePresentation string

const (
	PresentationNone         ImagePresentation = ""
	PresentationProduct      ImagePresentation = "product"
	PresentationProject      ImagePresentation = "project"
	PresentationShowroom     ImagePresentation = "showroom"
	PresentationInstallation ImagePresentation = "installation"
	PresentationHero         ImagePresentation = "hero"
	PresentationThumbnail    ImagePresentation = "thumbnail"
)

// ApplicationArea je zatvoren skup područja primene.
type ApplicationArea string

const (
	AreaNone     ApplicationArea = ""
	AreaInterior ApplicationArea = "interior"
	AreaExterior ApplicationArea = "exterior"
	AreaBoth     ApplicationArea = "both"
)

// DetailedAltTag je sintetizovan rezultat za jednu sliku.
type DetailedAltTag struct {
	Alt         string   `json:"alt"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	SEOScore    int      `json:"seoScore"`
}

var baseKeywords = []string{"dekorativni kamen", "kamene obloge", "zidne obloge"}

var imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|avif)$`)

// GenerateAltTag pravi detaljan alt tag za sliku. Svaki ulaz daje rezultat:
// podaci koji nedostaju izvode se iz imena fajla, a krajnja rezerva je
// generički opis "Dekorativni kamen".
func GenerateAltTag(filename string, ctx ImageContext) DetailedAltTag {
	merged := mergeContext(inferFromFilename(filename), ctx)

	alt := buildAltText(merged)

	keywords := make([]string, 0, 16)
	keywords = append(keywords, baseKeywords...)
	keywords = append(keywords, buildKeywords(merged)...)
	keywords = append(keywords, merged.Keywords...)
	keywords = dedupeKeywords(keywords)

	return DetailedAltTag{
		Alt:         alt,
		Title:       buildTitleText(merged),
		Description: buildDescriptionText(merged),
		Keywords:    keywords,
		SEOScore:    calculateSEOScore(alt, keywords),
	}
}

// inferFromFilename izvodi podatke o slici iz samog imena fajla.
func inferFromFilename(filename string) ImageContext {
	var ctx ImageContext
	clean := strings.ToLower(filename)
	clean = imageExtRe.ReplaceAllString(clean, "")
	clean = strings.NewReplacer("-", " ", "_", " ").Replace(clean)

	switch {
	case strings.Contains(clean, "travertin"):
		ctx.ProductName = "Travertin"
		ctx.ProductType = "prirodni kamen"
	case strings.Contains(clean, "cigla"):
		ctx.ProductName = "Dekorativna cigla"
		ctx.ProductType = "umjetni kamen"
	case strings.Contains(clean, "dolomite"):
		ctx.ProductName = "Dolomit"
		ctx.ProductType = "prirodni kamen"
	case strings.Contains(clean, "mozaik"):
		ctx.ProductName = "Kameni mozaik"
		ctx.ProductType = "mozaik"
	}

	switch {
	case strings.Contains(clean, "white"), strings.Contains(clean, "bijel"):
		ctx.Color = "bijela"
	case strings.Contains(clean, "black"), strings.Contains(clean, "crn"):
		ctx.Color = "crna"
	case strings.Contains(clean, "anthracite"), strings.Contains(clean, "antracit"):
		ctx.Color = "antracit"
	case strings.Contains(clean, "beige"), strings.Contains(clean, "bež"):
		ctx.Color = "bež"
	}

	switch {
	case strings.Contains(clean, "rustik"):
		ctx.Style = "rustikalni"
	case strings.Contains(clean, "modern"):
		ctx.Style = "moderni"
	case strings.Contains(clean, "classic"):
		ctx.Style = "klasični"
	}

	switch {
	case strings.Contains(clean, "showroom"), strings.Contains(clean, "izlog"):
		ctx.Context = PresentationShowroom
	case strings.Contains(clean, "project"), strings.Contains(clean, "projekat"):
		ctx.Context = PresentationProject
	case strings.Contains(clean, "installation"), strings.Contains(clean, "montaža"):
		ctx.Context = PresentationInstallation
	}

	return ctx
}

// mergeContext spaja izvedene podatke sa eksplicitnim; eksplicitni uvek
// imaju prednost.
func mergeContext(inferred, explicit ImageContext) ImageContext {
	merged := inferred
	if explicit.ProductName != "" {
		merged.ProductName = explicit.ProductName
	}
	if explicit.ProductType != "" {
		merged.ProductType = explicit.ProductType
	}
	if explicit.Location != "" {
		merged.Location = explicit.Location
	}
	if explicit.Context != PresentationNone {
		merged.Context = explicit.Context
	}
	if explicit.RoomType != "" {
		merged.RoomType = explicit.RoomType
	}
	if explicit.Style != "" {
		merged.Style = explicit.Style
	}
	if explicit.Color != "" {
		merged.Color = explicit.Color
	}
	if explicit.Texture != "" {
		merged.Texture = explicit.Texture
	}
	if explicit.ApplicationArea != AreaNone {
		merged.ApplicationArea = explicit.ApplicationArea
	}
	merged.Keywords = explicit.Keywords
	return merged
}

func buildAltText(ctx ImageContext) string {
	parts := make([]string, 0, 6)

	switch {
	case ctx.ProductName != "":
		parts = append(parts, ctx.ProductName)
	case ctx.ProductType != "":
		parts = append(parts, "Dekorativni "+ctx.ProductType)
	default:
		parts = append(parts, "Dekorativni kamen")
	}

	if ctx.Color != "" {
		parts = append(parts, ctx.Color+" boja")
	}
	if ctx.Style != "" {
		parts = append(parts, ctx.Style+" stil")
	}

	switch ctx.Context {
	case PresentationShowroom:
		parts = append(parts, "u showroom-u")
	case PresentationProject:
		parts = append(parts, "na realizovanom projektu")
	case PresentationInstallation:
		parts = append(parts, "tokom profesionalne montaže")
	case PresentationHero:
		parts = append(parts, "za dom i poslovni prostor")
	}

	if ctx.Location != "" {
		parts = append(parts, "u "+locationDisplayName(ctx.Location))
	}

	switch ctx.ApplicationArea {
	case AreaInterior:
		parts = append(parts, "za enterijer")
	case AreaExterior:
		parts = append(parts, "za eksterijer")
	case AreaBoth:
		parts = append(parts, "za enterijer i eksterijer")
	}

	return strings.Join(parts, " ")
}

func buildTitleText(ctx ImageContext) string {
	switch {
	case ctx.ProductName != "" && ctx.Location != "":
		return ctx.ProductName + " - KamenPro " + locationDisplayName(ctx.Location)
	case ctx.ProductName != "":
		return ctx.ProductName + " - KamenPro"
	case ctx.Location != "":
		return "Dekorativni kamen - KamenPro " + locationDisplayName(ctx.Location)
	default:
		return "Dekorativni kamen - KamenPro"
	}
}

func buildDescriptionText(ctx ImageContext) string {
	parts := make([]string, 0, 3)

	if ctx.ProductName != "" {
		parts = append(parts, "Visokokvalitetni "+strings.ToLower(ctx.ProductName))
	} else {
		parts = append(parts, "Profesionalni dekorativni kamen")
	}

	if ctx.Location != "" {
		parts = append(parts, "dostupan u "+locationDisplayName(ctx.Location))
	}

	parts = append(parts, "sa besplatnom dostavom i stručnom montažom")

	return strings.Join(parts, " ") + "."
}

func buildKeywords(ctx ImageContext) []string {
	keywords := make([]string, 0, 12)

	if ctx.ProductName != "" {
		lower := strings.ToLower(ctx.ProductName)
		keywords = append(keywords, lower, lower+" kamen")
	}
	if ctx.ProductType != "" {
		keywords = append(keywords, ctx.ProductType)
	}
	if ctx.Color != "" {
		keywords = append(keywords, ctx.Color+" kamen", ctx.Color+" obloge")
	}
	if ctx.Style != "" {
		keywords = append(keywords, ctx.Style+" kamen", ctx.Style+" obloge")
	}
	if ctx.Location != "" {
		loc := strings.ToLower(locationDisplayName(ctx.Location))
		keywords = append(keywords,
			"dekorativni kamen "+loc,
			"kamene obloge "+loc,
			"zidne obloge "+loc,
		)
	}

	switch ctx.Context {
	case PresentationShowroom:
		keywords = append(keywords, "showroom", "izložba kamena")
	case PresentationProject:
		keywords = append(keywords, "projekat", "realizacija", "montaža kamena")
	case PresentationInstallation:
		keywords = append(keywords, "ugradnja", "montaža", "stručna ugradnja")
	}

	switch ctx.ApplicationArea {
	case AreaInterior:
		keywords = append(keywords, "enterijer", "unutrašnji zidovi")
	case AreaExterior:
		keywords = append(keywords, "eksterijer", "fasada", "vanjski zidovi")
	case AreaBoth:
		keywords = append(keywords, "enterijer", "eksterijer", "fasada")
	}

	return keywords
}

var descriptiveWords = []string{"visokokvalitetni", "profesionalni", "prirodni", "umjetni", "stručni"}

// calculateSEOScore računa heurističku ocenu alt teksta u opsegu [0,100].
func calculateSEOScore(alt string, keywords []string) int {
	score := 0

	// Dužina: optimalno između 50 i 125 karaktera.
	length := utf8.RuneCountInString(alt)
	switch {
	case length >= 50 && length <= 125:
		score += 30
	case length > 125 && length <= 150:
		score += 25
	case length > 150:
		score += 15
	default:
		score += 10
	}

	altLower := strings.ToLower(alt)

	keywordMatches := 0
	for _, keyword := range keywords {
		if strings.Contains(altLower, strings.ToLower(keyword)) {
			keywordMatches++
		}
	}
	score += minInt(keywordMatches*10, 40)

	descriptiveMatches := 0
	for _, word := range descriptiveWords {
		if strings.Contains(altLower, word) {
			descriptiveMatches++
		}
	}
	score += minInt(descriptiveMatches*5, 15)

	if strings.Contains(altLower, "bijeljina") ||
		strings.Contains(altLower, "brčko") ||
		strings.Contains(altLower, "tuzla") {
		score += 15
	}

	return minInt(score, 100)
}

// dedupeKeywords uklanja duplikate čuvajući redosled prvog pojavljivanja.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// locationDisplayName vraća genitiv grada za tri podržane lokacije;
// nepoznat slug se vraća neizmenjen.
func locationDisplayName(slug string) string {
	switch strings.ToLower(slug) {
	case "bijeljina":
		return "Bijeljini"
	case "brcko":
		return "Brčkom"
	case "tuzla":
		return "Tuzli"
	default:
		return slug
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
