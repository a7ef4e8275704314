package seo

import "strings"

// MetaTags su gotovi meta podaci jedne stranice.
type MetaTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Canonical   string `json:"canonical,omitempty"`
	OGImage     string `json:"ogImage,omitempty"`
}

// defaultMetaKeywords se dodaju na kraj liste svake stranice.
var defaultMetaKeywords = []string{
	"kamene obloge",
	"dekorativni kamen",
	"zidne obloge",
	"prirodni kamen",
	"fasadni kamen",
	"enterijer kamen",
	"bijeljina",
	"brčko",
	"tuzla",
	"bosna i hercegovina",
	"kamenpro",
}

// LocationMeta drži ručno pisane meta podatke po gradu.
type LocationMeta struct {
	Title       string
	Description string
	Keywords    []string
}

var locationMetaTags = map[string]LocationMeta{
	"bijeljina": {
		Title:       "Dekorativni Kamen Bijeljina | Zidne Obloge | KamenPro",
		Description: "Kupiti dekorativni kamen u Bijeljini. Profesionalne dekorativne zidne obloge sa besplatnom dostavom i montažom. Kontaktirajte KamenPro danas!",
		Keywords: []string{
			"dekorativni kamen bijeljina",
			"kamene obloge bijeljina",
			"zidne obloge bijeljina",
			"prirodni kamen bijeljina",
			"fasadni kamen bijeljina",
			"kupiti dekorativni kamen bijeljina",
			"kamenpro bijeljina",
		},
	},
	"brcko": {
		Title:       "Dekorativni Kamen Brčko | Zidne Obloge | KamenPro",
		Description: "Kupiti dekorativni kamen u Brčkom. Vrhunske dekorativne zidne obloge za vaš dom ili poslovni prostor. Besplatna procjena projekta.",
		Keywords: []string{
			"dekorativni kamen brčko",
			"kamene obloge brčko",
			"zidne obloge brčko",
			"prirodni kamen brčko",
			"fasadni kamen brčko",
			"kupiti dekorativni kamen brčko",
			"kamenpro brčko",
			"brčko distrikt",
		},
	},
	"tuzla": {
		Title:       "Dekorativni Kamen Tuzla | Zidne Obloge | KamenPro",
		Description: "Kupiti dekorativni kamen u Tuzli. Kvalitetne dekorativne zidne obloge sa garancijom. Pogledajte našu ponudu i kontaktirajte nas.",
		Keywords: []string{
			"dekorativni kamen tuzla",
			"kamene obloge tuzla",
			"zidne obloge tuzla",
			"prirodni kamen tuzla",
			"fasadni kamen tuzla",
			"kupiti dekorativni kamen tuzla",
			"kamenpro tuzla",
			"tuzlanski kanton",
		},
	},
}

var productListMeta = LocationMeta{
	Title:       "Proizvodi | Dekorativni Kamen | KamenPro",
	Description: "Otkrijte naš širok izbor dekorativnog kamena. Prirodne i umjetne kamene obloge za enterijer i eksterijer. Najbolje cijene u BiH.",
	Keywords: []string{
		"proizvodi dekorativni kamen",
		"katalog kamenih obloga",
		"vrste dekorativnog kamena",
		"cijena dekorativni kamen",
		"kupiti kamene obloge",
	},
}

// LocationMetaTags vraća ručne meta podatke grada ako postoje.
func LocationMetaTags(slug string) (LocationMeta, bool) {
	m, ok := locationMetaTags[slug]
	return m, ok
}

// ProductListMetaTags vraća meta podatke kataloške stranice.
func ProductListMetaTags() LocationMeta {
	return productListMeta
}

// PageTitle gradi naslov stranice sa brendom na kraju.
func PageTitle(title, location string) string {
	if location != "" {
		return title + " " + location + " | KamenPro"
	}
	return title + " | KamenPro"
}

// MetaDescription zamenjuje {location} u šablonu opisa.
func MetaDescription(description, location string) string {
	if location == "" {
		return description
	}
	return strings.ReplaceAll(description, "{location}", location)
}

// maxKeywords ograničava dužinu keywords meta taga.
const maxKeywords = 20

// Keywords spaja bazne, lokacijske i podrazumevane ključne reči,
// uklanja duplikate uz očuvanje redosleda i seče listu na 20.
func Keywords(base, location []string) string {
	combined := make([]string, 0, len(base)+len(location)+len(defaultMetaKeywords))
	combined = append(combined, base...)
	combined = append(combined, location...)
	combined = append(combined, defaultMetaKeywords...)

	deduped := dedupeKeywords(combined)
	if len(deduped) > maxKeywords {
		deduped = deduped[:maxKeywords]
	}
	return strings.Join(deduped, ", ")
}

// CanonicalURL gradi kanonski URL iz putanje stranice.
func (b *SchemaBuilder) CanonicalURL(path string) string {
	return b.baseURL + path
}
