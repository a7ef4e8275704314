package seo

import "strings"

// storageBase je javni bucket sa slikama proizvoda.
const storageBase = "https://yodddwoxxifcuawbmzop.supabase.co/storage/v1/object/public/product-images"

// placeholderImage se koristi kada naziv proizvoda ne odgovara nijednoj
// poznatoj kombinaciji kategorije i boje.
const placeholderImage = "/images/products/placeholder.jpg"

type productImageRule struct {
	category string
	color    string
	path     string
}

// Tabela je namerno mala i pokriva samo poznate serije proizvoda; svaki
// naziv van nje dobija generičku sliku.
var productImageRules = []productImageRule{
	{"dolomite", "white", storageBase + "/Dolomite/White/Dolomite%20-%20White%20I%20-%20Kvadrat.jpg"},
	{"dolomite", "anthracite", storageBase + "/Dolomite/Anthracite/Dolomite%20-%20Anthracite%20I%20-%20Kvadrat.jpg"},
	{"dolomite", "red", storageBase + "/Dolomite/Red/Dolomite%20-%20Red%20I%20-%20Kvadrat.jpg"},
	{"kamen", "white", storageBase + "/Kamen/White/Kamen%20-%20White%20-%20Kvadrat.jpg"},
	{"kamen", "anthracite", storageBase + "/Kamen/Anthracite/Kamen%20-%20Anthracite%20-%20Kvadrat.jpg"},
	{"kamen", "red", storageBase + "/Kamen/Red/Kamen%20-%20Red%20-%20Kvadrat.jpg"},
	{"cigla", "white", storageBase + "/Cigla/Rustik/White/Cigla%20-%20Rustik%20-%20White%20-%20Kvadrat.jpg"},
	{"cigla", "anthracite", storageBase + "/Cigla/Rustik/Anthracite/Cigla%20-%20Rustik%20-%20Anthracite%20-%20Kvadrat.jpg"},
	{"cigla", "red", storageBase + "/Cigla/Rustik/Red/Cigla%20-%20Rustik%20-%20Red%20-%20Kvadrat.jpg"},
}

// ProductImageURL bira reprezentativnu sliku za proizvod poređenjem naziva
// sa poznatim kategorijama i bojama. Pogađanje je best-effort: nepoznata
// imenovanja dobijaju placeholder, nikad grešku.
func ProductImageURL(productName string) string {
	name := strings.ToLower(productName)
	for _, rule := range productImageRules {
		if strings.Contains(name, rule.category) && strings.Contains(name, rule.color) {
			return rule.path
		}
	}
	return placeholderImage
}
