package seo

// PredefinedAltTags vraća unapred sračunate alt tagove za standardne slike
// sajta (hero po lokaciji, glavni proizvodi, showroom).
func PredefinedAltTags() map[string]DetailedAltTag {
	return map[string]DetailedAltTag{
		"hero": GenerateAltTag("hero-dekorativni-kamen.jpg", ImageContext{
			Context:         PresentationHero,
			ApplicationArea: AreaBoth,
			Keywords:        []string{"najbolji izbor", "vrhunski kvalitet"},
		}),
		"hero-bijeljina": GenerateAltTag("hero-bijeljina.jpg", ImageContext{
			Context:         PresentationHero,
			Location:        "bijeljina",
			ApplicationArea: AreaBoth,
		}),
		"hero-brcko": GenerateAltTag("hero-brcko.jpg", ImageContext{
			Context:         PresentationHero,
			Location:        "brcko",
			ApplicationArea: AreaBoth,
		}),
		"hero-tuzla": GenerateAltTag("hero-tuzla.jpg", ImageContext{
			Context:         PresentationHero,
			Location:        "tuzla",
			ApplicationArea: AreaBoth,
		}),
		"travertin": GenerateAltTag("travertin-white.jpg", ImageContext{
			ProductName:     "Travertin",
			ProductType:     "prirodni kamen",
			Color:           "bijela",
			Context:         PresentationProduct,
			ApplicationArea: AreaBoth,
		}),
		"cigla": GenerateAltTag("cigla-rustik-red.jpg", ImageContext{
			ProductName:     "Dekorativna cigla",
			ProductType:     "umjetni kamen",
			Color:           "crvena",
			Style:           "rustikalni",
			Context:         PresentationProduct,
			ApplicationArea: AreaBoth,
		}),
		"showroom": GenerateAltTag("showroom-interior.jpg", ImageContext{
			Context:  PresentationShowroom,
			Keywords: []string{"ekspozicija", "izbor proizvoda"},
		}),
	}
}
