package gmb

import (
	"fmt"
	"strings"
)

// Gotovi šabloni objava. Svaki vraća kompletnu objavu na srpskom,
// spremnu za CreatePost.

// NewProductPost najavljuje novu kolekciju proizvoda u gradu.
func NewProductPost(baseURL, productName, city string) Post {
	return Post{
		LanguageCode: "sr",
		Summary: fmt.Sprintf("🏗️ Nova kolekcija %s stigla u KamenPro %s!\n\n"+
			"✨ Vrhunski kvalitet prirodnog kamena\n"+
			"📐 Različite dimenzije i boje\n"+
			"🚚 Besplatna dostava za narudžbe preko 500KM\n\n"+
			"#DekorativniKamen #%s #KamenPro%s",
			productName, city, strings.ReplaceAll(productName, " ", ""), city),
		CallToAction: &CallToAction{
			ActionType: ActionLearnMore,
			URL:        baseURL + "/lokacije/" + strings.ToLower(city),
		},
		TopicType: TopicStandard,
	}
}

// PromotionPost najavljuje akcijski popust.
func PromotionPost(discount, city string) Post {
	return Post{
		LanguageCode: "sr",
		Summary: fmt.Sprintf("🎉 Specijalna akcija u KamenPro %s!\n\n"+
			"💰 %s popusta na sve proizvode\n"+
			"⏰ Ograničeno vrijeme\n"+
			"📞 Pozovite za više informacija\n\n"+
			"#Akcija #DekorativniKamen #KamenPro",
			city, discount),
		CallToAction: &CallToAction{ActionType: ActionCall},
		TopicType:    TopicOffer,
		Offer: &Offer{
			TermsConditions: "Akcija važi do isteka zaliha. Ne može se kombinovati sa drugim akcijama.",
		},
	}
}

// ProjectShowcasePost predstavlja završen projekat.
func ProjectShowcasePost(baseURL, projectName, city string) Post {
	return Post{
		LanguageCode: "sr",
		Summary: fmt.Sprintf("📸 Ponosni smo na završen projekat %q u %s!\n\n"+
			"🏆 Profesionalna montaža dekorativnog kamena\n"+
			"✨ Zadovoljan klijent\n"+
			"🔨 Stručan tim\n\n"+
			"Kontaktirajte nas za vašu besplatnu procjenu!",
			projectName, city),
		CallToAction: &CallToAction{
			ActionType: ActionLearnMore,
			URL:        baseURL + "/reference",
		},
		TopicType: TopicStandard,
	}
}

// TipPost deli savet stručnjaka.
func TipPost(baseURL, tip, city string) Post {
	return Post{
		LanguageCode: "sr",
		Summary: fmt.Sprintf("💡 Savjet stručnjaka iz KamenPro %s:\n\n%s\n\n"+
			"🏗️ Za personalizirane savjete, posjetite naš showroom ili nas kontaktirajte!\n\n"+
			"#StručniSavjeti #DekorativniKamen #KamenPro",
			city, tip),
		CallToAction: &CallToAction{
			ActionType: ActionLearnMore,
			URL:        baseURL + "/lokacije/" + strings.ToLower(city),
		},
		TopicType: TopicStandard,
	}
}
