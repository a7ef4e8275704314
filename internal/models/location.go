package models

// LocationData opisuje jedan grad u kojem KamenPro posluje. Registar je
// statičan: tačno jedan zapis po gradu, ključ je citySlug i ne menja se
// nakon učitavanja modula.
type LocationData struct {
	City            string          `json:"city"`
	CityGenitive    string          `json:"cityGenitive"`
	CitySlug        string          `json:"citySlug"`
	SEOTitle        string          `json:"seoTitle"`
	MetaDescription string          `json:"metaDescription"`
	Keywords        []string        `json:"keywords"`
	Coordinates     Coordinates     `json:"coordinates"`
	Content         LocationContent `json:"content"`
	ContactInfo     ContactInfo     `json:"contactInfo"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationContent struct {
	LocalInfo     string        `json:"localInfo"`
	DeliveryArea  string        `json:"deliveryArea"`
	LocalProjects []string      `json:"localProjects"`
	Testimonials  []Testimonial `json:"testimonials,omitempty"`
}

type Testimonial struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	Project string `json:"project,omitempty"`
}

type ContactInfo struct {
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	WorkingHours WorkingHours `json:"workingHours"`
}

type WorkingHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

var locations = map[string]LocationData{
	"bijeljina": {
		City:            "Bijeljina",
		CityGenitive:    "Bijeljini",
		CitySlug:        "bijeljina",
		SEOTitle:        "Dekorativni Kamen Bijeljina | Zidne Obloge | KamenPro",
		MetaDescription: "Kupiti dekorativni kamen u Bijeljini. Profesionalne dekorativne zidne obloge sa besplatnom dostavom i montažom. Kontaktirajte KamenPro danas!",
		Keywords: []string{
			"Dekorativni Kamen Bijeljina",
			"Dekorativne zidne obloge Bijeljina",
			"Kupiti dekorativni kamen Bijeljina",
			"Kupiti dekorativni kamen u Bijeljini",
			"kamene obloge bijeljina",
			"prirodni kamen bijeljina",
			"fasadni kamen bijeljina",
			"zidne obloge bijeljina",
		},
		Coordinates: Coordinates{Lat: 44.7619, Lng: 19.2144},
		Content: LocationContent{
			LocalInfo:    "KamenPro Bijeljina je vaš pouzdani partner za dekorativni kamen već preko 10 godina. Specijalizovani smo za kvalitetne prirodne i umjetne kamene obloge koje transformišu svaki prostor. Naš tim stručnjaka pruža kompletnu uslugu od savjetovanja do profesionalne montaže.",
			DeliveryArea: "Bijeljina, Janja, Dvorovi, Patkovača, Velika Obarska, Brodac, Dragaljevac, Amajlije",
			LocalProjects: []string{
				"Hotel Drina - renovacija fasade sa prirodnim kamenom",
				"Stambeni kompleks Centar - dekorativni kamen u 15 stanova",
				"Privatne kuće u naselju Ljednica - preko 20 objekata",
				"Restoran Kod Muje - unutrašnja dekoracija kamenom",
				"Poslovni centar Semberija - vanjska fasada",
			},
			Testimonials: []Testimonial{
				{
					Name:    "Marko Pavlović",
					Text:    "Odličan kvalitet kamena i profesionalna montaža. KamenPro je transformisao našu kuću!",
					Rating:  5,
					Project: "Privatna kuća, Ljednica",
				},
				{
					Name:    "Ana Milošević",
					Text:    "Najbolji izbor dekorativnog kamena u Bijeljini. Preporučujem svima!",
					Rating:  5,
					Project: "Stan u centru grada",
				},
			},
		},
		ContactInfo: ContactInfo{
			Phone: "+387 65 678 634",
			Email: "bijeljina@kamenpro.net",
			WorkingHours: WorkingHours{
				Weekdays: "08:00 - 17:00",
				Saturday: "08:00 - 14:00",
				Sunday:   "Zatvoreno",
			},
		},
	},
	"brcko": {
		City:            "Brčko",
		CityGenitive:    "Brčkom",
		CitySlug:        "brcko",
		SEOTitle:        "Dekorativni Kamen Brčko | Zidne Obloge | KamenPro",
		MetaDescription: "Kupiti dekorativni kamen u Brčkom. Vrhunske dekorativne zidne obloge za vaš dom ili poslovni prostor. Besplatna procjena projekta.",
		Keywords: []string{
			"Dekorativni Kamen Brčko",
			"Dekorativne zidne obloge Brčko",
			"Kupiti dekorativni kamen Brčko",
			"Kupiti dekorativni kamen u Brčkom",
			"kamene obloge brčko distrikt",
			"prirodni kamen brčko",
			"fasadni kamen brčko",
			"zidne obloge brčko distrikt",
		},
		Coordinates: Coordinates{Lat: 44.8694, Lng: 18.8081},
		Content: LocationContent{
			LocalInfo:    "KamenPro Brčko nudi najširi asortiman dekorativnog kamena u Brčko Distriktu. Sa preko 50 različitih modela i boja, garantujemo da ćete pronaći savršeno rješenje za vaš prostor. Naš showroom je opremljen sa najnovijim kolekcijama.",
			DeliveryArea: "Brčko Distrikt, Gornji Rahić, Donji Rahić, Brezovo Polje, Grbavica, Bijela, Čelić",
			LocalProjects: []string{
				"Arizona Market - vanjska obloga poslovnih objekata",
				"Gradska vijećnica - renovacija fasade",
				"Novi stambeni blokovi - dekorativni kamen u 30+ stanova",
				"Hotel Jelena - kompletna renovacija enterijera",
				"Sportska dvorana - dekorativne zidne obloge",
			},
			Testimonials: []Testimonial{
				{
					Name:    "Milan Simić",
					Text:    "Profesionalna usluga i vrhunski kvalitet. KamenPro je naš prvi izbor!",
					Rating:  5,
					Project: "Poslovni prostor, Arizona",
				},
				{
					Name:    "Jelena Kostić",
					Text:    "Fantastičan izbor i povoljne cijene. Vrlo sam zadovoljna!",
					Rating:  5,
					Project: "Kuća u Gornjem Rahiću",
				},
			},
		},
		ContactInfo: ContactInfo{
			Phone: "+387 65 678 634",
			Email: "brcko@kamenpro.net",
			WorkingHours: WorkingHours{
				Weekdays: "08:00 - 17:00",
				Saturday: "08:00 - 14:00",
				Sunday:   "Zatvoreno",
			},
		},
	},
	"tuzla": {
		City:            "Tuzla",
		CityGenitive:    "Tuzli",
		CitySlug:        "tuzla",
		SEOTitle:        "Dekorativni Kamen Tuzla | Zidne Obloge | KamenPro",
		MetaDescription: "Kupiti dekorativni kamen u Tuzli. Kvalitetne dekorativne zidne obloge sa garancijom. Pogledajte našu ponudu i kontaktirajte nas.",
		Keywords: []string{
			"Dekorativni Kamen Tuzla",
			"Dekorativne zidne obloge Tuzla",
			"Kupiti dekorativni kamen Tuzla",
			"Kupiti dekorativni kamen u Tuzli",
			"kamene obloge tuzlanski kanton",
			"prirodni kamen tuzla",
			"fasadni kamen tuzla",
			"zidne obloge tuzla",
		},
		Coordinates: Coordinates{Lat: 44.5382, Lng: 18.6734},
		Content: LocationContent{
			LocalInfo:    "KamenPro je vodeći dobavljač dekorativnog kamena u Tuzlanskom kantonu. Naša misija je pružiti vrhunske proizvode i usluge koji će uljepšati vaš dom ili poslovni prostor. Sa timom od preko 15 stručnjaka, garantujemo profesionalnu uslugu.",
			DeliveryArea: "Tuzla, Lukavac, Gračanica, Srebrenik, Živinice, Banovići, Kalesija, Sapna",
			LocalProjects: []string{
				"BKC Tuzla - fasadni kamen na poslovnoj zgradi",
				"Hotel Mellain - unutrašnja dekoracija restorana",
				"Stambeno naselje Stupine - preko 40 privatnih kuća",
				"TC Bingo - renovacija ulaza",
				"Univerzitet u Tuzli - dekorativne obloge u novom krilu",
			},
			Testimonials: []Testimonial{
				{
					Name:    "Amir Hasanović",
					Text:    "Izvrsna saradnja sa KamenPro timom. Preporučujem svima u Tuzli!",
					Rating:  5,
					Project: "Kuća u Stupinama",
				},
				{
					Name:    "Selma Begić",
					Text:    "Kvalitet i cijene su neprikosnoveni. Vrlo profesionalan pristup!",
					Rating:  5,
					Project: "Stan u centru Tuzle",
				},
			},
		},
		ContactInfo: ContactInfo{
			Phone: "+387 65 678 634",
			Email: "tuzla@kamenpro.net",
			WorkingHours: WorkingHours{
				Weekdays: "08:00 - 17:00",
				Saturday: "08:00 - 14:00",
				Sunday:   "Zatvoreno",
			},
		},
	},
}

// locationOrder drži stabilan redosled gradova za sve enumeracije.
var locationOrder = []string{"bijeljina", "brcko", "tuzla"}

// GetLocationBySlug vraća podatke lokacije za zadati slug.
func GetLocationBySlug(slug string) (LocationData, bool) {
	loc, ok := locations[slug]
	return loc, ok
}

// AllLocationSlugs vraća slugove svih podržanih gradova.
func AllLocationSlugs() []string {
	out := make([]string, len(locationOrder))
	copy(out, locationOrder)
	return out
}

// AllLocations vraća sve zapise registra u stabilnom redosledu.
func AllLocations() []LocationData {
	out := make([]LocationData, 0, len(locationOrder))
	for _, slug := range locationOrder {
		out = append(out, locations[slug])
	}
	return out
}
