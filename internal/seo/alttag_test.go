package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAltTag_InferFromFilename(t *testing.T) {
	tag := GenerateAltTag("travertin-white.jpg", ImageContext{})

	assert.Contains(t, tag.Alt, "Travertin")
	assert.Contains(t, tag.Alt, "bijela boja")
	assert.Contains(t, tag.Keywords, "travertin")
	assert.Contains(t, tag.Keywords, "bijela kamen")
}

func TestGenerateAltTag_ExplicitOverridesFilename(t *testing.T) {
	ctx := ImageContext{
		ProductName: "Travertin Classic",
		Color:       "antracit",
	}
	tag := GenerateAltTag("cigla-white.jpg", ctx)

	// Eksplicitni podaci imaju prednost nad zaključenim iz imena fajla.
	assert.Contains(t, tag.Alt, "Travertin Classic")
	assert.Contains(t, tag.Alt, "antracit boja")
	assert.NotContains(t, tag.Alt, "bijela")
	assert.NotContains(t, tag.Alt, "cigla")
}

func TestGenerateAltTag_LocationGenitive(t *testing.T) {
	tag := GenerateAltTag("showroom.jpg", ImageContext{Location: "bijeljina"})
	assert.Contains(t, tag.Alt, "u Bijeljini")

	tag = GenerateAltTag("showroom.jpg", ImageContext{Location: "brcko"})
	assert.Contains(t, tag.Alt, "u Brčkom")

	tag = GenerateAltTag("showroom.jpg", ImageContext{Location: "tuzla"})
	assert.Contains(t, tag.Alt, "u Tuzli")
}

func TestGenerateAltTag_UnknownLocationFallsBackToSlug(t *testing.T) {
	tag := GenerateAltTag("kamen.jpg", ImageContext{Location: "banja-luka"})
	assert.Contains(t, tag.Alt, "u banja-luka")
}

func TestGenerateAltTag_Deterministic(t *testing.T) {
	ctx := ImageContext{
		ProductName: "Dolomit White",
		Location:    "bijeljina",
		Context:     PresentationShowroom,
	}

	first := GenerateAltTag("dolomite-white.jpg", ctx)
	for i := 0; i < 5; i++ {
		again := GenerateAltTag("dolomite-white.jpg", ctx)
		assert.Equal(t, first, again)
	}
}

func TestGenerateAltTag_KeywordsDedupedAndOrdered(t *testing.T) {
	tag := GenerateAltTag("travertin-travertin.jpg", ImageContext{
		ProductName: "Travertin",
		ProductType: "prirodni kamen",
		Location:    "tuzla",
		Keywords:    []string{"travertin", "kamene obloge"},
	})

	seen := map[string]bool{}
	for _, kw := range tag.Keywords {
		require.False(t, seen[kw], "duplikat ključne reči: %s", kw)
		seen[kw] = true
	}

	// Bazne ključne reči uvek dolaze prve.
	require.GreaterOrEqual(t, len(tag.Keywords), 3)
	assert.Equal(t, "dekorativni kamen", tag.Keywords[0])
	assert.Equal(t, "kamene obloge", tag.Keywords[1])
	assert.Equal(t, "zidne obloge", tag.Keywords[2])
}

func TestGenerateAltTag_ScoreBounds(t *testing.T) {
	cases := []struct {
		name string
		file string
		ctx  ImageContext
	}{
		{"prazan kontekst", "x.jpg", ImageContext{}},
		{"pun kontekst", "travertin-white.jpg", ImageContext{
			ProductName:     "Travertin Classic",
			ProductType:     "prirodni kamen",
			Color:           "bijela",
			Style:           "rustikalni",
			Location:        "bijeljina",
			Context:         PresentationShowroom,
			ApplicationArea: AreaInterior,
		}},
		{"samo lokacija", "a.png", ImageContext{Location: "tuzla"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag := GenerateAltTag(tc.file, tc.ctx)
			assert.GreaterOrEqual(t, tag.SEOScore, 0)
			assert.LessOrEqual(t, tag.SEOScore, 100)
		})
	}
}

func TestGenerateAltTag_RichContextScoresHigher(t *testing.T) {
	poor := GenerateAltTag("x.jpg", ImageContext{})
	rich := GenerateAltTag("travertin-white.jpg", ImageContext{
		ProductName: "Travertin Classic",
		ProductType: "prirodni kamen",
		Color:       "bijela",
		Location:    "bijeljina",
		Context:     PresentationShowroom,
	})

	assert.Greater(t, rich.SEOScore, poor.SEOScore)
}

func TestGenerateAltTag_DescriptionEndsWithPeriod(t *testing.T) {
	tag := GenerateAltTag("cigla-white.jpg", ImageContext{Location: "brcko"})
	assert.True(t, strings.HasSuffix(tag.Description, "."))
	assert.Contains(t, tag.Description, "dostupan u Brčkom")
}

func TestPredefinedAltTags_CoverHeroAndLocations(t *testing.T) {
	tags := PredefinedAltTags()

	for _, key := range []string{"hero", "hero-bijeljina", "hero-brcko", "hero-tuzla", "travertin", "cigla", "showroom"} {
		tag, ok := tags[key]
		require.True(t, ok, "nedostaje predefinisani tag: %s", key)
		assert.NotEmpty(t, tag.Alt)
		assert.NotEmpty(t, tag.Keywords)
	}
}

func TestProductImageURL_MatchesByNameFragments(t *testing.T) {
	url := ProductImageURL("Dolomite White Premium")
	assert.Contains(t, url, "Dolomite")
	assert.True(t, strings.HasPrefix(url, "https://"))
}

func TestProductImageURL_UnknownFallsBackToPlaceholder(t *testing.T) {
	url := ProductImageURL("Mermer Sivi")
	assert.Equal(t, "/images/products/placeholder.jpg", url)
}
