package seo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamenpro/kamenpro-backend/internal/models"
)

type fakeProductLister struct {
	products []models.Product
	err      error
	calls    int
}

func (f *fakeProductLister) ListProducts(ctx context.Context) ([]models.Product, error) {
	f.calls++
	return f.products, f.err
}

func fixedTime() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func testProducts() []models.Product {
	updated := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: uuid.New(), Naziv: "Dolomite White", DatumAzuriranja: &updated},
		{ID: uuid.New(), Naziv: "Cigla Rustik Red"},
	}
}

func TestSitemapGenerator_Generate_AllSections(t *testing.T) {
	lister := &fakeProductLister{products: testProducts()}
	gen := NewSitemapGenerator("https://kamenpro.net", lister)
	gen.now = fixedTime

	xml, err := gen.Generate(context.Background(), SitemapOptions{})
	require.NoError(t, err)

	// 5 statičnih + 3 lokacije + 2 proizvoda.
	assert.Equal(t, 10, strings.Count(xml, "<loc>"))
	assert.Contains(t, xml, "<loc>https://kamenpro.net/</loc>")
	assert.Contains(t, xml, "<loc>https://kamenpro.net/proizvodi</loc>")
	assert.Contains(t, xml, "<loc>https://kamenpro.net/kontakt</loc>")

	for _, slug := range []string{"bijeljina", "brcko", "tuzla"} {
		assert.Contains(t, xml, "<loc>https://kamenpro.net/lokacije/"+slug+"</loc>")
		assert.Contains(t, xml, slug+"-og.jpg")
	}
}

func TestSitemapGenerator_Generate_ProductLastMod(t *testing.T) {
	lister := &fakeProductLister{products: testProducts()}
	gen := NewSitemapGenerator("https://kamenpro.net", lister)
	gen.now = fixedTime

	xml, err := gen.Generate(context.Background(), SitemapOptions{})
	require.NoError(t, err)

	// Proizvod sa datumom ažuriranja koristi njega, ostali današnji datum.
	assert.Contains(t, xml, "<lastmod>2025-03-01</lastmod>")
	assert.Contains(t, xml, "<lastmod>2025-06-15</lastmod>")
}

func TestSitemapGenerator_Generate_ProductImagesOptIn(t *testing.T) {
	lister := &fakeProductLister{products: testProducts()}
	gen := NewSitemapGenerator("https://kamenpro.net", lister)
	gen.now = fixedTime

	without, err := gen.Generate(context.Background(), SitemapOptions{})
	require.NoError(t, err)
	assert.NotContains(t, without, "Dolomite White - KamenPro")

	with, err := gen.Generate(context.Background(), SitemapOptions{IncludeProductImages: true})
	require.NoError(t, err)
	assert.Contains(t, with, "Dolomite White - KamenPro")
	assert.Contains(t, with, "supabase.co/storage")
}

func TestSitemapGenerator_Generate_DegradesOnCatalogError(t *testing.T) {
	lister := &fakeProductLister{err: errors.New("connection refused")}
	gen := NewSitemapGenerator("https://kamenpro.net", lister)
	gen.now = fixedTime

	xml, err := gen.Generate(context.Background(), SitemapOptions{})
	require.NoError(t, err)

	// Bez kataloga ostaju statične stranice i lokacije.
	assert.Equal(t, 8, strings.Count(xml, "<loc>"))
	assert.Contains(t, xml, "<loc>https://kamenpro.net/lokacije/tuzla</loc>")
}

func TestSitemapGenerator_Generate_NilListerStaticOnly(t *testing.T) {
	gen := NewSitemapGenerator("https://kamenpro.net/", nil)
	gen.now = fixedTime

	xml, err := gen.Generate(context.Background(), SitemapOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8, strings.Count(xml, "<loc>"))
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "http://www.google.com/schemas/sitemap-image/1.1")
	// Završni slash baznog URL-a se normalizuje.
	assert.NotContains(t, xml, "kamenpro.net//")
}

func TestSitemapGenerator_Generate_FreshFetchPerCall(t *testing.T) {
	lister := &fakeProductLister{products: testProducts()}
	gen := NewSitemapGenerator("https://kamenpro.net", lister)
	gen.now = fixedTime

	for i := 0; i < 3; i++ {
		_, err := gen.Generate(context.Background(), SitemapOptions{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, lister.calls)
}
