package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// CatalogRepository čita katalog proizvoda. Katalog je u vlasništvu
// eksternog sistema, pa su sve operacije isključivo čitanje.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListProducts vraća sve proizvode sortirane po nazivu.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products, `
		SELECT id, sifra, naziv, cena_po_m2, valuta, opis, kategorija_id,
		       tezina_po_m2, debljina_min, debljina_max, datum_kreiranja, datum_azuriranja
		FROM proizvodi ORDER BY naziv
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog: lista proizvoda: %w", err)
	}
	return products, nil
}

// GetProductByID vraća proizvod po ID-u.
func (r *CatalogRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT id, sifra, naziv, cena_po_m2, valuta, opis, kategorija_id,
		       tezina_po_m2, debljina_min, debljina_max, datum_kreiranja, datum_azuriranja
		FROM proizvodi WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("catalog: proizvod %s: %w", id, err)
	}
	return &product, nil
}

// ListCategories vraća sve kategorije sortirane po nazivu.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, naziv, opis, datum_kreiranja
		FROM kategorije ORDER BY naziv
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog: lista kategorija: %w", err)
	}
	return categories, nil
}

// GetCategoryByID vraća kategoriju po ID-u.
func (r *CatalogRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.GetContext(ctx, &category, `
		SELECT id, naziv, opis, datum_kreiranja
		FROM kategorije WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("catalog: kategorija %s: %w", id, err)
	}
	return &category, nil
}

// ListProductImages vraća slike proizvoda po redosledu prikaza.
func (r *CatalogRepository) ListProductImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.SelectContext(ctx, &images, `
		SELECT id, proizvod_id, url_slike, tip_slike, alt_tekst, glavna_slika,
		       redosled_prikaza, datum_kreiranja
		FROM slike_proizvoda WHERE proizvod_id = $1 ORDER BY redosled_prikaza
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("catalog: slike proizvoda %s: %w", productID, err)
	}
	return images, nil
}

// ListProductCharacteristics vraća karakteristike proizvoda po redosledu prikaza.
func (r *CatalogRepository) ListProductCharacteristics(ctx context.Context, productID uuid.UUID) ([]models.ProductCharacteristic, error) {
	var characteristics []models.ProductCharacteristic
	err := r.db.SelectContext(ctx, &characteristics, `
		SELECT id, proizvod_id, naziv_karakteristike, vrednost_karakteristike, redosled_prikaza
		FROM karakteristike_proizvoda WHERE proizvod_id = $1 ORDER BY redosled_prikaza
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("catalog: karakteristike proizvoda %s: %w", productID, err)
	}
	return characteristics, nil
}

// GetProductInventory vraća stanje zaliha proizvoda. Ako red ne postoji,
// vraća podrazumevano prazno stanje umesto greške.
func (r *CatalogRepository) GetProductInventory(ctx context.Context, productID uuid.UUID) (models.ProductInventory, error) {
	var inventory models.ProductInventory
	err := r.db.GetContext(ctx, &inventory, `
		SELECT id, proizvod_id, kolicina_m2, min_zaliha, poslednje_azuriranje, napomena, status
		FROM zalihe WHERE proizvod_id = $1
		ORDER BY poslednje_azuriranje DESC LIMIT 1
	`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultInventory(productID), nil
		}
		return models.ProductInventory{}, fmt.Errorf("catalog: zalihe proizvoda %s: %w", productID, err)
	}
	return inventory, nil
}

// GetProductDetail objedinjuje proizvod, kategoriju, slike, karakteristike i zalihe.
func (r *CatalogRepository) GetProductDetail(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error) {
	product, err := r.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := r.GetCategoryByID(ctx, product.KategorijaID)
	if err != nil {
		return nil, err
	}

	images, err := r.ListProductImages(ctx, id)
	if err != nil {
		return nil, err
	}

	characteristics, err := r.ListProductCharacteristics(ctx, id)
	if err != nil {
		return nil, err
	}

	inventory, err := r.GetProductInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ProductDetail{
		Product:         *product,
		Category:        *category,
		Images:          images,
		Characteristics: characteristics,
		Inventory:       inventory,
	}, nil
}

func defaultInventory(productID uuid.UUID) models.ProductInventory {
	napomena := "Nema na stanju"
	return models.ProductInventory{
		ID:                  uuid.New(),
		ProizvodID:          productID,
		KolicinaM2:          0,
		MinZaliha:           0,
		PoslednjeAzuriranje: time.Now(),
		Napomena:            &napomena,
		Status:              "nedostupno",
	}
}
