package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// CatalogStore je deo repozitorijuma kataloga koji servis koristi.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductDetail(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Ključevi keša. Verzija u prefiksu omogućava invalidaciju promenom šeme.
const (
	cacheKeyProducts   = "catalog:v1:products"
	cacheKeyCategories = "catalog:v1:categories"
	cacheKeyProduct    = "catalog:v1:product:"
)

// CatalogService čita katalog kroz read-through keš. Redis je opcion:
// bez njega (ili pri njegovom padu) svako čitanje ide u bazu. Keš
// pokriva samo javne kataloške podatke.
type CatalogService struct {
	store CatalogStore
	cache *redis.Client
	ttl   time.Duration
}

// NewCatalogService pravi servis kataloga. cache sme biti nil.
func NewCatalogService(store CatalogStore, cache *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{store: store, cache: cache, ttl: ttl}
}

// ListProducts vraća sve proizvode, iz keša kada je moguće.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if s.readCached(ctx, cacheKeyProducts, &products) {
		return products, nil
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCached(ctx, cacheKeyProducts, products)
	return products, nil
}

// GetProductDetail vraća proizvod sa slikama, karakteristikama i zalihama.
func (s *CatalogService) GetProductDetail(ctx context.Context, id uuid.UUID) (*models.ProductDetail, error) {
	key := cacheKeyProduct + id.String()

	var detail models.ProductDetail
	if s.readCached(ctx, key, &detail) {
		return &detail, nil
	}

	fresh, err := s.store.GetProductDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	s.writeCached(ctx, key, fresh)
	return fresh, nil
}

// ListCategories vraća sve kategorije, iz keša kada je moguće.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if s.readCached(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCached(ctx, cacheKeyCategories, categories)
	return categories, nil
}

// InvalidateProduct briše keširan detalj proizvoda i listu proizvoda.
func (s *CatalogService) InvalidateProduct(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyProduct+id.String(), cacheKeyProducts).Err(); err != nil {
		logger.Log.WithError(err).Warn("invalidacija keša proizvoda nije uspela")
	}
}

// InvalidateAll briše sve kataloške ključeve.
func (s *CatalogService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyProducts, cacheKeyCategories).Err(); err != nil {
		logger.Log.WithError(err).Warn("invalidacija keša kataloga nije uspela")
	}
}

// readCached puni dest iz keša. Vraća false za promašaj, isključen keš
// ili bilo koju grešku; greške se samo loguju jer keš nikad ne sme da
// obori čitanje.
func (s *CatalogService) readCached(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).WithField("key", key).Warn("čitanje iz keša nije uspelo")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("keširan zapis nije čitljiv, ignoriše se")
		return false
	}
	return true
}

// writeCached upisuje vrednost u keš sa TTL-om, best-effort.
func (s *CatalogService) writeCached(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("serijalizacija za keš nije uspela")
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("upis u keš nije uspeo")
	}
}
