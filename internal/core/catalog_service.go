package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"reseller-portal-go/internal/cache"
	"reseller-portal-go/internal/models"
)

const (
	catalogListKey       = "catalog:products"
	catalogProductKeyFmt = "catalog:product:%s"
)

// catalogService proxies the commerce catalog through the credentialed
// client, with an optional read-through cache in front of it. Cache
// failures degrade to direct upstream fetches, never to request failures.
type catalogService struct {
	client CatalogClient
	cache  cache.Client // may be nil
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogService creates a CatalogService. A nil cache disables caching.
func NewCatalogService(client CatalogClient, cacheClient cache.Client, ttl time.Duration, logger *zap.Logger) CatalogService {
	return &catalogService{
		client: client,
		cache:  cacheClient,
		ttl:    ttl,
		logger: logger,
	}
}

// ListProducts returns the proxied product list.
func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products from commerce API: %w", err)
	}

	s.store(ctx, catalogListKey, products)
	return products, nil
}

// GetProduct returns one proxied product by id.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	key := fmt.Sprintf(catalogProductKeyFmt, productID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var product models.Product
			if err := json.Unmarshal([]byte(raw), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product '%s' from commerce API: %w", productID, err)
	}

	s.store(ctx, key, product)
	return product, nil
}

func (s *catalogService) cachedList(ctx context.Context) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, catalogListKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *catalogService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.logger.Warn("failed to cache catalog response", zap.String("key", key), zap.Error(err))
	}
}
