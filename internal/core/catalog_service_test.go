package core

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"reseller-portal-go/internal/models"
)

// fakeCatalogClient counts upstream calls so tests can observe whether
// the cache short-circuited the fetch.
type fakeCatalogClient struct {
	products []models.Product
	err      error
	listed   int
	fetched  int
}

func (f *fakeCatalogClient) ListProducts(context.Context) ([]models.Product, error) {
	f.listed++
	return f.products, f.err
}

func (f *fakeCatalogClient) GetProduct(_ context.Context, productID string) (*models.Product, error) {
	f.fetched++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if strconv.FormatInt(f.products[i].ID, 10) == productID {
			return &f.products[i], nil
		}
	}
	return nil, errors.New("product not found")
}

type fakeCache struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 101, Name: "Starter Kit", Price: "49.99"},
		{ID: 102, Name: "Pro Bundle", Price: "129.00"},
	}
}

func TestCatalog_ListMissFetchesAndCaches(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	cached := newFakeCache()
	svc := NewCatalogService(client, cached, time.Minute, zap.NewNop())

	products, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, client.listed)
	assert.Contains(t, cached.entries, "catalog:products")
}

func TestCatalog_ListHitSkipsUpstream(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	cached := newFakeCache()
	raw, _ := json.Marshal(sampleProducts())
	cached.entries["catalog:products"] = string(raw)
	svc := NewCatalogService(client, cached, time.Minute, zap.NewNop())

	products, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 0, client.listed)
}

func TestCatalog_CacheFailureDegradesToUpstream(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	cached := newFakeCache()
	cached.getErr = errors.New("redis down")
	cached.setErr = errors.New("redis down")
	svc := NewCatalogService(client, cached, time.Minute, zap.NewNop())

	products, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, client.listed)
}

func TestCatalog_NilCacheFetchesEveryTime(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	svc := NewCatalogService(client, nil, time.Minute, zap.NewNop())

	_, err := svc.ListProducts(context.Background())
	assert.NoError(t, err)
	_, err = svc.ListProducts(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, client.listed)
}

func TestCatalog_UpstreamFailureSurfaces(t *testing.T) {
	client := &fakeCatalogClient{err: errors.New("503 from commerce API")}
	svc := NewCatalogService(client, nil, time.Minute, zap.NewNop())

	products, err := svc.ListProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestCatalog_GetProductCachesById(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	cached := newFakeCache()
	svc := NewCatalogService(client, cached, time.Minute, zap.NewNop())

	first, err := svc.GetProduct(context.Background(), "101")
	assert.NoError(t, err)
	assert.Equal(t, "Starter Kit", first.Name)

	second, err := svc.GetProduct(context.Background(), "101")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, client.fetched)
}

func TestCatalog_CorruptCacheEntryRefetches(t *testing.T) {
	client := &fakeCatalogClient{products: sampleProducts()}
	cached := newFakeCache()
	cached.entries["catalog:products"] = "{not json"
	svc := NewCatalogService(client, cached, time.Minute, zap.NewNop())

	products, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, client.listed)
}
