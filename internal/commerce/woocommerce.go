// Package commerce provides the credentialed client for the external
// commerce catalog API. The consumer key/secret pair never leaves the
// server; clients only ever see the proxied responses.
package commerce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"reseller-portal-go/internal/models"
)

// Client is a WooCommerce-style REST catalog client using Basic auth
// built from a consumer key/secret pair.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// NewClient creates a catalog client. baseURL points at the products
// API root, e.g. "https://shop.example.com/wp-json/wc/v3".
func NewClient(baseURL, consumerKey, consumerSecret string) *Client {
	credentials := base64.StdEncoding.EncodeToString([]byte(consumerKey + ":" + consumerSecret))
	return &Client{
		baseURL:    baseURL,
		authHeader: "Basic " + credentials,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListProducts fetches the product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, c.baseURL+"/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, c.baseURL+"/products/"+url.PathEscape(productID), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build commerce API request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("commerce API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode commerce API response: %w", err)
	}
	return nil
}
