package commerce

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey    = "ck_test_key"
	testSecret = "cs_test_secret"
)

func expectedAuthHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(testKey+":"+testSecret))
}

func TestListProducts_SendsBasicAuthCredentials(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":101,"name":"Starter Kit","price":"49.99"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testKey, testSecret)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(101), products[0].ID)
	assert.Equal(t, "49.99", products[0].Price)
	assert.Equal(t, expectedAuthHeader(), gotAuth)
}

func TestGetProduct_FetchesById(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/101", r.URL.Path)
		assert.Equal(t, expectedAuthHeader(), r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":101,"name":"Starter Kit","price":"49.99"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testKey, testSecret)
	product, err := client.GetProduct(context.Background(), "101")

	require.NoError(t, err)
	assert.Equal(t, "Starter Kit", product.Name)
}

func TestGetProduct_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, testKey, testSecret)
	product, err := client.GetProduct(context.Background(), "101")

	assert.Nil(t, product)
	assert.ErrorContains(t, err, "401")
}

func TestListProducts_MalformedBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testKey, testSecret)
	products, err := client.ListProducts(context.Background())

	assert.Nil(t, products)
	assert.ErrorContains(t, err, "decode")
}
