package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reseller-portal-go/internal/core"
)

// CatalogHandler proxies the commerce catalog endpoints.
type CatalogHandler struct {
	catalogService core.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs core.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("ListProducts Error: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		log.Printf("GetProduct Error for '%s': %v", productID, err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}
