package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reseller-portal-go/internal/core"
	"reseller-portal-go/internal/models"
)

// CartHandler exposes the session-scoped cart of the authenticated user.
type CartHandler struct {
	cartService core.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs core.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// GetCart handles GET /api/v1/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, CartResponse{
		Items: h.cartService.Items(userID),
		Total: h.cartService.Total(userID),
	})
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if req.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unitPrice must not be negative"})
		return
	}

	h.cartService.Add(userID, models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		ImageRef:  req.ImageRef,
	})

	c.JSON(http.StatusOK, CartResponse{
		Items: h.cartService.Items(userID),
		Total: h.cartService.Total(userID),
	})
}

// RemoveItem handles DELETE /api/v1/cart/items/:productId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	h.cartService.Remove(userID, c.Param("productId"))

	c.JSON(http.StatusOK, CartResponse{
		Items: h.cartService.Items(userID),
		Total: h.cartService.Total(userID),
	})
}

// ClearCart handles DELETE /api/v1/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	h.cartService.Clear(userID)

	c.JSON(http.StatusOK, CartResponse{Items: []models.CartItem{}, Total: 0})
}
