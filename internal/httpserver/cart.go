package httpserver

import (
	"net/http"

	"canvas-store/internal/domain"
	"github.com/gin-gonic/gin"
)

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		cart, err := svc.Get(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCart(c, http.StatusOK, cart)
	}
}

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID string `json:"productId"`
			Size      string `json:"size"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		user := currentUser(c)
		cart, err := svc.AddItem(c.Request.Context(), user.ID, req.ProductID, req.Size, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCart(c, http.StatusOK, cart)
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body")
			return
		}

		user := currentUser(c)
		cart, err := svc.UpdateItem(c.Request.Context(), user.ID, c.Param("itemId"), req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCart(c, http.StatusOK, cart)
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		cart, err := svc.RemoveItem(c.Request.Context(), user.ID, c.Param("itemId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondCart(c, http.StatusOK, cart)
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		cart, err := svc.Clear(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCart(c, http.StatusOK, cart)
	}
}

func respondCart(c *gin.Context, status int, cart *domain.Cart) {
	respond(c, status, gin.H{
		"cart":       cart,
		"total":      cart.Total(),
		"totalItems": cart.TotalItems(),
	})
}
