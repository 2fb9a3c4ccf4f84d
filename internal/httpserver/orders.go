package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func checkoutHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		order, err := svc.Checkout(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"order":   order,
		})
	}
}

func myOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		orders, err := svc.ListByUser(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"orders": orders})
	}
}

func getOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		order, err := svc.Get(c.Request.Context(), c.Param("id"), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"order": order})
	}
}
