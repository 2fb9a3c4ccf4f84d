package httpserver

import (
	"math"
	"net/http"
	"strconv"

	productrepo "canvas-store/internal/repository/product"
	"canvas-store/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := productrepo.Filter{
			Category: c.Query("category"),
			Size:     c.Query("size"),
			Search:   c.Query("search"),
		}
		if min, ok := queryDollarsToCents(c, "priceMin"); ok {
			filter.PriceMinCents = &min
		}
		if max, ok := queryDollarsToCents(c, "priceMax"); ok {
			filter.PriceMaxCents = &max
		}

		result, err := svc.List(c.Request.Context(), catalog.ListInput{
			Filter: filter,
			Page:   queryInt(c, "page", 1),
			Limit:  queryInt(c, "limit", 10),
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respond(c, http.StatusOK, gin.H{
			"count":       len(result.Products),
			"total":       result.Total,
			"pages":       result.Pages,
			"currentPage": result.Page,
			"products":    result.Products,
		})
	}
}

func featuredProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Featured(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

func searchProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

func productsByCategoryHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"product": product})
	}
}

// queryDollarsToCents parses a decimal-dollar query param into cents.
func queryDollarsToCents(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
