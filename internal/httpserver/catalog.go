package httpserver

import (
	"net/http"

	"cafecart/internal/domain"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(catalog catalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catalog unavailable"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func listSizesHandler(catalog catalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sizes, err := catalog.ListSizes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catalog unavailable"})
			return
		}
		if sizes == nil {
			sizes = []domain.Size{}
		}
		c.JSON(http.StatusOK, sizes)
	}
}

func listToppingsHandler(catalog catalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		toppings, err := catalog.ListToppings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catalog unavailable"})
			return
		}
		if toppings == nil {
			toppings = []domain.Topping{}
		}
		c.JSON(http.StatusOK, toppings)
	}
}
