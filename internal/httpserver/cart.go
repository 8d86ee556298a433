package httpserver

import (
	"net/http"

	cartsvc "cafecart/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID  string   `json:"productId" binding:"required"`
	SizeID     *string  `json:"sizeId"`
	ToppingIDs []string `json:"toppingIds"`
	Quantity   int      `json:"quantity"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type editItemRequest struct {
	SizeID     *string  `json:"sizeId"`
	ToppingIDs []string `json:"toppingIds"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(cart))
	}
}

func cartSummaryHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toSummaryView(cart))
	}
}

func addItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		item, err := svc.AddItem(c.Request.Context(), currentUserID(c), cartsvc.AddItemInput{
			ProductID:  req.ProductID,
			SizeID:     req.SizeID,
			ToppingIDs: req.ToppingIDs,
			Quantity:   req.Quantity,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toItemView(*item))
	}
}

func updateQuantityHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cart, err := svc.UpdateQuantity(c.Request.Context(), currentUserID(c), c.Param("itemID"), req.Delta)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(*cart))
	}
}

func editItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req editItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		item, err := svc.EditConfiguration(c.Request.Context(), currentUserID(c), c.Param("itemID"), cartsvc.EditInput{
			SizeID:     req.SizeID,
			ToppingIDs: req.ToppingIDs,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toItemView(*item))
	}
}

func removeItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveItem(c.Request.Context(), currentUserID(c), c.Param("itemID")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentUserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
