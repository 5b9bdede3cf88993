package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/common"
	"mart-api/utils/response"
)

func GetCart(c *gin.Context) {
	userID := common.GetUserID(c)

	var items []models.CartItem
	if err := config.DB.Preload("Product").
		Where("user_id = ?", *userID).
		Find(&items).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load cart", err)
		return
	}

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.Price
	}

	response.Success(c, http.StatusOK, "Cart loaded", gin.H{
		"items": items,
		"total": total,
	})
}

// POST /cart — upsert: same product updates quantity instead of duplicating.
func AddToCart(c *gin.Context) {
	userID := common.GetUserID(c)

	var input struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid cart data", err)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, input.ProductID).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Product not found")
		return
	}

	var item models.CartItem
	if err := config.DB.Where("user_id = ? AND product_id = ?", *userID, input.ProductID).
		First(&item).Error; err == nil {
		item.Quantity = input.Quantity
		if err := config.DB.Save(&item).Error; err != nil {
			response.FailWithError(c, http.StatusInternalServerError, "Failed to update cart", err)
			return
		}
		response.Success(c, http.StatusOK, "Cart updated", item)
		return
	}

	item = models.CartItem{
		UserID:    *userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to add to cart", err)
		return
	}

	response.Success(c, http.StatusCreated, "Added to cart", item)
}

// DELETE /cart/:productId
func RemoveFromCart(c *gin.Context) {
	userID := common.GetUserID(c)

	result := config.DB.Where("user_id = ? AND product_id = ?", *userID, c.Param("productId")).
		Delete(&models.CartItem{})
	if result.Error != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to remove from cart", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, http.StatusNotFound, "Item not in cart")
		return
	}

	response.Success(c, http.StatusOK, "Removed from cart", nil)
}
