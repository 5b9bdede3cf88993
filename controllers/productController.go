package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/common"
	"mart-api/utils/log"
	"mart-api/utils/pagination"
	"mart-api/utils/response"
)

func formatProductCSVRow(p models.Product) []string {
	return []string{
		fmt.Sprintf("%d", p.ID),
		p.Name,
		common.GetStringValue(p.Description),
		fmt.Sprintf("%d", p.Stock),
		p.StockLevel(),
		fmt.Sprintf("%.2f", p.BuyPrice),
		fmt.Sprintf("%.2f", p.Price),
		common.GetStringValue(p.ImageURL),
	}
}

func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	name := c.Query("name")

	p := pagination.New(page, limit)

	var products []models.Product
	var total int64

	query := config.DB.Model(&models.Product{})
	for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(name))) {
		query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}

	if err := query.
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&products).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}

	response.Success(c, http.StatusOK, "Products loaded", gin.H{
		"products":   response.FilterProductsForRole(products, common.GetUserRole(c)),
		"pagination": pagination.BuildMeta(p.Page, p.Limit, total),
	})
}

func GetProductByID(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(c, http.StatusOK, "Product loaded",
		response.FilterProductForRole(product, common.GetUserRole(c)))
}

func CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		response.Fail(c, http.StatusBadRequest, "A product with this name already exists")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&input).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' created", input.Name)
		return log.CreateProductAuditLog(
			tx,
			"create",
			input.ID,
			nil,
			&input,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created", response.AdminProduct(input))
}

func UpdateProduct(c *gin.Context) {
	var oldProduct models.Product
	if err := config.DB.First(&oldProduct, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Product not found")
		return
	}

	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ? AND id != ?", input.Name, oldProduct.ID).
		First(&existing).Error; err == nil {
		response.Fail(c, http.StatusBadRequest, "A product with this name already exists")
		return
	}

	oldCopy := oldProduct

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		oldProduct.Name = input.Name
		oldProduct.Description = input.Description
		oldProduct.Stock = input.Stock
		oldProduct.BuyPrice = input.BuyPrice
		oldProduct.Price = input.Price
		oldProduct.ImageURL = input.ImageURL

		if err := tx.Save(&oldProduct).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' updated", oldProduct.Name)
		return log.CreateProductAuditLog(
			tx,
			"update",
			oldProduct.ID,
			&oldCopy,
			&oldProduct,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated", response.AdminProduct(oldProduct))
}

func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Product not found")
		return
	}

	productCopy := product

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&product).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' deleted", productCopy.Name)
		return log.CreateProductAuditLog(
			tx,
			"delete",
			productCopy.ID,
			&productCopy,
			nil,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted", nil)
}

// GET /admin/products/low-stock
func GetLowStockProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Where("stock < ?", 5).Order("stock ASC").Find(&products).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}
	response.Success(c, http.StatusOK, "Low stock products loaded", response.AdminProducts(products))
}

func ExportProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	writer.Write([]string{"id", "name", "description", "stock", "stock_level", "buy_price", "price", "image_url"})
	for _, p := range products {
		writer.Write(formatProductCSVRow(p))
	}
	writer.Flush()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}
