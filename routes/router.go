package routes

import (
	"github.com/gin-gonic/gin"

	"mart-api/controllers"
	"mart-api/middlewares"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// Public products buat landing page
	r.GET("/public/products", controllers.GetProducts)
	r.GET("/public/products/:id", controllers.GetProductByID)

	// Cart
	cart := r.Group("/cart")
	cart.Use(middlewares.AuthMiddleware())
	{
		cart.GET("/", controllers.GetCart)
		cart.POST("/", controllers.AddToCart)
		cart.DELETE("/:productId", controllers.RemoveFromCart)
	}

	// Checkout + customer orders
	r.POST("/checkout", middlewares.AuthMiddleware(), controllers.Checkout)

	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("/", controllers.GetMyOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.POST("/:id/pay", controllers.PayOrder)
		orders.GET("/:id/qr", controllers.GetOrderQR)
	}

	// Products (admin)
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		products.GET("/", controllers.GetProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.POST("/", controllers.CreateProduct)
		products.PUT("/:id", controllers.UpdateProduct)
		products.DELETE("/:id", controllers.DeleteProduct)
	}

	// Admin order coordinator + pickup verification
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/stats", controllers.GetOrderStats)
		admin.POST("/orders/scan-qr", controllers.ScanQR)
		admin.PATCH("/orders/:orderId/complete", controllers.CompleteOrder)
		admin.PATCH("/orders/:orderId/reject", controllers.RejectOrder)

		admin.GET("/products/low-stock", controllers.GetLowStockProducts)
		admin.GET("/products/export", controllers.ExportProducts)

		admin.GET("/audit-logs", controllers.GetAuditLogs)

		admin.POST("/cash-sessions", controllers.OpenCashSession)
		admin.GET("/cash-sessions/current", controllers.GetCurrentCashSession)
		admin.PATCH("/cash-sessions/close", controllers.CloseCashSession)
	}
}
