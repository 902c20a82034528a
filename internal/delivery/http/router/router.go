// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"saletafood/config"
	"saletafood/internal/delivery/http/middleware"
	"saletafood/internal/delivery/http/router/handler"
	"saletafood/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	ContentHandler  *handler.ContentHandler
	UploadHandler   *handler.UploadHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	contentHandler  *handler.ContentHandler
	uploadHandler   *handler.UploadHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		contentHandler:  params.ContentHandler,
		uploadHandler:   params.UploadHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/categories", r.categoryHandler.ListCategories)
	e.GET("/categories/:slug", r.categoryHandler.GetCategoryBySlug)
	e.GET("/categories/:slug/products", r.productHandler.ListProductsByCategory)

	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/featured", r.productHandler.ListFeaturedProducts)
	e.GET("/products/:slug", r.productHandler.GetProductBySlug)

	e.GET("/content/hero", r.contentHandler.GetHeroContent)
	e.GET("/content/cta", r.contentHandler.GetCTAContent)

	e.GET("/visits", r.contentHandler.GetVisitorCount)
	e.POST("/visits", r.contentHandler.RecordVisit)

	// Order routes for the authenticated customer
	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
	}

	// Back-office routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/categories", r.categoryHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.categoryHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.DeleteCategory)

		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
		adminGroup.GET("/products/:id/qrcode", r.productHandler.GetProductQRCode)

		adminGroup.POST("/uploads", r.uploadHandler.UploadImage)

		adminGroup.PUT("/content/hero", r.contentHandler.UpdateHeroContent)
		adminGroup.PUT("/content/cta", r.contentHandler.UpdateCTAContent)

		adminGroup.GET("/orders/:id", r.orderHandler.GetOrderByID)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		adminGroup.GET("/users/:id", r.userHandler.GetUserByID)
		adminGroup.GET("/users/:id/orders", r.orderHandler.ListOrdersByUser)
		adminGroup.DELETE("/users/:id", r.userHandler.DeleteUser)
	}
}
