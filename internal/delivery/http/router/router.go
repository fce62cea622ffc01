// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AdminHandler    *handler.AdminHandler
	SupplierHandler *handler.SupplierHandler
	BuyerHandler    *handler.BuyerHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler    *handler.AdminHandler
	supplierHandler *handler.SupplierHandler
	buyerHandler    *handler.BuyerHandler
	uploadHandler   *handler.UploadHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler:    params.AdminHandler,
		supplierHandler: params.SupplierHandler,
		buyerHandler:    params.BuyerHandler,
		uploadHandler:   params.UploadHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Admin auth routes (no session required)
	adminAuth := api.Group("/admin/auth")
	{
		adminAuth.POST("/register_initial", r.adminHandler.RegisterInitial)
		adminAuth.POST("/login", r.adminHandler.Login)
		adminAuth.POST("/logout", r.adminHandler.Logout)
		adminAuth.POST("/forgot-password", r.adminHandler.ForgotPassword)
		adminAuth.POST("/reset-password", r.adminHandler.ResetPassword)
	}

	// Back-office routes behind the admin session
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", r.adminHandler.Dashboard)
		admin.GET("/suppliers", r.adminHandler.ListSuppliers)
		admin.GET("/suppliers/:id", r.adminHandler.GetSupplier)
		admin.POST("/suppliers/:id/action", r.adminHandler.SupplierAction)
		admin.GET("/buyers", r.adminHandler.ListBuyers)
		admin.POST("/buyers/:id/action", r.adminHandler.BuyerAction)
	}

	// Supplier auth routes (no session required)
	supplierAuth := api.Group("/supplier/auth")
	{
		supplierAuth.POST("/register", r.supplierHandler.Register)
		supplierAuth.POST("/login", r.supplierHandler.Login)
		supplierAuth.POST("/logout", r.supplierHandler.Logout)
		supplierAuth.POST("/forgot-password", r.supplierHandler.ForgotPassword)
		supplierAuth.POST("/reset-password", r.supplierHandler.ResetPassword)
	}

	// Supplier portal routes behind the supplier session
	supplier := api.Group("/supplier")
	supplier.Use(r.authMiddleware.RequireSupplier())
	{
		supplier.GET("/profile", r.supplierHandler.GetProfile)
		supplier.PUT("/profile", r.supplierHandler.UpdateProfile)
		supplier.POST("/documents", r.supplierHandler.SubmitDocument)
		supplier.GET("/products", r.supplierHandler.ListProducts)
		supplier.POST("/products", r.supplierHandler.CreateProduct)
		supplier.PUT("/products/:id", r.supplierHandler.UpdateProduct)
		supplier.DELETE("/products/:id", r.supplierHandler.DeleteProduct)
		supplier.GET("/qrcode", r.supplierHandler.ProfileQR)

		supplier.POST("/upload", r.uploadHandler.UploadFile)
		supplier.POST("/uploads", r.uploadHandler.UploadFiles)
	}

	// Buyer routes behind the buyer session (custom token or Google ID token)
	buyer := api.Group("/buyer")
	buyer.Use(r.authMiddleware.RequireBuyer())
	{
		buyer.GET("/me", r.buyerHandler.Me)
		buyer.POST("/inquiries", r.buyerHandler.SubmitInquiry)
	}
}
