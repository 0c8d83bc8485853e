// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"salesapi/internal/delivery/http/middleware"
	"salesapi/internal/delivery/http/router/handler"
	"salesapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	StateHandler   *handler.StateHandler
	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	stateHandler   *handler.StateHandler
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		stateHandler:   params.StateHandler,
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		orderHandler:   params.OrderHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads, login and registration are public; every other write requires a
// Manager token and the destructive user/state operations require an
// Administrator token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authenticated := r.authMiddleware.Authenticate
	manager := r.authMiddleware.RequirePermission(entity.PermissionManager)
	administrator := r.authMiddleware.RequirePermission(entity.PermissionAdministrator)

	// Auth routes
	api.POST("/auth/login", r.authHandler.Login)

	// Product catalog
	productGroup := api.Group("/product")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct, authenticated, manager)
		productGroup.PUT("/:productId", r.productHandler.ReplaceProduct, authenticated, manager)
		productGroup.PATCH("/:productId", r.productHandler.PatchProduct, authenticated, manager)
		productGroup.DELETE("/:productId", r.productHandler.DeleteProduct, authenticated, manager)
	}

	// State, city and address hierarchy
	stateGroup := api.Group("/state")
	{
		stateGroup.GET("", r.stateHandler.ListStates)
		stateGroup.GET("/:stateId", r.stateHandler.GetState)
		stateGroup.PUT("/:stateId", r.stateHandler.UpdateState, authenticated, manager)
		stateGroup.DELETE("/:stateId", r.stateHandler.DeleteState, authenticated, administrator)

		stateGroup.GET("/:stateId/city", r.stateHandler.ListCities)
		stateGroup.GET("/:stateId/city/:cityId", r.stateHandler.GetCity)
		stateGroup.POST("/:stateId/city", r.stateHandler.CreateCity, authenticated, manager)

		stateGroup.GET("/:stateId/city/:cityId/address", r.stateHandler.ListAddresses)
		stateGroup.POST("/:stateId/city/:cityId/address", r.stateHandler.CreateAddress, authenticated, manager)
	}

	// User accounts; registration is the public signup path
	userGroup := api.Group("/user")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.DELETE("/:userId", r.userHandler.DeleteUser, authenticated, administrator)

		userGroup.GET("/:userId/buy", r.orderHandler.ListPurchases)
		userGroup.GET("/:userId/sell", r.orderHandler.ListSales)
	}

	// Order lines
	api.POST("/order/:orderId/product", r.orderHandler.AddOrderProduct, authenticated, manager)

	// Seeded profile reference data
	api.GET("/profile", r.profileHandler.ListProfiles, authenticated)
}
