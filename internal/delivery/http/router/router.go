// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router/handler"
	"crm/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AdminHandler    *handler.AdminHandler
	CatalogHandler  *handler.CatalogHandler
	CustomerHandler *handler.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
	catalogHandler  *handler.CatalogHandler
	customerHandler *handler.CustomerHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		adminHandler:    params.AdminHandler,
		catalogHandler:  params.CatalogHandler,
		customerHandler: params.CustomerHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)
	apiV1.POST("/auth/login", r.authHandler.Login)

	// Everything below requires a valid token
	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	adminGroup := authed.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/operators", r.adminHandler.RegisterOperator)
		adminGroup.POST("/admins", r.adminHandler.RegisterAdmin)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
	}

	userGroup := authed.Group("")
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		userGroup.GET("/products", r.catalogHandler.ListProducts)

		customers := userGroup.Group("/customers")
		customers.POST("", r.customerHandler.RegisterCustomer)
		customers.GET("/:id", r.customerHandler.GetCustomer)
		customers.PUT("/:id/stage", r.customerHandler.UpdateStage)
		customers.POST("/:id/activities", r.customerHandler.CreateActivity)
		customers.GET("/:id/recommendations", r.customerHandler.Recommend)
		customers.GET("/:id/stage-history", r.customerHandler.ListStageHistory)
	}
}
