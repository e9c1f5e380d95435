// Package router contains routing setup for the HTTP delivery.
package router

import (
	"minbar/internal/delivery/http/middleware"
	"minbar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers that need to be registered.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	PushHandler         *handler.PushHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	authHandler         *handler.AuthHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	pushHandler         *handler.PushHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		pushHandler:         params.PushHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Device token registration is open to clients; the listing is an admin view.
	deviceGroup := api.Group("/devices")
	{
		deviceGroup.POST("", r.deviceHandler.RegisterToken)
		deviceGroup.GET("", r.deviceHandler.ListTokens,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Notification authoring and the delivery ledger require the admin capability.
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	notificationGroup.Use(r.authMiddleware.RequireAdmin)
	{
		notificationGroup.POST("", r.notificationHandler.CreateNotification)
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/:id", r.notificationHandler.GetNotification)
		notificationGroup.GET("/:id/outcomes", r.notificationHandler.ListOutcomes)
	}

	// Dispatch invocation
	pushGroup := api.Group("/push")
	pushGroup.Use(r.authMiddleware.Authenticate)
	pushGroup.Use(r.authMiddleware.RequireAdmin)
	{
		pushGroup.POST("/send", r.pushHandler.Send)
	}
}
