// internal/app/router.go
package app

import (
	adminHandler "rainerio-service/internal/handlers/admin"
	authHandler "rainerio-service/internal/handlers/auth"
	catalogHandler "rainerio-service/internal/handlers/catalog"
	eventsHandler "rainerio-service/internal/handlers/events"
	"rainerio-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	CatalogHandler *catalogHandler.CatalogHandler
	AuthHandler    *authHandler.AuthHandler
	AdminHandler   *adminHandler.AdminHandler
	EventsHandler  *eventsHandler.EventsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Catalog Events ====================
	r.GET("/ws", h.EventsHandler.HandleConnection)

	// ==================== Public Catalog ====================
	catalog := api.Group("/catalog")
	{
		catalog.GET("/vehicles", h.CatalogHandler.ListVehicles)
		catalog.GET("/facets", h.CatalogHandler.GetFacets)
		catalog.GET("/featured", h.CatalogHandler.GetFeatured)
		catalog.GET("/specialists", h.CatalogHandler.ListSpecialists)
	}

	// ==================== Auth ====================
	api.POST("/auth/login", h.AuthHandler.Login)

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.Auth())
	{
		admin.PUT("/vehicles", h.AdminHandler.SaveVehicle)
		admin.DELETE("/vehicles/:id", h.AdminHandler.DeleteVehicle)
		admin.GET("/vehicles/types", h.AdminHandler.ListTypes)
		admin.POST("/vehicles/types", h.AdminHandler.RegisterType)

		admin.PUT("/sellers", h.AdminHandler.SaveSeller)
		admin.DELETE("/sellers/:id", h.AdminHandler.DeleteSeller)

		admin.POST("/images", h.AdminHandler.UploadImages)
		admin.GET("/ws/stats", h.EventsHandler.GetStats)
	}
}
