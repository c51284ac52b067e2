package main

import (
	"github.com/gin-gonic/gin"

	"catalog-backend/internal/infrastructure/storage"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.Origins),
	)

	// Local driver serves uploaded photos itself
	if disk, ok := c.Storage.(*storage.DiskStorage); ok {
		router.Static(c.Config.Storage.BaseURL, disk.Dir())
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPeopleRoutes(api, c)
		setupWorkRoutes(api, c)
		setupSearchRoutes(api, c)
	}

	return router
}

// ========================================
// PEOPLE ROUTES
// ========================================
func setupPeopleRoutes(api *gin.RouterGroup, c *container.Container) {
	people := api.Group("/people")
	{
		people.POST("", c.PersonHandler.Create)
		people.GET("", c.PersonHandler.List)
		people.GET("/:id", c.PersonHandler.GetByID)
		people.PUT("/:id", c.PersonHandler.Update)
		people.DELETE("/:id", c.PersonHandler.Delete)
		people.POST("/:id/photo", c.PersonHandler.UploadPhoto)
	}
}

// ========================================
// WORK ROUTES
// ========================================
func setupWorkRoutes(api *gin.RouterGroup, c *container.Container) {
	works := api.Group("/works")
	{
		works.POST("", c.WorkHandler.Create)
		works.GET("", c.WorkHandler.List)
		works.GET("/:id", c.WorkHandler.GetByID)
		works.PUT("/:id", c.WorkHandler.Update)
		works.DELETE("/:id", c.WorkHandler.Delete)
		works.POST("/:id/photo", c.WorkHandler.UploadCover)
	}
}

// ========================================
// SEARCH + LISTING ROUTES
// ========================================
func setupSearchRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/search", c.SearchHandler.GlobalSearch)
	api.GET("/genres", c.SearchHandler.Genres)
	api.GET("/nationalities", c.SearchHandler.Nationalities)
}
