package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promospedia/internal/shared/middleware"
	"promospedia/pkg/container"
)

// SetupRouter registers middleware and the versioned API routes.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	v1 := router.Group("/api/v1")
	{
		brands := v1.Group("/brands")
		{
			brands.POST("", c.BrandHandler.Create)
			brands.GET("", c.BrandHandler.GetAll)
			brands.GET("/:slug", c.BrandHandler.GetBySlug)
			brands.GET("/:slug/promotions", c.BrandHandler.GetPromotions)
			brands.PUT("/:id", c.BrandHandler.Update)
			brands.DELETE("/:id", c.BrandHandler.Delete)
		}

		promotions := v1.Group("/promotions")
		{
			promotions.POST("", c.PromotionHandler.Create)
			promotions.GET("", c.PromotionHandler.GetAll)
			promotions.GET("/:slug", c.PromotionHandler.GetBySlug)
			promotions.GET("/:slug/items", c.PromotionHandler.GetItems)
			promotions.PUT("/:id", c.PromotionHandler.Update)
			promotions.DELETE("/:id", c.PromotionHandler.Delete)
		}

		items := v1.Group("/items")
		{
			items.POST("", c.ItemHandler.Create)
			items.GET("/:id", c.ItemHandler.GetByID)
			items.PUT("/:id", c.ItemHandler.Update)
			items.DELETE("/:id", c.ItemHandler.Delete)
		}

		search := v1.Group("/search")
		{
			search.GET("/promotions", c.PromotionHandler.Search)
			search.GET("/items", c.ItemHandler.Search)
		}

		v1.GET("/export/catalog", c.ExportHandler.Catalog)

		if c.MediaHandler != nil {
			v1.POST("/media/images", c.MediaHandler.Upload)
		}
	}

	return router
}
