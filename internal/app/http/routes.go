package routes

import (
	artistsapi "booking-app/internal/api/artists"
	showsapi "booking-app/internal/api/shows"
	venuesapi "booking-app/internal/api/venues"
	"booking-app/internal/app/http/middleware"
	"booking-app/internal/directory"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, dir *directory.Directory) {
	venues := venuesapi.NewHandler(dir)
	artists := artistsapi.NewHandler(dir)
	shows := showsapi.NewHandler(dir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Form submissions get their string fields sanitized before binding.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/venues", venues.List)
	public.POST("/venues/search", venues.Search)
	public.GET("/venues/:id", venues.Get)
	public.POST("/venues", venues.Create)
	public.PUT("/venues/:id", venues.Update)
	public.DELETE("/venues/:id", venues.Delete)

	public.GET("/artists", artists.List)
	public.POST("/artists/search", artists.Search)
	public.GET("/artists/:id", artists.Get)
	public.POST("/artists", artists.Create)
	public.PUT("/artists/:id", artists.Update)

	public.GET("/shows", shows.List)
	public.POST("/shows", shows.Create)
}
