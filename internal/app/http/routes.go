package routes

import (
	artistsapi "booking-directory/internal/api/artists"
	showsapi "booking-directory/internal/api/shows"
	venuesapi "booking-directory/internal/api/venues"
	"booking-directory/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "not found"})
	})

	public := r.Group("/")
	public.Use(middleware.RequestID(), middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/venues", venuesapi.ListVenues)
	public.POST("/venues/search", venuesapi.SearchVenues)
	public.GET("/venues/:id", venuesapi.GetVenue)
	public.POST("/venues", venuesapi.CreateVenue)
	public.PUT("/venues/:id", venuesapi.UpdateVenue)
	public.DELETE("/venues/:id", venuesapi.DeleteVenue)

	public.GET("/artists", artistsapi.ListArtists)
	public.POST("/artists/search", artistsapi.SearchArtists)
	public.GET("/artists/:id", artistsapi.GetArtist)
	public.POST("/artists", artistsapi.CreateArtist)
	public.PUT("/artists/:id", artistsapi.UpdateArtist)
	public.DELETE("/artists/:id", artistsapi.DeleteArtist)

	public.GET("/shows", showsapi.ListShows)
	public.POST("/shows", showsapi.CreateShow)
}
