package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	ReloadEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ToggleEventStatus(c *ginext.Context)
	UpdateFilters(c *ginext.Context)
	ResetFilters(c *ginext.Context)
	Search(c *ginext.Context)
	ListFavorites(c *ginext.Context)
	ToggleFavorite(c *ginext.Context)
	ClearFavorites(c *ginext.Context)
	Calendar(c *ginext.Context)
	Updates(c *ginext.Context)
	Countdown(c *ginext.Context)
}

func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.POST("/events/reload", h.ReloadEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/toggle-status", h.ToggleEventStatus)

		// Filters
		api.PATCH("/filters", h.UpdateFilters)
		api.DELETE("/filters", h.ResetFilters)
		api.POST("/search", h.Search)

		// Favorites
		api.GET("/favorites", h.ListFavorites)
		api.POST("/favorites/:id/toggle", h.ToggleFavorite)
		api.DELETE("/favorites", h.ClearFavorites)

		api.GET("/calendar.ics", h.Calendar)

		// WebSocket
		api.GET("/ws", h.Updates)
		api.GET("/ws/events/:id/countdown", h.Countdown)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
