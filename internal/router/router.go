package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateClient(c *ginext.Context)
	ListClients(c *ginext.Context)
	GetClient(c *ginext.Context)
	UpdateClient(c *ginext.Context)
	DeleteClient(c *ginext.Context)
	ClientCalendar(c *ginext.Context)

	CreatePackage(c *ginext.Context)
	GetPackage(c *ginext.Context)
	UpdatePackage(c *ginext.Context)
	DeletePackage(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	DeleteOccurrence(c *ginext.Context)
	AvailableDays(c *ginext.Context)
	RequestChange(c *ginext.Context)
	ResolveRequest(c *ginext.Context)

	PendingRequests(c *ginext.Context)
	Overview(c *ginext.Context)
	RunSweep(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Clients
		api.POST("/clients", h.CreateClient)
		api.GET("/clients", h.ListClients)
		api.GET("/clients/:id", h.GetClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)
		api.GET("/clients/:id/calendar.ics", h.ClientCalendar)

		// Packages
		api.POST("/clients/:id/packages", h.CreatePackage)
		api.GET("/clients/:id/packages/:pkg", h.GetPackage)
		api.PUT("/clients/:id/packages/:pkg", h.UpdatePackage)
		api.DELETE("/clients/:id/packages/:pkg", h.DeletePackage)

		// Bookings and occurrences
		bookings := api.Group("/clients/:id/packages/:pkg/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.DELETE("/:booking/occurrences/:date", h.DeleteOccurrence)
		bookings.GET("/:booking/occurrences/:date/availability", h.AvailableDays)
		bookings.POST("/:booking/occurrences/:date/request", h.RequestChange)
		bookings.POST("/:booking/occurrences/:date/resolve", h.ResolveRequest)

		// Admin
		api.GET("/requests", h.PendingRequests)
		api.GET("/overview", h.Overview)
		api.POST("/sweep", h.RunSweep)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
