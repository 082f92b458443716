package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	MySchedule(c *ginext.Context)
	ListSessions(c *ginext.Context)
	ListOfferings(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	MemberQR(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/register", h.Register)
		api.DELETE("/register", h.CancelRegistration)
		api.GET("/my-schedule", h.MySchedule)

		// Catalog
		api.GET("/sessions", h.ListSessions)
		api.GET("/offerings", h.ListOfferings)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
	}

	router.GET("/qr/:id", h.MemberQR)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
