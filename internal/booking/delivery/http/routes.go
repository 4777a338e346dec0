package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every booking route requires the X-Sharer-User-Id identity header.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Identity())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListForBooker)
		bookings.GET("/owner", h.ListForOwner)
		bookings.GET("/:id", h.Detail)
		bookings.PATCH("/:id", h.Approve)
	}
}
