package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every request route requires the X-Sharer-User-Id identity header.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	requests := rg.Group("/requests", mw.Identity())
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListMine)
		requests.GET("/all", h.ListOthers)
		requests.GET("/:id", h.Detail)
	}
}
