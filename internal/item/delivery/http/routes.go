package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every item route requires the X-Sharer-User-Id identity header.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Identity())
	{
		items.POST("", h.Create)
		items.GET("", h.ListByOwner)
		items.GET("/search", h.Search)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", h.Update)
		items.POST("/:id/comment", h.AddComment)
	}
}
