package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// User routes carry no acting-user header: registration precedes identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Detail)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
