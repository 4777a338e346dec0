package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/item"
	"shareit/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Detail(c *gin.Context)
	ListByOwner(c *gin.Context)
	Search(c *gin.Context)
	AddComment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
