package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookingHTTP "shareit/internal/booking/delivery/http"
	itemHTTP "shareit/internal/item/delivery/http"
	"shareit/internal/model"
	requestHTTP "shareit/internal/request/delivery/http"
	userHTTP "shareit/internal/user/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	srv.gin.Use(srv.middleware.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes at the root group.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	root := srv.gin.Group("")

	userHTTP.RegisterRoutes(root, srv.userHandler)
	itemHTTP.RegisterRoutes(root, srv.itemHandler, srv.middleware)
	bookingHTTP.RegisterRoutes(root, srv.bookingHandler, srv.middleware)
	requestHTTP.RegisterRoutes(root, srv.requestHandler, srv.middleware)

	srv.l.Infof(ctx, "Domain routes registered: users, items, bookings, requests")
}
