package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	bookingHTTP "shareit/internal/booking/delivery/http"
	itemHTTP "shareit/internal/item/delivery/http"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	userHTTP "shareit/internal/user/delivery/http"
	"shareit/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	// Domains
	userHandler    userHTTP.Handler
	itemHandler    itemHTTP.Handler
	bookingHandler bookingHTTP.Handler
	requestHandler requestHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	UserHandler    userHTTP.Handler
	ItemHandler    itemHTTP.Handler
	BookingHandler bookingHTTP.Handler
	RequestHandler requestHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		userHandler:    cfg.UserHandler,
		itemHandler:    cfg.ItemHandler,
		bookingHandler: cfg.BookingHandler,
		requestHandler: cfg.RequestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.userHandler == nil {
		return errors.New("user handler is required")
	}
	if srv.itemHandler == nil {
		return errors.New("item handler is required")
	}
	if srv.bookingHandler == nil {
		return errors.New("booking handler is required")
	}
	if srv.requestHandler == nil {
		return errors.New("request handler is required")
	}
	return nil
}
