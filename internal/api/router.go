package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/booking"
	bookingHttp "github.com/shareit/backend/internal/booking/http"
	"github.com/shareit/backend/internal/identity"
	"github.com/shareit/backend/internal/item"
	itemHttp "github.com/shareit/backend/internal/item/http"
	"github.com/shareit/backend/internal/request"
	requestHttp "github.com/shareit/backend/internal/request/http"
	"github.com/shareit/backend/internal/user"
	userHttp "github.com/shareit/backend/internal/user/http"
)

// Config carries the services the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	ItemService    item.Service
	RequestService request.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, user identity) and registers the
// routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	// userMiddleware: resolves the acting user from X-Sharer-User-Id.
	userMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService, cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService, cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, userMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, userMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, userMiddleware)
	}

	return r
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		config.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	return config
}
