package gateway

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/identity"
)

// Config carries the gateway router settings.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	ServerURL    string
}

// NewRouter builds the gateway engine: the same route surface as the
// server, with edge validation in front of a forwarding client.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	h := NewHandler(NewClient(cfg.ServerURL))
	userMiddleware := identity.Required()

	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.PassUser)
		users.GET("/:id", h.PassUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.PassUser)
	}

	items := r.Group("/items")
	{
		items.GET("/search", h.SearchItems)

		authed := items.Group("")
		authed.Use(userMiddleware)
		{
			authed.POST("", h.CreateItem)
			authed.GET("", h.ListItems)
			authed.GET("/:itemId", h.PassItem)
			authed.PATCH("/:itemId", h.UpdateItem)
			authed.DELETE("/:itemId", h.PassItem)
			authed.POST("/:itemId/comment", h.CreateComment)
		}
	}

	requests := r.Group("/requests")
	requests.Use(userMiddleware)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.PassRequest)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:requestId", h.PassRequest)
	}

	bookings := r.Group("/bookings")
	bookings.Use(userMiddleware)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListBookings)
		bookings.GET("/:bookingId", h.PassBooking)
		bookings.PATCH("/:bookingId", h.ApproveBooking)
	}

	return r
}
