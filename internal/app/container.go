package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareit/backend/internal/api"
	"github.com/shareit/backend/internal/booking"
	"github.com/shareit/backend/internal/item"
	"github.com/shareit/backend/internal/request"
	"github.com/shareit/backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Request module
	requestRepo := request.NewPgxRepository(cfg.DBPool)
	requestService := request.NewService(requestRepo, userService)

	// Booking storage first: the item module consults it for comment
	// eligibility, the booking service is built on top of the item service.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, commentRepo, userService, requestService, bookingRepo)

	// Booking module
	bookingService := booking.NewService(bookingRepo, userService, itemService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		ItemService:    itemService,
		RequestService: requestService,
		BookingService: bookingService,
	})

	return &Container{
		Router: router,
	}
}
