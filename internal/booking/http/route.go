package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, userMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(userMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListAsBooker)
		group.GET("/owner", h.ListAsOwner)
		group.GET("/:bookingId", h.Get)
		group.PATCH("/:bookingId", h.Approve)
	}
}
